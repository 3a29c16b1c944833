package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/melone"
	"github.com/pkg/profile"
)

func main() {
	withProfile := flag.Bool("profile", false, "write a cpu profile")
	flag.Parse()

	if *withProfile {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	ebiten.SetWindowTitle("Melone")
	ebiten.SetWindowSize(melone.ArenaWidth, melone.ArenaHeight)

	if err := ebiten.RunGame(&game{sim: melone.NewGame()}); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/oliverbestmann/melone"
)

// ebiten runs Update at a fixed 60 ticks per second
const tickDuration = time.Second / 60

type game struct {
	sim *melone.Game
}

func (g *game) Update() error {
	g.sim.Step(tickDuration, melone.Input{
		MoveLeft:  ebiten.IsKeyPressed(ebiten.KeyLeft),
		MoveRight: ebiten.IsKeyPressed(ebiten.KeyRight),
		Release:   inpututil.IsKeyJustPressed(ebiten.KeyDown) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Restart:   inpututil.IsKeyJustPressed(ebiten.KeyR),
	})

	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	snapshot := g.sim.Snapshot()

	for _, piece := range snapshot.Pieces {
		drawPiece(screen, piece)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", snapshot.Score), 10, 10)

	if snapshot.GameOver {
		printCentered(screen, "Game Over! Press R to restart", melone.ArenaWidth/2, melone.ArenaHeight/2)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return melone.ArenaWidth, melone.ArenaHeight
}

func drawPiece(dst *ebiten.Image, piece melone.PieceView) {
	x := float32(piece.Position.X)
	y := float32(piece.Position.Y)
	radius := float32(piece.Radius)

	vector.DrawFilledCircle(dst, x+shadowOffset, y+shadowOffset, radius, shadowColor, false)
	vector.DrawFilledCircle(dst, x, y, radius, colorForLevel(piece.Level), false)
	vector.StrokeCircle(dst, x, y, radius, outlineWidth, outlineColor, false)

	printCentered(dst, strconv.Itoa(piece.Level), int(piece.Position.X), int(piece.Position.Y))
}

// printCentered centers text on a point using the fixed 6x16 glyph size of
// the debug font.
func printCentered(dst *ebiten.Image, text string, x, y int) {
	ebitenutil.DebugPrintAt(dst, text, x-len(text)*3, y-8)
}

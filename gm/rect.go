package gm

import (
	"fmt"
)

type Rect struct {
	Min, Max Vec
}

func RectWithSize(size Vec) Rect {
	return Rect{
		Max: size,
	}
}

func (r Rect) Center() Vec {
	return r.Min.Add(r.Max).Mul(0.5)
}

func (r Rect) Size() Vec {
	return r.Max.Sub(r.Min)
}

func (r Rect) TopLeft() Vec {
	return r.Min
}

func (r Rect) TopRight() Vec {
	return Vec{
		X: r.Max.X,
		Y: r.Min.Y,
	}
}

func (r Rect) BottomLeft() Vec {
	return Vec{
		X: r.Min.X,
		Y: r.Max.Y,
	}
}

func (r Rect) BottomRight() Vec {
	return r.Max
}

func (r Rect) Contains(p Vec) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(min=%s, max=%s)", r.Min, r.Max)
}

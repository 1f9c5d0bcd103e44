package adapter

import "math"

type RoundHole struct {
	Radius float64
}

// Peg is anything a RoundHole can test for fit.
type Peg interface {
	Radius() float64
}

func (h RoundHole) Fits(p Peg) bool {
	return h.Radius >= p.Radius()
}

type RoundPeg struct {
	R float64
}

func (p RoundPeg) Radius() float64 {
	return p.R
}

// SquarePeg has no radius; it only knows its width.
type SquarePeg struct {
	Width float64
}

func (p SquarePeg) Square() float64 {
	return p.Width * p.Width
}

// SquarePegAdapter presents a square peg as the smallest circle that encloses it.
type SquarePegAdapter struct {
	Peg SquarePeg
}

func (a SquarePegAdapter) Radius() float64 {
	return math.Sqrt(math.Pow(a.Peg.Width/2, 2) * 2)
}

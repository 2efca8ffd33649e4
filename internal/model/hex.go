package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultHexSize is the hex radius in pixels used by the reference renderer
const DefaultHexSize = 24.0

// Coord identifies a hex cell in axial coordinates.
// The third cube coordinate is implicit: s = -q - r.
type Coord struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// S returns the implicit cube coordinate
func (c Coord) S() int {
	return -c.Q - c.R
}

// Add returns c + o
func (c Coord) Add(o Coord) Coord {
	return Coord{Q: c.Q + o.Q, R: c.R + o.R}
}

// Sub returns c - o
func (c Coord) Sub(o Coord) Coord {
	return Coord{Q: c.Q - o.Q, R: c.R - o.R}
}

// Key returns the canonical "q,r" form used for map keys on the wire
func (c Coord) Key() string {
	return strconv.Itoa(c.Q) + "," + strconv.Itoa(c.R)
}

// String implements fmt.Stringer
func (c Coord) String() string {
	return "(" + c.Key() + ")"
}

// ParseKey is the inverse of Coord.Key
func ParseKey(s string) (Coord, error) {
	qs, rs, ok := strings.Cut(s, ",")
	if !ok {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidCoordKey, s)
	}
	q, err := strconv.Atoi(strings.TrimSpace(qs))
	if err != nil {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidCoordKey, s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidCoordKey, s)
	}
	return Coord{Q: q, R: r}, nil
}

// Point is a position in board-local pixels, origin at the board centre
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PixelToAxial converts a board-local point to the hex containing it
// (pointy-top layout, hexes of the given size).
func PixelToAxial(p Point, size float64) Coord {
	if size <= 0 {
		size = DefaultHexSize
	}
	q := (math.Sqrt(3)/3*p.X - p.Y/3) / size
	r := (2.0 / 3.0 * p.Y) / size
	return roundCube(q, r, -q-r)
}

// AxialToPixel returns the centre of the hex in board-local pixels
func AxialToPixel(c Coord, size float64) Point {
	if size <= 0 {
		size = DefaultHexSize
	}
	return Point{
		X: size * math.Sqrt(3) * (float64(c.Q) + float64(c.R)/2),
		Y: size * 1.5 * float64(c.R),
	}
}

// roundCube rounds fractional cube coordinates to the nearest hex. The
// component with the largest rounding error is rebuilt from the other two so
// that q+r+s == 0 holds exactly.
func roundCube(fq, fr, fs float64) Coord {
	q := math.Round(fq)
	r := math.Round(fr)
	s := math.Round(fs)

	dq := math.Abs(q - fq)
	dr := math.Abs(r - fr)
	ds := math.Abs(s - fs)

	switch {
	case dq > dr && dq > ds:
		q = -r - s
	case dr > ds:
		r = -q - s
	}
	return Coord{Q: int(q), R: int(r)}
}

package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"
)

type HexSuite struct {
	suite.Suite
}

func TestHexSuite(t *testing.T) {
	suite.Run(t, new(HexSuite))
}

func (s *HexSuite) TestKeyRoundTrip() {
	for _, c := range NewBoard(3).Coords() {
		parsed, err := ParseKey(c.Key())
		s.Require().NoError(err)
		s.Equal(c, parsed)
	}
}

func (s *HexSuite) TestParseKeyRejectsMalformed() {
	for _, key := range []string{"", "1", "a,b", "1,", ",2", "1;2"} {
		_, err := ParseKey(key)
		s.ErrorIs(err, ErrInvalidCoordKey, key)
	}
}

func (s *HexSuite) TestArithmetic() {
	a := Coord{Q: 2, R: -1}
	b := Coord{Q: -1, R: 3}
	s.Equal(Coord{Q: 1, R: 2}, a.Add(b))
	s.Equal(Coord{Q: 3, R: -4}, a.Sub(b))
	s.Equal(-1, a.S())
}

func (s *HexSuite) TestPixelRoundTrip() {
	for _, size := range []float64{DefaultHexSize, 10} {
		for _, c := range NewBoard(4).Coords() {
			s.Equal(c, PixelToAxial(AxialToPixel(c, size), size), "size %v coord %v", size, c)
		}
	}
}

func (s *HexSuite) TestPixelToAxialNearCentre() {
	// Points a little inside a hex still land on it
	centre := AxialToPixel(Coord{Q: 1, R: -1}, DefaultHexSize)
	nudged := Point{X: centre.X + 5, Y: centre.Y - 5}
	s.Equal(Coord{Q: 1, R: -1}, PixelToAxial(nudged, DefaultHexSize))

	// Non-positive sizes fall back to the default
	s.Equal(Coord{Q: 1, R: -1}, PixelToAxial(centre, 0))
}

func (s *HexSuite) TestPixelToAxialNearVerticesAndEdges() {
	for _, c := range NewBoard(2).Coords() {
		centre := AxialToPixel(c, DefaultHexSize)
		for k := 0; k < 6; k++ {
			// Pointy-top corners sit at -30+60k degrees, edge midpoints at 60k
			vertex := float64(60*k-30) * math.Pi / 180
			edge := float64(60*k) * math.Pi / 180
			inRadius := DefaultHexSize * math.Sqrt(3) / 2

			nearVertex := Point{
				X: centre.X + 0.95*DefaultHexSize*math.Cos(vertex),
				Y: centre.Y + 0.95*DefaultHexSize*math.Sin(vertex),
			}
			nearEdge := Point{
				X: centre.X + 0.95*inRadius*math.Cos(edge),
				Y: centre.Y + 0.95*inRadius*math.Sin(edge),
			}
			s.Equal(c, PixelToAxial(nearVertex, DefaultHexSize), "coord %v corner %d", c, k)
			s.Equal(c, PixelToAxial(nearEdge, DefaultHexSize), "coord %v edge %d", c, k)
		}
	}
}

func (s *HexSuite) TestPixelToAxialMatchesNearestCentre() {
	centres := NewBoard(6).Coords()
	for x := -120.0; x <= 120.0; x += 1.7 {
		for y := -120.0; y <= 120.0; y += 1.7 {
			p := Point{X: x, Y: y}

			best, bestDist, secondDist := Coord{}, math.Inf(1), math.Inf(1)
			for _, c := range centres {
				centre := AxialToPixel(c, DefaultHexSize)
				d := math.Hypot(p.X-centre.X, p.Y-centre.Y)
				switch {
				case d < bestDist:
					best, bestDist, secondDist = c, d, bestDist
				case d < secondDist:
					secondDist = d
				}
			}
			// Points on a shared edge may round either way
			if secondDist-bestDist < 1e-6 {
				continue
			}
			s.Require().Equal(best, PixelToAxial(p, DefaultHexSize), "point (%.1f, %.1f)", x, y)
		}
	}
}

func (s *HexSuite) TestBoardBasics() {
	b := NewBoard(2)
	s.Equal(19, b.CellCount())
	s.Len(b.EmptyCells(), 19)

	b.Set(Coord{Q: 2, R: -2}, "gold")
	b.Set(Coord{Q: 3, R: 0}, "gold")
	s.False(b.IsEmpty(Coord{Q: 2, R: -2}))
	s.Equal(1, b.OccupiedCount())
	s.False(b.InBounds(Coord{Q: 3, R: 0}))

	clone := b.Clone()
	s.True(clone.Equal(b))
	clone.Set(Coord{}, "gold")
	s.False(clone.Equal(b))
}

func (s *HexSuite) TestTray() {
	tray := Tray{{ID: 1}, {ID: 2}, {ID: 3}}
	s.Equal(1, tray.Find(2))
	s.True(tray.Remove(2))
	s.False(tray.Remove(2))
	s.Nil(tray.Get(2))
	s.Len(tray.Pieces(), 2)
	s.False(tray.IsEmpty())

	tray.Remove(1)
	tray.Remove(3)
	s.True(tray.IsEmpty())
}

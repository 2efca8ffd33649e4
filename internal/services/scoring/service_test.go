package scoring

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/blockhive/internal/model"
	"github.com/mcoot/blockhive/internal/storage"
	"github.com/mcoot/blockhive/internal/storage/memory"
	"github.com/mcoot/blockhive/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, testutil.NopLogger())
	s.ctx = context.Background()
}

func piece(cells ...model.Coord) *model.Piece {
	return &model.Piece{ID: 1, Shape: cells, Color: "gold"}
}

// Score formulas

func (s *ServiceSuite) TestPlacementScoreIsTenPerCell() {
	for _, shape := range model.Catalog {
		s.Equal(10*len(shape.Cells), PlacementScore(&model.Piece{Shape: shape.Cells}), shape.Name)
	}
}

func (s *ServiceSuite) TestPlacementScoreIgnoresBoard() {
	p := piece(model.Coord{}, model.Coord{Q: 1})
	s.Equal(20, PlacementScore(p))
}

func (s *ServiceSuite) TestClearScoreCombo() {
	expected := map[int]int{0: 0, 1: 100, 2: 300, 3: 600, 4: 1000, 5: 1500, 6: 2100}
	for n, want := range expected {
		s.Equal(want, ClearScore(n), "lines=%d", n)
	}
	s.Equal(0, ClearScore(-1))
}

// Game over

func (s *ServiceSuite) TestEmptyTrayIsNotGameOver() {
	b := model.NewBoard(1)
	for _, c := range b.Coords() {
		b.Set(c, "red")
	}
	var tray model.Tray
	s.False(IsGameOver(b, &tray))
}

func (s *ServiceSuite) TestFullBoardIsGameOver() {
	b := model.NewBoard(1)
	for _, c := range b.Coords() {
		b.Set(c, "red")
	}
	tray := model.Tray{piece(model.Coord{})}
	s.True(IsGameOver(b, &tray))
}

func (s *ServiceSuite) TestSingleCounterexampleEndsSearch() {
	b := model.NewBoard(1)
	for _, c := range b.Coords() {
		b.Set(c, "red")
	}
	b.Set(model.Coord{Q: 1, R: -1}, model.Empty)

	big := piece(model.Coord{}, model.Coord{Q: 1}, model.Coord{Q: -1})
	tray := model.Tray{big, nil, nil}
	s.True(IsGameOver(b, &tray))

	tray[2] = piece(model.Coord{})
	s.False(IsGameOver(b, &tray))
}

func (s *ServiceSuite) TestGameOverSkipsEmptySlots() {
	b := model.NewBoard(1)
	tray := model.Tray{nil, piece(model.Coord{}), nil}
	s.False(IsGameOver(b, &tray))
}

func (s *ServiceSuite) TestLegalMoves() {
	b := model.NewBoard(1)
	b.Set(model.Coord{}, "red")
	tray := model.Tray{
		{ID: 4, Shape: []model.Coord{{}}, Color: "gold"},
		nil,
		{ID: 6, Shape: []model.Coord{{}, {Q: 1}, {Q: -1}}, Color: "gold"},
	}

	moves := LegalMoves(b, &tray)
	s.Require().Len(moves, 2)
	s.Equal(model.PieceID(4), moves[0].PieceID)
	s.Len(moves[0].Anchors, 6)
	s.Equal(model.PieceID(6), moves[1].PieceID)
	s.Empty(moves[1].Anchors)
}

// High score

func (s *ServiceSuite) TestLoadHighScoreDefaultsToZero() {
	score, err := s.service.LoadHighScore(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, score)
}

func (s *ServiceSuite) TestLoadHighScoreIgnoresGarbage() {
	_ = s.storage.Set(s.ctx, storage.KeyHighScore, "lots")
	score, err := s.service.LoadHighScore(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, score)
}

func (s *ServiceSuite) TestUpdateHighScorePersistsWhenExceeded() {
	score, changed := s.service.UpdateHighScore(s.ctx, 250, 100)
	s.True(changed)
	s.Equal(250, score)

	loaded, err := s.service.LoadHighScore(s.ctx)
	s.Require().NoError(err)
	s.Equal(250, loaded)
}

func (s *ServiceSuite) TestUpdateHighScoreKeepsHigherWatermark() {
	score, changed := s.service.UpdateHighScore(s.ctx, 100, 100)
	s.False(changed)
	s.Equal(100, score)
	s.Equal(0, s.storage.Len())
}

func (s *ServiceSuite) TestUpdateHighScoreSurvivesStorageFailure() {
	svc := New(failingStorage{}, testutil.NopLogger())
	score, changed := svc.UpdateHighScore(s.ctx, 500, 0)
	s.True(changed)
	s.Equal(500, score)

	_, err := svc.LoadHighScore(s.ctx)
	s.Error(err)
}

type failingStorage struct{}

func (failingStorage) Get(ctx context.Context, key string) (string, error) {
	return "", errors.New("storage offline")
}

func (failingStorage) Set(ctx context.Context, key, value string) error {
	return errors.New("storage offline")
}

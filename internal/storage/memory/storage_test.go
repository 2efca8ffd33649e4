package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/blockhive/internal/model"
	"github.com/mcoot/blockhive/internal/storage"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) TestGetMissingKey() {
	_, err := s.storage.Get(s.ctx, storage.KeyHighScore)
	s.ErrorIs(err, model.ErrKeyNotFound)
}

func (s *StorageSuite) TestSetAndGet() {
	s.Require().NoError(s.storage.Set(s.ctx, storage.KeyHighScore, "420"))

	value, err := s.storage.Get(s.ctx, storage.KeyHighScore)
	s.Require().NoError(err)
	s.Equal("420", value)
	s.Equal(1, s.storage.Len())
}

func (s *StorageSuite) TestSetOverwrites() {
	_ = s.storage.Set(s.ctx, storage.KeyHighScore, "100")
	_ = s.storage.Set(s.ctx, storage.KeyHighScore, "300")

	value, err := s.storage.Get(s.ctx, storage.KeyHighScore)
	s.Require().NoError(err)
	s.Equal("300", value)
	s.Equal(1, s.storage.Len())
}

func (s *StorageSuite) TestKeysAreIndependent() {
	_ = s.storage.Set(s.ctx, "a", "1")
	_ = s.storage.Set(s.ctx, "b", "2")

	a, err := s.storage.Get(s.ctx, "a")
	s.Require().NoError(err)
	b, err := s.storage.Get(s.ctx, "b")
	s.Require().NoError(err)
	s.Equal("1", a)
	s.Equal("2", b)
}

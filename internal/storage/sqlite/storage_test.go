package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/blockhive/internal/model"
	"github.com/mcoot/blockhive/internal/storage"
)

type StorageSuite struct {
	suite.Suite
	path    string
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "test.db")
	cfg := DefaultConfig()
	cfg.Path = s.path

	st, err := New(cfg)
	s.Require().NoError(err)
	s.storage = st
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
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
}

func (s *StorageSuite) TestSetOverwrites() {
	s.Require().NoError(s.storage.Set(s.ctx, storage.KeyHighScore, "100"))
	s.Require().NoError(s.storage.Set(s.ctx, storage.KeyHighScore, "300"))

	value, err := s.storage.Get(s.ctx, storage.KeyHighScore)
	s.Require().NoError(err)
	s.Equal("300", value)
}

func (s *StorageSuite) TestValuesSurviveReopen() {
	s.Require().NoError(s.storage.Set(s.ctx, storage.KeyHighScore, "1500"))
	s.Require().NoError(s.storage.Close())

	cfg := DefaultConfig()
	cfg.Path = s.path
	reopened, err := New(cfg)
	s.Require().NoError(err)
	s.storage = reopened

	value, err := s.storage.Get(s.ctx, storage.KeyHighScore)
	s.Require().NoError(err)
	s.Equal("1500", value)
}

func (s *StorageSuite) TestInMemoryDatabase() {
	st, err := New(Config{Path: ":memory:"})
	s.Require().NoError(err)
	defer st.Close()

	s.Require().NoError(st.Set(s.ctx, "k", "v"))
	value, err := st.Get(s.ctx, "k")
	s.Require().NoError(err)
	s.Equal("v", value)
}

package repository

import (
	"context"

	"gorm.io/gorm"
)

// Tx is the set of repositories bound to one transaction. Everything a
// mutation reads or writes goes through the same Tx so the commit is
// all-or-nothing.
type Tx interface {
	Users() UserRepository
	Films() FilmRepository
	Genres() GenreRepository
	UserFilms() UserFilmRepository
	Reviews() ReviewRepository
	Reactions() ReactionRepository
}

// UnitOfWork runs a function inside a transaction. A non-nil error from fn
// rolls back every write made through the Tx.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(tx Tx) error) error
}

// Store is the GORM-backed UnitOfWork.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Do(ctx context.Context, fn func(tx Tx) error) error {
	return s.db.WithContext(ctx).Transaction(func(txdb *gorm.DB) error {
		return fn(gormTx{db: txdb})
	})
}

type gormTx struct {
	db *gorm.DB
}

func (t gormTx) Users() UserRepository         { return NewUserRepository(t.db) }
func (t gormTx) Films() FilmRepository         { return NewFilmRepository(t.db) }
func (t gormTx) Genres() GenreRepository       { return NewGenreRepository(t.db) }
func (t gormTx) UserFilms() UserFilmRepository { return NewUserFilmRepository(t.db) }
func (t gormTx) Reviews() ReviewRepository     { return NewReviewRepository(t.db) }
func (t gormTx) Reactions() ReactionRepository { return NewReactionRepository(t.db) }

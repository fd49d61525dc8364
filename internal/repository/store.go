package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for code that works below the
// repository, such as test fixtures.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Transaction runs fn as one unit of work. The transaction is committed
// only when fn returns nil; any error or panic rolls it back.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

func (s *Store) first(ctx context.Context, dest any, id uuid.UUID) error {
	err := s.db.WithContext(ctx).Where("id = ?", id).First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *Store) exists(ctx context.Context, model any, id uuid.UUID) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching term literally anywhere in
// the column. An empty term yields "%%", which matches every row.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

func nameContains(db *gorm.DB, term string) *gorm.DB {
	return db.Where(`LOWER(name) LIKE LOWER(?) ESCAPE '\'`, containsPattern(term))
}

func wrap(op string, id uuid.UUID, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s %s: %w", op, id, err)
}

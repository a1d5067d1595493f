package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNotFound  = errors.New("store: record not found")
	ErrDuplicate = errors.New("store: duplicate key")
)

// Filter is an AND of column equality checks. A nil value matches NULL.
type Filter map[string]any

//go:generate mockgen -source=gateway.go -destination=mock/gateway_mock.go -package=mock
type Gateway[T any] interface {
	FindAll(ctx context.Context, filter Filter, preload ...string) ([]T, error)
	Find(ctx context.Context, filter Filter, preload ...string) (*T, error)
	FindForUpdate(ctx context.Context, filter Filter) (*T, error)
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, entity *T) error
	Exists(ctx context.Context, filter Filter) (bool, error)
}

type gateway[T any] struct {
	db *gorm.DB
}

// New binds a gateway to db, which is normally a transaction owned by a
// unit of work.
func New[T any](db *gorm.DB) Gateway[T] {
	return &gateway[T]{db: db}
}

func (g *gateway[T]) query(ctx context.Context, filter Filter, preload []string) *gorm.DB {
	q := g.db.WithContext(ctx).Model(new(T))
	if len(filter) > 0 {
		q = q.Where(map[string]any(filter))
	}
	for _, p := range preload {
		q = q.Preload(p)
	}
	return q
}

func (g *gateway[T]) FindAll(ctx context.Context, filter Filter, preload ...string) ([]T, error) {
	var out []T
	if err := g.query(ctx, filter, preload).Find(&out).Error; err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

func (g *gateway[T]) Find(ctx context.Context, filter Filter, preload ...string) (*T, error) {
	var out T
	if err := g.query(ctx, filter, preload).First(&out).Error; err != nil {
		return nil, mapError(err)
	}
	return &out, nil
}

// FindForUpdate locks the matched row until the owning transaction ends.
// SQLite has no row locks; its driver drops the clause and the single
// writer lock serialises instead.
func (g *gateway[T]) FindForUpdate(ctx context.Context, filter Filter) (*T, error) {
	var out T
	err := g.query(ctx, filter, nil).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&out).Error
	if err != nil {
		return nil, mapError(err)
	}
	return &out, nil
}

func (g *gateway[T]) Create(ctx context.Context, entity *T) error {
	return mapError(g.db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error)
}

func (g *gateway[T]) Update(ctx context.Context, entity *T) error {
	return mapError(g.db.WithContext(ctx).Omit(clause.Associations).Save(entity).Error)
}

func (g *gateway[T]) Delete(ctx context.Context, entity *T) error {
	return mapError(g.db.WithContext(ctx).Delete(entity).Error)
}

func (g *gateway[T]) Exists(ctx context.Context, filter Filter) (bool, error) {
	var count int64
	if err := g.query(ctx, filter, nil).Count(&count).Error; err != nil {
		return false, mapError(err)
	}
	return count > 0, nil
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errors.Join(ErrDuplicate, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return errors.Join(ErrDuplicate, err)
	}
	return err
}

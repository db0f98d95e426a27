package memory

import (
	"context"

	ierr "github.com/lumelec/backoffice/internal/errors"
)

// entityRepository adapts an InMemoryStore to the repository shape shared
// by the domain packages, turning a missing id into ierr.ErrNotFound
type entityRepository[T Record] struct {
	store  *InMemoryStore[T]
	entity string
	setID  func(T, int)
}

func (r *entityRepository[T]) List(_ context.Context) ([]T, error) {
	return r.store.List(), nil
}

func (r *entityRepository[T]) Get(_ context.Context, id int) (T, error) {
	item, ok := r.store.Get(id)
	if !ok {
		return item, r.notFound(id, "not found.")
	}
	return item, nil
}

func (r *entityRepository[T]) Create(_ context.Context, item T) error {
	created := r.store.Create(func(id int) T {
		r.setID(item, id)
		return item
	})
	r.setID(item, created.GetID())
	return nil
}

func (r *entityRepository[T]) Update(_ context.Context, id int, fn func(T) error) (T, error) {
	item, ok, err := r.store.Update(id, fn)
	if !ok {
		return item, r.notFound(id, "not found or update failed.")
	}
	if err != nil {
		return item, err
	}
	return item, nil
}

func (r *entityRepository[T]) Delete(_ context.Context, id int) error {
	if !r.store.Delete(id) {
		return r.notFound(id, "not found or deletion failed.")
	}
	return nil
}

// Reset restores the seed data
func (r *entityRepository[T]) Reset() {
	r.store.Reset()
}

func (r *entityRepository[T]) notFound(id int, hint string) error {
	return ierr.NewErrorf("%s %d not found", r.entity, id).
		WithHintf("%s %s", r.entity, hint).
		WithReportableDetails(map[string]any{"id": id}).
		Mark(ierr.ErrNotFound)
}

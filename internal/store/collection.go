// Package store holds the in-memory entity collections behind the chore
// dashboard. Collections hand out cloned records only, so a result slice is a
// snapshot: mutating the store afterwards never changes data already returned.
package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned by Update and Delete when no record has the given
// id. Get reports absence through its bool instead.
var ErrNotFound = errors.New("not found")

// Criteria matches records by exact per-field equality. An empty Criteria
// matches everything. A key naming a field the entity does not have matches
// nothing.
type Criteria map[string]any

// Entity is implemented by the model record types held in a Collection.
type Entity[T any] interface {
	EntityID() string
	// Stamp fills identity fields (id, created_date) left unset by the
	// caller and applies creation defaults.
	Stamp(id string, created time.Time) T
	// Field returns the value of the named snake_case field for filtering
	// and ordering.
	Field(name string) (any, bool)
	Clone() T
}

// Collection is one typed in-memory table. All access is serialized through
// the owning Store's mutex.
type Collection[T Entity[T]] struct {
	store *Store
	name  string
	items []T
	seq   int
}

func newCollection[T Entity[T]](s *Store, name string) *Collection[T] {
	return &Collection[T]{store: s, name: name}
}

// Filter returns all records matching criteria. When orderBy is non-empty the
// result is sorted by that field, descending if prefixed with "-". The sort
// is not stable: the order of records with equal keys is undefined.
func (c *Collection[T]) Filter(ctx context.Context, criteria Criteria, orderBy string) ([]T, error) {
	if err := c.store.wait(ctx); err != nil {
		return nil, fmt.Errorf("filter %s: %w", c.name, err)
	}
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	return c.filterLocked(criteria, orderBy), nil
}

// Get looks up a record by id. A missing id is not an error; it is reported
// through the bool.
func (c *Collection[T]) Get(ctx context.Context, id string) (T, bool, error) {
	var zero T
	if err := c.store.wait(ctx); err != nil {
		return zero, false, fmt.Errorf("get %s %s: %w", c.name, id, err)
	}
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	item, ok := c.getLocked(id)
	return item, ok, nil
}

// Create stores the record, assigning a sequential id and created_date unless
// the caller supplied them, and returns the stored record by value.
func (c *Collection[T]) Create(ctx context.Context, item T) (T, error) {
	var zero T
	if err := c.store.wait(ctx); err != nil {
		return zero, fmt.Errorf("create %s: %w", c.name, err)
	}
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	return c.createLocked(item), nil
}

// Update applies fn to a copy of the stored record and saves the result.
// Returns ErrNotFound when no record has the id.
func (c *Collection[T]) Update(ctx context.Context, id string, fn func(T) T) (T, error) {
	var zero T
	if err := c.store.wait(ctx); err != nil {
		return zero, fmt.Errorf("update %s %s: %w", c.name, id, err)
	}
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	return c.updateLocked(id, fn)
}

// Delete removes the record with the given id, or returns ErrNotFound.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	if err := c.store.wait(ctx); err != nil {
		return fmt.Errorf("delete %s %s: %w", c.name, id, err)
	}
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	return c.deleteLocked(id)
}

// --- locked internals, shared with Tx views ---

func (c *Collection[T]) filterLocked(criteria Criteria, orderBy string) []T {
	matched := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if matches(item, criteria) {
			matched = append(matched, item.Clone())
		}
	}
	if orderBy != "" {
		field, desc := orderBy, false
		if field[0] == '-' {
			field, desc = field[1:], true
		}
		sort.Slice(matched, func(i, j int) bool {
			a, _ := matched[i].Field(field)
			b, _ := matched[j].Field(field)
			if desc {
				return less(b, a)
			}
			return less(a, b)
		})
	}
	return matched
}

func (c *Collection[T]) getLocked(id string) (T, bool) {
	for _, item := range c.items {
		if item.EntityID() == id {
			return item.Clone(), true
		}
	}
	var zero T
	return zero, false
}

func (c *Collection[T]) createLocked(item T) T {
	if id := item.EntityID(); id == "" {
		c.seq++
	} else if n, err := strconv.Atoi(id); err == nil && n > c.seq {
		// Keep the sequence ahead of caller-supplied numeric ids so later
		// generated ids never collide with seeded records.
		c.seq = n
	}
	stored := item.Stamp(strconv.Itoa(c.seq), c.store.now())
	c.items = append(c.items, stored.Clone())
	return stored.Clone()
}

func (c *Collection[T]) updateLocked(id string, fn func(T) T) (T, error) {
	for i, item := range c.items {
		if item.EntityID() == id {
			updated := fn(item.Clone())
			c.items[i] = updated.Clone()
			return updated, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("update %s %s: %w", c.name, id, ErrNotFound)
}

func (c *Collection[T]) deleteLocked(id string) error {
	for i, item := range c.items {
		if item.EntityID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("delete %s %s: %w", c.name, id, ErrNotFound)
}

func (c *Collection[T]) cloneItems() []T {
	cp := make([]T, len(c.items))
	for i, item := range c.items {
		cp[i] = item.Clone()
	}
	return cp
}

func (c *Collection[T]) replaceLocked(items []T) {
	c.items = items
	c.seq = 0
	for _, item := range items {
		if n, err := strconv.Atoi(item.EntityID()); err == nil && n > c.seq {
			c.seq = n
		}
	}
}

func matches[T Entity[T]](item T, criteria Criteria) bool {
	for key, want := range criteria {
		got, ok := item.Field(key)
		if !ok || !equal(got, want) {
			return false
		}
	}
	return true
}

func equal(a, b any) bool {
	switch av := a.(type) {
	case decimal.Decimal:
		bv, ok := b.(decimal.Decimal)
		return ok && av.Equal(bv)
	case time.Time:
		bv, ok := b.(time.Time)
		return ok && av.Equal(bv)
	case string:
		// Enum-typed fields surface as strings; accept either form in
		// criteria (e.g. model.ChoreStatusPending or "pending").
		switch bv := b.(type) {
		case string:
			return av == bv
		case fmt.Stringer:
			return av == bv.String()
		}
		return false
	}
	return a == b
}

// less is the filter comparator. It mirrors the dashboard's simple
// greater-than ordering: values are compared per concrete type and anything
// unrecognized (or a type mismatch) compares as not-less.
func less(a, b any) bool {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av < bv
	case int:
		bv, ok := b.(int)
		return ok && av < bv
	case float64:
		bv, ok := b.(float64)
		return ok && av < bv
	case bool:
		bv, ok := b.(bool)
		return ok && !av && bv
	case time.Time:
		bv, ok := b.(time.Time)
		return ok && av.Before(bv)
	case decimal.Decimal:
		bv, ok := b.(decimal.Decimal)
		return ok && av.Cmp(bv) < 0
	}
	return false
}

package store

import (
	"context"
	"sync"
	"time"

	"github.com/dukerupert/choreboard/internal/model"
)

// Store owns the four entity collections. One mutex serializes every
// mutation, so a read-modify-write across two entities (see Transact) can
// never interleave with another caller's write.
type Store struct {
	mu      sync.Mutex
	latency time.Duration
	now     func() time.Time

	children      *Collection[model.Child]
	chores        *Collection[model.Chore]
	notifications *Collection[model.Notification]
	users         *Collection[model.User]
}

type Option func(*Store)

// WithLatency makes every operation sleep before touching the collections,
// simulating a backing-service round trip. Zero (the default) disables it.
func WithLatency(d time.Duration) Option {
	return func(s *Store) { s.latency = d }
}

// WithClock overrides the timestamp source; tests use this to pin
// created_date and due-date arithmetic.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(opts ...Option) *Store {
	s := &Store{now: func() time.Time { return time.Now().UTC() }}
	for _, opt := range opts {
		opt(s)
	}
	s.children = newCollection[model.Child](s, "children")
	s.chores = newCollection[model.Chore](s, "chores")
	s.notifications = newCollection[model.Notification](s, "notifications")
	s.users = newCollection[model.User](s, "users")
	return s
}

// wait models the service boundary. Operations are not cancellable once they
// reach the collections, but the simulated latency honors ctx.
func (s *Store) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.latency)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) Children() *ChildStore { return &ChildStore{c: s.children} }

func (s *Store) Chores() *ChoreStore { return &ChoreStore{c: s.chores} }

func (s *Store) Notifications() *NotificationStore {
	return &NotificationStore{c: s.notifications}
}

func (s *Store) Users() *UserStore { return &UserStore{c: s.users} }

// Transact runs fn while holding the store lock. If fn returns an error every
// collection is restored to its pre-transaction contents, so a multi-entity
// update either fully applies or leaves no trace.
func (s *Store) Transact(ctx context.Context, fn func(tx *Tx) error) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	children := s.children.cloneItems()
	chores := s.chores.cloneItems()
	notifications := s.notifications.cloneItems()
	users := s.users.cloneItems()
	childSeq, choreSeq := s.children.seq, s.chores.seq
	notifSeq, userSeq := s.notifications.seq, s.users.seq

	if err := fn(&Tx{s: s, now: s.now()}); err != nil {
		s.children.items, s.children.seq = children, childSeq
		s.chores.items, s.chores.seq = chores, choreSeq
		s.notifications.items, s.notifications.seq = notifications, notifSeq
		s.users.items, s.users.seq = users, userSeq
		return err
	}
	return nil
}

// Tx is the view handed to a Transact callback. Its collections operate on
// the live state without re-locking; the transaction boundary provides the
// critical section and the rollback.
type Tx struct {
	s   *Store
	now time.Time
}

// Now is the timestamp the transaction opened with.
func (tx *Tx) Now() time.Time { return tx.now }

func (tx *Tx) Children() TxCollection[model.Child] {
	return TxCollection[model.Child]{c: tx.s.children}
}

func (tx *Tx) Chores() TxCollection[model.Chore] {
	return TxCollection[model.Chore]{c: tx.s.chores}
}

func (tx *Tx) Notifications() TxCollection[model.Notification] {
	return TxCollection[model.Notification]{c: tx.s.notifications}
}

func (tx *Tx) Users() TxCollection[model.User] {
	return TxCollection[model.User]{c: tx.s.users}
}

// TxCollection exposes collection operations inside a transaction.
type TxCollection[T Entity[T]] struct {
	c *Collection[T]
}

func (v TxCollection[T]) Filter(criteria Criteria, orderBy string) []T {
	return v.c.filterLocked(criteria, orderBy)
}

func (v TxCollection[T]) Get(id string) (T, bool) { return v.c.getLocked(id) }

func (v TxCollection[T]) Create(item T) T { return v.c.createLocked(item) }

func (v TxCollection[T]) Update(id string, fn func(T) T) (T, error) {
	return v.c.updateLocked(id, fn)
}

func (v TxCollection[T]) Delete(id string) error { return v.c.deleteLocked(id) }

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dukerupert/choreboard/internal/model"
)

func testClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(WithClock(testClock(time.Date(2025, 7, 26, 12, 0, 0, 0, time.UTC))))
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.Children().Create(ctx, model.Child{Name: "Emma"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := s.Children().Create(ctx, model.Child{Name: "Liam"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if first.ID != "1" || second.ID != "2" {
		t.Errorf("ids = %q, %q, want \"1\", \"2\"", first.ID, second.ID)
	}
	if first.CreatedDate.IsZero() {
		t.Error("expected created_date to be stamped")
	}
	if first.Level != 1 {
		t.Errorf("level = %d, want default 1", first.Level)
	}
}

func TestCreateKeepsCallerSuppliedID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seeded, err := s.Children().Create(ctx, model.Child{ID: "7", Name: "Emma"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if seeded.ID != "7" {
		t.Errorf("id = %q, want %q", seeded.ID, "7")
	}

	// The sequence must jump past seeded ids so the next generated id is new.
	next, err := s.Children().Create(ctx, model.Child{Name: "Liam"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if next.ID != "8" {
		t.Errorf("next id = %q, want %q", next.ID, "8")
	}
}

func TestGetMissingIsNotAnError(t *testing.T) {
	s := newTestStore(t)

	_, ok, err := s.Children().Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Error("expected ok=false for missing id")
	}
}

func TestUpdateMissingReturnsNotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Children().Create(ctx, model.Child{Name: "Emma"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	name := "Nobody"
	_, err := s.Children().Update(ctx, "99", model.ChildPatch{Name: &name})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	// The failed update must not have altered the collection.
	children, err := s.Children().Filter(ctx, nil, "")
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(children) != 1 || children[0].Name != "Emma" {
		t.Errorf("collection changed after failed update: %+v", children)
	}
}

func TestDeleteMissingReturnsNotFound(t *testing.T) {
	s := newTestStore(t)

	if err := s.Chores().Delete(context.Background(), "99"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateAppliesPatchFields(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	child, err := s.Children().Create(ctx, model.Child{Name: "Emma", Age: 8})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	age := 9
	money := decimal.RequireFromString("4.50")
	updated, err := s.Children().Update(ctx, child.ID, model.ChildPatch{Age: &age, WeeklyPocketMoney: &money})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Age != 9 {
		t.Errorf("age = %d, want 9", updated.Age)
	}
	if !updated.WeeklyPocketMoney.Equal(money) {
		t.Errorf("weekly_pocket_money = %s, want 4.50", updated.WeeklyPocketMoney)
	}
	if updated.Name != "Emma" {
		t.Errorf("name = %q, untouched field must survive the patch", updated.Name)
	}
}

func TestFilterByCriteria(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	chores := []model.Chore{
		{Title: "Make Bed", Status: model.ChoreStatusPending, AssignedTo: "1", ParentEmail: "parent@example.com"},
		{Title: "Dishes", Status: model.ChoreStatusCompleted, AssignedTo: "2", ParentEmail: "parent@example.com"},
		{Title: "Sweep", Status: model.ChoreStatusPending, AssignedTo: "2", ParentEmail: "other@example.com"},
		{Title: "Library Entry", IsTemplate: true, ParentEmail: "parent@example.com"},
	}
	for _, c := range chores {
		if _, err := s.Chores().Create(ctx, c); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	pending, err := s.Chores().Filter(ctx, Criteria{"status": "pending"}, "")
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("pending = %d, want 2", len(pending))
	}
	for _, c := range pending {
		if c.Status != model.ChoreStatusPending {
			t.Errorf("status = %q, want pending", c.Status)
		}
	}

	// Enum-typed criteria values work too.
	pending2, err := s.Chores().Filter(ctx, Criteria{"status": model.ChoreStatusPending}, "")
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(pending2) != len(pending) {
		t.Errorf("enum criteria matched %d, string criteria matched %d", len(pending2), len(pending))
	}

	mine, err := s.Chores().Filter(ctx, Criteria{"assigned_to": "2", "parent_email": "parent@example.com"}, "")
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(mine) != 1 || mine[0].Title != "Dishes" {
		t.Errorf("combined criteria = %+v, want just Dishes", mine)
	}

	templates, err := s.Chores().Filter(ctx, Criteria{"is_template": true}, "")
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(templates) != 1 || templates[0].Title != "Library Entry" {
		t.Errorf("boolean criteria = %+v, want just the template", templates)
	}

	unknown, err := s.Chores().Filter(ctx, Criteria{"no_such_field": "x"}, "")
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(unknown) != 0 {
		t.Errorf("unknown field matched %d records, want 0", len(unknown))
	}
}

func TestFilterOrderBy(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"Liam", "Ava", "Emma"} {
		if _, err := s.Children().Create(ctx, model.Child{Name: name}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	asc, err := s.Children().Filter(ctx, nil, "name")
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	wantAsc := []string{"Ava", "Emma", "Liam"}
	for i, name := range wantAsc {
		if asc[i].Name != name {
			t.Errorf("asc[%d] = %q, want %q", i, asc[i].Name, name)
		}
	}

	// The clock advances per create, so created_date descending is the
	// reverse of insertion order.
	desc, err := s.Children().Filter(ctx, nil, "-created_date")
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	wantDesc := []string{"Emma", "Ava", "Liam"}
	for i, name := range wantDesc {
		if desc[i].Name != name {
			t.Errorf("desc[%d] = %q, want %q", i, desc[i].Name, name)
		}
	}
}

func TestFilterReturnsSnapshot(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	child, err := s.Children().Create(ctx, model.Child{Name: "Emma"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	before, err := s.Children().Filter(ctx, nil, "")
	if err != nil {
		t.Fatalf("filter: %v", err)
	}

	name := "Renamed"
	if _, err := s.Children().Update(ctx, child.ID, model.ChildPatch{Name: &name}); err != nil {
		t.Fatalf("update: %v", err)
	}

	if before[0].Name != "Emma" {
		t.Errorf("previously returned snapshot changed: name = %q", before[0].Name)
	}
}

func TestChoreDateCloningIsolation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	due := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	chore, err := s.Chores().Create(ctx, model.Chore{Title: "Make Bed", DueDate: &due})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Mutating the returned record's pointer fields must not leak into the
	// stored copy.
	*chore.DueDate = chore.DueDate.Add(48 * time.Hour)

	got, ok, err := s.Chores().Get(ctx, chore.ID)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if !got.DueDate.Equal(due) {
		t.Errorf("stored due_date = %v, want %v", got.DueDate, due)
	}
}

func TestLatencyHonorsContextCancellation(t *testing.T) {
	s := New(WithLatency(time.Minute))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := s.Children().Filter(ctx, nil, "")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want context deadline", err)
	}
}

func TestTransactRollsBackOnError(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	child, err := s.Children().Create(ctx, model.Child{Name: "Emma", TotalPoints: 50})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	boom := errors.New("boom")
	err = s.Transact(ctx, func(tx *Tx) error {
		if _, err := tx.Children().Update(child.ID, func(c model.Child) model.Child {
			c.TotalPoints = 999
			return c
		}); err != nil {
			return err
		}
		tx.Chores().Create(model.Chore{Title: "Phantom"})
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	got, ok, err := s.Children().Get(ctx, child.ID)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.TotalPoints != 50 {
		t.Errorf("total_points = %d after rollback, want 50", got.TotalPoints)
	}
	chores, err := s.Chores().Filter(ctx, nil, "")
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(chores) != 0 {
		t.Errorf("phantom chore survived rollback: %+v", chores)
	}

	// The rolled-back create must not have consumed an id.
	next, err := s.Chores().Create(ctx, model.Chore{Title: "Real"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if next.ID != "1" {
		t.Errorf("next chore id = %q, want %q", next.ID, "1")
	}
}

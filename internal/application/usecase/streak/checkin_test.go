package streak

import (
	"context"
	"testing"
	"time"

	"github.com/Huskyauto/Weightlossapp/internal/domain/entity"
)

// memStreaks is an in-memory adapter.Document[entity.Streak] fake.
type memStreaks struct {
	doc   entity.Streak
	found bool
	saves int
}

func (m *memStreaks) Load(_ context.Context) (entity.Streak, bool, error) {
	return m.doc, m.found, nil
}

func (m *memStreaks) Save(_ context.Context, doc entity.Streak) error {
	m.doc = doc
	m.found = true
	m.saves++
	return nil
}

func fixedNow(date string) func() time.Time {
	t, _ := time.Parse("2006-01-02", date)
	return func() time.Time { return t.Add(9 * time.Hour) }
}

func TestCheckIn_FirstEverUse(t *testing.T) {
	store := &memStreaks{}
	uc := NewCheckInUseCase(store, fixedNow("2026-08-31"))

	got, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got.Count != 1 || got.LastDate != "2026-08-31" {
		t.Errorf("got %+v, want {1 2026-08-31}", got)
	}
}

func TestCheckIn_ContinuesFromYesterday(t *testing.T) {
	store := &memStreaks{doc: entity.Streak{Count: 5, LastDate: "2026-08-30"}, found: true}
	uc := NewCheckInUseCase(store, fixedNow("2026-08-31"))

	got, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got.Count != 6 || got.LastDate != "2026-08-31" {
		t.Errorf("got %+v, want {6 2026-08-31}", got)
	}
}

func TestCheckIn_ResetsAfterGap(t *testing.T) {
	store := &memStreaks{doc: entity.Streak{Count: 12, LastDate: "2026-08-29"}, found: true}
	uc := NewCheckInUseCase(store, fixedNow("2026-08-31"))

	got, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got.Count != 1 || got.LastDate != "2026-08-31" {
		t.Errorf("got %+v, want {1 2026-08-31}", got)
	}
}

func TestCheckIn_SameDayIsNoOp(t *testing.T) {
	store := &memStreaks{doc: entity.Streak{Count: 3, LastDate: "2026-08-31"}, found: true}
	uc := NewCheckInUseCase(store, fixedNow("2026-08-31"))

	got, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got.Count != 3 || got.LastDate != "2026-08-31" {
		t.Errorf("got %+v, want unchanged {3 2026-08-31}", got)
	}
	if store.saves != 0 {
		t.Errorf("same-day check-in wrote %d times, want 0", store.saves)
	}
}

func TestCheckIn_SecondCallSameDayAfterIncrement(t *testing.T) {
	store := &memStreaks{doc: entity.Streak{Count: 2, LastDate: "2026-08-30"}, found: true}
	uc := NewCheckInUseCase(store, fixedNow("2026-08-31"))

	if _, err := uc.Execute(context.Background()); err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	got, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if got.Count != 3 {
		t.Errorf("second same-day call changed count to %d, want 3", got.Count)
	}
	if store.saves != 1 {
		t.Errorf("expected exactly one save, got %d", store.saves)
	}
}

func TestCheckIn_MonthBoundary(t *testing.T) {
	store := &memStreaks{doc: entity.Streak{Count: 9, LastDate: "2026-08-31"}, found: true}
	uc := NewCheckInUseCase(store, fixedNow("2026-09-01"))

	got, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got.Count != 10 || got.LastDate != "2026-09-01" {
		t.Errorf("got %+v, want {10 2026-09-01}", got)
	}
}

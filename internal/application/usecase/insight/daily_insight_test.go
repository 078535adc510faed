package insight

import (
	"testing"
	"time"
)

func atDay(t *testing.T, date string) func() time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	return func() time.Time { return parsed }
}

func TestExecute_DeterministicForSameDate(t *testing.T) {
	uc := NewDailyInsightUseCase(atDay(t, "2026-03-15"))

	first := uc.Execute()
	second := uc.Execute()

	if *first != *second {
		t.Fatalf("expected identical insight for the same date, got %+v and %+v", first, second)
	}
}

func TestExecute_JanuaryFirstPicksSecondItems(t *testing.T) {
	// Jan 1 is day-of-year 1, so each list serves its index-1 element.
	uc := NewDailyInsightUseCase(atDay(t, "2026-01-01"))

	got := uc.Execute()

	if got.Quote != quotes[1].text || got.Author != quotes[1].author {
		t.Errorf("quote = %q by %q, want %q by %q", got.Quote, got.Author, quotes[1].text, quotes[1].author)
	}
	if got.Tip != tips[1] {
		t.Errorf("tip = %q, want %q", got.Tip, tips[1])
	}
	if got.Focus != focuses[1] {
		t.Errorf("focus = %q, want %q", got.Focus, focuses[1])
	}
}

func TestExecute_ListsRotateIndependently(t *testing.T) {
	// Day 10 wraps the 10-item quote list back to index 0 while the
	// 15-item tip list is still at index 10.
	uc := NewDailyInsightUseCase(atDay(t, "2026-01-10"))

	got := uc.Execute()

	if got.Quote != quotes[0].text {
		t.Errorf("quote = %q, want wrap to %q", got.Quote, quotes[0].text)
	}
	if got.Tip != tips[10] {
		t.Errorf("tip = %q, want %q", got.Tip, tips[10])
	}
}

func TestExecute_ChangesAcrossConsecutiveDays(t *testing.T) {
	day1 := NewDailyInsightUseCase(atDay(t, "2026-05-01")).Execute()
	day2 := NewDailyInsightUseCase(atDay(t, "2026-05-02")).Execute()

	if day1.Quote == day2.Quote && day1.Tip == day2.Tip && day1.Focus == day2.Focus {
		t.Fatal("expected insight content to rotate between consecutive days")
	}
}

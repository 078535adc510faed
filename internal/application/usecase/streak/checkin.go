// Package streak contains the logging-streak state machine.
package streak

import (
	"context"
	"fmt"
	"time"

	"github.com/Huskyauto/Weightlossapp/internal/application/adapter"
	"github.com/Huskyauto/Weightlossapp/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// CheckInUseCase advances the streak once per calendar day:
//   - lastDate == today: no transition, already counted.
//   - lastDate == yesterday: count+1, continuing the streak.
//   - anything else (gap, or first-ever use): reset to 1.
type CheckInUseCase struct {
	streaks adapter.Document[entity.Streak]
	now     func() time.Time
}

// NewCheckInUseCase creates a new CheckInUseCase instance. now is injectable
// for tests and defaults to time.Now.
func NewCheckInUseCase(streaks adapter.Document[entity.Streak], now func() time.Time) *CheckInUseCase {
	if now == nil {
		now = time.Now
	}
	return &CheckInUseCase{streaks: streaks, now: now}
}

// Execute runs one transition and returns the resulting streak.
func (uc *CheckInUseCase) Execute(ctx context.Context) (*entity.Streak, error) {
	current, _, _ := uc.streaks.Load(ctx)

	nowUTC := uc.now().UTC()
	today := nowUTC.Format(dateLayout)
	yesterday := nowUTC.AddDate(0, 0, -1).Format(dateLayout)

	if current.LastDate == today {
		return &current, nil
	}

	next := entity.Streak{Count: 1, LastDate: today}
	if current.LastDate == yesterday {
		next.Count = current.Count + 1
	}

	if err := uc.streaks.Save(ctx, next); err != nil {
		return &next, fmt.Errorf("failed to save streak: %w", err)
	}
	return &next, nil
}

// GetStreakUseCase reads the streak without advancing it.
type GetStreakUseCase struct {
	streaks adapter.Document[entity.Streak]
}

// NewGetStreakUseCase creates a new GetStreakUseCase instance.
func NewGetStreakUseCase(streaks adapter.Document[entity.Streak]) *GetStreakUseCase {
	return &GetStreakUseCase{streaks: streaks}
}

// Execute returns the current streak, zero-valued before the first check-in.
func (uc *GetStreakUseCase) Execute(ctx context.Context) (*entity.Streak, error) {
	current, _, _ := uc.streaks.Load(ctx)
	return &current, nil
}

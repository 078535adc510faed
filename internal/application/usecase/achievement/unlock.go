// Package achievement contains achievement use cases.
package achievement

import (
	"context"
	"fmt"
	"time"

	"github.com/Huskyauto/Weightlossapp/internal/application/adapter"
	"github.com/Huskyauto/Weightlossapp/internal/domain/entity"
	domainerror "github.com/Huskyauto/Weightlossapp/internal/domain/error"
)

// UnlockUseCase inserts an achievement record at most once, stamping
// UnlockedAt on the first insert. A second unlock attempt for an
// already-present id is a no-op.
type UnlockUseCase struct {
	achievements adapter.Collection[entity.Achievement]
	now          func() time.Time
}

// NewUnlockUseCase creates a new UnlockUseCase instance.
func NewUnlockUseCase(achievements adapter.Collection[entity.Achievement], now func() time.Time) *UnlockUseCase {
	if now == nil {
		now = time.Now
	}
	return &UnlockUseCase{achievements: achievements, now: now}
}

// Execute unlocks the catalog achievement with the given id and returns the
// stored record. Unlocking an already-unlocked achievement returns the
// existing record untouched.
func (uc *UnlockUseCase) Execute(ctx context.Context, id string) (*entity.Achievement, error) {
	def, ok := catalogByID(id)
	if !ok {
		return nil, domainerror.NewJournalError(
			domainerror.ErrCodeUnknownAchievement,
			fmt.Sprintf("achievement %q is not in the catalog", id),
			domainerror.ErrUnknownAchievement,
		)
	}

	// A degraded read substitutes an empty slice; unlocking proceeds and
	// re-stamps, which matches treating unreadable storage as never-unlocked.
	unlocked, _ := uc.achievements.List(ctx)
	for _, a := range unlocked {
		if a.ID == id {
			return &a, nil
		}
	}

	def.UnlockedAt = uc.now().UTC().Format(time.RFC3339)
	if err := uc.achievements.Upsert(ctx, def); err != nil {
		return &def, fmt.Errorf("failed to unlock achievement: %w", err)
	}
	return &def, nil
}

// ListUseCase returns the full achievement catalog with UnlockedAt filled in
// from the persisted records.
type ListUseCase struct {
	achievements adapter.Collection[entity.Achievement]
}

// NewListUseCase creates a new ListUseCase instance.
func NewListUseCase(achievements adapter.Collection[entity.Achievement]) *ListUseCase {
	return &ListUseCase{achievements: achievements}
}

// Execute merges the catalog with the unlocked records.
func (uc *ListUseCase) Execute(ctx context.Context) ([]entity.Achievement, error) {
	// Degraded reads substitute an empty slice; the catalog still renders,
	// just with nothing unlocked.
	unlocked, _ := uc.achievements.List(ctx)
	unlockedAt := make(map[string]string, len(unlocked))
	for _, a := range unlocked {
		unlockedAt[a.ID] = a.UnlockedAt
	}

	out := make([]entity.Achievement, len(entity.AchievementCatalog))
	copy(out, entity.AchievementCatalog)
	for i := range out {
		out[i].UnlockedAt = unlockedAt[out[i].ID]
	}
	return out, nil
}

func catalogByID(id string) (entity.Achievement, bool) {
	for _, a := range entity.AchievementCatalog {
		if a.ID == id {
			return a, true
		}
	}
	return entity.Achievement{}, false
}

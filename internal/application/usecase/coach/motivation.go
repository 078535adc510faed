package coach

import (
	"context"
	"log/slog"

	"github.com/Huskyauto/Weightlossapp/internal/application/adapter"
	"github.com/Huskyauto/Weightlossapp/internal/domain/entity"
)

// MotivationUseCase generates a short motivational message.
type MotivationUseCase struct {
	coachService adapter.CoachService
	profiles     adapter.Document[entity.UserProfile]
}

// MotivationInput carries optional free-text context for the message, e.g.
// "I skipped my workout today".
type MotivationInput struct {
	Context string
}

// NewMotivationUseCase creates a new MotivationUseCase instance.
func NewMotivationUseCase(coachService adapter.CoachService, profiles adapter.Document[entity.UserProfile]) *MotivationUseCase {
	return &MotivationUseCase{coachService: coachService, profiles: profiles}
}

// Execute generates the message, falling back to a fixed one on failure.
func (uc *MotivationUseCase) Execute(ctx context.Context, input MotivationInput) *Output {
	if !uc.coachService.IsAvailable() {
		return &Output{Text: fallbackMotivation, Degraded: true}
	}

	var profile *entity.UserProfile
	if loaded, found, err := uc.profiles.Load(ctx); err == nil && found {
		profile = &loaded
	}

	text, err := uc.coachService.Motivation(ctx, profile, input.Context)
	if err != nil {
		slog.Error("coach motivation failed, serving fallback", "error", err)
		return &Output{Text: fallbackMotivation, Degraded: true}
	}
	return &Output{Text: text}
}

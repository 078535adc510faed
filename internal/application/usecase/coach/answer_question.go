package coach

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Huskyauto/Weightlossapp/internal/application/adapter"
	"github.com/Huskyauto/Weightlossapp/internal/domain/entity"
	domainError "github.com/Huskyauto/Weightlossapp/internal/domain/error"
)

// AnswerQuestionUseCase answers a free-text weight loss question.
type AnswerQuestionUseCase struct {
	coachService adapter.CoachService
	profiles     adapter.Document[entity.UserProfile]
}

// AnswerQuestionInput carries the user's question.
type AnswerQuestionInput struct {
	Question string
}

// NewAnswerQuestionUseCase creates a new AnswerQuestionUseCase instance.
func NewAnswerQuestionUseCase(coachService adapter.CoachService, profiles adapter.Document[entity.UserProfile]) *AnswerQuestionUseCase {
	return &AnswerQuestionUseCase{coachService: coachService, profiles: profiles}
}

// Execute answers the question. A blank question is the caller's mistake and
// returns an error; transport failures still degrade to the fallback answer.
func (uc *AnswerQuestionUseCase) Execute(ctx context.Context, input AnswerQuestionInput) (*Output, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return nil, domainError.NewCoachError(domainError.CoachBlankQuestionCode, "question must not be blank", domainError.ErrBlankQuestion)
	}

	if !uc.coachService.IsAvailable() {
		return &Output{Text: fallbackAnswer, Degraded: true}, nil
	}

	var profile *entity.UserProfile
	if loaded, found, err := uc.profiles.Load(ctx); err == nil && found {
		profile = &loaded
	}

	text, err := uc.coachService.AnswerQuestion(ctx, question, profile)
	if err != nil {
		slog.Error("coach answer failed, serving fallback", "error", err)
		return &Output{Text: fallbackAnswer, Degraded: true}, nil
	}
	return &Output{Text: text}, nil
}

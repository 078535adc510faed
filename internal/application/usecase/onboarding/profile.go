package onboarding

import (
	"context"
	"fmt"

	"github.com/Huskyauto/Weightlossapp/internal/application/adapter"
	"github.com/Huskyauto/Weightlossapp/internal/domain/entity"
	domainerror "github.com/Huskyauto/Weightlossapp/internal/domain/error"
)

// GetProfileUseCase retrieves the saved user profile.
type GetProfileUseCase struct {
	profiles adapter.Document[entity.UserProfile]
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(profiles adapter.Document[entity.UserProfile]) *GetProfileUseCase {
	return &GetProfileUseCase{profiles: profiles}
}

// Execute returns the profile, or ErrProfileNotFound before onboarding.
func (uc *GetProfileUseCase) Execute(ctx context.Context) (*entity.UserProfile, error) {
	profile, found, _ := uc.profiles.Load(ctx)
	if !found {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeProfileNotFound,
			"profile not found",
			domainerror.ErrProfileNotFound,
		)
	}
	return &profile, nil
}

// SaveProfileUseCase overwrites the profile wholesale. No field-level merge
// and no re-validation of the onboarding weight invariant.
type SaveProfileUseCase struct {
	profiles adapter.Document[entity.UserProfile]
}

// NewSaveProfileUseCase creates a new SaveProfileUseCase instance.
func NewSaveProfileUseCase(profiles adapter.Document[entity.UserProfile]) *SaveProfileUseCase {
	return &SaveProfileUseCase{profiles: profiles}
}

// Execute replaces the stored profile.
func (uc *SaveProfileUseCase) Execute(ctx context.Context, profile entity.UserProfile) error {
	if err := uc.profiles.Save(ctx, profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// GetStatusUseCase reports whether onboarding has been completed.
type GetStatusUseCase struct {
	onboarding adapter.Document[bool]
}

// NewGetStatusUseCase creates a new GetStatusUseCase instance.
func NewGetStatusUseCase(onboarding adapter.Document[bool]) *GetStatusUseCase {
	return &GetStatusUseCase{onboarding: onboarding}
}

// Execute returns the onboarding flag, defaulting to false when absent or
// unreadable.
func (uc *GetStatusUseCase) Execute(ctx context.Context) bool {
	complete, found, _ := uc.onboarding.Load(ctx)
	return found && complete
}

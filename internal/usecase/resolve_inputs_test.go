package usecase

import (
	"context"
	"testing"

	"github.com/compozy/tagrelease/internal/config"
	"github.com/compozy/tagrelease/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveInputsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	t.Run("Should apply defaults for empty inputs", func(t *testing.T) {
		uc := &ResolveInputsUseCase{ContextRepo: new(mockContextRepository)}
		s, err := uc.Execute(ctx, &config.Inputs{Repo: "acme/widgets", Tag: "v1.0.0"})
		require.NoError(t, err)
		assert.Equal(t, "acme", s.Owner)
		assert.Equal(t, "widgets", s.Repo)
		assert.True(t, s.CreateTag)
		assert.True(t, s.CreateRelease)
		assert.True(t, s.IgnoreExisting)
		assert.False(t, s.Draft)
		assert.False(t, s.PreRelease)
		assert.False(t, s.AutoNotes)
		assert.False(t, s.DryRun)
		assert.Empty(t, s.SHA)
	})
	t.Run("Should use the ambient repository when repo is empty", func(t *testing.T) {
		contextRepo := new(mockContextRepository)
		contextRepo.On("Repository", ctx).Return("octo", "widget", nil)
		uc := &ResolveInputsUseCase{ContextRepo: contextRepo}
		s, err := uc.Execute(ctx, &config.Inputs{Tag: "v1.0.0"})
		require.NoError(t, err)
		assert.Equal(t, "octo", s.Owner)
		assert.Equal(t, "widget", s.Repo)
		contextRepo.AssertExpectations(t)
	})
	t.Run("Should reject an incomplete ambient repository", func(t *testing.T) {
		contextRepo := new(mockContextRepository)
		contextRepo.On("Repository", ctx).Return("octo", "", nil)
		uc := &ResolveInputsUseCase{ContextRepo: contextRepo}
		_, err := uc.Execute(ctx, &config.Inputs{Tag: "v1.0.0"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
	t.Run("Should reject a malformed repo", func(t *testing.T) {
		uc := &ResolveInputsUseCase{ContextRepo: new(mockContextRepository)}
		for _, repo := range []string{"acme", "acme/widgets/extra", " /widgets", "acme/ "} {
			_, err := uc.Execute(ctx, &config.Inputs{Repo: repo, Tag: "v1.0.0"})
			assert.ErrorIs(t, err, domain.ErrInvalidInput, repo)
		}
	})
	t.Run("Should require a tag", func(t *testing.T) {
		uc := &ResolveInputsUseCase{ContextRepo: new(mockContextRepository)}
		_, err := uc.Execute(ctx, &config.Inputs{Repo: "acme/widgets"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Contains(t, err.Error(), "tag")
	})
	t.Run("Should force create-tag when releasing", func(t *testing.T) {
		uc := &ResolveInputsUseCase{ContextRepo: new(mockContextRepository)}
		s, err := uc.Execute(ctx, &config.Inputs{
			Repo: "acme/widgets", Tag: "v1.0.0", CreateTag: "false", CreateRelease: "yes",
		})
		require.NoError(t, err)
		assert.True(t, s.CreateTag)
		assert.True(t, s.CreateRelease)
	})
	t.Run("Should fail when no action is selected", func(t *testing.T) {
		uc := &ResolveInputsUseCase{ContextRepo: new(mockContextRepository)}
		_, err := uc.Execute(ctx, &config.Inputs{
			Repo: "acme/widgets", Tag: "v1.0.0", CreateTag: "no", CreateRelease: "0",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Contains(t, err.Error(), "no action to execute")
	})
	t.Run("Should normalize the sha", func(t *testing.T) {
		uc := &ResolveInputsUseCase{ContextRepo: new(mockContextRepository)}
		s, err := uc.Execute(ctx, &config.Inputs{
			Repo: "acme/widgets", Tag: "v1.0.0", SHA: "0123456789ABCDEF0123456789abcdef01234567",
		})
		require.NoError(t, err)
		assert.Equal(t, testCommitSHA, s.SHA)
	})
	t.Run("Should reject a malformed sha", func(t *testing.T) {
		uc := &ResolveInputsUseCase{ContextRepo: new(mockContextRepository)}
		_, err := uc.Execute(ctx, &config.Inputs{Repo: "acme/widgets", Tag: "v1.0.0", SHA: "abc123"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
	t.Run("Should parse boolean flags", func(t *testing.T) {
		uc := &ResolveInputsUseCase{ContextRepo: new(mockContextRepository)}
		s, err := uc.Execute(ctx, &config.Inputs{
			Repo: "acme/widgets", Tag: "v1.0.0",
			IgnoreExisting: "nope", Draft: "TRUE", PreRelease: "Yes", AutoNotes: "y", DryRun: "1",
		})
		require.NoError(t, err)
		assert.False(t, s.IgnoreExisting)
		assert.True(t, s.Draft)
		assert.True(t, s.PreRelease)
		assert.True(t, s.AutoNotes)
		assert.True(t, s.DryRun)
	})
}

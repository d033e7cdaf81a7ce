package repository

import (
	"context"
	"testing"

	"github.com/compozy/tagrelease/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestGithubNoopRepository(t *testing.T) {
	repo := NewGithubNoopRepository()
	ctx := context.Background()
	t.Run("Should fail every operation with token required", func(t *testing.T) {
		_, err := repo.GetBranch(ctx, "acme", "widgets", "main")
		assert.ErrorIs(t, err, ErrGithubTokenRequired)
		_, err = repo.GetReleaseByTag(ctx, "acme", "widgets", "v1")
		assert.ErrorIs(t, err, ErrGithubTokenRequired)
		_, err = repo.CreateRelease(ctx, "acme", "widgets", domain.ReleaseRequest{})
		assert.ErrorIs(t, err, ErrGithubTokenRequired)
		_, err = repo.GetRef(ctx, "acme", "widgets", "refs/tags/v1")
		assert.ErrorIs(t, err, ErrGithubTokenRequired)
		_, err = repo.CreateTagObject(ctx, "acme", "widgets", domain.TagRequest{})
		assert.ErrorIs(t, err, ErrGithubTokenRequired)
		_, err = repo.CreateRef(ctx, "acme", "widgets", "refs/tags/v1", "abc")
		assert.ErrorIs(t, err, ErrGithubTokenRequired)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
	t.Run("Should mention the environment variable", func(t *testing.T) {
		_, err := repo.GetRef(ctx, "acme", "widgets", "refs/tags/v1")
		assert.Contains(t, err.Error(), "GITHUB_TOKEN")
		assert.Contains(t, err.Error(), "acme/widgets")
	})
}

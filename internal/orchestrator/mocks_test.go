package orchestrator

import (
	"context"
	"net/http"
	"net/url"

	"github.com/compozy/tagrelease/internal/domain"
	"github.com/google/go-github/v74/github"
	"github.com/stretchr/testify/mock"
)

// Mock for GithubRepository
type mockGithubRepository struct {
	mock.Mock
}

func (m *mockGithubRepository) GetBranch(ctx context.Context, owner, repo, branch string) (string, error) {
	args := m.Called(ctx, owner, repo, branch)
	return args.String(0), args.Error(1)
}

func (m *mockGithubRepository) GetReleaseByTag(
	ctx context.Context,
	owner, repo, tag string,
) (*domain.Release, error) {
	args := m.Called(ctx, owner, repo, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Release), args.Error(1)
}

func (m *mockGithubRepository) CreateRelease(
	ctx context.Context,
	owner, repo string,
	req domain.ReleaseRequest,
) (*domain.Release, error) {
	args := m.Called(ctx, owner, repo, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Release), args.Error(1)
}

func (m *mockGithubRepository) GetRef(ctx context.Context, owner, repo, ref string) (*domain.Reference, error) {
	args := m.Called(ctx, owner, repo, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reference), args.Error(1)
}

func (m *mockGithubRepository) CreateTagObject(
	ctx context.Context,
	owner, repo string,
	req domain.TagRequest,
) (string, error) {
	args := m.Called(ctx, owner, repo, req)
	return args.String(0), args.Error(1)
}

func (m *mockGithubRepository) CreateRef(
	ctx context.Context,
	owner, repo, ref, sha string,
) (*domain.Reference, error) {
	args := m.Called(ctx, owner, repo, ref, sha)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reference), args.Error(1)
}

// Mock for ContextRepository
type mockContextRepository struct {
	mock.Mock
}

func (m *mockContextRepository) Repository(ctx context.Context) (string, string, error) {
	args := m.Called(ctx)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *mockContextRepository) SHA(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// Mock for OutputRepository
type mockOutputRepository struct {
	mock.Mock
}

func (m *mockOutputRepository) SetOutputs(ctx context.Context, outputs domain.Outputs) error {
	args := m.Called(ctx, outputs)
	return args.Error(0)
}

func (m *mockOutputRepository) SetFailed(ctx context.Context, err error) error {
	args := m.Called(ctx, err)
	return args.Error(0)
}

func notFoundError() error {
	return &github.ErrorResponse{
		Response: &http.Response{
			StatusCode: http.StatusNotFound,
			Request: &http.Request{
				Method: http.MethodGet,
				URL:    &url.URL{Scheme: "https", Host: "api.github.com", Path: "/repos/acme/widgets"},
			},
		},
		Message: "Not Found",
	}
}

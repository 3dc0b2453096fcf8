package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/naka-gawa/candidate-search/internal/domain"
	"github.com/naka-gawa/candidate-search/internal/gateway"
	"github.com/naka-gawa/candidate-search/internal/storage"
	"github.com/stretchr/testify/mock"
)

// mockFetcher is a mock implementation of the gateway.Fetcher interface.
// It allows us to simulate the behavior of the GitHub gateway without making real API calls.
type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) SearchCandidates(ctx context.Context) ([]domain.Candidate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candidate), args.Error(1)
}

func (m *mockFetcher) FetchCandidate(ctx context.Context, login string) (*domain.Candidate, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

// failingStore accepts reads but rejects every write.
type failingStore struct {
	*storage.MemoryStore
}

func (failingStore) Set(context.Context, string, string) error {
	return errors.New("disk full")
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func summary(login string) domain.Candidate {
	return domain.Candidate{Login: login, HTMLURL: "https://github.com/" + login}
}

func detail(login string) *domain.Candidate {
	return &domain.Candidate{
		Login:     login,
		HTMLURL:   "https://github.com/" + login,
		Name:      "Name of " + login,
		AvatarURL: "https://avatars.example/" + login,
		Detailed:  true,
	}
}

func unresolvable(login string) domain.Candidate {
	c := summary(login)
	c.Unresolvable = true
	return c
}

func summaries(n int) []domain.Candidate {
	out := make([]domain.Candidate, n)
	for i := range out {
		out[i] = summary(fmt.Sprintf("user%d", i))
	}
	return out
}

func notFound(login string) error {
	return fmt.Errorf("%w: %s", gateway.ErrNotFound, login)
}

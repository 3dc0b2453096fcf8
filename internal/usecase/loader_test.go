package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/naka-gawa/candidate-search/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load(t *testing.T) {
	testCases := []struct {
		name        string
		fetched     []domain.Candidate
		fetchErr    error
		expectedLen int
		expectError bool
	}{
		{name: "fewer than the cap", fetched: summaries(3), expectedLen: 3},
		{name: "exactly the cap", fetched: summaries(10), expectedLen: 10},
		{name: "more than the cap is truncated", fetched: summaries(30), expectedLen: 10},
		{name: "empty result", fetched: []domain.Candidate{}, expectedLen: 0},
		{name: "search failure", fetchErr: errors.New("network down"), expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := new(mockFetcher)
			fetcher.On("SearchCandidates", mock.Anything).Return(tc.fetched, tc.fetchErr)
			loader := NewLoader(fetcher, nil, MaxCandidates, ModeLazy, discardLogger())

			got, err := loader.Load(context.Background())

			if tc.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to fetch candidates")
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Len(t, got, tc.expectedLen)
				assert.Equal(t, tc.fetched[:tc.expectedLen], got)
			}
			fetcher.AssertExpectations(t)
		})
	}
}

func TestLoader_Load_Eager(t *testing.T) {
	fetcher := new(mockFetcher)
	fetcher.On("SearchCandidates", mock.Anything).Return(summaries(12), nil)
	for i, c := range summaries(10) {
		if i == 3 {
			fetcher.On("FetchCandidate", mock.Anything, c.Login).Return(nil, notFound(c.Login))
			continue
		}
		fetcher.On("FetchCandidate", mock.Anything, c.Login).Return(detail(c.Login), nil)
	}

	resolver := NewResolver(fetcher, 3, discardLogger())
	loader := NewLoader(fetcher, resolver, 0, ModeEager, discardLogger())

	got, err := loader.Load(context.Background())

	assert.NoError(t, err)
	require.Len(t, got, 10)
	for i, c := range got {
		assert.Equal(t, summaries(10)[i].Login, c.Login)
		if i == 3 {
			assert.True(t, c.Unresolvable)
			assert.False(t, c.Detailed)
			continue
		}
		assert.True(t, c.Detailed)
		assert.False(t, c.Unresolvable)
	}
	// only the kept candidates are looked up
	fetcher.AssertNotCalled(t, "FetchCandidate", mock.Anything, "user10")
	fetcher.AssertNotCalled(t, "FetchCandidate", mock.Anything, "user11")
}

func TestLoader_Load_EagerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	fetcher := new(mockFetcher)
	fetcher.On("SearchCandidates", mock.Anything).Return(summaries(2), nil)
	fetcher.On("FetchCandidate", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { cancel() }).
		Return(nil, context.Canceled)

	loader := NewLoader(fetcher, NewResolver(fetcher, 1, discardLogger()), 0, ModeEager, discardLogger())
	got, err := loader.Load(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, got)
}

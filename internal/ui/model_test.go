package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/naka-gawa/candidate-search/internal/domain"
	"github.com/naka-gawa/candidate-search/internal/gateway"
	"github.com/naka-gawa/candidate-search/internal/storage"
	"github.com/naka-gawa/candidate-search/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

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

func profile(login string) *domain.Candidate {
	return &domain.Candidate{
		Login:    login,
		HTMLURL:  "https://github.com/" + login,
		Name:     "Name " + login,
		Email:    login + "@example.com",
		Company:  "Acme",
		Detailed: true,
	}
}

func newTestModel(t *testing.T, fetcher *mockFetcher) (*Model, storage.Store) {
	t.Helper()
	logger := log.New(io.Discard, "", 0)
	store := storage.NewMemoryStore()
	saved := usecase.NewSavedList(store, "", logger)
	resolver := usecase.NewResolver(fetcher, 1, logger)
	loader := usecase.NewLoader(fetcher, resolver, usecase.MaxCandidates, usecase.ModeLazy, logger)
	m := NewModel(context.Background(), usecase.NewSession(saved, logger), loader, resolver)
	m.Init()
	return m, store
}

// drive feeds msg to the model and keeps running the returned command until
// the model stops asking for work.
func drive(t *testing.T, m *Model, msg tea.Msg) {
	t.Helper()
	for i := 0; msg != nil; i++ {
		require.Less(t, i, 50, "model did not settle")
		_, cmd := m.Update(msg)
		if cmd == nil {
			return
		}
		msg = cmd()
	}
}

func keyPress(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

func TestModel_BrowseAndSave(t *testing.T) {
	fetcher := new(mockFetcher)
	fetcher.On("SearchCandidates", mock.Anything).Return([]domain.Candidate{
		{Login: "alice", HTMLURL: "https://github.com/alice"},
		{Login: "bob", HTMLURL: "https://github.com/bob"},
	}, nil)
	fetcher.On("FetchCandidate", mock.Anything, "alice").Return(profile("alice"), nil)
	fetcher.On("FetchCandidate", mock.Anything, "bob").Return(profile("bob"), nil)
	m, store := newTestModel(t, fetcher)

	assert.Contains(t, m.View(), "Loading candidate...")

	drive(t, m, m.load()())
	view := m.View()
	assert.Contains(t, view, "Name alice")
	assert.Contains(t, view, "mailto:alice@example.com")
	assert.Contains(t, view, "Acme")

	drive(t, m, keyPress("+"))
	assert.Contains(t, m.View(), "Name bob")
	assert.Contains(t, m.View(), "Saved alice.")

	raw, ok, err := store.Get(context.Background(), usecase.SavedCandidatesKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, raw, `"login":"alice"`)

	drive(t, m, keyPress("-"))
	assert.Equal(t, usecase.StateEmpty, m.session.State())
	assert.Contains(t, m.View(), "There are no more candidates available.")
	assert.Len(t, m.session.Saved(), 1)
}

func TestModel_CancelledLookupKeepsCandidate(t *testing.T) {
	fetcher := new(mockFetcher)
	fetcher.On("SearchCandidates", mock.Anything).Return([]domain.Candidate{
		{Login: "alice"}, {Login: "bob"}, {Login: "carol"},
	}, nil)
	fetcher.On("FetchCandidate", mock.Anything, "alice").Return(profile("alice"), nil)
	fetcher.On("FetchCandidate", mock.Anything, mock.Anything).Return(nil, context.Canceled)
	m, _ := newTestModel(t, fetcher)
	drive(t, m, m.load()())
	require.Contains(t, m.View(), "Name alice")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m.ctx = ctx
	drive(t, m, keyPress("-"))

	assert.Equal(t, usecase.StateShowing, m.session.State())
	assert.Equal(t, 1, m.session.Index())
	assert.Len(t, m.session.Candidates(), 3)
	assert.NotContains(t, m.View(), "There are no more candidates available.")
}

func TestModel_LoadError(t *testing.T) {
	fetcher := new(mockFetcher)
	fetcher.On("SearchCandidates", mock.Anything).Return(nil, errors.New("network down"))
	m, _ := newTestModel(t, fetcher)

	drive(t, m, m.load()())

	assert.Contains(t, m.View(), usecase.LoadErrorMessage)
	// actions are ignored without a candidate
	_, cmd := m.Update(keyPress("+"))
	assert.Nil(t, cmd)
	assert.Empty(t, m.session.Saved())
}

func TestModel_NotFoundIsSkippedSilently(t *testing.T) {
	fetcher := new(mockFetcher)
	fetcher.On("SearchCandidates", mock.Anything).Return([]domain.Candidate{{Login: "ghost"}}, nil)
	fetcher.On("FetchCandidate", mock.Anything, "ghost").
		Return(nil, fmt.Errorf("%w: ghost", gateway.ErrNotFound))
	m, _ := newTestModel(t, fetcher)

	drive(t, m, m.load()())

	assert.Equal(t, usecase.StateEmpty, m.session.State())
	assert.NotContains(t, m.View(), usecase.LoadErrorMessage)
}

func TestModel_StaleDetailIsIgnored(t *testing.T) {
	fetcher := new(mockFetcher)
	fetcher.On("SearchCandidates", mock.Anything).Return([]domain.Candidate{
		{Login: "alice"}, {Login: "bob"}, {Login: "carol"},
	}, nil)
	fetcher.On("FetchCandidate", mock.Anything, "alice").Return(profile("alice"), nil)
	fetcher.On("FetchCandidate", mock.Anything, "bob").Return(profile("bob"), nil)
	m, _ := newTestModel(t, fetcher)

	// alice's lookup is in flight while the user rejects her
	_, aliceLookup := m.Update(m.load()())
	require.NotNil(t, aliceLookup)
	_, bobLookup := m.Update(keyPress("-"))
	require.NotNil(t, bobLookup)

	drive(t, m, aliceLookup())
	assert.Equal(t, 1, m.session.Index())
	assert.False(t, m.session.Current().Detailed)

	drive(t, m, bobLookup())
	assert.Equal(t, profile("bob"), m.session.Current())
}

func TestModel_Quit(t *testing.T) {
	fetcher := new(mockFetcher)
	m, _ := newTestModel(t, fetcher)

	_, cmd := m.Update(keyPress("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/naka-gawa/candidate-search/internal/domain"
	"github.com/naka-gawa/candidate-search/internal/gateway"
)

// MaxCandidates is the number of candidates kept from a search.
const MaxCandidates = 10

// Mode selects when candidate details are fetched.
type Mode string

const (
	// ModeLazy fetches each candidate's detail right before it is shown.
	ModeLazy Mode = "lazy"
	// ModeEager fetches every detail at load time, before the first card.
	ModeEager Mode = "eager"
)

// Loader fetches the candidate sequence.
type Loader struct {
	fetcher  gateway.Fetcher
	resolver *Resolver
	limit    int
	mode     Mode
	logger   *log.Logger
}

// NewLoader creates a new Loader keeping at most limit candidates
// (MaxCandidates when limit < 1). In ModeEager the resolver is used to
// fetch all details before Load returns.
func NewLoader(fetcher gateway.Fetcher, resolver *Resolver, limit int, mode Mode, logger *log.Logger) *Loader {
	if limit < 1 {
		limit = MaxCandidates
	}
	if mode == "" {
		mode = ModeLazy
	}
	return &Loader{
		fetcher:  fetcher,
		resolver: resolver,
		limit:    limit,
		mode:     mode,
		logger:   logger,
	}
}

// Load runs the search and returns its first candidates.
func (l *Loader) Load(ctx context.Context) ([]domain.Candidate, error) {
	l.logger.Println("Usecase: loading candidates...")
	fetched, err := l.fetcher.SearchCandidates(ctx)
	if err != nil {
		l.logger.Printf("Error fetching candidates: %v", err)
		return nil, fmt.Errorf("failed to fetch candidates: %w", err)
	}
	candidates := fetched
	if len(candidates) > l.limit {
		candidates = candidates[:l.limit]
	}
	l.logger.Printf("Usecase: kept %d of %d candidates.", len(candidates), len(fetched))

	if l.mode == ModeEager && l.resolver != nil {
		candidates = l.resolver.ResolveAll(ctx, candidates)
		// Lookups cut short by cancellation are not real failures.
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("failed to resolve candidates: %w", err)
		}
	}
	return candidates, nil
}

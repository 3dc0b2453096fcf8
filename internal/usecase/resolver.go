// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/naka-gawa/candidate-search/internal/domain"
	"github.com/naka-gawa/candidate-search/internal/gateway"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the eager detail fan-out when none is configured.
const DefaultConcurrency = 4

// Resolver turns candidate summaries into full profiles. It is the only
// place where detail lookup errors are interpreted: every failure is
// reported as a nil result, which callers treat as "skip this candidate".
type Resolver struct {
	fetcher     gateway.Fetcher
	logger      *log.Logger
	concurrency int
}

// NewResolver creates a new Resolver. concurrency bounds ResolveAll; values
// below 1 fall back to DefaultConcurrency.
func NewResolver(fetcher gateway.Fetcher, concurrency int, logger *log.Logger) *Resolver {
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}
	return &Resolver{
		fetcher:     fetcher,
		logger:      logger,
		concurrency: concurrency,
	}
}

// Resolve fetches the profile of c. It returns nil when c has no login, when
// GitHub does not know the login, or when the lookup fails for any other reason.
func (r *Resolver) Resolve(ctx context.Context, c domain.Candidate) *domain.Candidate {
	if !c.HasLogin() {
		return nil
	}
	detail, err := r.fetcher.FetchCandidate(ctx, c.Login)
	if err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			r.logger.Printf("Candidate %s not found. Skipping...", c.Login)
			return nil
		}
		r.logger.Printf("Error fetching candidate %s: %v", c.Login, err)
		return nil
	}
	return detail
}

// ResolveAll resolves every candidate concurrently and waits for all of
// them. The result has the same length and order as the input; a candidate
// that could not be resolved stays a summary marked Unresolvable.
func (r *Resolver) ResolveAll(ctx context.Context, candidates []domain.Candidate) []domain.Candidate {
	resolved := make([]*domain.Candidate, len(candidates))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(r.concurrency)
	for i, c := range candidates {
		eg.Go(func() error {
			resolved[i] = r.Resolve(egCtx, c)
			return nil
		})
	}
	// Resolve never fails, so Wait only synchronizes.
	_ = eg.Wait()

	result := make([]domain.Candidate, len(candidates))
	count := 0
	for i, c := range resolved {
		if c == nil {
			result[i] = candidates[i]
			result[i].Unresolvable = true
			continue
		}
		result[i] = *c
		count++
	}
	r.logger.Printf("Usecase: resolved %d of %d candidates.", count, len(candidates))
	return result
}

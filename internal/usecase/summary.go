package usecase

import (
	"github.com/montanaflynn/stats"
	"github.com/naka-gawa/candidate-search/internal/domain"
)

// Summarize computes follower and repository figures for the saved candidates.
// Candidates saved before their detail resolved count as zero.
func Summarize(candidates []domain.Candidate) domain.SavedStats {
	result := domain.SavedStats{Count: len(candidates)}
	if len(candidates) == 0 {
		return result
	}

	followers := make(stats.Float64Data, 0, len(candidates))
	repos := make(stats.Float64Data, 0, len(candidates))
	for _, c := range candidates {
		followers = append(followers, float64(c.Followers))
		repos = append(repos, float64(c.PublicRepos))
	}

	// The inputs are non-empty, so these cannot fail.
	result.MeanFollowers, _ = followers.Mean()
	result.MedianFollowers, _ = followers.Median()
	result.MeanPublicRepos, _ = repos.Mean()
	result.MedianPublicRepos, _ = repos.Median()
	return result
}

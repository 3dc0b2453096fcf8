package domain

// SavedStats summarizes the accepted candidates.
type SavedStats struct {
	Count             int     `json:"count"`
	MeanFollowers     float64 `json:"mean_followers"`
	MedianFollowers   float64 `json:"median_followers"`
	MeanPublicRepos   float64 `json:"mean_public_repos"`
	MedianPublicRepos float64 `json:"median_public_repos"`
}

// SavedReport is the output of the saved command.
type SavedReport struct {
	Candidates []Candidate `json:"candidates"`
	Stats      SavedStats  `json:"stats"`
}

// Package domain contains the core data structures and domain logic for the application.
package domain

// Candidate is a GitHub user as seen by the candidate search workflow.
// A search result only carries the summary fields (Login, HTMLURL); the
// remaining fields are filled in once the detail lookup has resolved, which
// is recorded in Detailed. An empty Login stands for a missing handle.
// Unresolvable marks a summary whose detail lookup already failed; it keeps
// its slot in the sequence but is never shown.
type Candidate struct {
	Login       string `json:"login"`
	HTMLURL     string `json:"html_url"`
	Name        string `json:"name,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	Location    string `json:"location,omitempty"`
	Email       string `json:"email,omitempty"`
	Company     string `json:"company,omitempty"`
	Followers   int    `json:"followers,omitempty"`
	PublicRepos int    `json:"public_repos,omitempty"`
	Detailed    bool   `json:"detailed,omitempty"`

	Unresolvable bool `json:"-"`
}

// HasLogin reports whether the candidate carries a handle that can be looked up.
func (c Candidate) HasLogin() bool {
	return c.Login != ""
}

// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"net/http"
	"net/url"

	"github.com/google/go-github/v84/github"
	"github.com/naka-gawa/candidate-search/internal/domain"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"
)

// ErrNotFound is returned by FetchCandidate when GitHub answers 404 for a login.
var ErrNotFound = errors.New("candidate not found")

// API selects the transport used for the candidate search.
type API string

const (
	APIREST    API = "rest"
	APIGraphQL API = "graphql"
)

// maxSince bounds the random start id used when listing users without a query.
const maxSince = 100000000

// defaultGraphQLQuery is used when the GraphQL search runs without a configured query.
const defaultGraphQLQuery = "type:user"

// Fetcher defines the behavior of a gateway for fetching candidates from GitHub.
type Fetcher interface {
	// SearchCandidates returns one page of candidate summaries.
	SearchCandidates(ctx context.Context) ([]domain.Candidate, error)
	// FetchCandidate returns the full profile for login, or an error wrapping
	// ErrNotFound when the user does not exist.
	FetchCandidate(ctx context.Context, login string) (*domain.Candidate, error)
}

// Options configures the GitHub gateway.
type Options struct {
	Token   string
	BaseURL string // GitHub Enterprise root, empty for github.com
	API     API
	Query   string // search query; empty lists users by id instead
	Since   int64  // user id to list from; 0 picks a random start
	PerPage int
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient    *github.Client
	graphqlClient *githubv4.Client
	opts          Options
	logger        *log.Logger
	randomSince   func() int64
}

// searchUsersQuery searches users over GraphQL. Nodes that are not users
// (organizations) decode with an empty login.
type searchUsersQuery struct {
	Search struct {
		Nodes []struct {
			User struct {
				Login string
				URL   string
			} `graphql:"... on User"`
		}
	} `graphql:"search(query: $query, type: USER, first: $first)"`
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
func NewGitHubGateway(opts Options, logger *log.Logger) (Fetcher, error) {
	httpClient := &http.Client{}
	if opts.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token})
		httpClient.Transport = &oauth2.Transport{
			Base:   http.DefaultTransport,
			Source: ts,
		}
	}
	if opts.API == "" {
		opts.API = APIREST
	}

	restClient := github.NewClient(httpClient)
	graphqlClient := githubv4.NewClient(httpClient)
	if opts.BaseURL != "" {
		var err error
		restClient, err = restClient.WithEnterpriseURLs(opts.BaseURL, opts.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to configure enterprise URL: %w", err)
		}
		graphqlURL, err := enterpriseGraphQLURL(opts.BaseURL)
		if err != nil {
			return nil, err
		}
		graphqlClient = githubv4.NewEnterpriseClient(graphqlURL, httpClient)
	}

	return &GitHubGateway{
		restClient:    restClient,
		graphqlClient: graphqlClient,
		opts:          opts,
		logger:        logger,
		randomSince:   func() int64 { return rand.Int64N(maxSince) + 1 },
	}, nil
}

func enterpriseGraphQLURL(baseURL string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse base URL: %w", err)
	}
	u.Path = "/api/graphql"
	return u.String(), nil
}

func (g *GitHubGateway) SearchCandidates(ctx context.Context) ([]domain.Candidate, error) {
	switch {
	case g.opts.API == APIGraphQL:
		return g.searchGraphQL(ctx)
	case g.opts.Query != "":
		return g.searchREST(ctx)
	default:
		return g.listUsers(ctx)
	}
}

func (g *GitHubGateway) listUsers(ctx context.Context) ([]domain.Candidate, error) {
	since := g.opts.Since
	if since == 0 {
		since = g.randomSince()
	}
	g.logger.Printf("Listing GitHub users since id %d...", since)
	opts := &github.UserListOptions{Since: since, PerPage: g.opts.PerPage}
	users, _, err := g.restClient.Users.ListAll(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list users with REST API: %w", err)
	}
	candidates := make([]domain.Candidate, 0, len(users))
	for _, u := range users {
		candidates = append(candidates, toCandidate(u, false))
	}
	g.logger.Printf("Listed %d users.", len(candidates))
	return candidates, nil
}

func (g *GitHubGateway) searchREST(ctx context.Context) ([]domain.Candidate, error) {
	g.logger.Printf("Searching GitHub users with REST API: %s", g.opts.Query)
	opts := &github.SearchOptions{ListOptions: github.ListOptions{PerPage: g.opts.PerPage}}
	result, _, err := g.restClient.Search.Users(ctx, g.opts.Query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search users with REST API: %w", err)
	}
	candidates := make([]domain.Candidate, 0, len(result.Users))
	for _, u := range result.Users {
		candidates = append(candidates, toCandidate(u, false))
	}
	g.logger.Printf("Found %d users.", len(candidates))
	return candidates, nil
}

func (g *GitHubGateway) searchGraphQL(ctx context.Context) ([]domain.Candidate, error) {
	query := g.opts.Query
	if query == "" {
		query = defaultGraphQLQuery
	}
	first := g.opts.PerPage
	if first <= 0 {
		first = 30
	}
	g.logger.Printf("Searching GitHub users with GraphQL API: %s", query)
	variables := map[string]interface{}{
		"query": githubv4.String(query),
		"first": githubv4.Int(first),
	}
	var q searchUsersQuery
	if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
		return nil, fmt.Errorf("failed to execute GraphQL user search: %w", err)
	}
	candidates := make([]domain.Candidate, 0, len(q.Search.Nodes))
	for _, node := range q.Search.Nodes {
		candidates = append(candidates, domain.Candidate{
			Login:   node.User.Login,
			HTMLURL: node.User.URL,
		})
	}
	g.logger.Printf("Found %d search results.", len(candidates))
	return candidates, nil
}

func (g *GitHubGateway) FetchCandidate(ctx context.Context, login string) (*domain.Candidate, error) {
	user, resp, err := g.restClient.Users.Get(ctx, login)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, login)
		}
		return nil, fmt.Errorf("failed to fetch user %s: %w", login, err)
	}
	c := toCandidate(user, true)
	return &c, nil
}

func toCandidate(u *github.User, detailed bool) domain.Candidate {
	return domain.Candidate{
		Login:       u.GetLogin(),
		HTMLURL:     u.GetHTMLURL(),
		Name:        u.GetName(),
		AvatarURL:   u.GetAvatarURL(),
		Location:    u.GetLocation(),
		Email:       u.GetEmail(),
		Company:     u.GetCompany(),
		Followers:   u.GetFollowers(),
		PublicRepos: u.GetPublicRepos(),
		Detailed:    detailed,
	}
}

package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v60/github"
	"github.com/ksysoev/todo-report/pkg/core"
	"golang.org/x/oauth2"
)

// Issue is a GitHub issue opened for a TODO item
type Issue struct {
	Title string
	URL   string
}

// Client handles interaction with the GitHub API
type Client struct {
	client *github.Client
	owner  string
	repo   string
	config core.ActionConfig
}

// NewClient creates a new GitHub client authenticated with token
func NewClient(token, repoFullName string, config core.ActionConfig) (*Client, error) {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(context.Background(), ts)

	return newClient(tc, repoFullName, config)
}

func newClient(httpClient *http.Client, repoFullName string, config core.ActionConfig) (*Client, error) {
	owner, repo, ok := strings.Cut(repoFullName, "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return nil, fmt.Errorf("invalid repository %q, expected owner/repo", repoFullName)
	}

	return &Client{
		client: github.NewClient(httpClient),
		owner:  owner,
		repo:   repo,
		config: config,
	}, nil
}

// CreateIssuesFromTodos opens one issue per TODO item found in path.
// Items whose title matches an already open issue are skipped.
func (c *Client) CreateIssuesFromTodos(ctx context.Context, path string, todos []string) ([]Issue, error) {
	existing, err := c.openIssueTitles(ctx)
	if err != nil {
		return nil, err
	}

	var created []Issue

	for _, todo := range todos {
		title := c.issueTitle(todo)
		if existing[title] {
			continue
		}

		body := fmt.Sprintf("Created from TODO comment in `%s`:\n\n%s", path, todo)
		req := &github.IssueRequest{
			Title: &title,
			Body:  &body,
		}
		if len(c.config.Labels) > 0 {
			req.Labels = &c.config.Labels
		}

		issue, _, err := c.client.Issues.Create(ctx, c.owner, c.repo, req)
		if err != nil {
			return created, fmt.Errorf("failed to create issue %q: %w", title, err)
		}

		existing[title] = true
		created = append(created, Issue{Title: title, URL: issue.GetHTMLURL()})
	}

	return created, nil
}

func (c *Client) issueTitle(todo string) string {
	if c.config.IssueTitlePrefix == "" {
		return todo
	}
	return fmt.Sprintf("%s %s", c.config.IssueTitlePrefix, todo)
}

func (c *Client) openIssueTitles(ctx context.Context) (map[string]bool, error) {
	titles := make(map[string]bool)
	opts := &github.IssueListByRepoOptions{
		State:       "open",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	for {
		issues, resp, err := c.client.Issues.ListByRepo(ctx, c.owner, c.repo, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list issues of %s/%s: %w", c.owner, c.repo, err)
		}

		for _, issue := range issues {
			if issue.IsPullRequest() {
				continue
			}
			titles[issue.GetTitle()] = true
		}

		if resp.NextPage == 0 {
			return titles, nil
		}
		opts.Page = resp.NextPage
	}
}

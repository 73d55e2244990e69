package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ksysoev/todo-report/pkg/core"
	"github.com/ksysoev/todo-report/pkg/github"
	"github.com/sethvargo/go-githubactions"
)

type issuePublisher interface {
	CreateIssuesFromTodos(ctx context.Context, path string, todos []string) ([]github.Issue, error)
}

type publisherFactory func(token, repoFullName string, config core.ActionConfig) (issuePublisher, error)

func newGitHubPublisher(token, repoFullName string, config core.ActionConfig) (issuePublisher, error) {
	client, err := github.NewClient(token, repoFullName, config)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func main() {
	action := githubactions.New()

	if err := run(context.Background(), action, newGitHubPublisher); err != nil {
		action.Fatalf("%v", err)
	}
}

func run(ctx context.Context, action *githubactions.Action, newPublisher publisherFactory) error {
	config, err := loadConfig(action)
	if err != nil {
		return err
	}

	action.Infof("Scanning for TODO comments in %s", config.Path)

	todos, err := core.ReadTodosFromFile(config.Path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", config.Path, err)
	}

	report := core.FormatReport(todos)
	action.Infof("Found %d TODO comments", len(todos))
	action.Infof("%s", report)

	action.SetOutput("count", strconv.Itoa(len(todos)))
	action.SetOutput("report", report)

	if !config.CreateIssues || len(todos) == 0 {
		return nil
	}

	publisher, err := newPublisher(config.GitHubToken, config.Repository, config)
	if err != nil {
		return fmt.Errorf("failed to init GitHub client: %w", err)
	}

	issues, err := publisher.CreateIssuesFromTodos(ctx, config.Path, todos)
	for _, issue := range issues {
		action.Infof("Created issue %q: %s", issue.Title, issue.URL)
	}
	if err != nil {
		return fmt.Errorf("failed to create issues: %w", err)
	}

	action.Infof("Created %d issues from TODO comments", len(issues))

	return nil
}

// loadConfig reads action inputs, falling back to environment variables
func loadConfig(action *githubactions.Action) (core.ActionConfig, error) {
	config := core.ActionConfig{
		Path:             action.GetInput("path"),
		GitHubToken:      action.GetInput("github_token"),
		IssueTitlePrefix: action.GetInput("issue_title_prefix"),
		Repository:       action.Getenv("GITHUB_REPOSITORY"),
		Labels:           splitLabels(action.GetInput("labels")),
	}

	if config.Path == "" {
		return config, errors.New("path input is required")
	}

	if config.GitHubToken == "" {
		config.GitHubToken = action.Getenv("TODO_GITHUB_TOKEN")
	}

	if raw := action.GetInput("create_issues"); raw != "" {
		createIssues, err := strconv.ParseBool(raw)
		if err != nil {
			return config, fmt.Errorf("invalid create_issues input %q: %w", raw, err)
		}
		config.CreateIssues = createIssues
	}

	if config.CreateIssues {
		if config.GitHubToken == "" {
			return config, errors.New("github_token input is required to create issues")
		}
		if config.Repository == "" {
			return config, errors.New("GITHUB_REPOSITORY environment variable is not set")
		}
	}

	return config, nil
}

func splitLabels(raw string) []string {
	var labels []string
	for _, label := range strings.Split(raw, ",") {
		if label = strings.TrimSpace(label); label != "" {
			labels = append(labels, label)
		}
	}
	return labels
}

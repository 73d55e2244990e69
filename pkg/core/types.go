package core

import "regexp"

// DefaultPrefixes are the comment markers recognized when no others are configured.
// Order matters: the first matching prefix wins.
var DefaultPrefixes = []string{"#", "//", "--", ";"}

// DefaultPattern matches a TODO marker anywhere in a comment and captures the rest of the line.
// A "marker" group, when present, must not touch a Unicode letter, digit or underscore.
var DefaultPattern = regexp.MustCompile(`(?i)\b(?P<marker>TODO)\b[:\-]?\s*(?P<text>.*)`)

// Config controls how lines are classified and which TODO markers are extracted
type Config struct {
	Prefixes []string
	Pattern  *regexp.Regexp
}

// DefaultConfig returns the configuration with the fixed prefixes and TODO pattern
func DefaultConfig() Config {
	return Config{
		Prefixes: DefaultPrefixes,
		Pattern:  DefaultPattern,
	}
}

func (c Config) prefixes() []string {
	if len(c.Prefixes) == 0 {
		return DefaultPrefixes
	}
	return c.Prefixes
}

func (c Config) pattern() *regexp.Regexp {
	if c.Pattern == nil {
		return DefaultPattern
	}
	return c.Pattern
}

// ActionConfig represents the GitHub Action configuration
type ActionConfig struct {
	GitHubToken      string
	Repository       string
	Path             string
	IssueTitlePrefix string
	Labels           []string
	CreateIssues     bool
}

package model

import (
	"fmt"
	"strings"
)

// Repo identifies the repository a run operates on.
type Repo struct {
	Owner string
	Name  string
}

// ParseRepo splits an "owner/name" string (the GITHUB_REPOSITORY format)
// into a Repo.
func ParseRepo(fullName string) (Repo, error) {
	parts := strings.SplitN(fullName, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Repo{}, fmt.Errorf("invalid repo name %q: expected owner/name", fullName)
	}
	return Repo{Owner: parts[0], Name: parts[1]}, nil
}

// FullName returns the "owner/name" form.
func (r Repo) FullName() string {
	return r.Owner + "/" + r.Name
}

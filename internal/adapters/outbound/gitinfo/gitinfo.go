package gitinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// GitInfoAdapter implements domain.GitInfo using go-git.
type GitInfoAdapter struct{}

func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

func (g *GitInfoAdapter) IsGitRepo(dir string) bool {
	_, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	return err == nil
}

// CommitHash returns the HEAD commit of the repository containing dir.
func (g *GitInfoAdapter) CommitHash(dir string) (string, error) {
	repo, err := open(dir)
	if err != nil {
		return "", err
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	return head.Hash().String(), nil
}

// Describe returns the short HEAD hash, suffixed with "-dirty" when the
// worktree has uncommitted changes.
func (g *GitInfoAdapter) Describe(dir string) (string, error) {
	hash, err := g.CommitHash(dir)
	if err != nil {
		return "", err
	}
	short := hash[:7]

	repo, err := open(dir)
	if err != nil {
		return "", err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return short, nil // bare repository
	}
	status, err := wt.Status()
	if err != nil {
		return "", fmt.Errorf("reading worktree status: %w", err)
	}
	if !status.IsClean() {
		short += "-dirty"
	}
	return short, nil
}

func open(dir string) (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("opening git repo: %w", err)
	}
	return repo, nil
}

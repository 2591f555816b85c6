package git

import (
	"context"
	"fmt"
)

// CreateBranchRequest specifies the parameters for creating a new branch.
type CreateBranchRequest struct {
	// Name of the branch to create.
	Name string // required

	// Head is the commitish the branch should point at.
	// Defaults to the current HEAD.
	Head string
}

// CreateBranch creates a new branch without checking it out.
// It fails if a branch with the same name already exists.
func (r *Repository) CreateBranch(ctx context.Context, req CreateBranchRequest) error {
	args := []string{"branch", req.Name}
	if req.Head != "" {
		args = append(args, req.Head)
	}

	if err := r.gitCmd(ctx, args...).Run(); err != nil {
		return fmt.Errorf("git branch: %w", err)
	}
	return nil
}

// BranchDeleteOptions configures the behavior of DeleteBranch.
type BranchDeleteOptions struct {
	// Force deletes the branch even if it has not been merged.
	Force bool
}

// DeleteBranch deletes a branch from the repository.
func (r *Repository) DeleteBranch(ctx context.Context, branch string, opts BranchDeleteOptions) error {
	args := []string{"branch"}
	if opts.Force {
		args = append(args, "-D")
	} else {
		args = append(args, "-d")
	}
	args = append(args, branch)

	if err := r.gitCmd(ctx, args...).Run(); err != nil {
		return fmt.Errorf("git branch: %w", err)
	}
	return nil
}

// BranchExists reports whether a local branch with the given name exists.
func (r *Repository) BranchExists(ctx context.Context, branch string) bool {
	_, err := r.revParse(ctx, "refs/heads/"+branch)
	return err == nil
}

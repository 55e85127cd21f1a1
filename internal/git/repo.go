package git

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	apperrors "github.com/mikanfactory/changed/internal/errors"
)

// ResolveRoot runs `git rev-parse --show-toplevel` from startDir and returns
// the absolute working tree root. A non-zero exit means startDir is not in a
// repository, as does a startDir that no longer exists; a missing git binary
// is reported as ErrToolNotFound.
func ResolveRoot(ctx context.Context, runner CommandRunner, startDir string) (string, error) {
	out, err := runner.Run(ctx, startDir, "rev-parse", "--show-toplevel")
	if err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("%w: %s", apperrors.ErrNotARepository, startDir)
		}
		// git never started because startDir is gone
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) && filepath.Clean(pathErr.Path) == filepath.Clean(startDir) {
			return "", fmt.Errorf("%w: %s: %v", apperrors.ErrNotARepository, startDir, pathErr.Err)
		}
		return "", err
	}

	root := strings.TrimSpace(out)
	if root == "" {
		// bare repositories and the .git dir itself print nothing
		return "", fmt.Errorf("%w: %s", apperrors.ErrNotARepository, startDir)
	}
	return filepath.Clean(root), nil
}

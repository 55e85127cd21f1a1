package git

import (
	"context"
	"strings"

	apperrors "github.com/mikanfactory/changed/internal/errors"
)

// StatusArgs returns the arguments for a script-friendly status query.
// untrackedMode is one of "all", "normal" or "no"; empty uses git's default.
func StatusArgs(untrackedMode string) []string {
	args := []string{"-c", "color.status=false", "--no-pager", "status", "--porcelain"}
	if untrackedMode != "" {
		args = append(args, "--untracked-files="+untrackedMode)
	}
	return args
}

// StatusLines runs `git status --porcelain` in root and returns the raw lines.
// A clean working tree yields ErrNoChangedFiles.
func StatusLines(ctx context.Context, runner CommandRunner, root, untrackedMode string) ([]string, error) {
	out, err := runner.Run(ctx, root, StatusArgs(untrackedMode)...)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(out) == "" {
		return nil, apperrors.ErrNoChangedFiles
	}

	return strings.Split(strings.TrimRight(out, "\n"), "\n"), nil
}

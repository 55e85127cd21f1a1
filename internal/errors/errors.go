// Package errors defines the error kinds reported to the user as notices.
package errors

import "errors"

// ErrNotARepository is returned when the starting directory is not inside a git working tree.
var ErrNotARepository = errors.New("not a git repository")

// ErrToolNotFound is returned when the git executable cannot be found.
var ErrToolNotFound = errors.New("git not found")

// ErrToolInvocationFailed is returned when git ran but failed or did not complete.
var ErrToolInvocationFailed = errors.New("git invocation failed")

// ErrNoChangedFiles is returned when the working tree has no changes.
var ErrNoChangedFiles = errors.New("no changed files")

// ErrEmptyCategory is returned when the selected filter has no files.
var ErrEmptyCategory = errors.New("no files in this category")

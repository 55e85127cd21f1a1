// Package changeset turns `git status --porcelain` lines into staged,
// unstaged and combined path lists.
//
// A record is staged when its index column is neither ' ' nor '?'. It is
// unstaged when its worktree column is not ' ', or when the code is "??".
// One path can be in both lists; the combined list holds it once.
package changeset

import (
	"slices"
	"strconv"
	"strings"

	"github.com/mikanfactory/changed/internal/model"
)

const untrackedMarker = '?'

// ParseLine parses a single porcelain line: two status columns, a space, then
// the path. Lines shorter than three bytes are rejected.
func ParseLine(line string) (model.ChangeRecord, bool) {
	if len(line) < 3 {
		return model.ChangeRecord{}, false
	}

	rec := model.ChangeRecord{
		IndexStatus:    line[0],
		WorktreeStatus: line[1],
	}

	path := strings.TrimSpace(line[3:])
	if rec.IndexStatus == 'R' || rec.IndexStatus == 'C' {
		if from, to, ok := splitRename(path); ok {
			rec.OrigPath = unquote(from)
			path = to
		}
	}
	rec.Path = unquote(path)

	if rec.Path == "" {
		return model.ChangeRecord{}, false
	}
	return rec, true
}

// splitRename splits `old -> new`, honouring quotes around either side.
func splitRename(path string) (string, string, bool) {
	if strings.HasPrefix(path, `"`) {
		// the quoted source may itself contain " -> "
		for i := 1; i < len(path); i++ {
			if path[i] == '\\' {
				i++
				continue
			}
			if path[i] == '"' {
				rest := path[i+1:]
				if strings.HasPrefix(rest, " -> ") {
					return path[:i+1], rest[len(" -> "):], true
				}
				return "", "", false
			}
		}
		return "", "", false
	}
	from, to, ok := strings.Cut(path, " -> ")
	return from, to, ok
}

// unquote strips the double quotes git adds around paths with special
// characters and decodes its C-style escapes.
func unquote(path string) string {
	if len(path) < 2 || !strings.HasPrefix(path, `"`) || !strings.HasSuffix(path, `"`) {
		return path
	}
	if s, err := strconv.Unquote(path); err == nil {
		return s
	}
	return path[1 : len(path)-1]
}

// Parse parses every line, dropping malformed ones.
func Parse(lines []string) []model.ChangeRecord {
	records := make([]model.ChangeRecord, 0, len(lines))
	for _, line := range lines {
		if rec, ok := ParseLine(line); ok {
			records = append(records, rec)
		}
	}
	return records
}

// IsStaged reports whether the record has changes in the index.
func IsStaged(r model.ChangeRecord) bool {
	return r.IndexStatus != ' ' && r.IndexStatus != untrackedMarker
}

// IsUnstaged reports whether the record has working tree changes or is untracked.
func IsUnstaged(r model.ChangeRecord) bool {
	return r.WorktreeStatus != ' ' || isUntracked(r)
}

func isUntracked(r model.ChangeRecord) bool {
	return r.IndexStatus == untrackedMarker && r.WorktreeStatus == untrackedMarker
}

// Set holds the classified, sorted path lists for one status snapshot.
type Set struct {
	records  []model.ChangeRecord
	all      []string
	staged   []string
	unstaged []string
}

// Classify sorts records by path and splits them into the three lists.
func Classify(records []model.ChangeRecord) Set {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b model.ChangeRecord) int {
		return strings.Compare(a.Path, b.Path)
	})

	var s Set
	s.records = sorted
	paths := make([]string, 0, len(sorted))
	for _, r := range sorted {
		paths = append(paths, r.Path)
		if IsStaged(r) {
			s.staged = append(s.staged, r.Path)
		}
		if IsUnstaged(r) {
			s.unstaged = append(s.unstaged, r.Path)
		}
	}
	s.all = Dedup(paths)
	return s
}

// Dedup keeps the first occurrence of each path, preserving order.
func Dedup(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// Paths returns the ordered path list for kind. Callers must not modify it.
func (s Set) Paths(kind model.FilterKind) []string {
	switch kind {
	case model.FilterStaged:
		return s.staged
	case model.FilterUnstaged:
		return s.unstaged
	}
	return s.all
}

// Count returns the number of entries shown for kind.
func (s Set) Count(kind model.FilterKind) int {
	return len(s.Paths(kind))
}

// Empty reports whether the snapshot has no records at all.
func (s Set) Empty() bool {
	return len(s.records) == 0
}

// Code returns the status code of the first record for path, or "" if unknown.
func (s Set) Code(path string) string {
	i, ok := slices.BinarySearchFunc(s.records, path, func(r model.ChangeRecord, p string) int {
		return strings.Compare(r.Path, p)
	})
	if !ok {
		return ""
	}
	return s.records[i].Code()
}

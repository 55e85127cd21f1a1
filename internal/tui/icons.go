package tui

import (
	"io/fs"
	"path/filepath"
	"time"

	devicons "github.com/epilande/go-devicons"
)

// pathInfo is the minimal fs.FileInfo devicons needs to pick a glyph.
type pathInfo struct {
	name string
}

func (i pathInfo) Name() string       { return i.name }
func (i pathInfo) Size() int64        { return 0 }
func (i pathInfo) Mode() fs.FileMode  { return 0 }
func (i pathInfo) ModTime() time.Time { return time.Time{} }
func (i pathInfo) IsDir() bool        { return false }
func (i pathInfo) Sys() any           { return nil }

// fileIcon returns the glyph for path followed by a space, or "".
func fileIcon(path string) string {
	name := filepath.Base(path)
	if name == "" || name == "." || name == "/" {
		return ""
	}
	style := devicons.IconForInfo(pathInfo{name: name})
	if style.Icon == "" {
		return ""
	}
	return style.Icon + " "
}

// Package subtitle translates subtitle files cue by cue through an
// injectable translate function, preserving timing and layout.
package subtitle

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/asticode/go-astisub"
)

// SupportedExtensions lists the formats the file writer knows how to emit.
var SupportedExtensions = map[string]struct{}{
	".srt":  {},
	".vtt":  {},
	".ssa":  {},
	".ass":  {},
	".ttml": {},
	".stl":  {},
}

// TranslateFunc maps one cue line to its translation.
type TranslateFunc func(ctx context.Context, text string) (string, error)

// File wraps a parsed subtitle document.
type File struct {
	subs *astisub.Subtitles
}

// Open reads a subtitle file, detecting the format from the extension.
func Open(path string) (*File, error) {
	subs, err := astisub.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open subtitle file %s: %w", path, err)
	}
	if len(subs.Items) == 0 {
		return nil, fmt.Errorf("no subtitles found in %s", path)
	}
	return &File{subs: subs}, nil
}

// CueCount returns the number of subtitle items.
func (f *File) CueCount() int {
	return len(f.subs.Items)
}

// Translate applies fn to every non-blank line item in order, replacing the
// text in place. It stops at the first error so a cancelled context aborts
// promptly.
func (f *File) Translate(ctx context.Context, fn TranslateFunc) error {
	for _, item := range f.subs.Items {
		for li := range item.Lines {
			for ii := range item.Lines[li].Items {
				text := item.Lines[li].Items[ii].Text
				if strings.TrimSpace(text) == "" {
					continue
				}
				translated, err := fn(ctx, text)
				if err != nil {
					return err
				}
				item.Lines[li].Items[ii].Text = translated
			}
		}
	}
	return nil
}

// Write emits the document in the format implied by the path extension.
func (f *File) Write(path string) error {
	ext := strings.ToLower(filepath.Ext(path))

	var buf bytes.Buffer
	var err error
	switch ext {
	case ".vtt":
		err = f.subs.WriteToWebVTT(&buf)
	case ".ssa", ".ass":
		err = f.subs.WriteToSSA(&buf)
	case ".ttml":
		err = f.subs.WriteToTTML(&buf)
	case ".stl":
		err = f.subs.WriteToSTL(&buf)
	default:
		err = f.subs.WriteToSRT(&buf)
	}
	if err != nil {
		return fmt.Errorf("failed to encode subtitles: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write subtitle file %s: %w", path, err)
	}
	return nil
}

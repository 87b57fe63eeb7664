package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSubtitle_UnsupportedExtensions(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		output string
		want   string
	}{
		{"input txt", "movie.txt", "movie.srt", `unsupported input extension ".txt"`},
		{"input no extension", "movie", "movie.srt", `unsupported input extension "(none)"`},
		{"output docx", "movie.srt", "movie.docx", `unsupported output extension ".docx"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, "subtitle", tt.input, tt.output, "--model", "en-fr")
			if err == nil {
				t.Fatal("expected extension error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want substring %q", err, tt.want)
			}
		})
	}
}

func TestSubtitle_RequiresModelOrPair(t *testing.T) {
	_, err := executeCommand(t, "subtitle", "in.srt", "out.srt")
	if err == nil || !strings.Contains(err.Error(), "either --model or both --source and --target") {
		t.Fatalf("expected model/pair error, got: %v", err)
	}

	_, err = executeCommand(t, "subtitle", "in.srt", "out.srt", "--source", "en")
	if err == nil || !strings.Contains(err.Error(), "either --model or both --source and --target") {
		t.Fatalf("expected model/pair error with only --source, got: %v", err)
	}
}

func TestSubtitle_RefusesOverwriteWithoutYes(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "out.srt")
	if err := os.WriteFile(output, []byte("existing"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := executeCommand(t, "subtitle", "in.srt", output, "--model", "en-fr")
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected overwrite refusal, got: %v", err)
	}
}

func TestSubtitle_ArgCount(t *testing.T) {
	if _, err := executeCommand(t, "subtitle", "only-one.srt"); err == nil {
		t.Fatal("expected error with a single argument")
	}
}

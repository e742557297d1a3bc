package docfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofrs/flock"
)

const ignorePrefix = "**Last updated:**"

func TestWriteIfChangedNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")

	written, err := WriteIfChanged(path, "# Doc\n\n**Last updated:** now\n", ignorePrefix)
	if err != nil {
		t.Fatalf("WriteIfChanged() error: %v", err)
	}
	if !written {
		t.Fatalf("WriteIfChanged() = false, want true for a new file")
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}
	if string(got) != "# Doc\n\n**Last updated:** now\n" {
		t.Errorf("file content = %q", got)
	}
}

func TestWriteIfChangedTimestampOnlyDiff(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")
	previous := "# Doc\n\n**Last updated:** 2026-01-01 00:00 UTC\n\n| A |\n"
	if err := os.WriteFile(path, []byte(previous), 0o644); err != nil {
		t.Fatalf("seeding file: %v", err)
	}

	next := "# Doc\n\n**Last updated:** 2026-02-02 12:00 UTC\n\n| A |\n"
	written, err := WriteIfChanged(path, next, ignorePrefix)
	if err != nil {
		t.Fatalf("WriteIfChanged() error: %v", err)
	}
	if written {
		t.Fatalf("WriteIfChanged() = true, want false for timestamp-only diff")
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}
	if string(got) != previous {
		t.Errorf("file was rewritten, got %q", got)
	}
}

func TestWriteIfChangedContentDiff(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")
	if err := os.WriteFile(path, []byte("# Doc\n\n| A |\n"), 0o644); err != nil {
		t.Fatalf("seeding file: %v", err)
	}

	next := "# Doc\n\n| A |\n| B |\n"
	written, err := WriteIfChanged(path, next, ignorePrefix)
	if err != nil {
		t.Fatalf("WriteIfChanged() error: %v", err)
	}
	if !written {
		t.Fatalf("WriteIfChanged() = false, want true for content diff")
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}
	if string(got) != next {
		t.Errorf("file content = %q, want %q", got, next)
	}
}

func TestWriteIfChangedLocked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")

	holder := flock.New(path + ".lock")
	locked, err := holder.TryLock()
	if err != nil || !locked {
		t.Fatalf("acquiring holder lock: locked=%t err=%v", locked, err)
	}
	defer holder.Unlock()

	_, err = WriteIfChanged(path, "# Doc\n", ignorePrefix)
	if !errors.Is(err, ErrLocked) {
		t.Fatalf("WriteIfChanged() error = %v, want ErrLocked", err)
	}
	if _, statErr := os.Stat(path); !errors.Is(statErr, os.ErrNotExist) {
		t.Errorf("document was written despite held lock")
	}
}

func TestStripLines(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		prefix string
		want   string
	}{
		{
			name:   "drops prefixed line",
			text:   "a\n**Last updated:** x\nb\n",
			prefix: "**Last updated:**",
			want:   "a\nb\n",
		},
		{
			name:   "empty prefix keeps text",
			text:   "a\nb\n",
			prefix: "",
			want:   "a\nb\n",
		},
		{
			name:   "no match keeps text",
			text:   "a\nb",
			prefix: "**Last updated:**",
			want:   "a\nb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripLines(tt.text, tt.prefix); got != tt.want {
				t.Errorf("stripLines() = %q, want %q", got, tt.want)
			}
		})
	}
}

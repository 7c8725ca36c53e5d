package journal

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestKindForFile(t *testing.T) {
	cases := []struct {
		path string
		want MediaKind
	}{
		{"photo.PNG", KindImage},
		{"pic.jpg", KindImage},
		{"pic.jpeg", KindImage},
		{"clip.mp4", KindVideo},
		{"clip.MOV", KindVideo},
		{"voice.mp3", KindAudio},
		{"voice.wav", KindAudio},
	}
	for _, c := range cases {
		got, err := KindForFile(c.path)
		if err != nil {
			t.Fatalf("%s: %v", c.path, err)
		}
		if got != c.want {
			t.Fatalf("%s: expected %s, got %s", c.path, c.want, got)
		}
	}

	if _, err := KindForFile("notes.txt"); !errors.Is(err, ErrUnsupportedMedia) {
		t.Fatalf("expected ErrUnsupportedMedia, got %v", err)
	}
}

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestStageMediaFileContentAddressed(t *testing.T) {
	srcA := t.TempDir()
	srcB := t.TempDir()
	mediaDir := t.TempDir()

	// Same filename, different content: both survive under distinct names.
	a := writeTemp(t, srcA, "date.jpg", "first photo")
	b := writeTemp(t, srcB, "date.jpg", "second photo")

	fa, err := StageMediaFile(a, mediaDir)
	if err != nil {
		t.Fatalf("stage a: %v", err)
	}
	fb, err := StageMediaFile(b, mediaDir)
	if err != nil {
		t.Fatalf("stage b: %v", err)
	}
	if fa.Path == fb.Path {
		t.Fatalf("same-name uploads clobbered each other: %s", fa.Path)
	}
	if fa.Kind != KindImage || fb.Kind != KindImage {
		t.Fatalf("unexpected kinds: %s, %s", fa.Kind, fb.Kind)
	}
	for _, p := range []string{fa.Path, fb.Path} {
		if _, err := os.Stat(p); err != nil {
			t.Fatalf("stored file missing: %v", err)
		}
		if !strings.HasSuffix(p, ".jpg") {
			t.Fatalf("extension lost: %s", p)
		}
	}

	got, err := os.ReadFile(fa.Path)
	if err != nil {
		t.Fatalf("read stored: %v", err)
	}
	if string(got) != "first photo" {
		t.Fatalf("stored content mismatch: %q", got)
	}

	// Identical content dedupes onto one stored file.
	a2 := writeTemp(t, srcB, "other-name.jpg", "first photo")
	fa2, err := StageMediaFile(a2, mediaDir)
	if err != nil {
		t.Fatalf("stage duplicate content: %v", err)
	}
	if fa2.Path != fa.Path {
		t.Fatalf("expected identical content to share a path: %s vs %s", fa2.Path, fa.Path)
	}
}

func TestStageMediaFilesCleansUpOnFailure(t *testing.T) {
	src := t.TempDir()
	mediaDir := t.TempDir()

	good := writeTemp(t, src, "ok.png", "pixels")
	bad := writeTemp(t, src, "nope.txt", "not media")

	_, err := StageMediaFiles([]string{good, bad}, mediaDir)
	if !errors.Is(err, ErrUnsupportedMedia) {
		t.Fatalf("expected ErrUnsupportedMedia, got %v", err)
	}

	left, err := os.ReadDir(mediaDir)
	if err != nil {
		t.Fatalf("read media dir: %v", err)
	}
	if len(left) != 0 {
		t.Fatalf("expected staged files removed after failure, found %d", len(left))
	}
}

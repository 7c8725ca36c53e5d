package journal

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MediaFile is an upload already staged into the media directory, ready to
// be referenced by an entry row.
type MediaFile struct {
	Path string
	Kind MediaKind
}

// StageMediaFile copies an upload into mediaDir under a content-addressed
// name (sha256 prefix plus the original extension). Two uploads that share a
// filename can no longer overwrite each other; identical content lands on
// the same stored file, which is harmless.
func StageMediaFile(srcPath, mediaDir string) (MediaFile, error) {
	kind, err := KindForFile(srcPath)
	if err != nil {
		return MediaFile{}, err
	}
	if err := os.MkdirAll(mediaDir, 0o755); err != nil {
		return MediaFile{}, fmt.Errorf("create media directory: %w", err)
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return MediaFile{}, fmt.Errorf("open media file: %w", err)
	}
	defer src.Close()

	// Write through a uniquely named temp file so a failed copy never
	// leaves a half-written stored file behind.
	tmpPath := filepath.Join(mediaDir, ".staging-"+uuid.NewString())
	tmp, err := os.Create(tmpPath)
	if err != nil {
		return MediaFile{}, fmt.Errorf("create staging file: %w", err)
	}

	h := sha256.New()
	if _, err := io.Copy(io.MultiWriter(tmp, h), src); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return MediaFile{}, fmt.Errorf("copy media file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return MediaFile{}, fmt.Errorf("close staging file: %w", err)
	}

	name := hex.EncodeToString(h.Sum(nil))[:16] + strings.ToLower(filepath.Ext(srcPath))
	destPath := filepath.Join(mediaDir, name)
	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return MediaFile{}, fmt.Errorf("store media file: %w", err)
	}
	return MediaFile{Path: destPath, Kind: kind}, nil
}

// StageMediaFiles stages every source path, removing anything already staged
// if a later one fails.
func StageMediaFiles(srcPaths []string, mediaDir string) ([]MediaFile, error) {
	staged := make([]MediaFile, 0, len(srcPaths))
	for _, p := range srcPaths {
		mf, err := StageMediaFile(p, mediaDir)
		if err != nil {
			DiscardStaged(staged)
			return nil, err
		}
		staged = append(staged, mf)
	}
	return staged, nil
}

// DiscardStaged removes staged files after a failed entry insert. Removal
// errors are ignored; the files are orphans at worst.
func DiscardStaged(files []MediaFile) {
	for _, f := range files {
		_ = os.Remove(f.Path)
	}
}

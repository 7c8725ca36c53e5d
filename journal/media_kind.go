package journal

import (
	"fmt"
	"path/filepath"
	"strings"
)

type MediaKind string

const (
	KindImage MediaKind = "image"
	KindVideo MediaKind = "video"
	KindAudio MediaKind = "audio"
)

// KindForFile derives the media kind from the file extension, covering the
// upload types the app accepts.
func KindForFile(path string) (MediaKind, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png", ".jpg", ".jpeg":
		return KindImage, nil
	case ".mp4", ".mov":
		return KindVideo, nil
	case ".mp3", ".wav":
		return KindAudio, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedMedia, ext)
	}
}

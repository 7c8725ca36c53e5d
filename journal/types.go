// Package journal owns the persisted date log: entries with media
// attachments, the tag vocabulary, and the singleton user profile.
package journal

import "strings"

// TagDelimiter joins an entry's tag labels into its single tags column.
// Labels must not contain the delimiter themselves; this is not validated,
// matching the original data shape.
const TagDelimiter = ", "

type Entry struct {
	ID          int64
	Date        string
	PartnerName string
	SocialMedia string
	Notes       string
	Tags        string
	CreatedAt   int64
}

// TagList splits the stored tags column back into labels.
func (e Entry) TagList() []string {
	return SplitTags(e.Tags)
}

// NewEntry carries the caller-supplied fields of a date being logged.
type NewEntry struct {
	Date        string
	PartnerName string
	SocialMedia string
	Notes       string
	Tags        []string
	Media       []MediaFile
}

// Attachment is one stored media file of an entry.
type Attachment struct {
	Path string
	Kind MediaKind
}

// Profile is the singleton user profile. All fields are optional; the zero
// value means "no profile saved yet".
type Profile struct {
	Name      string
	Age       int
	Gender    string
	Goals     string
	Interests string
}

func JoinTags(tags []string) string {
	return strings.Join(tags, TagDelimiter)
}

func SplitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, TagDelimiter)
}

package journal

import "context"

type Store interface {
	AddEntry(ctx context.Context, in NewEntry) (int64, error)
	ListEntries(ctx context.Context) ([]Entry, error)
	MediaFor(ctx context.Context, entryID int64) ([]Attachment, error)
	SearchEntries(ctx context.Context, query string) ([]Entry, error)

	ListTags(ctx context.Context) ([]string, error)
	AddTag(ctx context.Context, label string) error
	DeleteTag(ctx context.Context, label string) error

	GetProfile(ctx context.Context) (Profile, error)
	PutProfile(ctx context.Context, p Profile) error
}

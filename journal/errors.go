package journal

import "errors"

var (
	// ErrPartnerRequired rejects an entry before anything is written.
	ErrPartnerRequired = errors.New("partner name is required")

	// ErrDuplicateTag reports a case-sensitive exact duplicate in the
	// tag catalog; the catalog is left unchanged.
	ErrDuplicateTag = errors.New("tag already exists")

	// ErrUnsupportedMedia reports a file whose extension maps to no
	// known media kind.
	ErrUnsupportedMedia = errors.New("unsupported media file type")
)

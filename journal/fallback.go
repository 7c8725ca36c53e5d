package journal

import (
	"fmt"
	"strings"
)

// NotFoundReply is returned by the keyword fallback when nothing matched.
const NotFoundReply = "I couldn't find any specific records matching that with simple search. Configure an AI key for deeper insights!"

// FallbackReply renders search matches into an assistant-style answer. It is
// the whole non-AI path: plain substring matches, no ranking.
func FallbackReply(matches []Entry) string {
	if len(matches) == 0 {
		return NotFoundReply
	}
	var b strings.Builder
	fmt.Fprintf(&b, "I found %d entries matching keywords:\n\n", len(matches))
	for _, e := range matches {
		fmt.Fprintf(&b, "- %s with %s (%s): %s\n", e.Date, e.PartnerName, e.Tags, e.Notes)
	}
	return b.String()
}

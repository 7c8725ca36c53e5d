package journal

import (
	"fmt"
	"strconv"
	"strings"
)

// BuildContext flattens entries into the text blob handed to the assistant,
// one line per entry. Every entry is included with no size cap; with a large
// log this grows without bound and will eventually exceed what a model
// accepts. Known ceiling, kept deliberately simple.
func BuildContext(entries []Entry) string {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "Date: %s, Partner: %s, Tags: %s, Notes: %s\n",
			e.Date, e.PartnerName, e.Tags, e.Notes)
	}
	return b.String()
}

const (
	unknownField   = "Unknown"
	noneListed     = "Not specified"
	profileHeading = "USER PROFILE:"
)

// BuildProfileContext renders the profile into a labeled block, substituting
// a placeholder for each missing field.
func BuildProfileContext(p Profile) string {
	age := unknownField
	if p.Age > 0 {
		age = strconv.Itoa(p.Age)
	}
	var b strings.Builder
	b.WriteString(profileHeading)
	b.WriteString("\n")
	b.WriteString("Name: " + orMarker(p.Name, unknownField) + "\n")
	b.WriteString("Age: " + age + "\n")
	b.WriteString("Gender: " + orMarker(p.Gender, unknownField) + "\n")
	b.WriteString("Dating goals: " + orMarker(p.Goals, unknownField) + "\n")
	b.WriteString("Interests: " + orMarker(p.Interests, noneListed) + "\n")
	return b.String()
}

func orMarker(v, marker string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return marker
	}
	return v
}

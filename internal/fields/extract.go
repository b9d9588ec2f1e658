package fields

import (
	"strings"

	"github.com/ymxu/resumefill/internal/resume"
)

// list-like types accumulate every matching entry; scalar types keep the
// last value seen.
var joinSeparators = map[Type]string{
	TypeExperience: "\n\n",
	TypeEducation:  "\n\n",
	TypeSkill:      "、",
}

// Extract flattens a document into a field-type→value map for bulk fill.
// Every entry label is matched against the keyword taxonomy; unmatched or
// valueless entries are skipped.
func Extract(doc *resume.Document) map[Type]string {
	collected := make(map[Type][]string)

	for _, section := range doc.Sections {
		for _, group := range section.Groups {
			for _, entry := range group.Entries {
				if entry.Value == "" {
					continue
				}
				label := strings.ToLower(strings.TrimSpace(entry.Label))
				if label == "" {
					continue
				}
				t, ok := classifyLabel(label)
				if !ok {
					continue
				}
				collected[t] = append(collected[t], entry.Value)
			}
		}
	}

	out := make(map[Type]string, len(collected))
	for t, values := range collected {
		if sep, listLike := joinSeparators[t]; listLike {
			out[t] = strings.Join(values, sep)
		} else {
			out[t] = values[len(values)-1]
		}
	}
	return out
}

func classifyLabel(label string) (Type, bool) {
	for _, t := range Order {
		if MatchKeyword(t, label) {
			return t, true
		}
	}
	return "", false
}

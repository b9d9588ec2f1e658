package markup

import (
	"strings"

	"github.com/ymxu/resumefill/internal/resume"
)

// Render converts a document back to the tagged text format. The inverse of
// Parse up to whitespace and list-marker style: section names, group titles
// and entry label/value pairs all survive a Parse/Render round-trip.
func Render(doc *resume.Document) string {
	var b strings.Builder

	for _, section := range doc.Sections {
		for _, group := range section.Groups {
			b.WriteString("[")
			b.WriteString(section.Name)
			if group.Title != "" {
				b.WriteString("-")
				b.WriteString(group.Title)
			}
			b.WriteString("]\n")

			for _, entry := range group.Entries {
				switch {
				case entry.Label != "" && entry.Value != "":
					b.WriteString(entry.Label + "：" + entry.Value + "\n")
				case entry.Label != "":
					b.WriteString(entry.Label + "\n")
				case entry.Value != "":
					b.WriteString(entry.Value + "\n")
				}
			}

			b.WriteString("\n")
		}
	}

	return strings.TrimSpace(b.String())
}

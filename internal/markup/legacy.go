package markup

import "github.com/ymxu/resumefill/internal/resume"

// FromFlatMap converts the legacy flat tag→content storage shape into a
// document by re-running tag splitting and content-line parsing per key.
// Iteration follows the given key order so callers can keep a stable
// section ordering.
func FromFlatMap(keys []string, data map[string]string) *resume.Document {
	doc := &resume.Document{}

	for _, tag := range keys {
		content, ok := data[tag]
		if !ok {
			continue
		}
		sectionName, groupTitle := SplitTag(tag)
		doc.AppendGroup(sectionName, groupTitle, ParseContentLines(content))
	}

	return doc
}

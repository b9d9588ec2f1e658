// Package markup implements the tagged plain-text resume format: blocks
// opened by a [Section] or [Section-Group] line, followed by "label: value"
// or freeform content lines. Parse builds a resume.Document from text and
// Render is its inverse.
package markup

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ymxu/resumefill/internal/resume"
)

const defaultSectionName = resume.DefaultSectionName

var (
	tagLine    = regexp.MustCompile(`^\[(.+)\]$`)
	listMarker = regexp.MustCompile(`^(?:[-*•]|\d+\.)\s+`)
)

// Parse converts raw text into a document. Content before the first tag is
// discarded. Every tag opens a new group, even when an identical
// (section, group) pair occurred earlier.
func Parse(text string) *resume.Document {
	doc := &resume.Document{}

	var (
		sectionName string
		groupTitle  string
		buffer      []string
	)

	flush := func() {
		block := strings.TrimSpace(strings.Join(buffer, "\n"))
		buffer = buffer[:0]
		if sectionName == "" || block == "" {
			return
		}
		doc.AppendGroup(sectionName, groupTitle, ParseContentLines(block))
	}

	for _, raw := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(raw)
		if m := tagLine.FindStringSubmatch(trimmed); m != nil {
			flush()
			sectionName, groupTitle = SplitTag(strings.TrimSpace(m[1]))
			continue
		}
		buffer = append(buffer, raw)
	}
	flush()

	return doc
}

// ParseContentLines converts one block of content lines into entries.
//
// A line of the form "key: value" (first ':' or '：' splits) opens a new
// entry. Other non-empty lines continue the open entry's value on a new
// line, or open a label-less entry when none is open. Leading list markers
// (-, *, •, "N.") are stripped. Entries with neither label nor value are
// dropped; if that leaves nothing but the block itself was non-empty, the
// whole trimmed block becomes a single label-less entry.
func ParseContentLines(text string) []resume.Entry {
	var (
		entries []resume.Entry
		current *resume.Entry
	)

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		line = strings.TrimSpace(listMarker.ReplaceAllString(line, ""))

		if label, value, ok := splitKeyValue(line); ok {
			entries = append(entries, resume.Entry{Label: label, Value: value})
			current = &entries[len(entries)-1]
			continue
		}

		if current != nil {
			if current.Value == "" {
				current.Value = line
			} else {
				current.Value += "\n" + line
			}
			continue
		}

		entries = append(entries, resume.Entry{Value: line})
		current = &entries[len(entries)-1]
	}

	cleaned := make([]resume.Entry, 0, len(entries))
	for _, e := range entries {
		e.Label = strings.TrimSpace(e.Label)
		e.Value = strings.TrimSpace(e.Value)
		if !e.Empty() {
			cleaned = append(cleaned, e)
		}
	}

	if len(cleaned) == 0 {
		if fallback := strings.TrimSpace(text); fallback != "" {
			return []resume.Entry{{Value: fallback}}
		}
		return nil
	}
	return cleaned
}

// splitKeyValue splits a line on its first half- or full-width colon,
// whichever comes first. A line starting with a colon is not a key/value
// pair.
func splitKeyValue(line string) (label, value string, ok bool) {
	idx := -1
	for i, r := range line {
		if r == ':' || r == '：' {
			idx = i
			break
		}
	}
	if idx <= 0 {
		return "", "", false
	}

	label = strings.TrimSpace(line[:idx])
	_, size := utf8.DecodeRuneInString(line[idx:])
	value = strings.TrimSpace(line[idx+size:])
	return label, value, true
}

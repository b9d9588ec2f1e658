// Package resume defines the in-memory resume document tree: an ordered
// list of sections, each holding ordered groups of label/value entries.
package resume

import (
	"fmt"
	"strings"

	"github.com/ymxu/resumefill/internal/common"
)

// DefaultSectionName is assigned when a tag carries no section name.
const DefaultSectionName = "未分类"

// Entry is one piece of resume content. Label may be empty (a freeform
// line); Value may contain embedded newlines. An entry with both fields
// empty is never retained in a document.
type Entry struct {
	Label string `json:"label,omitempty"`
	Value string `json:"value"`
}

// Empty reports whether the entry carries no content at all.
func (e Entry) Empty() bool {
	return e.Label == "" && e.Value == ""
}

// Group is a named or unnamed sub-block within a section. Untitled groups
// (Title == "") are pruned automatically once their last entry is deleted;
// titled groups survive empty.
type Group struct {
	Title   string  `json:"title,omitempty"`
	Entries []Entry `json:"entries"`
}

// Section is a top-level named grouping of resume content.
type Section struct {
	Name   string  `json:"name"`
	Groups []Group `json:"groups"`
}

// Document is the ordered sequence of sections. Section names are unique;
// insertion order is preserved.
type Document struct {
	Sections []Section `json:"sections"`
}

// Empty reports whether the document holds no sections.
func (d *Document) Empty() bool {
	return len(d.Sections) == 0
}

// AppendGroup adds a new group with the given entries to the section named
// sectionName, creating the section at the end of the document if it does
// not exist yet. Repeated (section, title) pairs are appended as separate
// groups, never merged. Groups with no entries are dropped.
func (d *Document) AppendGroup(sectionName, groupTitle string, entries []Entry) {
	if len(entries) == 0 {
		return
	}
	if sectionName == "" {
		sectionName = DefaultSectionName
	}

	for i := range d.Sections {
		if d.Sections[i].Name == sectionName {
			d.Sections[i].Groups = append(d.Sections[i].Groups, Group{Title: groupTitle, Entries: entries})
			return
		}
	}

	d.Sections = append(d.Sections, Section{
		Name:   sectionName,
		Groups: []Group{{Title: groupTitle, Entries: entries}},
	})
}

// AddSection appends a new section holding one (possibly untitled) empty
// group. The name is required.
func (d *Document) AddSection(name, groupTitle string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("section name is required: %w", common.ErrValidation)
	}

	d.Sections = append(d.Sections, Section{
		Name:   name,
		Groups: []Group{{Title: strings.TrimSpace(groupTitle)}},
	})
	return nil
}

// AddEntry appends an entry to the given group of the given section.
// groupIdx == -1 means "no specific group": the section's first group is
// reused, or an untitled one is created if the section has none.
func (d *Document) AddEntry(sectionIdx, groupIdx int, e Entry) error {
	e = e.normalized()
	if e.Empty() {
		return fmt.Errorf("entry needs a label or a value: %w", common.ErrValidation)
	}

	s, err := d.section(sectionIdx)
	if err != nil {
		return err
	}

	if groupIdx == -1 {
		if len(s.Groups) == 0 {
			s.Groups = []Group{{}}
		}
		s.Groups[0].Entries = append(s.Groups[0].Entries, e)
		return nil
	}

	g, err := d.group(sectionIdx, groupIdx)
	if err != nil {
		return err
	}
	g.Entries = append(g.Entries, e)
	return nil
}

// EditEntry replaces the label and value of an existing entry.
func (d *Document) EditEntry(sectionIdx, groupIdx, entryIdx int, label, value string) error {
	e := Entry{Label: label, Value: value}.normalized()
	if e.Empty() {
		return fmt.Errorf("entry needs a label or a value: %w", common.ErrValidation)
	}

	g, err := d.group(sectionIdx, groupIdx)
	if err != nil {
		return err
	}
	if entryIdx < 0 || entryIdx >= len(g.Entries) {
		return fmt.Errorf("entry %d: %w", entryIdx, common.ErrNotFound)
	}
	g.Entries[entryIdx] = e
	return nil
}

// DeleteEntry removes an entry. If this leaves an untitled group empty, the
// group itself is removed from its section.
func (d *Document) DeleteEntry(sectionIdx, groupIdx, entryIdx int) error {
	s, err := d.section(sectionIdx)
	if err != nil {
		return err
	}
	g, err := d.group(sectionIdx, groupIdx)
	if err != nil {
		return err
	}
	if entryIdx < 0 || entryIdx >= len(g.Entries) {
		return fmt.Errorf("entry %d: %w", entryIdx, common.ErrNotFound)
	}

	g.Entries = append(g.Entries[:entryIdx], g.Entries[entryIdx+1:]...)

	if len(g.Entries) == 0 && g.Title == "" {
		s.Groups = append(s.Groups[:groupIdx], s.Groups[groupIdx+1:]...)
	}
	return nil
}

// DeleteSection removes a whole section.
func (d *Document) DeleteSection(sectionIdx int) error {
	if sectionIdx < 0 || sectionIdx >= len(d.Sections) {
		return fmt.Errorf("section %d: %w", sectionIdx, common.ErrNotFound)
	}
	d.Sections = append(d.Sections[:sectionIdx], d.Sections[sectionIdx+1:]...)
	return nil
}

func (d *Document) section(i int) (*Section, error) {
	if i < 0 || i >= len(d.Sections) {
		return nil, fmt.Errorf("section %d: %w", i, common.ErrNotFound)
	}
	return &d.Sections[i], nil
}

func (d *Document) group(si, gi int) (*Group, error) {
	s, err := d.section(si)
	if err != nil {
		return nil, err
	}
	if gi < 0 || gi >= len(s.Groups) {
		return nil, fmt.Errorf("group %d: %w", gi, common.ErrNotFound)
	}
	return &s.Groups[gi], nil
}

func (e Entry) normalized() Entry {
	return Entry{Label: strings.TrimSpace(e.Label), Value: strings.TrimSpace(e.Value)}
}

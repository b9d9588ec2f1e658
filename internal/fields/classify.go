package fields

import "strings"

// Descriptor is the classification-relevant snapshot of a foreign form
// field: its identifying attributes plus the label text derived from the
// surrounding markup.
type Descriptor struct {
	Name         string
	ID           string
	Placeholder  string
	Autocomplete string
	Label        string
	InputType    string
}

// searchText concatenates the descriptor's textual attributes, lowercased,
// for substring matching.
func (d Descriptor) searchText() string {
	return strings.ToLower(strings.Join([]string{d.Name, d.ID, d.Placeholder, d.Autocomplete, d.Label}, " "))
}

// MatchKeyword reports whether searchable text (a field's attributes or a
// resume entry's label) matches the given type's keyword list. Matching is
// case-insensitive substring containment.
func MatchKeyword(t Type, searchable string) bool {
	searchable = strings.ToLower(searchable)
	for _, kw := range taxonomy[t].keywords {
		if strings.Contains(searchable, kw) {
			return true
		}
	}
	return false
}

// Identify determines the semantic type of a foreign field.
//
// The autocomplete attribute is checked first when present, since the page
// author declared the semantics explicitly. An input type of email or tel
// is decisive next. Otherwise the concatenated attribute text is searched
// against every type's keywords in priority order; the first hit wins.
func Identify(d Descriptor) (Type, bool) {
	if ac := strings.ToLower(strings.TrimSpace(d.Autocomplete)); ac != "" {
		for _, t := range Order {
			for _, token := range taxonomy[t].autocomplete {
				if strings.Contains(ac, token) {
					return t, true
				}
			}
		}
	}

	switch strings.ToLower(d.InputType) {
	case "email":
		return TypeEmail, true
	case "tel":
		return TypePhone, true
	}

	text := d.searchText()
	for _, t := range Order {
		if MatchKeyword(t, text) {
			return t, true
		}
	}

	return "", false
}

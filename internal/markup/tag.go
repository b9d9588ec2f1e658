package markup

import "strings"

// SplitTag splits the bracket content of a tag line into section name and
// group title at the earliest occurrence of ':' or '-' (':' wins ties).
// A missing or empty right part yields an empty group title; an empty left
// part falls back to the default section name.
func SplitTag(tag string) (sectionName, groupTitle string) {
	colon := strings.Index(tag, ":")
	dash := strings.Index(tag, "-")

	sep := -1
	switch {
	case colon != -1 && (dash == -1 || colon < dash):
		sep = colon
	case dash != -1:
		sep = dash
	}

	if sep == -1 {
		sectionName = strings.TrimSpace(tag)
	} else {
		sectionName = strings.TrimSpace(tag[:sep])
		groupTitle = strings.TrimSpace(tag[sep+1:])
	}

	if sectionName == "" {
		sectionName = defaultSectionName
	}
	return sectionName, groupTitle
}

// Package dom abstracts the foreign page a fill operation targets. The
// browser package provides the real implementation over a DevTools
// session; tests use the fake in this package.
package dom

import (
	"context"
	"strings"

	"github.com/ymxu/resumefill/internal/fields"
)

// Kind distinguishes how a target element accepts text.
type Kind int

const (
	KindInput Kind = iota
	KindTextArea
	KindRichText
)

// Element is one editable region on a foreign page.
//
// Descriptor, Kind, Value, Editable and Visible read from the snapshot the
// page took at discovery time. The mutating operations act on the live
// element.
//
// SetValue must clear existing content first. For rich-text regions,
// embedded newlines in the text become explicit line-break nodes, not
// literal characters. NotifyChanged must dispatch the input and change
// notifications foreign page scripts listen for; for plain inputs and
// text-areas it additionally re-invokes the element's native value setter
// so reactive frameworks that wrap the setter observe the change.
type Element interface {
	Descriptor() fields.Descriptor
	Kind() Kind
	Value() string
	Editable() bool
	Visible() bool
	Selector() string

	Focus(ctx context.Context) error
	SetValue(ctx context.Context, text string) error
	NotifyChanged(ctx context.Context) error
	ScrollIntoView(ctx context.Context) error
}

// Page is one foreign browser page.
//
// Elements returns every input, text-area and content-editable region in
// document order, deduplicated. ActiveElement returns the currently
// focused element, or nil when nothing relevant has focus. QuerySelector
// resolves a structural selector to a single element; implementations
// report a missing match or an invalid selector as an error the caller can
// test with errors.Is(err, common.ErrNotFound).
type Page interface {
	Elements(ctx context.Context) ([]Element, error)
	ActiveElement(ctx context.Context) (Element, error)
	QuerySelector(ctx context.Context, selector string) (Element, error)
}

// editableInputTypes are the input type tokens whose value a user can edit.
// An absent type attribute counts as editable.
var editableInputTypes = map[string]struct{}{
	"":         {},
	"text":     {},
	"email":    {},
	"tel":      {},
	"number":   {},
	"password": {},
	"url":      {},
	"search":   {},
}

// EditableInputType reports whether an input element's type attribute
// permits text editing.
func EditableInputType(t string) bool {
	_, ok := editableInputTypes[strings.ToLower(t)]
	return ok
}

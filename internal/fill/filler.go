// Package fill applies resume values to foreign page elements and drives
// whole-page quick fill.
package fill

import (
	"context"
	"fmt"
	"strings"

	"github.com/ymxu/resumefill/internal/common"
	"github.com/ymxu/resumefill/internal/dom"
	"github.com/ymxu/resumefill/internal/fields"
)

// TypeAuto is the field-type hint meaning "no preference".
const TypeAuto fields.Type = "auto"

// Placement says where FillActiveOrBest put the text.
type Placement string

const (
	PlacementFocused    Placement = "focused"
	PlacementEmpty      Placement = "empty"
	PlacementFirst      Placement = "first"
	PlacementByType     Placement = "by-type"
	PlacementUnresolved Placement = ""
)

// Element applies text to a single element: focus, replace content, then
// synthesize the change notifications page scripts expect. Focus and
// scroll failures are swallowed; the fill itself must succeed.
func Element(ctx context.Context, el dom.Element, text string) error {
	_ = el.Focus(ctx)

	if err := el.SetValue(ctx, text); err != nil {
		return fmt.Errorf("set value: %w", err)
	}
	if err := el.NotifyChanged(ctx); err != nil {
		return fmt.Errorf("notify change: %w", err)
	}

	_ = el.ScrollIntoView(ctx)
	return nil
}

// BySelector resolves one element via a structural query and fills it.
// A missing element or invalid selector surfaces as common.ErrNotFound.
func BySelector(ctx context.Context, page dom.Page, selector, text string) error {
	el, err := page.QuerySelector(ctx, selector)
	if err != nil {
		return err
	}
	return Element(ctx, el, text)
}

// ActiveOrBest fills the most plausible target on the page: the focused
// element if editable and visible; otherwise the first empty editable
// visible element; otherwise the first editable visible element overall;
// otherwise, with a non-auto hint, an editable visible element whose
// descriptive text matches the hinted type. Hidden and disabled elements
// are never filled. Returns where the text landed.
func ActiveOrBest(ctx context.Context, page dom.Page, text string, hint fields.Type) (Placement, error) {
	active, err := page.ActiveElement(ctx)
	if err != nil {
		return PlacementUnresolved, err
	}
	if active != nil && active.Editable() && active.Visible() {
		return PlacementFocused, Element(ctx, active, text)
	}

	all, err := page.Elements(ctx)
	if err != nil {
		return PlacementUnresolved, err
	}

	usable := all[:0:0]
	for _, el := range all {
		if el.Editable() && el.Visible() {
			usable = append(usable, el)
		}
	}

	for _, el := range usable {
		if strings.TrimSpace(el.Value()) == "" {
			return PlacementEmpty, Element(ctx, el, text)
		}
	}

	if len(usable) > 0 {
		return PlacementFirst, Element(ctx, usable[0], text)
	}

	if hint != TypeAuto && hint != "" {
		for _, el := range usable {
			d := el.Descriptor()
			searchable := strings.Join([]string{d.Placeholder, d.Name, d.ID, d.Label}, " ")
			if fields.MatchKeyword(hint, searchable) {
				return PlacementByType, Element(ctx, el, text)
			}
		}
	}

	return PlacementUnresolved, fmt.Errorf("no editable element on page: %w", common.ErrNotFound)
}

package browser

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ymxu/resumefill/internal/common"
	"github.com/ymxu/resumefill/internal/dom"
	"github.com/ymxu/resumefill/internal/fields"
	"github.com/ymxu/resumefill/internal/fill"
	"github.com/ymxu/resumefill/internal/logging"
	"github.com/ymxu/resumefill/internal/transport"
)

// detectPreviewRunes caps the current-value preview in detectFields.
const detectPreviewRunes = 50

// PageProvider hands out the page the user is working in. The release
// func detaches without closing the page.
type PageProvider interface {
	ActivePage(ctx context.Context) (dom.Page, func(), error)
}

// WindowOps manages the assistant panel windows.
type WindowOps interface {
	OpenFixedWindow(ctx context.Context) error
	CloseFixedWindow(ctx context.Context) error
	CheckFixedWindow(ctx context.Context) (bool, error)
	OpenFloatWindow(ctx context.Context) error
	CloseFloatWindow(ctx context.Context) error
}

// Agent executes the action protocol against a live browser.
type Agent struct {
	pages   PageProvider
	windows WindowOps
	logger  logging.Logger
}

var _ transport.Agent = (*Agent)(nil)

// NewAgent wires the action handlers to a page provider and window
// manager; both are usually the same *Browser.
func NewAgent(pages PageProvider, windows WindowOps, logger logging.Logger) *Agent {
	return &Agent{pages: pages, windows: windows, logger: logger}
}

// FillForm puts text into the best candidate field. With a concrete
// fieldType the classified fields of that type are tried first, empty
// ones before filled ones; fill.TypeAuto falls through to the usual
// focused/empty/first priority.
func (a *Agent) FillForm(ctx context.Context, text string, fieldType fields.Type) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("nothing to fill: %w", common.ErrValidation)
	}

	page, release, err := a.pages.ActivePage(ctx)
	if err != nil {
		return err
	}
	defer release()

	if fieldType != fill.TypeAuto && fieldType != "" {
		el, err := a.findTyped(ctx, page, fieldType)
		if err == nil {
			return fill.Element(ctx, el, text)
		}
		if !errors.Is(err, common.ErrNotFound) {
			return err
		}
		// No classified match; fall through with the type as a hint.
	}

	placement, err := fill.ActiveOrBest(ctx, page, text, fieldType)
	if err != nil {
		return err
	}
	a.logger.Debug(ctx, "form filled", "placement", string(placement))
	return nil
}

// findTyped returns the first editable, visible element classified as
// fieldType, preferring empty ones.
func (a *Agent) findTyped(ctx context.Context, page dom.Page, fieldType fields.Type) (dom.Element, error) {
	all, err := page.Elements(ctx)
	if err != nil {
		return nil, err
	}

	var fallback dom.Element
	for _, el := range all {
		if !el.Editable() || !el.Visible() {
			continue
		}
		if t, ok := fields.Identify(el.Descriptor()); !ok || t != fieldType {
			continue
		}
		if strings.TrimSpace(el.Value()) == "" {
			return el, nil
		}
		if fallback == nil {
			fallback = el
		}
	}
	if fallback != nil {
		return fallback, nil
	}
	return nil, fmt.Errorf("no %s field on page: %w", fieldType, common.ErrNotFound)
}

// DetectFields describes every fillable field on the page.
func (a *Agent) DetectFields(ctx context.Context) ([]transport.Field, error) {
	page, release, err := a.pages.ActivePage(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	all, err := page.Elements(ctx)
	if err != nil {
		return nil, err
	}

	found := make([]transport.Field, 0, len(all))
	for _, el := range all {
		if !el.Editable() || !el.Visible() {
			continue
		}
		d := el.Descriptor()
		found = append(found, transport.Field{
			Selector:    el.Selector(),
			Name:        d.Name,
			ID:          d.ID,
			Placeholder: d.Placeholder,
			Label:       d.Label,
			Type:        d.InputType,
			Preview:     preview(el.Value(), detectPreviewRunes),
		})
	}
	return found, nil
}

// FillSpecificField fills the one element a selector addresses.
func (a *Agent) FillSpecificField(ctx context.Context, selector, text string) error {
	if strings.TrimSpace(selector) == "" {
		return fmt.Errorf("selector is required: %w", common.ErrValidation)
	}

	page, release, err := a.pages.ActivePage(ctx)
	if err != nil {
		return err
	}
	defer release()

	return fill.BySelector(ctx, page, selector, text)
}

// QuickFill runs a whole-page fill from the extracted resume values.
func (a *Agent) QuickFill(ctx context.Context, values map[fields.Type]string) (*fill.Report, error) {
	page, release, err := a.pages.ActivePage(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	report, err := fill.QuickFill(ctx, page, values)
	if report != nil {
		a.logger.Info(ctx, "quick fill finished",
			"filled", report.FilledCount, "failed", report.FailedCount)
	}
	return report, err
}

func (a *Agent) OpenFixedWindow(ctx context.Context) error  { return a.windows.OpenFixedWindow(ctx) }
func (a *Agent) CloseFixedWindow(ctx context.Context) error { return a.windows.CloseFixedWindow(ctx) }
func (a *Agent) OpenFloatWindow(ctx context.Context) error  { return a.windows.OpenFloatWindow(ctx) }
func (a *Agent) CloseFloatWindow(ctx context.Context) error { return a.windows.CloseFloatWindow(ctx) }

func (a *Agent) CheckFixedWindow(ctx context.Context) (bool, error) {
	return a.windows.CheckFixedWindow(ctx)
}

func preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

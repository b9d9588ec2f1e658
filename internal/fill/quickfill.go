package fill

import (
	"context"
	"fmt"
	"strings"

	"github.com/ymxu/resumefill/internal/common"
	"github.com/ymxu/resumefill/internal/dom"
	"github.com/ymxu/resumefill/internal/fields"
)

const previewRunes = 30

// FilledField records one successfully filled element.
type FilledField struct {
	Type  fields.Type `json:"fieldType"`
	Value string      `json:"value"`
}

// FailedField records one element that threw during fill.
type FailedField struct {
	Type  fields.Type `json:"fieldType"`
	Error string      `json:"error"`
}

// Report summarizes a quick-fill pass.
type Report struct {
	FilledCount int           `json:"filledCount"`
	FailedCount int           `json:"failedCount"`
	Filled      []FilledField `json:"filledFields"`
	Failed      []FailedField `json:"failedFields"`
}

// QuickFill walks every editable, visible element on the page once,
// classifies it, and fills it from values. Elements with no recognized
// type, no corresponding value, or a value already equal to the candidate
// are skipped. A failure on one element is recorded and the pass
// continues. The returned error is non-nil only when nothing was filled
// and nothing failed.
func QuickFill(ctx context.Context, page dom.Page, values map[fields.Type]string) (*Report, error) {
	all, err := page.Elements(ctx)
	if err != nil {
		return nil, fmt.Errorf("enumerate elements: %w", err)
	}

	report := &Report{}
	seen := make(map[dom.Element]struct{}, len(all))

	for _, el := range all {
		if _, done := seen[el]; done {
			continue
		}
		if !el.Editable() || !el.Visible() {
			continue
		}

		fieldType, ok := fields.Identify(el.Descriptor())
		if !ok {
			continue
		}

		value := strings.TrimSpace(values[fieldType])
		if value == "" {
			continue
		}

		// Idempotence guard: leave fields that already hold the value.
		if strings.TrimSpace(el.Value()) == value {
			continue
		}

		if err := fillSafely(ctx, el, value); err != nil {
			report.FailedCount++
			report.Failed = append(report.Failed, FailedField{Type: fieldType, Error: err.Error()})
			continue
		}

		seen[el] = struct{}{}
		report.FilledCount++
		report.Filled = append(report.Filled, FilledField{Type: fieldType, Value: preview(value, previewRunes)})
	}

	if report.FilledCount == 0 && report.FailedCount == 0 {
		return report, fmt.Errorf("no recognizable form fields: %w", common.ErrNotFound)
	}
	return report, nil
}

// fillSafely converts a panic from a misbehaving element implementation
// into an ordinary per-element error so the pass keeps going.
func fillSafely(ctx context.Context, el dom.Element, value string) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("fill panicked: %v", p)
		}
	}()
	return Element(ctx, el, value)
}

// preview truncates s to at most n runes.
func preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

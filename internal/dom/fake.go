package dom

import (
	"context"
	"fmt"

	"github.com/ymxu/resumefill/internal/common"
	"github.com/ymxu/resumefill/internal/fields"
)

// FakeElement is a scriptable Element for tests and dry runs.
type FakeElement struct {
	Desc        fields.Descriptor
	ElemKind    Kind
	Val         string
	IsEditable  bool
	IsVisible   bool
	CSSSelector string

	// FailSet, when non-nil, is returned from SetValue to simulate a
	// page script throwing during fill.
	FailSet error

	Focused     bool
	SetCalls    []string
	NotifyCalls int
	Scrolled    bool
}

var _ Element = (*FakeElement)(nil)

func (e *FakeElement) Descriptor() fields.Descriptor { return e.Desc }
func (e *FakeElement) Kind() Kind                    { return e.ElemKind }
func (e *FakeElement) Value() string                 { return e.Val }
func (e *FakeElement) Editable() bool                { return e.IsEditable }
func (e *FakeElement) Visible() bool                 { return e.IsVisible }
func (e *FakeElement) Selector() string              { return e.CSSSelector }

func (e *FakeElement) Focus(ctx context.Context) error {
	e.Focused = true
	return nil
}

func (e *FakeElement) SetValue(ctx context.Context, text string) error {
	if e.FailSet != nil {
		return e.FailSet
	}
	e.Val = text
	e.SetCalls = append(e.SetCalls, text)
	return nil
}

func (e *FakeElement) NotifyChanged(ctx context.Context) error {
	e.NotifyCalls++
	return nil
}

func (e *FakeElement) ScrollIntoView(ctx context.Context) error {
	e.Scrolled = true
	return nil
}

// FakePage is a scriptable Page backed by a fixed element list.
type FakePage struct {
	Elems  []*FakeElement
	Active *FakeElement
}

var _ Page = (*FakePage)(nil)

func (p *FakePage) Elements(ctx context.Context) ([]Element, error) {
	out := make([]Element, 0, len(p.Elems))
	for _, e := range p.Elems {
		out = append(out, e)
	}
	return out, nil
}

func (p *FakePage) ActiveElement(ctx context.Context) (Element, error) {
	if p.Active == nil {
		return nil, nil
	}
	return p.Active, nil
}

func (p *FakePage) QuerySelector(ctx context.Context, selector string) (Element, error) {
	for _, e := range p.Elems {
		if e.CSSSelector == selector {
			return e, nil
		}
	}
	return nil, fmt.Errorf("selector %q: %w", selector, common.ErrNotFound)
}

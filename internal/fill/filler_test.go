package fill

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ymxu/resumefill/internal/common"
	"github.com/ymxu/resumefill/internal/dom"
	"github.com/ymxu/resumefill/internal/fields"
)

func editable(selector string) *dom.FakeElement {
	return &dom.FakeElement{
		CSSSelector: selector,
		IsEditable:  true,
		IsVisible:   true,
	}
}

func TestElement_SetsValueAndNotifies(t *testing.T) {
	el := editable("#a")

	require.NoError(t, Element(context.Background(), el, "张三"))

	assert.True(t, el.Focused)
	assert.Equal(t, "张三", el.Val)
	assert.Equal(t, 1, el.NotifyCalls)
	assert.True(t, el.Scrolled)
}

func TestBySelector(t *testing.T) {
	ctx := context.Background()
	el := editable("#email")
	page := &dom.FakePage{Elems: []*dom.FakeElement{el}}

	require.NoError(t, BySelector(ctx, page, "#email", "a@b.cn"))
	assert.Equal(t, "a@b.cn", el.Val)

	err := BySelector(ctx, page, "#missing", "x")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestActiveOrBest_PrefersFocusedElement(t *testing.T) {
	active := editable("#focused")
	other := editable("#other")
	page := &dom.FakePage{Elems: []*dom.FakeElement{other, active}, Active: active}

	placement, err := ActiveOrBest(context.Background(), page, "v", TypeAuto)
	require.NoError(t, err)
	assert.Equal(t, PlacementFocused, placement)
	assert.Equal(t, "v", active.Val)
	assert.Equal(t, "", other.Val)
}

func TestActiveOrBest_SkipsUneditableFocused(t *testing.T) {
	active := editable("#focused")
	active.IsEditable = false
	empty := editable("#empty")
	page := &dom.FakePage{Elems: []*dom.FakeElement{empty}, Active: active}

	placement, err := ActiveOrBest(context.Background(), page, "v", TypeAuto)
	require.NoError(t, err)
	assert.Equal(t, PlacementEmpty, placement)
	assert.Equal(t, "v", empty.Val)
}

func TestActiveOrBest_PrefersEmptyOverFirst(t *testing.T) {
	full := editable("#full")
	full.Val = "occupied"
	empty := editable("#empty")
	page := &dom.FakePage{Elems: []*dom.FakeElement{full, empty}}

	placement, err := ActiveOrBest(context.Background(), page, "v", TypeAuto)
	require.NoError(t, err)
	assert.Equal(t, PlacementEmpty, placement)
	assert.Equal(t, "v", empty.Val)
	assert.Equal(t, "occupied", full.Val)
}

func TestActiveOrBest_FallsBackToFirstWhenNoneEmpty(t *testing.T) {
	a := editable("#a")
	a.Val = "x"
	b := editable("#b")
	b.Val = "y"
	page := &dom.FakePage{Elems: []*dom.FakeElement{a, b}}

	placement, err := ActiveOrBest(context.Background(), page, "v", TypeAuto)
	require.NoError(t, err)
	assert.Equal(t, PlacementFirst, placement)
	assert.Equal(t, "v", a.Val)
}

func TestActiveOrBest_HintNeverFillsHiddenOrDisabled(t *testing.T) {
	hidden := &dom.FakeElement{
		CSSSelector: "#mail",
		IsEditable:  true,
		IsVisible:   false,
		Desc:        fields.Descriptor{Name: "email"},
	}
	disabled := &dom.FakeElement{
		CSSSelector: "#mail2",
		IsEditable:  false,
		IsVisible:   true,
		Desc:        fields.Descriptor{Name: "email"},
	}
	page := &dom.FakePage{Elems: []*dom.FakeElement{hidden, disabled}}

	_, err := ActiveOrBest(context.Background(), page, "a@b.cn", fields.TypeEmail)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Equal(t, "", hidden.Val)
	assert.Equal(t, "", disabled.Val)
}

func TestActiveOrBest_NothingFound(t *testing.T) {
	page := &dom.FakePage{}

	_, err := ActiveOrBest(context.Background(), page, "v", TypeAuto)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

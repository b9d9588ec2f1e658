package fill

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ymxu/resumefill/internal/common"
	"github.com/ymxu/resumefill/internal/dom"
	"github.com/ymxu/resumefill/internal/fields"
)

func formElement(name string) *dom.FakeElement {
	return &dom.FakeElement{
		CSSSelector: "#" + name,
		IsEditable:  true,
		IsVisible:   true,
		Desc:        fields.Descriptor{Name: name},
	}
}

func sampleValues() map[fields.Type]string {
	return map[fields.Type]string{
		fields.TypeName:  "张三",
		fields.TypePhone: "13800138000",
		fields.TypeEmail: "a@b.cn",
	}
}

func TestQuickFill_FillsRecognizedFields(t *testing.T) {
	name := formElement("fullname")
	phone := formElement("mobile")
	email := formElement("user_email")
	unknown := formElement("captcha")
	page := &dom.FakePage{Elems: []*dom.FakeElement{name, phone, email, unknown}}

	report, err := QuickFill(context.Background(), page, sampleValues())
	require.NoError(t, err)

	assert.Equal(t, 3, report.FilledCount)
	assert.Equal(t, 0, report.FailedCount)
	assert.Equal(t, "张三", name.Val)
	assert.Equal(t, "13800138000", phone.Val)
	assert.Equal(t, "a@b.cn", email.Val)
	assert.Equal(t, "", unknown.Val)
}

func TestQuickFill_SecondRunFillsNothing(t *testing.T) {
	page := &dom.FakePage{Elems: []*dom.FakeElement{
		formElement("fullname"),
		formElement("mobile"),
	}}
	values := sampleValues()
	ctx := context.Background()

	first, err := QuickFill(ctx, page, values)
	require.NoError(t, err)
	require.Equal(t, 2, first.FilledCount)

	_, err = QuickFill(ctx, page, values)
	require.Error(t, err, "second pass has nothing to do")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestQuickFill_PartialFailure(t *testing.T) {
	ok1 := formElement("fullname")
	ok2 := formElement("mobile")
	ok3 := formElement("user_email")
	ok4 := formElement("address")
	broken := formElement("company")
	broken.FailSet = errors.New("detached node")

	page := &dom.FakePage{Elems: []*dom.FakeElement{ok1, ok2, ok3, ok4, broken}}
	values := sampleValues()
	values[fields.TypeAddress] = "北京市海淀区"
	values[fields.TypeCompany] = "某某科技"

	report, err := QuickFill(context.Background(), page, values)
	require.NoError(t, err, "partial failure is still success")

	assert.Equal(t, 4, report.FilledCount)
	assert.Equal(t, 1, report.FailedCount)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, fields.TypeCompany, report.Failed[0].Type)
	assert.Contains(t, report.Failed[0].Error, "detached node")
}

func TestQuickFill_SkipsMissingValuesAndInvisible(t *testing.T) {
	noValue := formElement("address")
	hidden := formElement("fullname")
	hidden.IsVisible = false
	page := &dom.FakePage{Elems: []*dom.FakeElement{noValue, hidden}}

	_, err := QuickFill(context.Background(), page, sampleValues())
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Empty(t, noValue.Val)
	assert.Empty(t, hidden.Val)
}

func TestQuickFill_TruncatesPreview(t *testing.T) {
	long := formElement("introduction")
	page := &dom.FakePage{Elems: []*dom.FakeElement{long}}

	intro := ""
	for i := 0; i < 40; i++ {
		intro += "长"
	}

	report, err := QuickFill(context.Background(), page, map[fields.Type]string{
		fields.TypeIntroduction: intro,
	})
	require.NoError(t, err)
	require.Len(t, report.Filled, 1)
	assert.Equal(t, 30, len([]rune(report.Filled[0].Value)))
	assert.Equal(t, intro, long.Val, "element receives the full value")
}

// Package transport carries the JSON action protocol between the CLI and
// the page agent. The CLI posts an action to the agent; the agent answers
// with a success/error envelope plus action-specific payload.
package transport

import (
	"github.com/ymxu/resumefill/internal/fields"
	"github.com/ymxu/resumefill/internal/fill"
)

// Action names understood by the agent.
const (
	ActionFillForm          = "fillForm"
	ActionDetectFields      = "detectFields"
	ActionFillSpecificField = "fillSpecificField"
	ActionQuickFill         = "quickFill"
	ActionOpenFixedWindow   = "openFixedWindow"
	ActionCloseFixedWindow  = "closeFixedWindow"
	ActionCheckFixedWindow  = "checkFixedWindow"
	ActionOpenFloatWindow   = "openFloatWindow"
	ActionCloseFloatWindow  = "closeFloatWindow"
)

// Response is the envelope every action answers with. Error is set only
// when Success is false.
type Response struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// FillFormRequest fills text into the best candidate field on the page.
// FieldType narrows the search to fields of one classified type;
// fill.TypeAuto lets the agent pick by the usual priority.
type FillFormRequest struct {
	Text      string      `json:"text"`
	FieldType fields.Type `json:"fieldType,omitempty"`
}

// FillSpecificFieldRequest fills one field addressed by selector.
type FillSpecificFieldRequest struct {
	Selector string `json:"selector"`
	Text     string `json:"text"`
}

// QuickFillRequest carries the extracted field values for a one-shot fill
// of every recognizable field on the page.
type QuickFillRequest struct {
	Values map[fields.Type]string `json:"values"`
}

// QuickFillResponse wraps the fill report.
type QuickFillResponse struct {
	Response
	Report *fill.Report `json:"report,omitempty"`
}

// Field describes one fillable field found by detectFields.
type Field struct {
	Selector    string `json:"selector"`
	Name        string `json:"name,omitempty"`
	ID          string `json:"id,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
	Label       string `json:"label,omitempty"`
	Type        string `json:"type,omitempty"`
	Preview     string `json:"preview,omitempty"`
}

// DetectFieldsResponse lists the fillable fields on the page.
type DetectFieldsResponse struct {
	Response
	Fields []Field `json:"fields"`
}

// CheckWindowResponse reports whether the fixed assistant panel is open.
type CheckWindowResponse struct {
	Response
	IsOpen bool `json:"isOpen"`
}

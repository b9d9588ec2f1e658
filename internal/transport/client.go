package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ymxu/resumefill/internal/common"
	"github.com/ymxu/resumefill/internal/fields"
	"github.com/ymxu/resumefill/internal/fill"
)

// Client is the sending side of the action protocol. A connection failure
// is reported as common.ErrNoReceiver so callers can fall back to the
// degraded copy path.
type Client struct {
	base string
	http *http.Client
}

// NewClient builds a client for the agent at base (e.g.
// "http://127.0.0.1:8199").
func NewClient(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *Client) FillForm(ctx context.Context, text string, fieldType fields.Type) error {
	var resp Response
	return c.post(ctx, ActionFillForm, FillFormRequest{Text: text, FieldType: fieldType}, &resp)
}

func (c *Client) DetectFields(ctx context.Context) ([]Field, error) {
	var resp DetectFieldsResponse
	if err := c.post(ctx, ActionDetectFields, struct{}{}, &resp); err != nil {
		return nil, err
	}
	return resp.Fields, nil
}

func (c *Client) FillSpecificField(ctx context.Context, selector, text string) error {
	var resp Response
	return c.post(ctx, ActionFillSpecificField, FillSpecificFieldRequest{Selector: selector, Text: text}, &resp)
}

func (c *Client) QuickFill(ctx context.Context, values map[fields.Type]string) (*fill.Report, error) {
	var resp QuickFillResponse
	if err := c.post(ctx, ActionQuickFill, QuickFillRequest{Values: values}, &resp); err != nil {
		return nil, err
	}
	return resp.Report, nil
}

func (c *Client) OpenFixedWindow(ctx context.Context) error {
	var resp Response
	return c.post(ctx, ActionOpenFixedWindow, struct{}{}, &resp)
}

func (c *Client) CloseFixedWindow(ctx context.Context) error {
	var resp Response
	return c.post(ctx, ActionCloseFixedWindow, struct{}{}, &resp)
}

func (c *Client) CheckFixedWindow(ctx context.Context) (bool, error) {
	var resp CheckWindowResponse
	if err := c.post(ctx, ActionCheckFixedWindow, struct{}{}, &resp); err != nil {
		return false, err
	}
	return resp.IsOpen, nil
}

func (c *Client) OpenFloatWindow(ctx context.Context) error {
	var resp Response
	return c.post(ctx, ActionOpenFloatWindow, struct{}{}, &resp)
}

func (c *Client) CloseFloatWindow(ctx context.Context) error {
	var resp Response
	return c.post(ctx, ActionCloseFloatWindow, struct{}{}, &resp)
}

// Online reports whether the agent answers at all.
func (c *Client) Online(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/healthz", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	_ = resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// envelope is the part of every response the client inspects for errors.
type envelope interface{ env() *Response }

func (r *Response) env() *Response             { return r }
func (r *QuickFillResponse) env() *Response    { return &r.Response }
func (r *DetectFieldsResponse) env() *Response { return &r.Response }
func (r *CheckWindowResponse) env() *Response  { return &r.Response }

func (c *Client) post(ctx context.Context, action string, body any, out envelope) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding %s request: %w", action, err)
	}

	url := c.base + "/actions/" + action
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("building %s request: %w", action, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("agent unreachable: %w", common.ErrNoReceiver)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: bad response: %w", action, common.ErrTransport)
	}

	env := out.env()
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = resp.Status
		}
		return fmt.Errorf("%s: %s: %w", action, msg, sentinelFor(resp.StatusCode))
	}
	return nil
}

func sentinelFor(status int) error {
	switch status {
	case http.StatusBadRequest:
		return common.ErrValidation
	case http.StatusNotFound:
		return common.ErrNotFound
	default:
		return common.ErrTransport
	}
}

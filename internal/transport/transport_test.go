package transport

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ymxu/resumefill/internal/common"
	"github.com/ymxu/resumefill/internal/fields"
	"github.com/ymxu/resumefill/internal/fill"
	"github.com/ymxu/resumefill/internal/logging"
)

// fakeAgent is a scriptable Agent recording what it was asked to do.
type fakeAgent struct {
	fillText  string
	fillType  fields.Type
	selector  string
	values    map[fields.Type]string
	fixedOpen bool

	fillErr error
}

func (f *fakeAgent) FillForm(_ context.Context, text string, fieldType fields.Type) error {
	if f.fillErr != nil {
		return f.fillErr
	}
	f.fillText, f.fillType = text, fieldType
	return nil
}

func (f *fakeAgent) DetectFields(context.Context) ([]Field, error) {
	return []Field{
		{Selector: "#email", ID: "email", Type: "email", Label: "邮箱"},
		{Selector: "input[name=\"phone\"]", Name: "phone", Type: "tel"},
	}, nil
}

func (f *fakeAgent) FillSpecificField(_ context.Context, selector, text string) error {
	if selector == "" {
		return fmt.Errorf("selector is required: %w", common.ErrValidation)
	}
	f.selector, f.fillText = selector, text
	return nil
}

func (f *fakeAgent) QuickFill(_ context.Context, values map[fields.Type]string) (*fill.Report, error) {
	f.values = values
	return &fill.Report{
		FilledCount: 2,
		Filled: []fill.FilledField{
			{Type: fields.TypeName, Value: "张三"},
			{Type: fields.TypeEmail, Value: "zhang@example.com"},
		},
	}, nil
}

func (f *fakeAgent) OpenFixedWindow(context.Context) error  { f.fixedOpen = true; return nil }
func (f *fakeAgent) CloseFixedWindow(context.Context) error { f.fixedOpen = false; return nil }
func (f *fakeAgent) CheckFixedWindow(context.Context) (bool, error) {
	return f.fixedOpen, nil
}
func (f *fakeAgent) OpenFloatWindow(context.Context) error  { return nil }
func (f *fakeAgent) CloseFloatWindow(context.Context) error { return nil }

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func setup(t *testing.T) (*fakeAgent, *Client) {
	t.Helper()
	agent := &fakeAgent{}
	srv := httptest.NewServer(NewRouter(agent, testLogger()))
	t.Cleanup(srv.Close)
	return agent, NewClient(srv.URL)
}

func TestFillForm(t *testing.T) {
	agent, client := setup(t)

	err := client.FillForm(context.Background(), "zhang@example.com", fields.TypeEmail)
	require.NoError(t, err)
	assert.Equal(t, "zhang@example.com", agent.fillText)
	assert.Equal(t, fields.TypeEmail, agent.fillType)
}

func TestFillForm_AgentError(t *testing.T) {
	agent, client := setup(t)
	agent.fillErr = fmt.Errorf("no fillable field: %w", common.ErrNotFound)

	err := client.FillForm(context.Background(), "x", fill.TypeAuto)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDetectFields(t *testing.T) {
	_, client := setup(t)

	found, err := client.DetectFields(context.Background())
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "#email", found[0].Selector)
	assert.Equal(t, "邮箱", found[0].Label)
}

func TestFillSpecificField(t *testing.T) {
	agent, client := setup(t)

	require.NoError(t, client.FillSpecificField(context.Background(), "#email", "a@b.c"))
	assert.Equal(t, "#email", agent.selector)

	err := client.FillSpecificField(context.Background(), "", "a@b.c")
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestQuickFill(t *testing.T) {
	agent, client := setup(t)

	values := map[fields.Type]string{
		fields.TypeName:  "张三",
		fields.TypeEmail: "zhang@example.com",
	}
	report, err := client.QuickFill(context.Background(), values)
	require.NoError(t, err)
	assert.Equal(t, values, agent.values)
	assert.Equal(t, 2, report.FilledCount)
	require.Len(t, report.Filled, 2)
	assert.Equal(t, fields.TypeName, report.Filled[0].Type)
}

func TestWindowActions(t *testing.T) {
	_, client := setup(t)
	ctx := context.Background()

	isOpen, err := client.CheckFixedWindow(ctx)
	require.NoError(t, err)
	assert.False(t, isOpen)

	require.NoError(t, client.OpenFixedWindow(ctx))
	isOpen, err = client.CheckFixedWindow(ctx)
	require.NoError(t, err)
	assert.True(t, isOpen)

	require.NoError(t, client.CloseFixedWindow(ctx))
	isOpen, err = client.CheckFixedWindow(ctx)
	require.NoError(t, err)
	assert.False(t, isOpen)

	require.NoError(t, client.OpenFloatWindow(ctx))
	require.NoError(t, client.CloseFloatWindow(ctx))
}

func TestClient_NoReceiver(t *testing.T) {
	srv := httptest.NewServer(NewRouter(&fakeAgent{}, testLogger()))
	client := NewClient(srv.URL)
	srv.Close()

	err := client.FillForm(context.Background(), "x", fill.TypeAuto)
	assert.ErrorIs(t, err, common.ErrNoReceiver)

	assert.False(t, client.Online(context.Background()))
}

func TestServer_MalformedBody(t *testing.T) {
	agent := &fakeAgent{}
	srv := httptest.NewServer(NewRouter(agent, testLogger()))
	t.Cleanup(srv.Close)

	resp, err := http.Post(srv.URL+"/actions/"+ActionFillForm, "application/json", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestClient_Online(t *testing.T) {
	_, client := setup(t)
	assert.True(t, client.Online(context.Background()))
}

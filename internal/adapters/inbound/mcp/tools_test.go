package mcp

import (
	"context"
	"encoding/json"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxura/luxura/internal/adapters/outbound/catalog"
	"github.com/luxura/luxura/internal/application"
)

func newTestSession() *session {
	return newSession(application.NewConfiguratorService(catalog.Default(), nil), "")
}

func call(t *testing.T, h server.ToolHandlerFunc, args map[string]any) *mcplib.CallToolResult {
	t.Helper()
	req := mcplib.CallToolRequest{}
	req.Params.Arguments = args
	res, err := h(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func resultText(t *testing.T, res *mcplib.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(mcplib.TextContent)
	require.True(t, ok)
	return tc.Text
}

func decodeState(t *testing.T, res *mcplib.CallToolResult) stateView {
	t.Helper()
	var view stateView
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &view))
	return view
}

func TestHandleState_Defaults(t *testing.T) {
	sess := newTestSession()

	view := decodeState(t, call(t, handleState(sess), nil))
	assert.Equal(t, "lamborghini-aventador", view.Selection.Model.ID)
	assert.Equal(t, 573966, view.Total)
	assert.Equal(t, "$573,966", view.FormattedTotal)
	assert.Equal(t, "model", string(view.Step.ID))
	assert.NotEmpty(t, view.Session)
}

func TestHandleSelect(t *testing.T) {
	sess := newTestSession()

	view := decodeState(t, call(t, handleSelect(sess), map[string]any{
		"category": "model",
		"id":       "bugatti-chiron",
	}))
	assert.Equal(t, "bugatti-chiron", view.Selection.Model.ID)
	assert.Equal(t, 3900000, view.Total)
}

func TestHandleSelect_UnknownOption(t *testing.T) {
	sess := newTestSession()

	res := call(t, handleSelect(sess), map[string]any{"category": "color", "id": "plaid"})
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "plaid")

	res = call(t, handleSelect(sess), map[string]any{"category": "engine", "id": "v12"})
	assert.True(t, res.IsError)
}

func TestHandleSelect_MissingArguments(t *testing.T) {
	res := call(t, handleSelect(newTestSession()), map[string]any{"category": "model"})
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "id parameter is required")
}

func TestHandleToggleAccessory(t *testing.T) {
	sess := newTestSession()
	h := handleToggleAccessory(sess)

	var out struct {
		Selected bool      `json:"selected"`
		State    stateView `json:"state"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, call(t, h, map[string]any{"id": "racing-harness"}))), &out))
	assert.True(t, out.Selected)
	assert.Equal(t, 582466, out.State.Total)

	require.NoError(t, json.Unmarshal([]byte(resultText(t, call(t, h, map[string]any{"id": "racing-harness"}))), &out))
	assert.False(t, out.Selected)
	assert.Equal(t, 573966, out.State.Total)

	res := call(t, h, map[string]any{"id": "jetpack"})
	assert.True(t, res.IsError)
}

func TestHandleNavigate(t *testing.T) {
	sess := newTestSession()
	h := handleNavigate(sess)

	var out struct {
		Moved bool      `json:"moved"`
		State stateView `json:"state"`
	}

	require.NoError(t, json.Unmarshal([]byte(resultText(t, call(t, h, map[string]any{"action": "back"}))), &out))
	assert.False(t, out.Moved)

	require.NoError(t, json.Unmarshal([]byte(resultText(t, call(t, h, map[string]any{"action": "next"}))), &out))
	assert.True(t, out.Moved)
	assert.Equal(t, "exterior", string(out.State.Step.ID))

	require.NoError(t, json.Unmarshal([]byte(resultText(t, call(t, h, map[string]any{"action": "jump", "step": "summary"}))), &out))
	assert.True(t, out.Moved)
	assert.Equal(t, "summary", string(out.State.Step.ID))

	assert.True(t, call(t, h, map[string]any{"action": "jump"}).IsError)
	assert.True(t, call(t, h, map[string]any{"action": "sideways"}).IsError)
}

func TestHandlePrice(t *testing.T) {
	sess := newTestSession()
	call(t, handleToggleAccessory(sess), map[string]any{"id": "racing-harness"})
	call(t, handleToggleAccessory(sess), map[string]any{"id": "fire-system"})

	var view priceView
	require.NoError(t, json.Unmarshal([]byte(resultText(t, call(t, handlePrice(sess), nil))), &view))
	assert.Equal(t, 591966, view.Total)
	assert.Equal(t, 18000, view.AccessoryTotal)
	assert.Equal(t, "$591,966", view.FormattedTotal)
}

func TestHandleRender(t *testing.T) {
	sess := newTestSession()
	h := handleRender(sess)

	doc := resultText(t, call(t, h, map[string]any{"angle": float64(30)}))
	assert.Contains(t, doc, "<svg")
	assert.Contains(t, doc, "rotateY(30deg)")

	var scene struct {
		Variant  string  `json:"variant"`
		Rotation float64 `json:"rotation"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, call(t, h, map[string]any{"format": "json", "angle": float64(90)}))), &scene))
	assert.Equal(t, "lamborghini-aventador", scene.Variant)
	assert.Equal(t, float64(90), scene.Rotation)

	assert.Contains(t, resultText(t, call(t, h, map[string]any{"format": "inventory"})), "Front Wheel")

	assert.True(t, call(t, h, map[string]any{"format": "png"}).IsError)
}

func TestHandleModelResource(t *testing.T) {
	sess := newTestSession()
	h := handleModelResource(sess)

	req := mcplib.ReadResourceRequest{}
	req.Params.URI = "luxura://models/ferrari-sf90"
	req.Params.Arguments = map[string]any{"id": []string{"ferrari-sf90"}}
	contents, err := h(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcplib.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, "application/json", text.MIMEType)
	assert.Contains(t, text.Text, "ferrari-sf90")

	req.Params.Arguments = map[string]any{"id": "trabant"}
	_, err = h(context.Background(), req)
	assert.Error(t, err)
}

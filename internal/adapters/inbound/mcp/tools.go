package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/luxura/luxura/internal/adapters/outbound/svg"
	"github.com/luxura/luxura/internal/adapters/outbound/tui"
	"github.com/luxura/luxura/internal/application"
	"github.com/luxura/luxura/internal/domain"
)

// registerTools registers all luxura MCP tools on the given server.
func registerTools(s *server.MCPServer, sess *session) {
	// 1. luxura_catalog
	s.AddTool(
		mcplib.NewTool("luxura_catalog",
			mcplib.WithDescription("Returns every model, color, wheel, interior, accessory and step as JSON"),
		),
		handleCatalog(sess),
	)

	// 2. luxura_state
	s.AddTool(
		mcplib.NewTool("luxura_state",
			mcplib.WithDescription("Returns the current step, selection and total price of the session"),
		),
		handleState(sess),
	)

	// 3. luxura_select
	s.AddTool(
		mcplib.NewTool("luxura_select",
			mcplib.WithDescription("Selects a model, color, wheel or interior by id"),
			mcplib.WithString("category",
				mcplib.Required(),
				mcplib.Description("One of: model, color, wheel, interior"),
			),
			mcplib.WithString("id",
				mcplib.Required(),
				mcplib.Description("Catalog id of the option"),
			),
		),
		handleSelect(sess),
	)

	// 4. luxura_toggle_accessory
	s.AddTool(
		mcplib.NewTool("luxura_toggle_accessory",
			mcplib.WithDescription("Adds the accessory if absent, removes it if present"),
			mcplib.WithString("id",
				mcplib.Required(),
				mcplib.Description("Catalog id of the accessory"),
			),
		),
		handleToggleAccessory(sess),
	)

	// 5. luxura_navigate
	s.AddTool(
		mcplib.NewTool("luxura_navigate",
			mcplib.WithDescription("Moves through the configurator steps. Moving past either end is a no-op."),
			mcplib.WithString("action",
				mcplib.Required(),
				mcplib.Description("One of: next, back, jump"),
			),
			mcplib.WithString("step", mcplib.Description("Target step id for jump (model, exterior, wheels, interior, accessories, summary)")),
		),
		handleNavigate(sess),
	)

	// 6. luxura_price
	s.AddTool(
		mcplib.NewTool("luxura_price",
			mcplib.WithDescription("Returns the itemised price of the current selection"),
		),
		handlePrice(sess),
	)

	// 7. luxura_render
	s.AddTool(
		mcplib.NewTool("luxura_render",
			mcplib.WithDescription("Renders the current vehicle as SVG, scene JSON or a layer inventory"),
			mcplib.WithNumber("angle", mcplib.Description("Rotation around the vertical axis in degrees (default 0)")),
			mcplib.WithString("format", mcplib.Description("Output format: svg, json or inventory (default: svg)")),
		),
		handleRender(sess),
	)
}

func handleCatalog(sess *session) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(sess.svc.Catalog())
	}
}

func handleState(sess *session) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		var view stateView
		sess.with(func(*application.ConfiguratorService) { view = sess.state() })
		return jsonResult(view)
	}
}

func handleSelect(sess *session) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		category, err := request.RequireString("category")
		if err != nil {
			return errorResult("category parameter is required"), nil
		}
		id, err := request.RequireString("id")
		if err != nil {
			return errorResult("id parameter is required"), nil
		}

		var view stateView
		sess.with(func(svc *application.ConfiguratorService) {
			err = svc.Select(category, id)
			view = sess.state()
		})
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(view)
	}
}

func handleToggleAccessory(sess *session) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return errorResult("id parameter is required"), nil
		}

		var (
			selected bool
			view     stateView
		)
		sess.with(func(svc *application.ConfiguratorService) {
			selected, err = svc.ToggleAccessory(id)
			view = sess.state()
		})
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(map[string]interface{}{
			"accessory": id,
			"selected":  selected,
			"state":     view,
		})
	}
}

func handleNavigate(sess *session) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		action, err := request.RequireString("action")
		if err != nil {
			return errorResult("action parameter is required"), nil
		}
		step, _ := request.GetArguments()["step"].(string)
		if action == "jump" && step == "" {
			return errorResult("step parameter is required for jump"), nil
		}

		var (
			moved bool
			view  stateView
		)
		switch action {
		case "next":
			sess.with(func(svc *application.ConfiguratorService) { moved = svc.Next(); view = sess.state() })
		case "back":
			sess.with(func(svc *application.ConfiguratorService) { moved = svc.Back(); view = sess.state() })
		case "jump":
			sess.with(func(svc *application.ConfiguratorService) { moved = svc.Jump(step); view = sess.state() })
		default:
			return errorResult(fmt.Sprintf("unknown action %q (valid: next, back, jump)", action)), nil
		}
		return jsonResult(map[string]interface{}{
			"moved": moved,
			"state": view,
		})
	}
}

// priceView is a quote with display strings.
type priceView struct {
	domain.PriceBreakdown
	FormattedTotal string `json:"formatted_total"`
}

func handlePrice(sess *session) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		var view priceView
		sess.with(func(svc *application.ConfiguratorService) {
			view.PriceBreakdown = svc.Quote()
		})
		view.FormattedTotal = domain.FormatPrice(view.Total, sess.currency)
		return jsonResult(view)
	}
}

func handleRender(sess *session) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args := request.GetArguments()
		angle, _ := args["angle"].(float64)
		format, _ := args["format"].(string)
		if format == "" {
			format = "svg"
		}

		var (
			doc    []byte
			result *mcplib.CallToolResult
			err    error
		)
		sess.with(func(svc *application.ConfiguratorService) {
			scene := svc.Render(angle)
			switch format {
			case "svg":
				doc = svg.Encode(scene)
			case "json":
				result, err = jsonResult(scene)
			case "inventory":
				result = textResult(tui.RenderInventory(scene))
			}
		})

		switch {
		case doc != nil:
			return textResult(string(doc)), nil
		case result != nil || err != nil:
			return result, err
		default:
			return errorResult(fmt.Sprintf("unknown format %q (valid: svg, json, inventory)", format)), nil
		}
	}
}

// jsonResult marshals v to indented JSON and wraps it in a CallToolResult.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}

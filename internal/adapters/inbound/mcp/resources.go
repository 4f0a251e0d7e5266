package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/luxura/luxura/internal/application"
	"github.com/luxura/luxura/internal/domain"
)

// registerResources registers all luxura MCP resources on the given server.
func registerResources(s *server.MCPServer, sess *session) {
	// 1. luxura://catalog - the option catalog
	s.AddResource(
		mcplib.NewResource(
			"luxura://catalog",
			"Catalog",
			mcplib.WithResourceDescription("Every selectable model, color, wheel, interior and accessory"),
			mcplib.WithMIMEType("application/json"),
		),
		handleCatalogResource(sess),
	)

	// 2. luxura://configuration - current session state
	s.AddResource(
		mcplib.NewResource(
			"luxura://configuration",
			"Configuration",
			mcplib.WithResourceDescription("Current step, selection and total price"),
			mcplib.WithMIMEType("application/json"),
		),
		handleConfigurationResource(sess),
	)

	// 3. luxura://models/{id} - one model (resource template)
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			"luxura://models/{id}",
			"Model",
			mcplib.WithTemplateDescription("Specs and base price of one model"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleModelResource(sess),
	)
}

func handleCatalogResource(sess *session) server.ResourceHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return jsonContents(request.Params.URI, sess.svc.Catalog())
	}
}

func handleConfigurationResource(sess *session) server.ResourceHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		var view stateView
		sess.with(func(*application.ConfiguratorService) { view = sess.state() })
		return jsonContents(request.Params.URI, view)
	}
}

func handleModelResource(sess *session) server.ResourceTemplateHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		id := templateArg(request.Params.Arguments, "id")
		if id == "" {
			return nil, fmt.Errorf("model id is required")
		}

		m, ok := sess.svc.Catalog().Model(id)
		if !ok {
			return nil, fmt.Errorf("model %q: %w", id, domain.ErrUnknownOption)
		}
		return jsonContents(request.Params.URI, m)
	}
}

// templateArg reads a URI template variable. Depending on the matcher it
// arrives as a string or a single-element slice.
func templateArg(args map[string]any, name string) string {
	switch v := args[name].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

func jsonContents(uri string, v interface{}) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling resource: %w", err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

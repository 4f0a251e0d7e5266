package mcp

import (
	"github.com/luxura/luxura/internal/application"
	"github.com/luxura/luxura/internal/domain"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// NewLuxuraMCPServer creates an MCP server holding one configurator session
// over cat, with every luxura tool and resource registered.
func NewLuxuraMCPServer(cat *domain.Catalog, cfg domain.AppConfig, logger *zap.Logger) *server.MCPServer {
	s := server.NewMCPServer(
		"luxura",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	sess := newSession(application.NewConfiguratorService(cat, logger), cfg.Currency)
	registerTools(s, sess)
	registerResources(s, sess)

	return s
}

package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewCleanUMLMCPServer creates a new MCP server with all cleanuml tools and
// resources registered. projectPath is the directory model paths are
// resolved against and where the rule configuration is looked up.
func NewCleanUMLMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"cleanuml",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath)
	registerResources(s, projectPath)

	return s
}

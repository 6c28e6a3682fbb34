package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/openkraft/cleanuml/internal/adapters/outbound/config"
	"github.com/openkraft/cleanuml/internal/application"
)

const rulesURI = "cleanuml://rules"

// registerResources registers all cleanuml MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string) {
	// cleanuml://rules - the rule catalog
	s.AddResource(
		mcplib.NewResource(
			rulesURI,
			"Rule Catalog",
			mcplib.WithResourceDescription("Every validation rule with its category, severity and fix"),
			mcplib.WithMIMEType("application/json"),
		),
		handleRulesResource(projectPath),
	)
}

func handleRulesResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		rules, err := application.NewRulesService(config.New()).ListRules(projectPath, "")
		if err != nil {
			return nil, fmt.Errorf("listing rules: %w", err)
		}

		data, err := json.MarshalIndent(rules, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling rules: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      rulesURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

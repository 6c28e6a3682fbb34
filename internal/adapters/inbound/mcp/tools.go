package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/openkraft/cleanuml/internal/adapters/outbound/baseline"
	"github.com/openkraft/cleanuml/internal/adapters/outbound/config"
	"github.com/openkraft/cleanuml/internal/adapters/outbound/gitinfo"
	"github.com/openkraft/cleanuml/internal/adapters/outbound/history"
	"github.com/openkraft/cleanuml/internal/adapters/outbound/modelfile"
	"github.com/openkraft/cleanuml/internal/adapters/outbound/report"
	"github.com/openkraft/cleanuml/internal/application"
	"github.com/openkraft/cleanuml/internal/domain"
	"github.com/openkraft/cleanuml/internal/logger"
)

// registerTools registers all cleanuml MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. cleanuml_validate
	s.AddTool(
		mcplib.NewTool("cleanuml_validate",
			mcplib.WithDescription("Validates a UML model file against the rule catalog and returns the issues as JSON"),
			mcplib.WithString("model",
				mcplib.Required(),
				mcplib.Description("Path to the model file, relative to the project root"),
			),
			mcplib.WithBoolean("new_only", mcplib.Description("Return only the issues absent from the previous run")),
			mcplib.WithBoolean("report", mcplib.Description("Also write the CSV problems report next to the model")),
		),
		handleValidate(projectPath),
	)

	// 2. cleanuml_list_rules
	s.AddTool(
		mcplib.NewTool("cleanuml_list_rules",
			mcplib.WithDescription("Lists the validation rules in the order they run"),
			mcplib.WithString("nature", mcplib.Description("Keep only the rules applying to this nature: CIM or IEC61850")),
		),
		handleListRules(projectPath),
	)

	// 3. cleanuml_describe_rule
	s.AddTool(
		mcplib.NewTool("cleanuml_describe_rule",
			mcplib.WithDescription("Explains one validation rule: what it detects and how to fix it"),
			mcplib.WithString("rule",
				mcplib.Required(),
				mcplib.Description("Rule ID, e.g. ClassesMissingDoc"),
			),
		),
		handleDescribeRule(projectPath),
	)
}

// newValidateService wires a service per call so that calls share no state.
// Logs go to stderr; stdout carries the protocol.
func newValidateService() *application.ValidateService {
	return application.NewValidateService(
		config.New(),
		modelfile.New(),
		report.New(),
		baseline.New(),
		history.New(),
		gitinfo.New(),
		logger.New("warn", domain.LogFormatConsole).Named(logger.ComponentMCP),
	)
}

func handleValidate(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		model, err := request.RequireString("model")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		if !filepath.IsAbs(model) {
			model = filepath.Join(projectPath, model)
		}

		result, err := newValidateService().ValidateModel(model, application.ValidateOptions{
			NewOnly:  request.GetBool("new_only", false),
			NoReport: !request.GetBool("report", false),
		})
		if err != nil {
			return errorResult(fmt.Sprintf("validation failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func handleListRules(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		svc := application.NewRulesService(config.New())
		rules, err := svc.ListRules(projectPath, request.GetString("nature", ""))
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(rules)
	}
}

func handleDescribeRule(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		id, err := request.RequireString("rule")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc := application.NewRulesService(config.New())
		rule, err := svc.DescribeRule(projectPath, id)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(rule)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}

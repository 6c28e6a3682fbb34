package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openkraft/cleanuml/internal/domain"
)

func callTool(t *testing.T, handler func(context.Context, mcplib.CallToolRequest) (*mcplib.CallToolResult, error), args map[string]any) (string, bool) {
	t.Helper()
	req := mcplib.CallToolRequest{}
	req.Params.Arguments = args
	res, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcplib.TextContent)
	require.True(t, ok)
	return text.Text, res.IsError
}

func projectWithModel(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile("../../../../testdata/models/grid.yaml")
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "grid.yaml"), data, 0644))
	return dir
}

func TestHandleValidate(t *testing.T) {
	dir := projectWithModel(t)

	out, isErr := callTool(t, handleValidate(dir), map[string]any{"model": "grid.yaml"})
	require.False(t, isErr, out)

	var result domain.RunResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, domain.StatusFail, result.Status)
	assert.NotEmpty(t, result.Issues)
	assert.Empty(t, result.ReportPath, "no report unless asked")
	assert.NoFileExists(t, filepath.Join(dir, "problemsReport-grid.csv"))

	out, isErr = callTool(t, handleValidate(dir), map[string]any{"model": "grid.yaml", "new_only": true, "report": true})
	require.False(t, isErr, out)
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Empty(t, result.Issues)
	assert.FileExists(t, filepath.Join(dir, "problemsReport-grid.csv"))
}

func TestHandleValidate_Errors(t *testing.T) {
	dir := t.TempDir()

	out, isErr := callTool(t, handleValidate(dir), map[string]any{})
	assert.True(t, isErr)
	assert.Contains(t, out, "model")

	out, isErr = callTool(t, handleValidate(dir), map[string]any{"model": "missing.yaml"})
	assert.True(t, isErr)
	assert.Contains(t, out, "validation failed")
}

func TestHandleListRules(t *testing.T) {
	dir := t.TempDir()

	out, isErr := callTool(t, handleListRules(dir), map[string]any{})
	require.False(t, isErr, out)
	var all []domain.RuleInfo
	require.NoError(t, json.Unmarshal([]byte(out), &all))
	require.NotEmpty(t, all)

	out, isErr = callTool(t, handleListRules(dir), map[string]any{"nature": "IEC61850"})
	require.False(t, isErr, out)
	var iec []domain.RuleInfo
	require.NoError(t, json.Unmarshal([]byte(out), &iec))
	assert.LessOrEqual(t, len(iec), len(all))

	_, isErr = callTool(t, handleListRules(dir), map[string]any{"nature": "UML"})
	assert.True(t, isErr)
}

func TestHandleDescribeRule(t *testing.T) {
	dir := t.TempDir()

	out, isErr := callTool(t, handleDescribeRule(dir), map[string]any{"rule": "ClassesMissingDoc"})
	require.False(t, isErr, out)
	var rule domain.RuleInfo
	require.NoError(t, json.Unmarshal([]byte(out), &rule))
	assert.Equal(t, "describe the class", rule.HowToFix)

	out, isErr = callTool(t, handleDescribeRule(dir), map[string]any{"rule": "ClassesMisingDoc"})
	assert.True(t, isErr)
	assert.Contains(t, out, "did you mean")
}

func TestHandleRulesResource(t *testing.T) {
	contents, err := handleRulesResource(t.TempDir())(context.Background(), mcplib.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcplib.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, rulesURI, text.URI)
	assert.Contains(t, text.Text, "ClassesMissingDoc")
}

package mcp_test

import (
	"testing"

	mcpadapter "github.com/openkraft/cleanuml/internal/adapters/inbound/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCleanUMLMCPServer(t *testing.T) {
	s := mcpadapter.NewCleanUMLMCPServer(".")
	require.NotNil(t, s)
}

func TestMCPServerHasTools(t *testing.T) {
	s := mcpadapter.NewCleanUMLMCPServer(".")
	require.NotNil(t, s)

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"cleanuml_validate",
		"cleanuml_list_rules",
		"cleanuml_describe_rule",
	}

	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}

	assert.Len(t, tools, len(expectedTools), "should have exactly %d tools", len(expectedTools))
}

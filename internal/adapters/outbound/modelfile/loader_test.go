package modelfile_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openkraft/cleanuml/internal/adapters/outbound/modelfile"
	"github.com/openkraft/cleanuml/internal/domain/uml"
)

func fixture(name string) string {
	return filepath.Join("..", "..", "..", "..", "testdata", "models", name)
}

func TestYAMLLoader_LoadsGridModel(t *testing.T) {
	m, err := modelfile.New().Load(fixture("grid.yaml"))
	require.NoError(t, err)

	assert.Len(t, m.TopPackages(), 2)
	assert.Len(t, m.Packages(), 4)
	assert.Len(t, m.Classes(), 7)
	assert.Len(t, m.Associations(), 1)
	assert.Len(t, m.Dependencies(), 1)
	assert.Len(t, m.Diagrams(), 1)
	assert.Equal(t, fixture("grid.yaml"), m.FilePath())

	sw, ok := m.Lookup("TC57CIM::Wires::Switch").(*uml.Class)
	require.True(t, ok)
	assert.Equal(t, uml.WG14, sw.Owner())
	require.Len(t, sw.Superclasses(), 1)
	assert.Equal(t, "IdentifiedObject", sw.Superclasses()[0].Name())
	require.Len(t, sw.Operations(), 1)
	require.Len(t, sw.Operations()[0].Parameters(), 1)
	assert.Equal(t, uml.In, sw.Operations()[0].Parameters()[0].Direction())
}

func TestYAMLLoader_ResolvesEndsAndDependencies(t *testing.T) {
	m, err := modelfile.New().Load(fixture("grid.yaml"))
	require.NoError(t, err)

	assoc := m.Associations()[0]
	assert.Equal(t, "Terminals", assoc.Source().Name())
	assert.Equal(t, "Terminal", assoc.Source().Type().Name())
	assert.Equal(t, "[0..*]", assoc.Source().Multiplicity().String())
	assert.True(t, assoc.Target().IsNavigable())
	assert.Equal(t, uml.AggregationNone, assoc.Target().Aggregation())

	dep := m.Dependencies()[0]
	require.NotNil(t, dep.Source())
	require.NotNil(t, dep.Target())
	assert.Equal(t, "TC57CIM::Core", dep.Target().QualifiedName())
}

func TestYAMLLoader_NatureAndLiterals(t *testing.T) {
	m, err := modelfile.New().Load(fixture("grid.yaml"))
	require.NoError(t, err)

	xcbr := m.FindClass("XCBR")
	require.NotNil(t, xcbr)
	assert.Equal(t, uml.IEC61850, xcbr.Nature())
	assert.Equal(t, uml.WG10, xcbr.Owner())
	assert.Equal(t, []uml.Tag{{Name: "presCond", Value: "M"}}, xcbr.Attributes()[0].Tags())

	phases := m.FindClass("PhaseCode")
	require.NotNil(t, phases)
	assert.True(t, phases.IsEnumeration())
	require.Len(t, phases.Attributes(), 2)
	assert.True(t, phases.Attributes()[0].IsLiteral())
}

func TestYAMLLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"no packages", "packages: []", "model has no packages"},
		{"malformed", "packages: [", "parsing"},
		{"bad owner", "packages:\n  - name: P\n    owner: WG99", `package "P"`},
		{"bad visibility", "packages:\n  - name: P\n    classes:\n      - name: C\n        visibility: secret", "unknown visibility"},
		{"bad direction", "packages:\n  - name: P\n    classes:\n      - name: C\n        operations:\n          - name: op\n            parameters:\n              - name: x\n                direction: sideways", "unknown direction"},
		{"bad aggregation", "packages:\n  - name: P\n    associations:\n      - name: A\n        source: {type: C, aggregation: weird}", "association \"A\" source"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := modelfile.Parse("model.yaml", []byte(tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestYAMLLoader_UnknownNatureInFile(t *testing.T) {
	_, err := modelfile.New().Load(fixture("broken.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.yaml")
}

func TestYAMLLoader_MissingFile(t *testing.T) {
	_, err := modelfile.New().Load(fixture("nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading model")
}

package application

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openkraft/cleanuml/internal/adapters/outbound/baseline"
	"github.com/openkraft/cleanuml/internal/adapters/outbound/config"
	"github.com/openkraft/cleanuml/internal/adapters/outbound/history"
	"github.com/openkraft/cleanuml/internal/adapters/outbound/modelfile"
	"github.com/openkraft/cleanuml/internal/adapters/outbound/report"
	"github.com/openkraft/cleanuml/internal/domain"
)

type fakeGit struct {
	rev string
	err error
}

func (g fakeGit) Revision(string) (string, error) { return g.rev, g.err }

func newValidateService(git domain.GitInfo) *ValidateService {
	return NewValidateService(config.New(), modelfile.New(), report.New(), baseline.New(), history.New(), git, nil)
}

// copyModel puts the grid fixture in a fresh directory so that reports,
// baselines and history do not leak between tests.
func copyModel(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile("../../testdata/models/grid.yaml")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "grid.yaml")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func ruleIDs(records []domain.IssueRecord) []string {
	var ids []string
	for _, r := range records {
		ids = append(ids, r.Rule)
	}
	return ids
}

func TestValidateModel_FirstRun(t *testing.T) {
	svc := newValidateService(fakeGit{rev: "abc1234"})
	model := copyModel(t)

	result, err := svc.ValidateModel(model, ValidateOptions{})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusFail, result.Status)
	assert.Contains(t, ruleIDs(result.Issues), "ClassesWithLeadingLowerCase")
	assert.Contains(t, ruleIDs(result.Issues), "ClassesMissingDoc")
	assert.Equal(t, len(result.Issues), result.Counts.Total())
	assert.Equal(t, result.Counts.Total(), result.NewIssues, "every issue is new without a baseline")
	assert.Len(t, result.Kinds, 7)
	assert.Equal(t, "abc1234", result.Revision)

	assert.Equal(t, filepath.Join(filepath.Dir(model), "problemsReport-grid.csv"), result.ReportPath)
	assert.FileExists(t, result.ReportPath)
}

func TestValidateModel_SecondRunHasNoNewIssues(t *testing.T) {
	svc := newValidateService(nil)
	model := copyModel(t)

	first, err := svc.ValidateModel(model, ValidateOptions{})
	require.NoError(t, err)

	second, err := svc.ValidateModel(model, ValidateOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, second.NewIssues)
	assert.Equal(t, first.Counts, second.Counts)

	newOnly, err := svc.ValidateModel(model, ValidateOptions{NewOnly: true})
	require.NoError(t, err)
	assert.Empty(t, newOnly.Issues)
	assert.Equal(t, domain.StatusPass, newOnly.Status)
}

func TestValidateModel_NewOnlyShowsAddedProblems(t *testing.T) {
	svc := newValidateService(nil)
	model := copyModel(t)

	_, err := svc.ValidateModel(model, ValidateOptions{})
	require.NoError(t, err)

	f, err := os.OpenFile(model, os.O_APPEND|os.O_WRONLY, 0644)
	require.NoError(t, err)
	_, err = f.WriteString("      - name: Undocumented\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	result, err := svc.ValidateModel(model, ValidateOptions{NewOnly: true})
	require.NoError(t, err)
	require.NotEmpty(t, result.Issues)
	for _, r := range result.Issues {
		assert.True(t, r.New)
		assert.Contains(t, r.QualifiedName, "Undocumented")
	}
	assert.Equal(t, len(result.Issues), result.NewIssues)
}

func TestValidateModel_ConfigChangeInvalidatesBaseline(t *testing.T) {
	svc := newValidateService(nil)
	model := copyModel(t)

	_, err := svc.ValidateModel(model, ValidateOptions{})
	require.NoError(t, err)

	cfg := domain.DefaultConfig()
	cfg.Skip.Rules = []string{"ClassesWithBadDocEnd"}
	result, err := svc.ValidateModel(model, ValidateOptions{Config: &cfg})
	require.NoError(t, err)
	assert.Equal(t, result.Counts.Total(), result.NewIssues)
	assert.NotContains(t, ruleIDs(result.Issues), "ClassesWithBadDocEnd")
}

func TestValidateModel_NoReport(t *testing.T) {
	svc := newValidateService(nil)
	model := copyModel(t)

	result, err := svc.ValidateModel(model, ValidateOptions{NoReport: true})
	require.NoError(t, err)
	assert.Empty(t, result.ReportPath)
	assert.NoFileExists(t, filepath.Join(filepath.Dir(model), "problemsReport-grid.csv"))
}

func TestValidateModel_ReportDisabledInConfig(t *testing.T) {
	svc := newValidateService(nil)
	model := copyModel(t)
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(model), config.FileName), []byte("report:\n  disabled: true\n"), 0644))

	result, err := svc.ValidateModel(model, ValidateOptions{})
	require.NoError(t, err)
	assert.Empty(t, result.ReportPath)
}

func TestValidateModel_RecordsHistory(t *testing.T) {
	svc := newValidateService(fakeGit{err: errors.New("not a repository")})
	model := copyModel(t)

	for i := 0; i < 2; i++ {
		_, err := svc.ValidateModel(model, ValidateOptions{})
		require.NoError(t, err)
	}

	entries, err := svc.History(model)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "grid.yaml", entries[0].Model)
	assert.Equal(t, domain.StatusFail, entries[1].Status)
	assert.Empty(t, entries[0].Revision)
	assert.Positive(t, entries[0].High)

	other, err := svc.History(filepath.Join(filepath.Dir(model), "other.yaml"))
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestValidateModel_Errors(t *testing.T) {
	svc := newValidateService(nil)

	_, err := svc.ValidateModel(filepath.Join(t.TempDir(), "missing.yaml"), ValidateOptions{})
	assert.ErrorContains(t, err, "loading model")

	model := copyModel(t)
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(model), config.FileName), []byte("skip:\n  kinds: [widget]\n"), 0644))
	_, err = svc.ValidateModel(model, ValidateOptions{})
	assert.ErrorContains(t, err, "loading config")
}

func TestValidateModel_WithoutOptionalStores(t *testing.T) {
	svc := NewValidateService(config.New(), modelfile.New(), report.New(), nil, nil, nil, nil)
	model := copyModel(t)

	result, err := svc.ValidateModel(model, ValidateOptions{NoReport: true})
	require.NoError(t, err)
	assert.Equal(t, 0, result.NewIssues)
	assert.NotEmpty(t, result.Issues)

	entries, err := svc.History(model)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestConfigHash(t *testing.T) {
	a := domain.DefaultConfig()
	b := domain.DefaultConfig()
	b.Verbose = true
	b.Log.Level = "debug"
	assert.Equal(t, ConfigHash(a), ConfigHash(b), "output settings do not change the hash")

	b.Skip.Rules = []string{"ClassesMissingDoc"}
	assert.NotEqual(t, ConfigHash(a), ConfigHash(b))
}

func TestValidateModel_GrowingDuplicateGroupKeepsKnownMembers(t *testing.T) {
	svc := newValidateService(nil)
	model := filepath.Join(t.TempDir(), "twins.yaml")
	pkg := func(name string) string {
		return "  - name: " + name + "\n    nature: CIM\n    owner: WG13\n    classes:\n      - name: Twin\n"
	}
	require.NoError(t, os.WriteFile(model, []byte("packages:\n"+pkg("A")+pkg("B")), 0644))

	_, err := svc.ValidateModel(model, ValidateOptions{NoReport: true})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(model, []byte("packages:\n"+pkg("A")+pkg("B")+pkg("C")), 0644))
	result, err := svc.ValidateModel(model, ValidateOptions{NoReport: true, NewOnly: true})
	require.NoError(t, err)

	var duplicates []string
	for _, r := range result.Issues {
		if r.Rule == "ClassesWithSameName" {
			duplicates = append(duplicates, r.QualifiedName)
		}
	}
	assert.Equal(t, []string{"C::Twin"}, duplicates, "only the class joining the group is new")
}

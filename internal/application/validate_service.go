package application

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/openkraft/cleanuml/internal/domain"
	"github.com/openkraft/cleanuml/internal/domain/uml"
	"github.com/openkraft/cleanuml/internal/domain/validation"
)

// ValidateOptions tunes one validation run.
type ValidateOptions struct {
	// Config replaces the configuration found next to the model.
	Config *domain.Config
	// Verbose logs the rules that found nothing at info level.
	Verbose bool
	// NoReport disables the CSV report for this run.
	NoReport bool
	// NewOnly keeps only the issues absent from the previous run.
	NewOnly bool
}

// ValidateService runs the rule catalog over a model file and records the
// outcome: CSV report, baseline of issue fingerprints and run history.
type ValidateService struct {
	configLoader domain.ConfigLoader
	modelLoader  domain.ModelLoader
	reports      domain.ReportWriter
	baselines    domain.BaselineStore
	history      domain.RunHistory
	git          domain.GitInfo
	log          *zap.Logger
}

// NewValidateService creates a ValidateService. baselines, history and git
// may be nil to disable the corresponding feature.
func NewValidateService(
	configLoader domain.ConfigLoader,
	modelLoader domain.ModelLoader,
	reports domain.ReportWriter,
	baselines domain.BaselineStore,
	history domain.RunHistory,
	git domain.GitInfo,
	log *zap.Logger,
) *ValidateService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ValidateService{
		configLoader: configLoader, modelLoader: modelLoader, reports: reports,
		baselines: baselines, history: history, git: git, log: log,
	}
}

// ValidateModel loads the model at modelPath, validates it and returns the
// run summary. Only configuration and model loading errors are fatal.
func (s *ValidateService) ValidateModel(modelPath string, opts ValidateOptions) (*domain.RunResult, error) {
	// 1. Load config
	var cfg domain.Config
	if opts.Config != nil {
		cfg = *opts.Config
	} else {
		loaded, err := s.configLoader.Load(filepath.Dir(modelPath))
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}
	if opts.Verbose {
		cfg.Verbose = true
	}

	// 2. Load model
	model, err := s.modelLoader.Load(modelPath)
	if err != nil {
		return nil, fmt.Errorf("loading model: %w", err)
	}

	// 3. Validate
	mv := validation.NewModelValidator(model, cfg, s.log)
	if unknown := mv.UnknownSkippedRules(); len(unknown) > 0 {
		s.log.Warn("skipped rules not in catalog", zap.Strings("rules", unknown))
	}
	mv.Validate()
	records := mv.Issues().Records()

	// 4. Compare with the previous run
	newCount := s.markNew(modelPath, cfg, records)
	if opts.NewOnly {
		records = onlyNew(records)
	}

	var counts domain.SeverityCounts
	for _, r := range records {
		counts.Add(r.Severity)
	}

	result := &domain.RunResult{
		Model:     modelPath,
		Timestamp: time.Now().UTC(),
		Status:    domain.StatusFor(counts),
		Kinds:     mv.Runs(),
		Counts:    counts,
		Issues:    records,
		NewIssues: newCount,
	}

	// 5. Report
	if !cfg.Report.Disabled && !opts.NoReport {
		result.ReportPath = mv.SaveReport(s.reports, cfg.Report.Dir)
	}

	// 6. History
	if s.git != nil {
		if rev, err := s.git.Revision(modelPath); err == nil {
			result.Revision = rev
		} else {
			s.log.Debug("no revision", zap.Error(err))
		}
	}
	if s.history != nil {
		_ = s.history.Save(filepath.Dir(modelPath), entryFor(result))
	}

	return result, nil
}

// History returns the recorded runs of the model at modelPath, oldest first.
func (s *ValidateService) History(modelPath string) ([]domain.RunEntry, error) {
	if s.history == nil {
		return nil, nil
	}
	entries, err := s.history.Load(filepath.Dir(modelPath))
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	model := filepath.Base(modelPath)
	var out []domain.RunEntry
	for _, e := range entries {
		if e.Model == model {
			out = append(out, e)
		}
	}
	return out, nil
}

// markNew flags the records missing from the stored baseline, replaces the
// baseline and returns the number of new records. Without a usable baseline
// every record is new.
func (s *ValidateService) markNew(modelPath string, cfg domain.Config, records []domain.IssueRecord) int {
	if s.baselines == nil {
		return 0
	}
	configHash := ConfigHash(cfg)

	prev, err := s.baselines.Load(modelPath)
	if err != nil {
		s.log.Debug("baseline unreadable", zap.Error(err))
		prev = nil
	}
	if prev != nil && prev.IsInvalidated(configHash) {
		s.log.Debug("baseline invalidated by configuration change")
		_ = s.baselines.Invalidate(modelPath)
		prev = nil
	}

	count := 0
	fingerprints := make([]string, 0, len(records))
	for i := range records {
		fp := records[i].Fingerprint()
		fingerprints = append(fingerprints, fp)
		if prev == nil || !prev.Contains(fp) {
			records[i].New = true
			count++
		}
	}

	_ = s.baselines.Save(&domain.Baseline{
		ModelPath:    modelPath,
		ModelHash:    fileHash(modelPath),
		ConfigHash:   configHash,
		Fingerprints: fingerprints,
	})
	return count
}

func onlyNew(records []domain.IssueRecord) []domain.IssueRecord {
	out := make([]domain.IssueRecord, 0, len(records))
	for _, r := range records {
		if r.New {
			out = append(out, r)
		}
	}
	return out
}

func entryFor(r *domain.RunResult) domain.RunEntry {
	return domain.RunEntry{
		Timestamp: r.Timestamp.Format(time.RFC3339),
		Revision:  r.Revision,
		Model:     filepath.Base(r.Model),
		Status:    r.Status,
		High:      r.Counts.High,
		Medium:    r.Counts.Medium,
		Low:       r.Counts.Low,
	}
}

// ConfigHash fingerprints the settings that change which issues are found.
func ConfigHash(cfg domain.Config) string {
	relevant := struct {
		Skip            domain.SkipConfig
		Scope           []uml.OwningGroup
		VersionPackages map[uml.Nature][]string
	}{cfg.Skip, cfg.Scope, cfg.VersionPackages}
	data, err := json.Marshal(relevant)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%x", sha256.Sum256(data))
}

func fileHash(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h)
}

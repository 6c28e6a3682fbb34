package domain

import "github.com/openkraft/cleanuml/internal/domain/uml"

// ConfigLoader loads validation settings for a model directory.
type ConfigLoader interface {
	Load(dir string) (Config, error)
}

// ModelLoader builds a model from a file.
type ModelLoader interface {
	Load(path string) (*uml.Model, error)
}

// ReportWriter persists a rendered problems report.
type ReportWriter interface {
	Write(path string, content []byte) error
}

// RunHistory records one entry per validation run.
type RunHistory interface {
	Save(dir string, entry RunEntry) error
	Load(dir string) ([]RunEntry, error)
}

// BaselineStore keeps the issues of the previous run of a model.
type BaselineStore interface {
	Load(modelPath string) (*Baseline, error)
	Save(b *Baseline) error
	Invalidate(modelPath string) error
}

// GitInfo reports the revision of the repository holding a file.
type GitInfo interface {
	Revision(path string) (string, error)
}

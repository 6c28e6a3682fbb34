package domain

// Baseline is the set of issue fingerprints found by the previous run of a
// model, together with the hashes of the inputs that produced it.
type Baseline struct {
	ModelPath    string   `json:"model_path"`
	ModelHash    string   `json:"model_hash"`
	ConfigHash   string   `json:"config_hash"`
	Fingerprints []string `json:"fingerprints"`
}

// IsInvalidated reports whether a different rule configuration produced the
// baseline. A changed model does not invalidate it: that is what it diffs.
func (b *Baseline) IsInvalidated(configHash string) bool {
	return b.ConfigHash != configHash
}

// Contains reports whether the fingerprint was already known.
func (b *Baseline) Contains(fingerprint string) bool {
	for _, f := range b.Fingerprints {
		if f == fingerprint {
			return true
		}
	}
	return false
}

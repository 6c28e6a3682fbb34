package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openkraft/cleanuml/internal/domain"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		counts domain.SeverityCounts
		want   string
	}{
		{domain.SeverityCounts{}, domain.StatusPass},
		{domain.SeverityCounts{Low: 3}, domain.StatusWarn},
		{domain.SeverityCounts{Medium: 1, Low: 1}, domain.StatusWarn},
		{domain.SeverityCounts{High: 1, Low: 9}, domain.StatusFail},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.StatusFor(tt.counts), "%+v", tt.counts)
	}
}

func TestSeverityCounts_Add(t *testing.T) {
	var c domain.SeverityCounts
	c.Add(domain.SeverityHigh)
	c.Add(domain.SeverityLow)
	c.Add(domain.SeverityLow)
	c.Add("bogus")
	assert.Equal(t, domain.SeverityCounts{High: 1, Low: 2}, c)
	assert.Equal(t, 3, c.Total())
}

func TestIssueRecord_Fingerprint(t *testing.T) {
	a := domain.IssueRecord{Rule: "R", QualifiedName: "P::C", Evidence: "x"}
	b := a
	b.Subject = "class C"
	c := a
	c.Evidence = "y"

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestIssueRecord_FingerprintIgnoresGroupEvidence(t *testing.T) {
	before := domain.IssueRecord{Rule: "ClassesWithSameName", QualifiedName: "P::A", GroupTag: "A", Evidence: "also Q::A"}
	after := before
	after.Evidence = "also Q::A, R::A"
	other := before
	other.GroupTag = "B"

	assert.Equal(t, before.Fingerprint(), after.Fingerprint(), "a growing group keeps known members")
	assert.NotEqual(t, before.Fingerprint(), other.Fingerprint())
}

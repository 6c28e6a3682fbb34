package validation

import (
	"go.uber.org/zap"

	"github.com/openkraft/cleanuml/internal/domain"
	"github.com/openkraft/cleanuml/internal/domain/uml"
)

// KindValidator is the kind-independent view of a Validator.
type KindValidator interface {
	Kind() uml.Kind
	Enabled() bool
	Validate()
	Run() domain.KindRun
	RuleSummaries() []domain.RuleInfo
	RuleSummariesFor(n uml.Nature) []domain.RuleInfo
	RuleIDs() []string
}

// Validator runs the rules registered for one element kind over the objects
// of that kind that are in the configured scope.
type Validator[T uml.Object] struct {
	kind    uml.Kind
	label   string
	cfg     domain.Config
	enabled bool
	total   int
	scoped  []T
	issues  *Issues
	log     *zap.Logger

	allSimple     []SimpleRule[T]
	allCross      []CrossRule[T]
	checkedSimple []SimpleRule[T]
	checkedCross  []CrossRule[T]

	// order keeps every checked rule in registration order for diagnosis.
	order []Rule
}

// NewValidator scopes all to the owning groups enabled in cfg. The scope is
// computed once and keeps the order of all.
func NewValidator[T uml.Object](kind uml.Kind, label string, all []T, cfg domain.Config, issues *Issues, log *zap.Logger) *Validator[T] {
	if log == nil {
		log = zap.NewNop()
	}
	v := &Validator[T]{
		kind:    kind,
		label:   label,
		cfg:     cfg,
		enabled: !cfg.IsSkippedKind(kind),
		total:   len(all),
		issues:  issues,
		log:     log.Named(string(kind)),
	}
	for _, o := range all {
		if cfg.InScope(o.Owner()) {
			v.scoped = append(v.scoped, o)
		}
	}
	return v
}

func (v *Validator[T]) Kind() uml.Kind { return v.kind }
func (v *Validator[T]) Enabled() bool { return v.enabled }
func (v *Validator[T]) Total() int { return v.total }

// ScopedObjects returns the objects this validator checks.
func (v *Validator[T]) ScopedObjects() []T { return append([]T(nil), v.scoped...) }

func (v *Validator[T]) CollectedIssues() *Issues { return v.issues }

func (v *Validator[T]) AllSimpleRules() []SimpleRule[T] {
	return append([]SimpleRule[T](nil), v.allSimple...)
}

func (v *Validator[T]) AllCrossRules() []CrossRule[T] {
	return append([]CrossRule[T](nil), v.allCross...)
}

func (v *Validator[T]) CheckedSimpleRules() []SimpleRule[T] {
	return append([]SimpleRule[T](nil), v.checkedSimple...)
}

func (v *Validator[T]) CheckedCrossRules() []CrossRule[T] {
	return append([]CrossRule[T](nil), v.checkedCross...)
}

// AddSimpleRule registers r and reports whether it will be checked, that is
// whether configuration does not disable its ID.
func (v *Validator[T]) AddSimpleRule(r SimpleRule[T]) bool {
	v.allSimple = append(v.allSimple, r)
	if v.cfg.IsSkippedRule(r.ID()) {
		return false
	}
	v.checkedSimple = append(v.checkedSimple, r)
	v.order = append(v.order, r)
	return true
}

// AddCrossRule is AddSimpleRule for cross rules.
func (v *Validator[T]) AddCrossRule(r CrossRule[T]) bool {
	v.allCross = append(v.allCross, r)
	if v.cfg.IsSkippedRule(r.ID()) {
		return false
	}
	v.checkedCross = append(v.checkedCross, r)
	v.order = append(v.order, r)
	return true
}

// Validate runs every checked simple rule over each scoped object, then
// every checked cross rule over the scoped collection, then logs the
// diagnosis of each checked rule. Rules only see objects of the natures
// they apply to. Cross rules are not run on an empty scope.
func (v *Validator[T]) Validate() {
	if !v.enabled {
		return
	}
	v.log.Info("validating "+v.label,
		zap.Int("scoped", len(v.scoped)),
		zap.Int("total", v.total),
		zap.Int("rules", len(v.order)))

	for _, o := range v.scoped {
		for _, r := range v.checkedSimple {
			if r.AppliesTo(o.Nature()) {
				r.Validate(o, v.issues)
			}
		}
	}
	if len(v.scoped) > 0 {
		for _, r := range v.checkedCross {
			if applicable := v.applicable(r); len(applicable) > 0 {
				r.ValidateAll(applicable, v.issues)
			}
		}
	}

	for _, r := range v.order {
		r.LogDiagnosis(v.log, v.cfg.Verbose, v.issues)
	}
}

func (v *Validator[T]) applicable(r Rule) []T {
	out := make([]T, 0, len(v.scoped))
	for _, o := range v.scoped {
		if r.AppliesTo(o.Nature()) {
			out = append(out, o)
		}
	}
	return out
}

// Run summarizes this validator for reporting.
func (v *Validator[T]) Run() domain.KindRun {
	return domain.KindRun{
		Kind:    string(v.kind),
		Enabled: v.enabled,
		Scoped:  len(v.scoped),
		Total:   v.total,
		Rules:   len(v.allSimple) + len(v.allCross),
		Checked: len(v.order),
	}
}

// RuleSummaries describes every registered rule, checked or not.
func (v *Validator[T]) RuleSummaries() []domain.RuleInfo {
	return v.summaries(func(Rule) bool { return true })
}

// RuleSummariesFor describes the registered rules applying to nature n.
func (v *Validator[T]) RuleSummariesFor(n uml.Nature) []domain.RuleInfo {
	return v.summaries(func(r Rule) bool { return r.AppliesTo(n) })
}

func (v *Validator[T]) RuleIDs() []string {
	ids := make([]string, 0, len(v.allSimple)+len(v.allCross))
	for _, r := range v.allRules() {
		ids = append(ids, r.ID())
	}
	return ids
}

func (v *Validator[T]) allRules() []Rule {
	out := make([]Rule, 0, len(v.allSimple)+len(v.allCross))
	for _, r := range v.allSimple {
		out = append(out, r)
	}
	for _, r := range v.allCross {
		out = append(out, r)
	}
	return out
}

func (v *Validator[T]) summaries(keep func(Rule) bool) []domain.RuleInfo {
	var out []domain.RuleInfo
	for _, r := range v.allRules() {
		if !keep(r) {
			continue
		}
		out = append(out, Describe(r, v.kind, !v.cfg.IsSkippedRule(r.ID())))
	}
	return out
}

// Describe converts a rule to its documentation form.
func Describe(r Rule, kind uml.Kind, checked bool) domain.RuleInfo {
	natures := make([]string, 0, len(r.Natures()))
	for _, n := range r.Natures() {
		natures = append(natures, string(n))
	}
	return domain.RuleInfo{
		ID:         r.ID(),
		Kind:       string(kind),
		Category:   string(r.Category()),
		Severity:   string(r.Severity()),
		Hypothesis: r.Hypothesis(),
		HowToFix:   r.HowToFix(),
		Natures:    natures,
		Checked:    checked,
	}
}

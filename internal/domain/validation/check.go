package validation

import (
	"sort"
	"strings"

	"github.com/openkraft/cleanuml/internal/domain/uml"
)

// Check is a simple rule from a single predicate. A violation yields one
// issue on the checked object.
type Check[T uml.Object] struct {
	Definition
	fn func(obj T) (evidence string, violated bool)
}

func NewCheck[T uml.Object](def Definition, fn func(obj T) (evidence string, violated bool)) *Check[T] {
	return &Check[T]{Definition: def, fn: fn}
}

func (c *Check[T]) Validate(obj T, issues *Issues) {
	if evidence, violated := c.fn(obj); violated {
		issues.Add(obj, c.NewIssue(obj, WithEvidence(evidence)))
	}
}

// Reporter records one issue on subject for the rule that received it.
type Reporter func(subject uml.Object, opts ...IssueOption)

func (d *Definition) reporter(issues *Issues) Reporter {
	return func(subject uml.Object, opts ...IssueOption) {
		issues.Add(subject, d.NewIssue(subject, opts...))
	}
}

// Inspection is a simple rule that may report several issues per object,
// possibly on related objects.
type Inspection[T uml.Object] struct {
	Definition
	fn func(obj T, report Reporter)
}

func NewInspection[T uml.Object](def Definition, fn func(obj T, report Reporter)) *Inspection[T] {
	return &Inspection[T]{Definition: def, fn: fn}
}

func (i *Inspection[T]) Validate(obj T, issues *Issues) {
	i.fn(obj, i.reporter(issues))
}

// CrossCheck is a cross rule from a function over the scoped collection and
// the reference collection.
type CrossCheck[T uml.Object] struct {
	Definition
	against []T
	fn      func(scoped, against []T, report Reporter)
}

// NewCrossCheck builds a cross rule. A nil against makes the scoped
// collection its own reference.
func NewCrossCheck[T uml.Object](def Definition, against []T, fn func(scoped, against []T, report Reporter)) *CrossCheck[T] {
	return &CrossCheck[T]{Definition: def, against: against, fn: fn}
}

func (c *CrossCheck[T]) ObjectsToTestAgainst() []T { return c.against }

func (c *CrossCheck[T]) ValidateAll(scoped []T, issues *Issues) {
	against := c.against
	if against == nil {
		against = scoped
	}
	c.fn(scoped, against, c.reporter(issues))
}

// DuplicateNames reports every scoped object whose key is shared with
// another object of the reference collection. All members of a group share
// the key as group tag; the evidence lists the other members. Empty keys are
// ignored.
func DuplicateNames[T uml.Object](def Definition, against []T, key func(T) string) *CrossCheck[T] {
	return NewCrossCheck(def, against, func(scoped, against []T, report Reporter) {
		groups := make(map[string][]T)
		seen := make(map[uml.Object]bool)
		add := func(o T) {
			k := key(o)
			if k == "" || seen[o] {
				return
			}
			seen[o] = true
			groups[k] = append(groups[k], o)
		}
		for _, o := range against {
			add(o)
		}
		for _, o := range scoped {
			add(o)
		}

		for _, o := range scoped {
			k := key(o)
			group := groups[k]
			if k == "" || len(group) < 2 {
				continue
			}
			var others []string
			for _, x := range group {
				if uml.Object(x) != uml.Object(o) {
					others = append(others, x.QualifiedName())
				}
			}
			sort.Strings(others)
			report(o, WithGroupTag(k), WithEvidence("also "+strings.Join(others, ", ")))
		}
	})
}

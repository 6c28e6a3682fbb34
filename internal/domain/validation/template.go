package validation

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/openkraft/cleanuml/internal/domain/uml"
)

const (
	maxEvidenceRunes = 40
	maxSuggestion    = 2
)

// allowedDocStarts are the punctuation marks a description may start with.
const allowedDocStarts = `'"(`

// TemplateRule is a simple rule built from a per-object check and three
// hooks. When the sub-object extractor yields objects that are not skipped,
// those are checked instead of the container; otherwise the container is
// checked unless skipped.
type TemplateRule[T uml.Object] struct {
	Definition
	check          func(o uml.Object) (evidence string, violated bool)
	subObjects     func(T) []uml.Object
	skipSubObjects func(T) bool
	skip           func(T) bool
}

// TemplateOption customizes the hooks of a TemplateRule.
type TemplateOption[T uml.Object] func(*TemplateRule[T])

// WithSubObjects checks the objects returned by fn, for instance the ends of
// an association, instead of the container.
func WithSubObjects[T uml.Object](fn func(T) []uml.Object) TemplateOption[T] {
	return func(r *TemplateRule[T]) { r.subObjects = fn }
}

// SkipSubObjectsWhen falls back to checking the container when fn is true.
func SkipSubObjectsWhen[T uml.Object](fn func(T) bool) TemplateOption[T] {
	return func(r *TemplateRule[T]) { r.skipSubObjects = fn }
}

// SkipWhen excludes containers that cannot violate the rule.
func SkipWhen[T uml.Object](fn func(T) bool) TemplateOption[T] {
	return func(r *TemplateRule[T]) { r.skip = fn }
}

func newTemplate[T uml.Object](def Definition, check func(uml.Object) (string, bool), opts []TemplateOption[T]) *TemplateRule[T] {
	r := &TemplateRule[T]{
		Definition:     def,
		check:          check,
		subObjects:     func(T) []uml.Object { return nil },
		skipSubObjects: func(T) bool { return false },
		skip:           func(T) bool { return false },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *TemplateRule[T]) Validate(obj T, issues *Issues) {
	if !r.skipSubObjects(obj) {
		if subs := r.subObjects(obj); len(subs) > 0 {
			for _, s := range subs {
				r.checkOne(s, issues)
			}
			return
		}
	}
	if r.skip(obj) {
		return
	}
	r.checkOne(obj, issues)
}

func (r *TemplateRule[T]) checkOne(o uml.Object, issues *Issues) {
	if isNil(o) {
		return
	}
	if evidence, violated := r.check(o); violated {
		issues.Add(o, r.NewIssue(o, WithEvidence(evidence)))
	}
}

// UnallowedStereotype flags objects carrying stereotype tokens outside the
// allow-list of their nature. A nature without an entry allows nothing.
func UnallowedStereotype[T uml.Object](def Definition, allowed map[uml.Nature][]string, opts ...TemplateOption[T]) *TemplateRule[T] {
	return newTemplate(def, func(o uml.Object) (string, bool) {
		bad := o.Stereotype().TokensOutside(allowed[o.Nature()])
		return strings.Join(bad, ", "), len(bad) > 0
	}, opts)
}

// UnallowedTagNames flags objects carrying tags unknown for their nature.
// The evidence suggests the closest known name when it is a likely typo.
func UnallowedTagNames[T uml.Object](def Definition, known map[uml.Nature][]string, opts ...TemplateOption[T]) *TemplateRule[T] {
	return newTemplate(def, func(o uml.Object) (string, bool) {
		names := known[o.Nature()]
		var bad []string
		for _, tag := range o.TagNames() {
			if containsFold(names, tag) {
				continue
			}
			if s := suggest(tag, names); s != "" {
				tag = fmt.Sprintf("%s (did you mean %s?)", tag, s)
			}
			bad = append(bad, tag)
		}
		return strings.Join(bad, ", "), len(bad) > 0
	}, opts)
}

// MissingDoc flags normative objects without description.
func MissingDoc[T uml.Object](def Definition, opts ...TemplateOption[T]) *TemplateRule[T] {
	return newTemplate(def, func(o uml.Object) (string, bool) {
		return "", !o.IsInformative() && strings.TrimSpace(o.Doc()) == ""
	}, opts)
}

// BadDocStart flags descriptions that start neither with an upper-case
// letter nor with one of ' " (.
func BadDocStart[T uml.Object](def Definition, opts ...TemplateOption[T]) *TemplateRule[T] {
	return newTemplate(def, func(o uml.Object) (string, bool) {
		doc := strings.TrimSpace(o.Doc())
		if doc == "" {
			return "", false
		}
		first, _ := utf8.DecodeRuneInString(doc)
		if unicode.IsUpper(first) || strings.ContainsRune(allowedDocStarts, first) {
			return "", false
		}
		return truncate(doc), true
	}, opts)
}

// BadDocEnd flags descriptions that do not end with a period.
func BadDocEnd[T uml.Object](def Definition, opts ...TemplateOption[T]) *TemplateRule[T] {
	return newTemplate(def, func(o uml.Object) (string, bool) {
		doc := strings.TrimSpace(o.Doc())
		if doc == "" || strings.HasSuffix(doc, ".") {
			return "", false
		}
		return truncate(doc), true
	}, opts)
}

// BadCharacterInName flags names with characters the pattern rejects.
func BadCharacterInName[T uml.Object](def Definition, pattern NamePattern, opts ...TemplateOption[T]) *TemplateRule[T] {
	return newTemplate(def, func(o uml.Object) (string, bool) {
		bad := pattern.InvalidCharacters(o.Name())
		return bad, bad != ""
	}, opts)
}

// truncate shortens long text for evidence, keeping whole runes.
func truncate(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= maxEvidenceRunes {
		return s
	}
	return string([]rune(s)[:maxEvidenceRunes]) + "..."
}

func suggest(name string, known []string) string {
	best, bestDist := "", maxSuggestion+1
	for _, k := range known {
		d := fuzzy.LevenshteinDistance(strings.ToLower(name), strings.ToLower(k))
		if d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}

func containsFold(list []string, s string) bool {
	for _, x := range list {
		if strings.EqualFold(x, s) {
			return true
		}
	}
	return false
}

// isNil also catches typed nil pointers stored in an interface.
func isNil(o any) bool {
	if o == nil {
		return true
	}
	v := reflect.ValueOf(o)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openkraft/cleanuml/internal/domain/uml"
	"github.com/openkraft/cleanuml/internal/domain/validation"
)

func TestMissingDoc(t *testing.T) {
	f := newFixture(t)
	normative := f.class(f.cim, "Normative", "")
	informative := f.class(f.cim, "Informative", "", uml.StereoInformative)
	documented := f.class(f.cim, "Documented", "Has a doc.")

	rule := validation.MissingDoc[*uml.Class](testRule("ClassesMissingDoc"))
	issues := validation.NewIssues()
	for _, c := range []*uml.Class{normative, informative, documented} {
		rule.Validate(c, issues)
	}

	require.Equal(t, 1, issues.Len())
	assert.Len(t, issues.For(normative), 1)
	assert.Empty(t, issues.For(informative))
	assert.Empty(t, issues.For(documented))
}

func TestMissingDoc_InheritsInformativeFromContainer(t *testing.T) {
	f := newFixture(t)
	pkg := f.model.AddPackage(f.cim, uml.Spec{Name: "Examples", Stereotypes: []string{"informative"}})
	c := f.class(pkg, "Example", "")

	issues := validation.NewIssues()
	validation.MissingDoc[*uml.Class](testRule("R")).Validate(c, issues)

	assert.Equal(t, 0, issues.Len())
}

func TestBadDocStart(t *testing.T) {
	tests := []struct {
		doc      string
		violated bool
	}{
		{"'ok start'", false},
		{"\"Quoted\" start.", false},
		{"(see IEC 61970).", false},
		{"Upper start.", false},
		{"", false},
		{"lowercase start.", true},
		{"  lowercase after blanks.", true},
		{"1 starts with digit.", true},
	}
	for _, tt := range tests {
		t.Run(tt.doc, func(t *testing.T) {
			f := newFixture(t)
			c := f.class(f.cim, "C", tt.doc)
			issues := validation.NewIssues()

			validation.BadDocStart[*uml.Class](testRule("R")).Validate(c, issues)

			if !tt.violated {
				assert.Equal(t, 0, issues.Len())
				return
			}
			require.Equal(t, 1, issues.Len())
			assert.Contains(t, tt.doc, issues.All()[0].Evidence())
		})
	}
}

func TestBadDocStart_TruncatesEvidence(t *testing.T) {
	f := newFixture(t)
	doc := "a description that is much longer than the forty characters kept as evidence."
	c := f.class(f.cim, "C", doc)
	issues := validation.NewIssues()

	validation.BadDocStart[*uml.Class](testRule("R")).Validate(c, issues)

	require.Equal(t, 1, issues.Len())
	ev := issues.All()[0].Evidence()
	assert.Equal(t, doc[:40]+"...", ev)
}

func TestBadDocEnd(t *testing.T) {
	tests := []struct {
		doc      string
		violated bool
	}{
		{"Ends with dot.", false},
		{"Ends with dot and blanks.  ", false},
		{"", false},
		{"Ends without dot", true},
		{"Ends with colon:", true},
	}
	for _, tt := range tests {
		t.Run(tt.doc, func(t *testing.T) {
			f := newFixture(t)
			c := f.class(f.cim, "C", tt.doc)
			issues := validation.NewIssues()

			validation.BadDocEnd[*uml.Class](testRule("R")).Validate(c, issues)

			if tt.violated {
				assert.Equal(t, 1, issues.Len())
			} else {
				assert.Equal(t, 0, issues.Len())
			}
		})
	}
}

func TestUnallowedStereotype(t *testing.T) {
	f := newFixture(t)
	cimClass := f.class(f.cim, "Breaker", "", "informative", "bogus")
	iecClass := f.class(f.iec, "XCBR", "", "informative")

	rule := validation.UnallowedStereotype[*uml.Class](testRule("R"),
		map[uml.Nature][]string{uml.CIM: {"informative"}})
	issues := validation.NewIssues()
	rule.Validate(cimClass, issues)
	rule.Validate(iecClass, issues)

	require.Len(t, issues.For(cimClass), 1)
	assert.Equal(t, "bogus", issues.For(cimClass)[0].Evidence())
	// no allow-list for IEC61850: every token is unallowed
	require.Len(t, issues.For(iecClass), 1)
	assert.Equal(t, "informative", issues.For(iecClass)[0].Evidence())
}

func TestUnallowedStereotype_IgnoresCase(t *testing.T) {
	f := newFixture(t)
	c := f.class(f.cim, "Breaker", "", "Informative")
	issues := validation.NewIssues()

	validation.UnallowedStereotype[*uml.Class](testRule("R"),
		map[uml.Nature][]string{uml.CIM: {"informative"}}).Validate(c, issues)

	assert.Equal(t, 0, issues.Len())
}

func TestUnallowedTagNames_SuggestsClosestName(t *testing.T) {
	f := newFixture(t)
	c := f.model.AddClass(f.cim, uml.ClassSpec{Spec: uml.Spec{
		Name: "Breaker",
		Tags: []uml.Tag{{Name: "nsuri"}, {Name: "nsprefx"}, {Name: "color"}},
	}})
	issues := validation.NewIssues()

	validation.UnallowedTagNames[*uml.Class](testRule("R"),
		map[uml.Nature][]string{uml.CIM: {"nsuri", "nsprefix"}}).Validate(c, issues)

	require.Equal(t, 1, issues.Len())
	assert.Equal(t, "nsprefx (did you mean nsprefix?), color", issues.All()[0].Evidence())
}

func TestBadCharacterInName(t *testing.T) {
	tests := []struct {
		name     string
		pattern  validation.NamePattern
		evidence string
	}{
		{"Breaker", validation.Strict, ""},
		{"Break_er", validation.Strict, "'_'"},
		{"Break_er", validation.StrictUnderscoreDash, ""},
		{"2Winding", validation.Strict, "leading digit '2'"},
		{"2Winding", validation.Literal, ""},
		{"Main view", validation.StrictSpaces, ""},
		{"Main view", validation.Strict, "blank"},
		{"Tension", validation.Strict, ""},
		{"Tensión", validation.Strict, "'ó' (accented o)"},
		{"a.b.c", validation.Strict, "'.'"},
	}
	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.pattern.String(), func(t *testing.T) {
			assert.Equal(t, tt.evidence, tt.pattern.InvalidCharacters(tt.name))
		})
	}
}

func TestTemplateRule_SubObjectsReplaceContainer(t *testing.T) {
	f := newFixture(t)
	c := f.class(f.cim, "Switch", "Switch.")
	op := f.model.AddOperation(c, uml.OperationSpec{Spec: uml.Spec{Name: "open"}})
	documented := f.model.AddParameter(op, uml.ParameterSpec{Spec: uml.Spec{Name: "force", Doc: "Force it."}})
	missing := f.model.AddParameter(op, uml.ParameterSpec{Spec: uml.Spec{Name: "delay"}})

	params := func(o *uml.Operation) []uml.Object {
		var out []uml.Object
		for _, p := range o.Parameters() {
			out = append(out, p)
		}
		return out
	}

	t.Run("sub-objects checked instead of container", func(t *testing.T) {
		issues := validation.NewIssues()
		validation.MissingDoc[*uml.Operation](testRule("R"),
			validation.WithSubObjects(params)).Validate(op, issues)

		require.Equal(t, 1, issues.Len())
		assert.Len(t, issues.For(missing), 1)
		assert.Empty(t, issues.For(documented))
		assert.Empty(t, issues.For(op))
	})

	t.Run("skipped sub-objects fall back to container", func(t *testing.T) {
		issues := validation.NewIssues()
		validation.MissingDoc[*uml.Operation](testRule("R"),
			validation.WithSubObjects(params),
			validation.SkipSubObjectsWhen(func(*uml.Operation) bool { return true })).Validate(op, issues)

		require.Equal(t, 1, issues.Len())
		assert.Len(t, issues.For(op), 1)
	})

	t.Run("skipped container", func(t *testing.T) {
		other := f.model.AddOperation(c, uml.OperationSpec{Spec: uml.Spec{Name: "close"}})
		issues := validation.NewIssues()
		validation.MissingDoc[*uml.Operation](testRule("R"),
			validation.WithSubObjects(params),
			validation.SkipWhen(func(*uml.Operation) bool { return true })).Validate(other, issues)

		assert.Equal(t, 0, issues.Len())
	})
}

func TestDefine_PanicsOnEmptyText(t *testing.T) {
	assert.Panics(t, func() { validation.Define("", "h", "f") })
	assert.Panics(t, func() { validation.Define("R", " ", "f") })
	assert.Panics(t, func() { validation.Define("R", "h", "") })
	assert.NotPanics(t, func() { validation.Define("R", "h", "f") })
}

func TestDefine_Defaults(t *testing.T) {
	d := validation.Define("R", "h", "f")

	assert.Equal(t, validation.ModellingRule, d.Category())
	assert.Equal(t, validation.High, d.Severity())
	assert.Equal(t, "error", d.Level().String())
	assert.True(t, d.AppliesTo(uml.CIM))
	assert.True(t, d.AppliesTo(uml.IEC61850))

	low := validation.Define("R", "h", "f", validation.WithSeverity(validation.Low), validation.ForNatures(uml.IEC61850))
	assert.Equal(t, "info", low.Level().String())
	assert.False(t, low.AppliesTo(uml.CIM))
}

package application

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/openkraft/cleanuml/internal/domain"
	"github.com/openkraft/cleanuml/internal/domain/uml"
	"github.com/openkraft/cleanuml/internal/domain/validation"
)

// RulesService documents the rule catalog.
type RulesService struct {
	configLoader domain.ConfigLoader
}

func NewRulesService(configLoader domain.ConfigLoader) *RulesService {
	return &RulesService{configLoader: configLoader}
}

// ListRules returns the catalog in validation order, with Checked reflecting
// the configuration found in dir. A non-empty nature keeps only the rules
// applying to it.
func (s *RulesService) ListRules(dir, nature string) ([]domain.RuleInfo, error) {
	mv, err := s.catalog(dir)
	if err != nil {
		return nil, err
	}
	if nature == "" {
		return mv.RuleSummaries(), nil
	}
	n, err := uml.ParseNature(nature)
	if err != nil {
		return nil, err
	}
	return mv.RuleSummariesFor(n), nil
}

// DescribeRule returns one rule by ID. An unknown ID yields an error that
// suggests the closest known ID.
func (s *RulesService) DescribeRule(dir, id string) (domain.RuleInfo, error) {
	mv, err := s.catalog(dir)
	if err != nil {
		return domain.RuleInfo{}, err
	}
	rules := mv.RuleSummaries()
	ids := make([]string, 0, len(rules))
	for _, r := range rules {
		if strings.EqualFold(r.ID, id) {
			return r, nil
		}
		ids = append(ids, r.ID)
	}
	if hint := closestID(id, ids); hint != "" {
		return domain.RuleInfo{}, fmt.Errorf("unknown rule %q (did you mean %s?)", id, hint)
	}
	return domain.RuleInfo{}, fmt.Errorf("unknown rule %q", id)
}

// catalog builds the validators over an empty model: rule registration
// depends on configuration only.
func (s *RulesService) catalog(dir string) (*validation.ModelValidator, error) {
	cfg, err := s.configLoader.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return validation.NewModelValidator(uml.NewModel(""), cfg, nil), nil
}

// closestID prefers an ID containing id as a subsequence, then the ID at the
// smallest edit distance when it is close enough to be a typo.
func closestID(id string, ids []string) string {
	if id == "" {
		return ""
	}
	if ranks := fuzzy.RankFindFold(id, ids); len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}
	best, bestDist := "", len(id)/3+1
	for _, candidate := range ids {
		if d := fuzzy.LevenshteinDistance(strings.ToLower(id), strings.ToLower(candidate)); d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}

package picmode

import (
	"fmt"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"
)

// FeatureError is the reserved feature name for parse-error highlighting.
// Its rules are evaluated regardless of the enabled level set and must be
// declared with override so errors stay visible under other spans.
const FeatureError = "error"

// Rule is one declarative highlight rule: a structural pattern, optional
// text predicates over its captures, and the category the span receives.
type Rule struct {
	// Pattern is the structural matcher.
	Pattern Pattern `yaml:"pattern"`

	// Category is the highlight category of the produced span.
	Category string `yaml:"category"`

	// Predicates are regex checks on captured text; all must pass.
	Predicates []Predicate `yaml:"predicates,omitempty"`

	// Override lets this rule's span re-color bytes already claimed by an
	// earlier match. Without it, earlier captures win the overlap.
	Override bool `yaml:"override,omitempty"`

	// SpanCapture names the capture whose range becomes the span.
	// Empty highlights the matched node itself.
	SpanCapture string `yaml:"span_capture,omitempty"`
}

// FeatureGroup is an ordered list of rules sharing a feature name.
type FeatureGroup struct {
	Feature string `yaml:"feature"`
	Rules   []Rule `yaml:"rules"`
}

// LevelGroup is the ordered list of features activated at one level.
type LevelGroup struct {
	Level    Level          `yaml:"level"`
	Features []FeatureGroup `yaml:"features"`
}

// RuleSet is a compiled, immutable highlight rule table. It is constructed
// once, validated eagerly, and safe for concurrent use.
type RuleSet struct {
	rules      []compiledRule
	alwaysOn   []compiledRule // error-feature rules, applied after all others
	categories []string
}

type compiledRule struct {
	level         Level
	feature       string
	pattern       Pattern
	predicates    []Predicate
	categoryIndex int16
	override      bool
	alwaysOn      bool
	spanCapture   string
}

// NewRuleSet compiles and validates a highlight rule table. All defects
// (unknown node kinds, malformed regexes, predicates over unbound captures,
// non-override error rules) are reported here, never at query time.
func NewRuleSet(levels []LevelGroup) (*RuleSet, error) {
	rs := &RuleSet{}
	categoryIndex := map[string]int16{}

	sorted := make([]LevelGroup, len(levels))
	copy(sorted, levels)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Level < sorted[j].Level })

	for _, lg := range sorted {
		if lg.Level < LevelMinimal || lg.Level > LevelMaximal {
			return nil, fmt.Errorf("invalid highlight level %d", lg.Level)
		}
		for _, fg := range lg.Features {
			for i, r := range fg.Rules {
				cr, err := compileRule(lg.Level, fg.Feature, r, categoryIndex, &rs.categories)
				if err != nil {
					return nil, fmt.Errorf("feature %q rule %d: %w", fg.Feature, i, err)
				}
				if cr.alwaysOn {
					rs.alwaysOn = append(rs.alwaysOn, cr)
					continue
				}
				rs.rules = append(rs.rules, cr)
			}
		}
	}

	return rs, nil
}

func compileRule(level Level, feature string, r Rule, categoryIndex map[string]int16, categories *[]string) (compiledRule, error) {
	if feature == "" {
		return compiledRule{}, fmt.Errorf("feature name must not be empty")
	}
	if r.Category == "" {
		return compiledRule{}, fmt.Errorf("category must not be empty")
	}
	if r.Pattern.Kind != "" && !validKind(r.Pattern.Kind) {
		return compiledRule{}, fmt.Errorf("unknown node kind %q", r.Pattern.Kind)
	}
	for _, fp := range r.Pattern.Fields {
		if fp.Name == "" {
			return compiledRule{}, fmt.Errorf("field constraint without a name")
		}
		if fp.Kind != "" && !validKind(fp.Kind) {
			return compiledRule{}, fmt.Errorf("unknown node kind %q for field %q", fp.Kind, fp.Name)
		}
	}
	if r.Pattern.Kind == "" && !r.Pattern.IsError && len(r.Pattern.Fields) == 0 && len(r.Pattern.Literals) == 0 {
		return compiledRule{}, fmt.Errorf("pattern matches every node")
	}

	bound := map[string]bool{CaptureSelf: true}
	if r.Pattern.LiteralCapture != "" {
		bound[r.Pattern.LiteralCapture] = true
	}
	for _, fp := range r.Pattern.Fields {
		if fp.Capture != "" {
			bound[fp.Capture] = true
		}
	}

	predicates := make([]Predicate, len(r.Predicates))
	for i, p := range r.Predicates {
		if !bound[p.Capture] {
			return compiledRule{}, fmt.Errorf("predicate references unbound capture %q", p.Capture)
		}
		re, err := regexp.Compile(p.Regexp)
		if err != nil {
			return compiledRule{}, fmt.Errorf("predicate for capture %q: %w", p.Capture, err)
		}
		predicates[i] = Predicate{Capture: p.Capture, Regexp: p.Regexp, re: re}
	}

	spanCapture := r.SpanCapture
	if spanCapture == "" {
		spanCapture = CaptureSelf
	}
	if !bound[spanCapture] {
		return compiledRule{}, fmt.Errorf("span capture %q is never bound", spanCapture)
	}

	alwaysOn := feature == FeatureError
	if alwaysOn && !r.Override {
		return compiledRule{}, fmt.Errorf("error feature rules must set override")
	}

	idx, ok := categoryIndex[r.Category]
	if !ok {
		idx = int16(len(*categories))
		categoryIndex[r.Category] = idx
		*categories = append(*categories, r.Category)
	}

	return compiledRule{
		level:         level,
		feature:       feature,
		pattern:       r.Pattern,
		predicates:    predicates,
		categoryIndex: idx,
		override:      r.Override,
		alwaysOn:      alwaysOn,
		spanCapture:   spanCapture,
	}, nil
}

// ruleSetConfig is the YAML shape of a highlight rule table.
type ruleSetConfig struct {
	Levels []LevelGroup `yaml:"levels"`
}

// LoadRuleSet parses a YAML highlight rule table and compiles it. The
// format mirrors the LevelGroup/FeatureGroup/Rule structures:
//
//	levels:
//	  - level: 1
//	    features:
//	      - feature: comment
//	        rules:
//	          - pattern: {kind: comment}
//	            category: comment
func LoadRuleSet(data []byte) (*RuleSet, error) {
	var cfg ruleSetConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing highlight rule table: %w", err)
	}
	return NewRuleSet(cfg.Levels)
}

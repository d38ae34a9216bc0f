package rules

import (
	"regexp"
	"sync"

	"github.com/arthur-debert/skillguard/pkg/errors"
)

// Corpus is an immutable, validated set of rules in declaration order.
type Corpus struct {
	version      string
	rules        []*Rule
	byID         map[string]*Rule
	hardTriggers []*Rule
}

// NewCorpus compiles and validates definitions. Any malformed definition fails
// the whole corpus so a bad rule can never silently disable matching.
func NewCorpus(version string, defs []Definition) (*Corpus, error) {
	c := &Corpus{
		version: version,
		rules:   make([]*Rule, 0, len(defs)),
		byID:    make(map[string]*Rule, len(defs)),
	}

	for i, def := range defs {
		rule, err := compile(def)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrCorpusLoad, "rule #%d (%s) is invalid", i+1, def.ID).
				WithDetail("index", i).
				WithDetail("id", def.ID)
		}
		if _, dup := c.byID[rule.ID]; dup {
			return nil, errors.Newf(errors.ErrCorpusLoad, "duplicate rule id %q", rule.ID).
				WithDetail("index", i).
				WithDetail("id", rule.ID)
		}
		c.rules = append(c.rules, rule)
		c.byID[rule.ID] = rule
		if rule.HardTrigger {
			c.hardTriggers = append(c.hardTriggers, rule)
		}
	}

	return c, nil
}

func compile(def Definition) (*Rule, error) {
	switch {
	case def.ID == "":
		return nil, errors.New(errors.ErrInvalidInput, "id is empty")
	case def.Pattern == "":
		return nil, errors.New(errors.ErrInvalidInput, "pattern is empty")
	case !def.Severity.Valid():
		return nil, errors.Newf(errors.ErrInvalidInput, "severity is missing or unknown")
	case !def.Category.Valid():
		return nil, errors.Newf(errors.ErrInvalidInput, "category is missing or unknown")
	case !def.Confidence.Valid():
		return nil, errors.Newf(errors.ErrInvalidInput, "confidence is missing or unknown")
	case def.Weight < 0:
		return nil, errors.Newf(errors.ErrInvalidInput, "weight %d is negative", def.Weight)
	}

	re, err := regexp.Compile(def.Pattern)
	if err != nil {
		return nil, err
	}

	return &Rule{
		ID:          def.ID,
		Name:        def.Name,
		Pattern:     re,
		Severity:    def.Severity,
		Category:    def.Category,
		Weight:      def.Weight,
		Description: def.Description,
		HardTrigger: def.HardTrigger,
		Confidence:  def.Confidence,
		Remediation: def.Remediation,
		CWE:         def.CWE,
	}, nil
}

// Version identifies the corpus revision, as shipped by the corpus source
func (c *Corpus) Version() string {
	return c.version
}

// Len returns the number of rules
func (c *Corpus) Len() int {
	return len(c.rules)
}

// All returns every rule in declaration order. The slice is a copy; the rules are shared.
func (c *Corpus) All() []*Rule {
	out := make([]*Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// HardTriggers returns only the rules whose match blocks installation outright
func (c *Corpus) HardTriggers() []*Rule {
	out := make([]*Rule, len(c.hardTriggers))
	copy(out, c.hardTriggers)
	return out
}

// ByID looks up a rule by its identifier
func (c *Corpus) ByID(id string) (*Rule, bool) {
	r, ok := c.byID[id]
	return r, ok
}

// Definitions returns the serializable form of the corpus in declaration order
func (c *Corpus) Definitions() []Definition {
	defs := make([]Definition, len(c.rules))
	for i, r := range c.rules {
		defs[i] = r.Definition()
	}
	return defs
}

var (
	defaultOnce   sync.Once
	defaultCorpus *Corpus
)

// Default returns the built-in corpus. It panics if the built-in table is
// malformed, which the package tests guard against.
func Default() *Corpus {
	defaultOnce.Do(func() {
		c, err := NewCorpus(BuiltinVersion, builtinDefinitions)
		if err != nil {
			panic(err)
		}
		defaultCorpus = c
	})
	return defaultCorpus
}

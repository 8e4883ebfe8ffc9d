package mappers

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/ib-77/fallible/pkg/fallible"
)

// Rule binds one failure type to the mapping applied when that type is
// found in a failure's wrap chain.
type Rule struct {
	order    int
	concrete bool
	target   string
	matches  func(err error) bool
	apply    func(err error) error
}

// For builds a Rule mapping failures that carry an E in their wrap chain.
// order breaks ties between rules of equal specificity; lower wins.
func For[E error](order int, fn func(e E) error) Rule {
	t := reflect.TypeOf((*E)(nil)).Elem()
	return Rule{
		order:    order,
		concrete: t.Kind() != reflect.Interface,
		target:   t.String(),
		matches: func(err error) bool {
			var e E
			return errors.As(err, &e)
		},
		apply: func(err error) error {
			var e E
			if !errors.As(err, &e) {
				return nil
			}
			return fn(e)
		},
	}
}

// Order returns the declared tie-break order
func (r Rule) Order() int {
	return r.order
}

// Target returns the name of the rule's target type
func (r Rule) Target() string {
	return r.target
}

func (r Rule) String() string {
	return fmt.Sprintf("Rule(%s, order=%d)", r.target, r.order)
}

// Provider supplies rules in bulk, so components can hand their mappings
// to whoever assembles the registry.
type Provider interface {
	MapperRules() []Rule
}

// Registry is an explicit mapper configuration. It is plugged into call
// sites through Mapper; nothing consults it implicitly.
type Registry struct {
	mu    sync.RWMutex
	rules []Rule
}

// New builds a Registry holding rules
func New(rules ...Rule) *Registry {
	g := &Registry{}
	g.Install(rules...)
	return g
}

// Install appends rules, skipping malformed ones
func (g *Registry) Install(rules ...Rule) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, r := range rules {
		if r.matches == nil || r.apply == nil {
			continue
		}
		g.rules = append(g.rules, r)
	}
}

// InstallFrom installs every provider's rules in provider order
func (g *Registry) InstallFrom(providers ...Provider) {
	for _, p := range providers {
		if fallible.IsNil(p) {
			continue
		}
		g.Install(p.MapperRules()...)
	}
}

// Targets lists installed rule targets in installation order
func (g *Registry) Targets() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ts := make([]string, 0, len(g.rules))
	for _, r := range g.rules {
		ts = append(ts, r.target)
	}
	return ts
}

// Resolve maps err through the best-matching rule: concrete targets beat
// interface targets, then lower order, then earlier installation. The
// second result is false when no rule matches or the winning rule maps to
// nil.
func (g *Registry) Resolve(err error) (error, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	best := -1
	for i, r := range g.rules {
		if !r.matches(err) {
			continue
		}
		if best < 0 || moreSpecific(r, g.rules[best]) {
			best = i
		}
	}

	if best < 0 {
		return nil, false
	}

	mapped := g.rules[best].apply(err)
	if fallible.IsNil(mapped) {
		return nil, false
	}
	return mapped, true
}

// Mapper exposes the registry as a fallible.Mapper, falling through to
// the default wrapping for unmatched failures
func (g *Registry) Mapper() fallible.Mapper {
	return func(err error) error {
		if mapped, ok := g.Resolve(err); ok {
			return mapped
		}
		return fallible.WrapFailure(err)
	}
}

func moreSpecific(candidate, current Rule) bool {
	if candidate.concrete != current.concrete {
		return candidate.concrete
	}
	return candidate.order < current.order
}

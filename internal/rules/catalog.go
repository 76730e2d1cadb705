package rules

import (
	"fmt"
	"sort"

	"stylist/internal/syntax"
	"stylist/internal/token"
)

// Catalog is an immutable mapping from rule ID to rule, indexed by the
// syntactic kinds that trigger each rule. Read-only after process start:
// build it once, then share freely across concurrent evaluations.
type Catalog struct {
	byID     map[ID]*Rule
	order    []ID
	byNode   map[syntax.Kind][]ID
	byTrivia map[token.TriviaKind][]ID
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		byID:     make(map[ID]*Rule),
		byNode:   make(map[syntax.Kind][]ID),
		byTrivia: make(map[token.TriviaKind][]ID),
	}
}

// Register adds a rule. Duplicate IDs are a programming error and panic.
func (c *Catalog) Register(rule Rule) {
	if _, dup := c.byID[rule.ID]; dup {
		panic(fmt.Sprintf("rules: duplicate rule id %s", rule.ID))
	}
	r := rule
	c.byID[r.ID] = &r
	c.order = append(c.order, r.ID)
	for _, kind := range r.Nodes {
		c.byNode[kind] = append(c.byNode[kind], r.ID)
	}
	for _, kind := range r.Trivia {
		c.byTrivia[kind] = append(c.byTrivia[kind], r.ID)
	}
}

// Get returns the rule for the ID, or nil.
func (c *Catalog) Get(id ID) *Rule {
	return c.byID[id]
}

// All returns every rule in registration order.
func (c *Catalog) All() []*Rule {
	out := make([]*Rule, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// ForNode returns the rule IDs subscribed to a node kind.
func (c *Catalog) ForNode(kind syntax.Kind) []ID {
	return c.byNode[kind]
}

// ForTrivia returns the rule IDs subscribed to a trivia kind.
func (c *Catalog) ForTrivia(kind token.TriviaKind) []ID {
	return c.byTrivia[kind]
}

// Len returns the number of registered rules.
func (c *Catalog) Len() int { return len(c.order) }

// Fingerprint is a stable digest input describing the catalog's contents.
// The findings cache mixes it into its keys so a catalog change invalidates
// cached results.
func (c *Catalog) Fingerprint() string {
	ids := make([]string, 0, len(c.order))
	for _, id := range c.order {
		r := c.byID[id]
		ids = append(ids, fmt.Sprintf("%s:%d:%t", r.ID, r.Severity, r.DefaultEnabled))
	}
	sort.Strings(ids)
	out := ""
	for _, s := range ids {
		out += s + ";"
	}
	return out
}

// Package check is the diagnostic engine: it walks a tree depth-first,
// dispatches every visited node and trivia piece to the rules subscribed to
// that kind, and collects the findings their predicates emit.
//
// The engine holds no mutable shared state; Evaluate is a pure function of
// the tree snapshot it is given, so independent revisions may be evaluated
// concurrently. Within one pass findings come out in a deterministic
// left-to-right source order; across passes no ordering is promised.
package check

import (
	"context"

	"stylist/internal/diag"
	"stylist/internal/rules"
	"stylist/internal/source"
	"stylist/internal/syntax"
	"stylist/internal/token"
	"stylist/internal/types"
)

// DefaultMaxFindings bounds one evaluation pass.
const DefaultMaxFindings = 1024

// NodeCheck is a predicate invoked for every visited node of a subscribed
// kind. It may report zero or more findings through the context.
type NodeCheck func(cx *Context, node syntax.NodeID)

// TriviaCheck is a predicate invoked for every trivia piece of a subscribed
// kind; holder is the leaf whose token carries the trivia.
type TriviaCheck func(cx *Context, holder syntax.NodeID, tr token.Trivia)

// Engine evaluates a rule catalog against trees.
type Engine struct {
	catalog      *rules.Catalog
	settings     *rules.Settings
	resolver     types.Resolver
	nodeChecks   map[rules.ID]NodeCheck
	triviaChecks map[rules.ID]TriviaCheck
	maxFindings  int
}

// New creates an engine over the catalog with the builtin predicates
// registered. settings may be nil for catalog defaults; resolver may be nil
// to disable semantic predicates.
func New(catalog *rules.Catalog, settings *rules.Settings, resolver types.Resolver) *Engine {
	e := &Engine{
		catalog:      catalog,
		settings:     settings,
		resolver:     resolver,
		nodeChecks:   make(map[rules.ID]NodeCheck),
		triviaChecks: make(map[rules.ID]TriviaCheck),
		maxFindings:  DefaultMaxFindings,
	}
	registerBuiltins(e)
	return e
}

// RegisterNodeCheck binds a predicate to a rule ID. New rules plug in here
// without touching the walker.
func (e *Engine) RegisterNodeCheck(id rules.ID, fn NodeCheck) {
	e.nodeChecks[id] = fn
}

// RegisterTriviaCheck binds a trivia predicate to a rule ID.
func (e *Engine) RegisterTriviaCheck(id rules.ID, fn TriviaCheck) {
	e.triviaChecks[id] = fn
}

// SetMaxFindings overrides the per-pass finding cap.
func (e *Engine) SetMaxFindings(n int) {
	if n > 0 {
		e.maxFindings = n
	}
}

// Evaluate runs every enabled rule over the tree. On cancellation it
// returns the findings produced so far together with ctx.Err().
func (e *Engine) Evaluate(ctx context.Context, tree *syntax.Tree) ([]diag.Finding, error) {
	bag := diag.NewBag(e.maxFindings)
	rep := diag.NewDedupReporter(diag.BagReporter{Bag: bag})

	err := e.visit(ctx, tree, tree.Root(), syntax.NoNodeID, rep)
	bag.Sort()
	return bag.Items(), err
}

func (e *Engine) visit(ctx context.Context, tree *syntax.Tree, id, parent syntax.NodeID, rep diag.Reporter) error {
	node := tree.Node(id)
	if node == nil {
		return nil
	}

	if node.Kind == syntax.KindToken {
		e.runTriviaChecks(tree, id, parent, rep)
		return nil
	}
	e.runNodeChecks(tree, id, parent, rep)

	for i, child := range tree.Children(id) {
		if i > 0 {
			// cooperative cancellation between siblings
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if err := e.visit(ctx, tree, child, id, rep); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) runNodeChecks(tree *syntax.Tree, id, parent syntax.NodeID, rep diag.Reporter) {
	for _, ruleID := range e.catalog.ForNode(tree.Kind(id)) {
		rule := e.catalog.Get(ruleID)
		if !e.settings.EnabledFor(rule) {
			continue
		}
		fn := e.nodeChecks[ruleID]
		if fn == nil {
			continue
		}
		cx := e.newContext(tree, parent, rule, rep)
		runGuarded(func() { fn(cx, id) })
	}
}

func (e *Engine) runTriviaChecks(tree *syntax.Tree, id, parent syntax.NodeID, rep diag.Reporter) {
	tok := tree.LeafToken(id)
	if tok == nil || len(tok.Leading) == 0 {
		return
	}
	for _, tr := range tok.Leading {
		for _, ruleID := range e.catalog.ForTrivia(tr.Kind) {
			rule := e.catalog.Get(ruleID)
			if !e.settings.EnabledFor(rule) {
				continue
			}
			fn := e.triviaChecks[ruleID]
			if fn == nil {
				continue
			}
			cx := e.newContext(tree, parent, rule, rep)
			trCopy := tr
			runGuarded(func() { fn(cx, id, trCopy) })
		}
	}
}

func (e *Engine) newContext(tree *syntax.Tree, parent syntax.NodeID, rule *rules.Rule, rep diag.Reporter) *Context {
	return &Context{
		Tree:     tree,
		Parent:   parent,
		Resolver: e.resolver,
		rule:     rule,
		severity: e.settings.SeverityFor(rule),
		rep:      rep,
	}
}

// runGuarded isolates predicate failures: one rule panicking must not
// silence the rules that follow it.
func runGuarded(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}

// Context is what a predicate sees: the tree, the visited node's parent,
// the host's type resolver, and a way to report findings for its rule.
type Context struct {
	Tree     *syntax.Tree
	Parent   syntax.NodeID
	Resolver types.Resolver

	rule     *rules.Rule
	severity rules.Severity
	rep      diag.Reporter
}

// Report emits one finding for the context's rule at the anchor.
func (cx *Context) Report(anchor source.Span, args ...string) {
	cx.rep.Report(diag.New(cx.rule, cx.severity, anchor, args...))
}

// Rule returns the rule under evaluation.
func (cx *Context) Rule() *rules.Rule { return cx.rule }

// Package guard lints node guard expressions. Guards are stored as opaque
// strings and evaluated by the execution engine at run time; linting catches
// the two failure classes visible without engine state: expressions that do
// not parse, and variable-free expressions that do not evaluate to a boolean.
package guard

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/flowdefgo/internal/dag"
)

// Issue describes one problem found in a node's guard expression.
type Issue struct {
	// RefID identifies the node reference carrying the guard.
	RefID int64
	// NodeName is the node's human-readable name.
	NodeName string
	// Detail explains what is wrong with the guard.
	Detail string
}

// String renders the issue for CLI output.
func (i Issue) String() string {
	return fmt.Sprintf("node %d (%s): %s", i.RefID, i.NodeName, i.Detail)
}

// Check validates a single guard expression. Empty guards are valid by
// definition. Expressions referencing variables are only syntax-checked;
// constant expressions are additionally evaluated and must yield a boolean.
func Check(src string) error {
	if src == "" {
		return nil
	}

	expr, diags := hclsyntax.ParseExpression([]byte(src), "guard", hcl.InitialPos)
	if diags.HasErrors() {
		return diags
	}

	// Only constant guards can be evaluated here; anything touching
	// engine-supplied variables is the engine's problem.
	if len(expr.Variables()) > 0 {
		return nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return diags
	}
	if val.Type() != cty.Bool {
		return fmt.Errorf("constant guard evaluates to %s, want bool", val.Type().FriendlyName())
	}
	return nil
}

// LintGraph checks every guard in an assembled graph and returns the issues
// found. An empty result means all guards are clean.
func LintGraph(g *dag.Graph) []Issue {
	var issues []Issue
	for _, n := range g.Nodes() {
		if err := Check(n.Guard); err != nil {
			issues = append(issues, Issue{RefID: n.RefID, NodeName: n.Name, Detail: err.Error()})
		}
	}
	sort.Slice(issues, func(i, j int) bool { return issues[i].RefID < issues[j].RefID })
	return issues
}

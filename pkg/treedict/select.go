package treedict

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// LeafEnv is the environment a [Select] expression is evaluated against,
// once per leaf.
type LeafEnv struct {
	Path  []string `expr:"path"`  // full path to the leaf
	Key   string   `expr:"key"`   // final path element
	Value any      `expr:"value"` // the leaf value
	Depth int      `expr:"depth"` // number of path elements
}

// Select returns the tree of leaves for which the boolean expression
// [src] holds. The expression is compiled with expr-lang and evaluated
// against a [LeafEnv] per leaf, e.g.
//
//	treedict.Select(t, `depth > 1 && key startsWith "net"`)
//
// Matching leaves keep their full path in the result; subtrees left
// without matches do not appear. [t] is not modified.
func Select(t Tree, src string) (Tree, error) {
	prog, err := expr.Compile(src, expr.Env(LeafEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling selection expression: %w", err)
	}
	return SelectProgram(t, prog)
}

// SelectProgram is [Select] for a pre-compiled program, for callers that
// filter many trees with the same expression.
func SelectProgram(t Tree, prog *vm.Program) (Tree, error) {
	out := make(Tree)
	for p, v := range Leaves(t) {
		pass, err := expr.Run(prog, LeafEnv{
			Path:  p,
			Key:   p[len(p)-1],
			Value: v,
			Depth: len(p),
		})
		if err != nil {
			return nil, fmt.Errorf("evaluating selection expression at %s: %w", p, err)
		}
		if keep, ok := pass.(bool); ok && keep {
			if err := SetInto(out, p.Clone(), v); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

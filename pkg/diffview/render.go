package diffview

import (
	"fmt"
	"sort"
	"strings"
)

func renderNodeString(node *Node, theme Theme, opts Options) string {
	var sb strings.Builder
	renderNode(&sb, node, theme, opts, 0)
	return sb.String()
}

func renderNode(sb *strings.Builder, node *Node, theme Theme, opts Options, indent int) {
	space := strings.Repeat(" ", indent*opts.IndentSize)

	if node.Children == nil {
		renderValue(sb, node, theme, opts, indent)
		return
	}

	for _, key := range sortedChildKeys(node.Children) {
		child := node.Children[key]

		keyStr := theme.syntax(kindKey, key) + ":"
		if opts.Highlight {
			keyStr = theme.background(child.Change, keyStr)
		}
		sb.WriteString(space + keyStr)

		if child.Children == nil {
			sb.WriteString(" ")
			renderValue(sb, child, theme, opts, indent)
		} else {
			sb.WriteString("\n")
			renderNode(sb, child, theme, opts, indent+1)
		}
	}
}

func renderValue(sb *strings.Builder, node *Node, theme Theme, opts Options, indent int) {
	switch v := node.Value.(type) {
	case map[string]any:
		sb.WriteString("\n")
		renderPlainTree(sb, v, theme, opts, indent+1)
	case []any:
		sb.WriteString("\n")
		renderPlainList(sb, v, theme, opts, indent+1)
	default:
		content := theme.syntax(scalarKind(v), scalarString(v))
		if opts.Highlight {
			content = theme.background(node.Change, content)
		}
		sb.WriteString(content + "\n")
	}
}

// renderPlainTree renders a subtree that carries a single classification
// as a whole (added, removed or unchanged), without per-key annotations.
func renderPlainTree(sb *strings.Builder, t map[string]any, theme Theme, opts Options, indent int) {
	space := strings.Repeat(" ", indent*opts.IndentSize)

	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		sb.WriteString(space + theme.syntax(kindKey, k) + ":")
		switch v := t[k].(type) {
		case map[string]any:
			sb.WriteString("\n")
			renderPlainTree(sb, v, theme, opts, indent+1)
		case []any:
			sb.WriteString("\n")
			renderPlainList(sb, v, theme, opts, indent+1)
		default:
			sb.WriteString(" " + theme.syntax(scalarKind(v), scalarString(v)) + "\n")
		}
	}
}

func renderPlainList(sb *strings.Builder, list []any, theme Theme, opts Options, indent int) {
	space := strings.Repeat(" ", indent*opts.IndentSize)
	for _, item := range list {
		switch v := item.(type) {
		case map[string]any:
			sb.WriteString(space + "-\n")
			renderPlainTree(sb, v, theme, opts, indent+1)
		default:
			sb.WriteString(space + "- " + theme.syntax(scalarKind(v), scalarString(v)) + "\n")
		}
	}
}

func sortedChildKeys(children map[string]*Node) []string {
	keys := make([]string, 0, len(children))
	for k := range children {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func scalarKind(v any) syntaxKind {
	switch v.(type) {
	case string:
		return kindString
	case bool:
		return kindBool
	case int, int64, float64:
		return kindNumber
	case nil:
		return kindNull
	default:
		return kindOther
	}
}

func scalarString(v any) string {
	switch s := v.(type) {
	case string:
		return fmt.Sprintf("%q", s)
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%v", v)
	}
}

package component

import (
	"strings"

	ts "github.com/tree-sitter/go-tree-sitter"
)

// Helper functions shared by the framework extractors.

func findChildByKind(node *ts.Node, kind string) *ts.Node {
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child.Kind() == kind {
			return child
		}
	}
	return nil
}

func isStringLiteral(s string) bool {
	return (strings.HasPrefix(s, "\"") && strings.HasSuffix(s, "\"")) ||
		(strings.HasPrefix(s, "'") && strings.HasSuffix(s, "'")) ||
		(strings.HasPrefix(s, "`") && strings.HasSuffix(s, "`"))
}

func unquoteString(s string) string {
	if len(s) >= 2 && isStringLiteral(s) {
		return s[1 : len(s)-1]
	}
	return s
}

// stringArgValue returns the unquoted value of a string or template-string
// node, or "" when the node is not a plain string literal.
func stringArgValue(node *ts.Node, source []byte) string {
	if node == nil {
		return ""
	}
	switch node.Kind() {
	case "string", "template_string":
		return unquoteString(node.Utf8Text(source))
	}
	return ""
}

func lineOf(node *ts.Node) int {
	return int(node.StartPosition().Row) + 1
}

// decorators collects the decorator children of a class, field, or method
// declaration. For class declarations wrapped in an export_statement the
// decorators attach to the export_statement, so both are checked.
func decorators(node *ts.Node) []*ts.Node {
	var out []*ts.Node
	collect := func(n *ts.Node) {
		for i := uint(0); i < n.ChildCount(); i++ {
			child := n.Child(i)
			if child.Kind() == "decorator" {
				out = append(out, child)
			}
		}
	}
	if parent := node.Parent(); parent != nil && parent.Kind() == "export_statement" {
		collect(parent)
	}
	collect(node)
	return out
}

// decoratorName returns the bare name of a decorator, whether applied as
// @name or @name(...).
func decoratorName(dec *ts.Node, source []byte) string {
	for i := uint(0); i < dec.ChildCount(); i++ {
		child := dec.Child(i)
		switch child.Kind() {
		case "identifier":
			return child.Utf8Text(source)
		case "call_expression":
			if fn := child.ChildByFieldName("function"); fn != nil {
				return fn.Utf8Text(source)
			}
		case "member_expression":
			return child.Utf8Text(source)
		}
	}
	return ""
}

// decoratorCall returns the call_expression of an invoked decorator, or nil
// for a bare @name decorator.
func decoratorCall(dec *ts.Node) *ts.Node {
	return findChildByKind(dec, "call_expression")
}

// decoratorArgs returns the positional argument nodes of an invoked
// decorator, skipping punctuation.
func decoratorArgs(dec *ts.Node) []*ts.Node {
	call := decoratorCall(dec)
	if call == nil {
		return nil
	}
	args := call.ChildByFieldName("arguments")
	if args == nil {
		return nil
	}
	var out []*ts.Node
	for i := uint(0); i < args.NamedChildCount(); i++ {
		out = append(out, args.NamedChild(i))
	}
	return out
}

// objectStringEntries flattens an object literal node into key -> raw value
// text, with string values unquoted. Non-pair members are skipped.
func objectStringEntries(obj *ts.Node, source []byte) map[string]string {
	out := map[string]string{}
	if obj == nil || obj.Kind() != "object" {
		return out
	}
	for i := uint(0); i < obj.NamedChildCount(); i++ {
		pair := obj.NamedChild(i)
		if pair.Kind() != "pair" {
			continue
		}
		key := pair.ChildByFieldName("key")
		value := pair.ChildByFieldName("value")
		if key == nil || value == nil {
			continue
		}
		k := unquoteString(key.Utf8Text(source))
		v := value.Utf8Text(source)
		if isStringLiteral(v) {
			v = unquoteString(v)
		}
		out[k] = v
	}
	return out
}

// objectValueNode returns the value node for a key in an object literal.
func objectValueNode(obj *ts.Node, key string, source []byte) *ts.Node {
	if obj == nil || obj.Kind() != "object" {
		return nil
	}
	for i := uint(0); i < obj.NamedChildCount(); i++ {
		pair := obj.NamedChild(i)
		if pair.Kind() != "pair" {
			continue
		}
		k := pair.ChildByFieldName("key")
		if k != nil && unquoteString(k.Utf8Text(source)) == key {
			return pair.ChildByFieldName("value")
		}
	}
	return nil
}

// heritageExpression returns the expression a class extends, or nil.
func heritageExpression(classNode *ts.Node) *ts.Node {
	heritage := findChildByKind(classNode, "class_heritage")
	if heritage == nil {
		return nil
	}
	// TS grammar: class_heritage -> extends_clause -> value expression.
	if clause := findChildByKind(heritage, "extends_clause"); clause != nil {
		if value := clause.ChildByFieldName("value"); value != nil {
			return value
		}
		return clause.NamedChild(0)
	}
	// JS grammar: class_heritage holds the expression directly.
	for i := uint(0); i < heritage.NamedChildCount(); i++ {
		return heritage.NamedChild(i)
	}
	return nil
}

// className returns the declared name of a class, or "" for an anonymous
// class expression.
func className(classNode *ts.Node, source []byte) string {
	if name := classNode.ChildByFieldName("name"); name != nil {
		return name.Utf8Text(source)
	}
	return ""
}

// classDocComment finds the block comment immediately preceding a class
// declaration (or its export_statement wrapper) among its siblings.
func classDocComment(classNode *ts.Node, source []byte) string {
	node := classNode
	if parent := node.Parent(); parent != nil && parent.Kind() == "export_statement" {
		node = parent
	}
	prev := node.PrevSibling()
	for prev != nil && prev.Kind() == "decorator" {
		prev = prev.PrevSibling()
	}
	if prev != nil && prev.Kind() == "comment" {
		text := prev.Utf8Text(source)
		if strings.HasPrefix(text, "/**") {
			return text
		}
	}
	return ""
}

// kebabCase converts PascalCase or camelCase to kebab-case. Runs of capitals
// stay together so "URLInput" becomes "url-input".
func kebabCase(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if r >= 'A' && r <= 'Z' {
			prevLower := i > 0 && runes[i-1] >= 'a' && runes[i-1] <= 'z'
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if i > 0 && (prevLower || (nextLower && runes[i-1] >= 'A' && runes[i-1] <= 'Z')) {
				b.WriteByte('-')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// pascalCase converts a kebab-case tag name to PascalCase: "my-button"
// becomes "MyButton".
func pascalCase(tag string) string {
	var b strings.Builder
	for _, part := range strings.Split(tag, "-") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// isExported reports whether the declaration is wrapped in an
// export_statement.
func isExported(node *ts.Node) bool {
	parent := node.Parent()
	return parent != nil && parent.Kind() == "export_statement"
}

package component

import (
	ts "github.com/tree-sitter/go-tree-sitter"
)

// hauntedComponents resolves function names registered through
// customElements.define(tag, component(FnName)) back to their declarations.
// Both `function Name(...)` and `const Name = (...) => ...` forms qualify.
func (fx *fileExtractor) hauntedComponents(root *ts.Node) []Component {
	if len(fx.reg.hauntedFns) == 0 {
		return nil
	}
	var comps []Component
	walkTree(root, func(n *ts.Node) {
		var name string
		var fn *ts.Node
		switch n.Kind() {
		case "function_declaration":
			nameNode := n.ChildByFieldName("name")
			if nameNode == nil {
				return
			}
			name = nameNode.Utf8Text(fx.source)
			fn = n
		case "variable_declarator":
			nameNode := n.ChildByFieldName("name")
			value := n.ChildByFieldName("value")
			if nameNode == nil || nameNode.Kind() != "identifier" || value == nil {
				return
			}
			if value.Kind() != "arrow_function" && value.Kind() != "function_expression" {
				return
			}
			name = nameNode.Utf8Text(fx.source)
			fn = value
		default:
			return
		}
		tag, ok := fx.reg.hauntedFns[name]
		if !ok {
			return
		}
		comp := fx.newComponent(FrameworkHaunted, name, tag, lineOf(n))
		comp.Props = fx.destructuredProps(fn)
		comps = append(comps, comp)
	})
	return comps
}

// destructuredProps reads the first parameter of a function when it is an
// object destructuring pattern. Each bound name becomes a prop, required
// unless it carries a default.
func (fx *fileExtractor) destructuredProps(fn *ts.Node) []PropDefinition {
	params := fn.ChildByFieldName("parameters")
	if params == nil {
		params = fn.ChildByFieldName("parameter")
	}
	if params == nil || params.NamedChildCount() == 0 {
		return nil
	}
	pattern := findDescendantByKind(params.NamedChild(0), "object_pattern")
	if pattern == nil {
		return nil
	}

	var props []PropDefinition
	for i := uint(0); i < pattern.NamedChildCount(); i++ {
		member := pattern.NamedChild(i)
		switch member.Kind() {
		case "shorthand_property_identifier_pattern":
			props = append(props, PropDefinition{
				Name:     member.Utf8Text(fx.source),
				Required: true,
			})
		case "object_assignment_pattern":
			left := member.ChildByFieldName("left")
			right := member.ChildByFieldName("right")
			if left == nil {
				continue
			}
			prop := PropDefinition{Name: left.Utf8Text(fx.source)}
			if right != nil {
				prop.DefaultValue = unquoteString(right.Utf8Text(fx.source))
			}
			props = append(props, prop)
		case "pair_pattern":
			if key := member.ChildByFieldName("key"); key != nil {
				props = append(props, PropDefinition{
					Name:     unquoteString(key.Utf8Text(fx.source)),
					Required: true,
				})
			}
		}
	}
	return props
}

// findDescendantByKind returns the first node of the given kind at or below
// node, including node itself.
func findDescendantByKind(node *ts.Node, kind string) *ts.Node {
	if node.Kind() == kind {
		return node
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		if found := findDescendantByKind(node.Child(i), kind); found != nil {
			return found
		}
	}
	return nil
}

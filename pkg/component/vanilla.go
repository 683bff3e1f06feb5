package component

import (
	ts "github.com/tree-sitter/go-tree-sitter"
)

// extractVanilla accepts a class only when it extends HTMLElement directly
// and is registered through customElements.define. Props come from the
// static observedAttributes accessor.
func (fx *fileExtractor) extractVanilla(n *ts.Node) *Component {
	name := className(n, fx.source)
	if name == "" {
		return nil
	}
	h := heritageExpression(n)
	if h == nil || h.Utf8Text(fx.source) != "HTMLElement" {
		return nil
	}
	tag, ok := fx.reg.defines[name]
	if !ok {
		return nil
	}

	comp := fx.newComponent(FrameworkVanilla, name, tag, lineOf(n))
	fx.applyClassDoc(&comp, n)
	comp.Props = fx.observedAttributes(n)
	return &comp
}

// observedAttributes returns one prop per string literal in the array
// returned by `static get observedAttributes()`.
func (fx *fileExtractor) observedAttributes(classNode *ts.Node) []PropDefinition {
	body := findChildByKind(classNode, "class_body")
	if body == nil {
		return nil
	}
	var props []PropDefinition
	for i := uint(0); i < body.NamedChildCount(); i++ {
		member := body.NamedChild(i)
		if member.Kind() != "method_definition" || !isStaticMember(member) {
			continue
		}
		nameNode := member.ChildByFieldName("name")
		if nameNode == nil || nameNode.Utf8Text(fx.source) != "observedAttributes" {
			continue
		}
		walkTree(member, func(inner *ts.Node) {
			if inner.Kind() != "return_statement" {
				return
			}
			arr := findChildByKind(inner, "array")
			if arr == nil {
				return
			}
			for j := uint(0); j < arr.NamedChildCount(); j++ {
				if attr := stringArgValue(arr.NamedChild(j), fx.source); attr != "" {
					props = append(props, PropDefinition{Name: attr, Type: "string"})
				}
			}
		})
		break
	}
	return props
}

package component

import (
	ts "github.com/tree-sitter/go-tree-sitter"
)

// extractFAST accepts a class only through an explicit registration form:
// @customElement(string | {name}) or a compose()/FASTElement.define mapping
// found in the file. Extending FASTElement alone reads as a base class and
// is rejected.
func (fx *fileExtractor) extractFAST(n *ts.Node) *Component {
	name := className(n, fx.source)

	tag := ""
	accepted := false
	for _, dec := range decorators(n) {
		if decoratorName(dec, fx.source) == "customElement" && decoratorCall(dec) != nil {
			accepted = true
			if args := decoratorArgs(dec); len(args) > 0 {
				if s := stringArgValue(args[0], fx.source); s != "" {
					tag = s
				} else if args[0].Kind() == "object" {
					tag = objectStringEntries(args[0], fx.source)["name"]
				}
			}
		}
	}
	if !accepted && name != "" {
		if t, ok := fx.reg.fastRegs[name]; ok {
			accepted = true
			tag = t
		}
	}
	if !accepted {
		return nil
	}
	if tag == "" {
		tag = kebabCase(name)
	}
	if name == "" {
		name = pascalCase(tag)
	}

	comp := fx.newComponent(FrameworkFAST, name, tag, lineOf(n))
	fx.applyClassDoc(&comp, n)
	fx.fastClassBody(&comp, n)
	return &comp
}

func (fx *fileExtractor) fastClassBody(comp *Component, classNode *ts.Node) {
	body := findChildByKind(classNode, "class_body")
	if body == nil {
		return
	}
	for i := uint(0); i < body.NamedChildCount(); i++ {
		member := body.NamedChild(i)
		if member.Kind() != "public_field_definition" {
			continue
		}
		nameNode := member.ChildByFieldName("name")
		if nameNode == nil {
			continue
		}
		for _, dec := range decorators(member) {
			switch decoratorName(dec, fx.source) {
			case "attr", "observable":
				prop := PropDefinition{
					Name: nameNode.Utf8Text(fx.source),
					Type: typeAnnotationText(member, fx.source),
				}
				if v := member.ChildByFieldName("value"); v != nil {
					prop.DefaultValue = unquoteString(v.Utf8Text(fx.source))
				}
				if args := decoratorArgs(dec); len(args) > 0 && args[0].Kind() == "object" {
					prop.Attribute = objectStringEntries(args[0], fx.source)["attribute"]
				}
				comp.Props = append(comp.Props, prop)
			}
		}
	}
}

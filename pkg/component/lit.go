package component

import (
	"strings"

	ts "github.com/tree-sitter/go-tree-sitter"
)

// extractLit accepts a class as a Lit component when it extends an
// *Element base, carries @customElement(...), or is registered through
// customElements.define. Rejected classes return nil.
func (fx *fileExtractor) extractLit(n *ts.Node) *Component {
	name := className(n, fx.source)

	var tagFromDec string
	accepted := false
	for _, dec := range decorators(n) {
		if decoratorName(dec, fx.source) == "customElement" && decoratorCall(dec) != nil {
			accepted = true
			if args := decoratorArgs(dec); len(args) > 0 {
				tagFromDec = stringArgValue(args[0], fx.source)
			}
		}
	}
	if !accepted {
		if h := heritageExpression(n); h != nil && strings.HasSuffix(h.Utf8Text(fx.source), "Element") {
			accepted = true
		}
	}
	if !accepted && name != "" {
		_, accepted = fx.reg.defines[name]
	}
	if !accepted {
		return nil
	}

	tag := tagFromDec
	if tag == "" {
		tag = fx.reg.defines[name]
	}
	// An anonymous class with no decorator or define leaves nothing to
	// name or register the element by.
	if tag == "" && name == "" {
		return nil
	}
	if tag == "" {
		tag = kebabCase(name)
	}
	if name == "" {
		name = pascalCase(tag)
	}

	comp := fx.newComponent(FrameworkLit, name, tag, lineOf(n))
	fx.applyClassDoc(&comp, n)
	fx.litClassBody(&comp, n)
	return &comp
}

// extractAnonClass handles customElements.define('x-y', class extends ... {}).
func (fx *fileExtractor) extractAnonClass(ad anonDefine) *Component {
	comp := fx.newComponent(FrameworkLit, pascalCase(ad.tag), ad.tag, lineOf(ad.node))
	fx.litClassBody(&comp, ad.node)
	return &comp
}

func (fx *fileExtractor) litClassBody(comp *Component, classNode *ts.Node) {
	body := findChildByKind(classNode, "class_body")
	if body == nil {
		return
	}
	for i := uint(0); i < body.NamedChildCount(); i++ {
		member := body.NamedChild(i)
		if member.Kind() != "public_field_definition" {
			continue
		}
		fx.litField(comp, member)
	}
}

func (fx *fileExtractor) litField(comp *Component, field *ts.Node) {
	nameNode := field.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	fieldName := nameNode.Utf8Text(fx.source)
	value := field.ChildByFieldName("value")

	if isStaticMember(field) && fieldName == "properties" && value != nil && value.Kind() == "object" {
		fx.litStaticProperties(comp, value)
		return
	}

	// Reactive controllers: this-bound `new XController(this, ...)` fields.
	if value != nil && value.Kind() == "new_expression" {
		if ctor := value.ChildByFieldName("constructor"); ctor != nil {
			ctorName := ctor.Utf8Text(fx.source)
			if strings.HasSuffix(ctorName, "Controller") {
				comp.Metadata.Controllers = append(comp.Metadata.Controllers, ctorName)
			}
		}
	}

	for _, dec := range decorators(field) {
		switch decoratorName(dec, fx.source) {
		case "property", "state", "internalProperty":
			comp.Props = append(comp.Props, fx.litDecoratedProp(field, dec, fieldName, value))
			return
		case "query", "queryAll", "queryAsync", "queryAssignedElements", "queryAssignedNodes":
			if q := fx.litQuery(dec, fieldName); q != nil {
				comp.Metadata.Queries = append(comp.Metadata.Queries, *q)
			}
			return
		}
	}
}

func (fx *fileExtractor) litDecoratedProp(field, dec *ts.Node, fieldName string, value *ts.Node) PropDefinition {
	prop := PropDefinition{Name: fieldName}
	if value != nil {
		prop.DefaultValue = unquoteString(value.Utf8Text(fx.source))
	}

	if args := decoratorArgs(dec); len(args) > 0 && args[0].Kind() == "object" {
		opts := objectStringEntries(args[0], fx.source)
		if t, ok := opts["type"]; ok {
			prop.Type = constructorTypeName(t)
		}
		if attr, ok := opts["attribute"]; ok && attr != "false" {
			prop.Attribute = attr
		}
		if opts["reflect"] == "true" {
			prop.Reflect = true
		}
	}
	if prop.Type == "" {
		prop.Type = typeAnnotationText(field, fx.source)
	}
	return prop
}

func (fx *fileExtractor) litQuery(dec *ts.Node, fieldName string) *Query {
	kind := decoratorName(dec, fx.source)
	q := &Query{Kind: kind, Field: fieldName}
	args := decoratorArgs(dec)

	switch kind {
	case "query", "queryAll", "queryAsync":
		if len(args) == 0 {
			return nil
		}
		q.Selector = stringArgValue(args[0], fx.source)
		if kind == "query" && len(args) > 1 && args[1].Utf8Text(fx.source) == "true" {
			q.Cache = true
		}
	case "queryAssignedElements", "queryAssignedNodes":
		if len(args) > 0 && args[0].Kind() == "object" {
			opts := objectStringEntries(args[0], fx.source)
			q.Slot = opts["slot"]
			q.Selector = opts["selector"]
			q.Flatten = opts["flatten"] == "true"
		}
	}
	return q
}

// litStaticProperties reads the decorator-free `static properties = {...}`
// declaration form.
func (fx *fileExtractor) litStaticProperties(comp *Component, obj *ts.Node) {
	for i := uint(0); i < obj.NamedChildCount(); i++ {
		pair := obj.NamedChild(i)
		if pair.Kind() != "pair" {
			continue
		}
		key := pair.ChildByFieldName("key")
		value := pair.ChildByFieldName("value")
		if key == nil {
			continue
		}
		prop := PropDefinition{Name: unquoteString(key.Utf8Text(fx.source))}
		if value != nil && value.Kind() == "object" {
			opts := objectStringEntries(value, fx.source)
			if t, ok := opts["type"]; ok {
				prop.Type = constructorTypeName(t)
			}
			if attr, ok := opts["attribute"]; ok && attr != "false" {
				prop.Attribute = attr
			}
			prop.Reflect = opts["reflect"] == "true"
		}
		comp.Props = append(comp.Props, prop)
	}
}

func constructorTypeName(t string) string {
	switch t {
	case "String":
		return "string"
	case "Number":
		return "number"
	case "Boolean":
		return "boolean"
	case "Array":
		return "array"
	case "Object":
		return "object"
	}
	return t
}

func isStaticMember(node *ts.Node) bool {
	for i := uint(0); i < node.ChildCount(); i++ {
		if node.Child(i).Kind() == "static" {
			return true
		}
	}
	return false
}

// typeAnnotationText returns the declared type of a field or parameter,
// without the leading colon.
func typeAnnotationText(node *ts.Node, source []byte) string {
	ta := findChildByKind(node, "type_annotation")
	if ta == nil {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(ta.Utf8Text(source), ":"))
}

package component

import (
	"sort"
	"strings"

	ts "github.com/tree-sitter/go-tree-sitter"
)

// extractStencil accepts only classes carrying a call-shaped @Component({...})
// decorator.
func (fx *fileExtractor) extractStencil(n *ts.Node) *Component {
	var config *ts.Node
	found := false
	for _, dec := range decorators(n) {
		if decoratorName(dec, fx.source) == "Component" && decoratorCall(dec) != nil {
			found = true
			if args := decoratorArgs(dec); len(args) > 0 && args[0].Kind() == "object" {
				config = args[0]
			}
		}
	}
	if !found {
		return nil
	}

	name := className(n, fx.source)
	tag := ""
	if config != nil {
		if v := objectValueNode(config, "tag", fx.source); v != nil {
			tag = stringArgValue(v, fx.source)
		}
	}
	if tag == "" {
		tag = kebabCase(name)
	}
	if name == "" {
		name = pascalCase(tag)
	}

	comp := fx.newComponent(FrameworkStencil, name, tag, lineOf(n))
	fx.applyClassDoc(&comp, n)
	fx.stencilConfig(&comp, config)
	fx.stencilClassBody(&comp, n)
	return &comp
}

func (fx *fileExtractor) stencilConfig(comp *Component, config *ts.Node) {
	if config == nil {
		return
	}
	opts := objectStringEntries(config, fx.source)

	switch {
	case opts["shadow"] == "true":
		comp.Metadata.ShadowMode = "shadow"
	case opts["scoped"] == "true":
		comp.Metadata.ShadowMode = "scoped"
	default:
		comp.Metadata.ShadowMode = "light"
	}
	comp.Metadata.FormAssociated = opts["formAssociated"] == "true"

	if v := objectValueNode(config, "assetsDirs", fx.source); v != nil && v.Kind() == "array" {
		for i := uint(0); i < v.NamedChildCount(); i++ {
			if s := stringArgValue(v.NamedChild(i), fx.source); s != "" {
				comp.Metadata.AssetsDirs = append(comp.Metadata.AssetsDirs, s)
			}
		}
	}

	comp.Metadata.StyleURLs = fx.stencilStyleURLs(config)
}

// stencilStyleURLs flattens styleUrl (string), styleUrls (array), or
// platform-keyed styleUrls (object) into one comma-joined string.
func (fx *fileExtractor) stencilStyleURLs(config *ts.Node) string {
	if v := objectValueNode(config, "styleUrl", fx.source); v != nil {
		return stringArgValue(v, fx.source)
	}
	v := objectValueNode(config, "styleUrls", fx.source)
	if v == nil {
		return ""
	}
	var urls []string
	switch v.Kind() {
	case "string", "template_string":
		return stringArgValue(v, fx.source)
	case "array":
		for i := uint(0); i < v.NamedChildCount(); i++ {
			if s := stringArgValue(v.NamedChild(i), fx.source); s != "" {
				urls = append(urls, s)
			}
		}
	case "object":
		entries := objectStringEntries(v, fx.source)
		keys := make([]string, 0, len(entries))
		for k := range entries {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			urls = append(urls, entries[k])
		}
	}
	return strings.Join(urls, ",")
}

func (fx *fileExtractor) stencilClassBody(comp *Component, classNode *ts.Node) {
	body := findChildByKind(classNode, "class_body")
	if body == nil {
		return
	}
	for i := uint(0); i < body.NamedChildCount(); i++ {
		member := body.NamedChild(i)
		switch member.Kind() {
		case "public_field_definition":
			fx.stencilField(comp, member)
		case "method_definition":
			fx.stencilMethod(comp, member)
		}
	}
}

func (fx *fileExtractor) stencilField(comp *Component, field *ts.Node) {
	nameNode := field.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	fieldName := nameNode.Utf8Text(fx.source)

	for _, dec := range decorators(field) {
		switch decoratorName(dec, fx.source) {
		case "Prop":
			comp.Props = append(comp.Props, fx.stencilProp(field, dec, fieldName))
			return
		case "State":
			prop := PropDefinition{Name: fieldName, Type: typeAnnotationText(field, fx.source)}
			if v := field.ChildByFieldName("value"); v != nil {
				prop.DefaultValue = unquoteString(v.Utf8Text(fx.source))
			}
			comp.Props = append(comp.Props, prop)
			return
		case "Event":
			comp.Props = append(comp.Props, fx.stencilEvent(field, dec, fieldName))
			return
		case "Element":
			comp.Metadata.HasElement = true
			return
		}
	}
}

func (fx *fileExtractor) stencilProp(field, dec *ts.Node, fieldName string) PropDefinition {
	prop := PropDefinition{
		Name: fieldName,
		Type: typeAnnotationText(field, fx.source),
	}
	if v := field.ChildByFieldName("value"); v != nil {
		prop.DefaultValue = unquoteString(v.Utf8Text(fx.source))
	}
	prop.Required = !hasOptionalMarker(field) && prop.DefaultValue == ""

	if args := decoratorArgs(dec); len(args) > 0 && args[0].Kind() == "object" {
		opts := objectStringEntries(args[0], fx.source)
		prop.Mutable = opts["mutable"] == "true"
		prop.Reflect = opts["reflect"] == "true"
		prop.Attribute = opts["attribute"]
	}
	return prop
}

func (fx *fileExtractor) stencilEvent(field, dec *ts.Node, fieldName string) PropDefinition {
	prop := PropDefinition{
		Name:      fieldName,
		EventName: fieldName,
		// Stencil events bubble, compose, and cancel unless disabled.
		Bubbles:    true,
		Composed:   true,
		Cancelable: true,
	}
	if t := typeAnnotationText(field, fx.source); strings.HasPrefix(t, "EventEmitter<") {
		prop.Type = strings.TrimSuffix(strings.TrimPrefix(t, "EventEmitter<"), ">")
	}
	if args := decoratorArgs(dec); len(args) > 0 && args[0].Kind() == "object" {
		opts := objectStringEntries(args[0], fx.source)
		if en, ok := opts["eventName"]; ok && en != "" {
			prop.EventName = en
		}
		if v, ok := opts["bubbles"]; ok {
			prop.Bubbles = v == "true"
		}
		if v, ok := opts["composed"]; ok {
			prop.Composed = v == "true"
		}
		if v, ok := opts["cancelable"]; ok {
			prop.Cancelable = v == "true"
		}
	}
	return prop
}

func (fx *fileExtractor) stencilMethod(comp *Component, method *ts.Node) {
	nameNode := method.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	methodName := nameNode.Utf8Text(fx.source)

	for _, dec := range decorators(method) {
		switch decoratorName(dec, fx.source) {
		case "Watch":
			if args := decoratorArgs(dec); len(args) > 0 {
				if prop := stringArgValue(args[0], fx.source); prop != "" {
					comp.Metadata.Watchers = append(comp.Metadata.Watchers, Watcher{PropName: prop, Method: methodName})
				}
			}
		case "Method":
			comp.Metadata.Methods = append(comp.Metadata.Methods, methodName)
		case "Listen":
			if args := decoratorArgs(dec); len(args) > 0 {
				if ev := stringArgValue(args[0], fx.source); ev != "" {
					comp.Metadata.Listeners = append(comp.Metadata.Listeners, Listener{EventName: ev, Method: methodName})
				}
			}
		}
	}
}

// stencilFunctionalComponents finds exported
// `const Name: FunctionalComponent<Props> = ...` declarations and resolves
// their props from the referenced interface.
func (fx *fileExtractor) stencilFunctionalComponents(root *ts.Node) []Component {
	var comps []Component
	walkTree(root, func(n *ts.Node) {
		if n.Kind() != "variable_declarator" {
			return
		}
		decl := n.Parent() // lexical_declaration
		if decl == nil || !isExported(decl) {
			return
		}
		propsType := functionalComponentPropsType(n, fx.source)
		if propsType == "" {
			return
		}
		nameNode := n.ChildByFieldName("name")
		if nameNode == nil || nameNode.Kind() != "identifier" {
			return
		}
		name := nameNode.Utf8Text(fx.source)

		comp := fx.newComponent(FrameworkStencilFunctional, name, "", lineOf(n))
		comp.Props = fx.interfaceProps(root, propsType)
		comps = append(comps, comp)
	})
	return comps
}

// functionalComponentPropsType returns the generic argument of a
// `FunctionalComponent<T>` type annotation, or "".
func functionalComponentPropsType(declarator *ts.Node, source []byte) string {
	ta := findChildByKind(declarator, "type_annotation")
	if ta == nil {
		return ""
	}
	generic := findChildByKind(ta, "generic_type")
	if generic == nil {
		return ""
	}
	nameNode := generic.ChildByFieldName("name")
	if nameNode == nil || nameNode.Utf8Text(source) != "FunctionalComponent" {
		return ""
	}
	typeArgs := generic.ChildByFieldName("type_arguments")
	if typeArgs == nil {
		typeArgs = findChildByKind(generic, "type_arguments")
	}
	if typeArgs == nil || typeArgs.NamedChildCount() == 0 {
		return ""
	}
	return typeArgs.NamedChild(0).Utf8Text(source)
}

// interfaceProps extracts property signatures from the named interface.
func (fx *fileExtractor) interfaceProps(root *ts.Node, interfaceName string) []PropDefinition {
	var props []PropDefinition
	walkTree(root, func(n *ts.Node) {
		if n.Kind() != "interface_declaration" {
			return
		}
		nameNode := n.ChildByFieldName("name")
		if nameNode == nil || nameNode.Utf8Text(fx.source) != interfaceName {
			return
		}
		body := n.ChildByFieldName("body")
		if body == nil {
			body = findChildByKind(n, "interface_body")
		}
		if body == nil {
			return
		}
		for i := uint(0); i < body.NamedChildCount(); i++ {
			sig := body.NamedChild(i)
			if sig.Kind() != "property_signature" {
				continue
			}
			propName := sig.ChildByFieldName("name")
			if propName == nil {
				continue
			}
			props = append(props, PropDefinition{
				Name:     propName.Utf8Text(fx.source),
				Type:     typeAnnotationText(sig, fx.source),
				Required: !hasOptionalMarker(sig),
			})
		}
	})
	return props
}

func hasOptionalMarker(node *ts.Node) bool {
	for i := uint(0); i < node.ChildCount(); i++ {
		if node.Child(i).Kind() == "?" {
			return true
		}
	}
	return false
}

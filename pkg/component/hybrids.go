package component

import (
	ts "github.com/tree-sitter/go-tree-sitter"
)

// hybridsComponents turns each collected define({tag, ...}) call into a
// component. Every descriptor key except tag and render becomes a prop of
// unknown type; the component name is the generic type argument when
// present, else PascalCase of the tag.
func (fx *fileExtractor) hybridsComponents() []Component {
	var comps []Component
	for _, call := range fx.reg.hybridsCalls {
		args := callArguments(call)
		if len(args) == 0 {
			continue
		}
		desc := args[0]
		tag := ""
		if v := objectValueNode(desc, "tag", fx.source); v != nil {
			tag = stringArgValue(v, fx.source)
		}
		if tag == "" {
			continue
		}

		name := ""
		if typeArgs := call.ChildByFieldName("type_arguments"); typeArgs != nil && typeArgs.NamedChildCount() > 0 {
			name = typeArgs.NamedChild(0).Utf8Text(fx.source)
		}
		if name == "" {
			name = pascalCase(tag)
		}

		comp := fx.newComponent(FrameworkHybrids, name, tag, lineOf(call))
		for i := uint(0); i < desc.NamedChildCount(); i++ {
			member := desc.NamedChild(i)
			var propName string
			var value *ts.Node
			switch member.Kind() {
			case "pair":
				key := member.ChildByFieldName("key")
				if key == nil {
					continue
				}
				propName = unquoteString(key.Utf8Text(fx.source))
				value = member.ChildByFieldName("value")
			case "shorthand_property_identifier":
				propName = member.Utf8Text(fx.source)
			default:
				continue
			}
			if propName == "tag" || propName == "render" {
				continue
			}
			prop := PropDefinition{Name: propName}
			if value != nil {
				switch value.Kind() {
				case "string", "template_string", "number", "true", "false":
					prop.DefaultValue = unquoteString(value.Utf8Text(fx.source))
				}
			}
			comp.Props = append(comp.Props, prop)
		}
		comps = append(comps, comp)
	}
	return comps
}

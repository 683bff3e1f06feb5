package component

import (
	"strings"

	ts "github.com/tree-sitter/go-tree-sitter"
)

// registry holds the registration calls found anywhere in a file. Collected
// in a single pre-pass so class extractors can resolve tag names regardless
// of whether the registration appears before or after the declaration.
type registry struct {
	// customElements.define(tag, ClassName)
	defines map[string]string // class name -> tag

	// customElements.define(tag, class ... {})
	anonDefines []anonDefine

	// customElements.define(tag, component(FnName))
	hauntedFns map[string]string // function name -> tag

	// X.compose({name}) and FASTElement.define(X, {name})
	fastRegs map[string]string // class name -> tag ("" when unnamed)

	// hybrids define({tag, ...}) call nodes
	hybridsCalls []*ts.Node
}

type anonDefine struct {
	tag  string
	node *ts.Node
}

func walkTree(node *ts.Node, fn func(*ts.Node)) {
	fn(node)
	for i := uint(0); i < node.ChildCount(); i++ {
		walkTree(node.Child(i), fn)
	}
}

func collectRegistry(root *ts.Node, source []byte) *registry {
	reg := &registry{
		defines:    map[string]string{},
		hauntedFns: map[string]string{},
		fastRegs:   map[string]string{},
	}
	walkTree(root, func(n *ts.Node) {
		if n.Kind() == "call_expression" {
			reg.visitCall(n, source)
		}
	})
	return reg
}

func (reg *registry) visitCall(call *ts.Node, source []byte) {
	fn := call.ChildByFieldName("function")
	if fn == nil {
		return
	}

	if fn.Kind() == "identifier" {
		if fn.Utf8Text(source) == "define" {
			reg.visitBareDefine(call, source)
		}
		return
	}
	if fn.Kind() != "member_expression" {
		return
	}

	obj := fn.ChildByFieldName("object")
	prop := fn.ChildByFieldName("property")
	if obj == nil || prop == nil {
		return
	}
	objText := obj.Utf8Text(source)
	propText := prop.Utf8Text(source)

	switch {
	case propText == "define" && strings.HasSuffix(objText, "customElements"):
		reg.visitCustomElementsDefine(call, source)
	case propText == "define" && objText == "FASTElement":
		reg.visitFASTDefine(call, source)
	case propText == "compose" && obj.Kind() == "identifier":
		reg.visitCompose(objText, call, source)
	}
}

func (reg *registry) visitCustomElementsDefine(call *ts.Node, source []byte) {
	args := callArguments(call)
	if len(args) < 2 {
		return
	}
	tag := stringArgValue(args[0], source)
	if tag == "" {
		return
	}
	ctor := args[1]
	switch ctor.Kind() {
	case "identifier":
		reg.defines[ctor.Utf8Text(source)] = tag
	case "class", "class_declaration":
		reg.anonDefines = append(reg.anonDefines, anonDefine{tag: tag, node: ctor})
	case "call_expression":
		// component(FnName) from haunted.
		inner := ctor.ChildByFieldName("function")
		if inner == nil || inner.Utf8Text(source) != "component" {
			return
		}
		innerArgs := callArguments(ctor)
		if len(innerArgs) > 0 && innerArgs[0].Kind() == "identifier" {
			reg.hauntedFns[innerArgs[0].Utf8Text(source)] = tag
		}
	}
}

func (reg *registry) visitFASTDefine(call *ts.Node, source []byte) {
	args := callArguments(call)
	if len(args) == 0 || args[0].Kind() != "identifier" {
		return
	}
	name := args[0].Utf8Text(source)
	tag := ""
	if len(args) > 1 {
		tag = objectStringEntries(args[1], source)["name"]
	}
	reg.fastRegs[name] = tag
}

func (reg *registry) visitCompose(className string, call *ts.Node, source []byte) {
	tag := ""
	if args := callArguments(call); len(args) > 0 {
		tag = objectStringEntries(args[0], source)["name"]
	}
	reg.fastRegs[className] = tag
}

// visitBareDefine records hybrids-style define({tag, ...}) calls. Only calls
// whose first argument is an object literal with a "tag" key qualify.
func (reg *registry) visitBareDefine(call *ts.Node, source []byte) {
	args := callArguments(call)
	if len(args) == 0 || args[0].Kind() != "object" {
		return
	}
	if objectValueNode(args[0], "tag", source) == nil {
		return
	}
	reg.hybridsCalls = append(reg.hybridsCalls, call)
}

func callArguments(call *ts.Node) []*ts.Node {
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

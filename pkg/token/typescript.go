package token

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/driftlens/driftlens/pkg/ident"
	"github.com/driftlens/driftlens/pkg/objlit"
	"github.com/driftlens/driftlens/pkg/parser"
)

// unionNameRe matches type names that follow design-token naming
// conventions; string-literal unions under such names become tokens.
var unionNameRe = regexp.MustCompile(`(?i)(variant|color|size|style|theme|type|severity|status|state|intent|appearance|scheme)$`)

// tokenVarRe is the allow-list of variable names treated as token
// definitions when assigned an object literal. Includes the common vendor
// theme-variable spellings (themeVars, designTokens, cssVars).
var tokenVarRe = regexp.MustCompile(`(?i)^(colors?|palettes?|spacing|space|typography|shadows?|radii|borderradius|z-?indexes?|zindices|breakpoints?|themes?\w*|tokens?|designtokens|durations?|easings?|animations?|letterspacings?|lineheights?|fontsizes?|fontweights?|fontfamil(y|ies)|sizes|vars|cssvars|themevars)$`)

// ExtractTypeScript pulls design tokens from a TypeScript/JavaScript source
// file: string-literal union types with token-like names, and object-literal
// assignments (defineTokens.<category>({...}), defineSemanticTokens, and
// `export const <tokenLikeName> = {...}`) run through the literal-tree
// parser.
func ExtractTypeScript(path string, source []byte, pm *parser.Manager) ([]DesignToken, error) {
	tree, err := pm.ParseFile(source, path)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	defer tree.Close()

	ex := &tsExtractor{path: path, source: source, now: time.Now().UTC()}
	ex.visit(tree.RootNode())
	return ex.tokens, nil
}

type tsExtractor struct {
	path   string
	source []byte
	now    time.Time
	tokens []DesignToken
}

func (ex *tsExtractor) visit(node *ts.Node) {
	switch node.Kind() {
	case "type_alias_declaration":
		ex.unionTokens(node)
	case "variable_declarator":
		ex.variableTokens(node)
	case "call_expression":
		ex.defineCallTokens(node)
	}

	for i := uint(0); i < uint(node.ChildCount()); i++ {
		ex.visit(node.Child(i))
	}
}

// unionTokens emits one token per string member of a token-like union type.
func (ex *tsExtractor) unionTokens(decl *ts.Node) {
	nameNode := decl.ChildByFieldName("name")
	value := decl.ChildByFieldName("value")
	if nameNode == nil || value == nil || value.Kind() != "union_type" {
		return
	}
	typeName := nameNode.Utf8Text(ex.source)
	if !unionNameRe.MatchString(typeName) {
		return
	}

	for _, member := range unionStringMembers(value, ex.source) {
		name := typeName + "." + member.text
		category := InferCategory(typeName, member.text)
		ex.tokens = append(ex.tokens, DesignToken{
			ID:       ident.TokenID(string(SourceTypeScript), ex.path, name),
			Name:     name,
			Category: category,
			Value:    Normalize(category, member.text),
			Source: Source{
				Kind:     SourceTypeScript,
				Path:     ex.path,
				TypeName: typeName,
				Line:     member.line,
			},
			ScannedAt: ex.now,
		})
	}
}

type unionMember struct {
	text string
	line int
}

// unionStringMembers flattens the left-recursive union tree into its
// string-literal leaves. Non-string members disqualify nothing; they are
// simply skipped.
func unionStringMembers(node *ts.Node, source []byte) []unionMember {
	if node.Kind() != "union_type" {
		if node.Kind() == "literal_type" {
			text := strings.TrimSpace(node.Utf8Text(source))
			if isQuoted(text) {
				return []unionMember{{
					text: unquote(text),
					line: int(node.StartPosition().Row) + 1,
				}}
			}
		}
		return nil
	}

	var members []unionMember
	for i := uint(0); i < uint(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Kind() == "|" {
			continue
		}
		members = append(members, unionStringMembers(child, source)...)
	}
	return members
}

// variableTokens handles `export const colors = {...}` style assignments.
func (ex *tsExtractor) variableTokens(decl *ts.Node) {
	nameNode := decl.ChildByFieldName("name")
	value := decl.ChildByFieldName("value")
	if nameNode == nil || value == nil {
		return
	}
	name := nameNode.Utf8Text(ex.source)
	if !tokenVarRe.MatchString(name) {
		return
	}

	obj := unwrapToObject(value)
	if obj == nil {
		return
	}

	line := int(decl.StartPosition().Row) + 1
	entries := objlit.ParseEntries(objlit.Inner(obj.Utf8Text(ex.source)))
	walkEntries(entries, name, inferFromName(name), false, ex.emitter(name, line))
}

// defineCallTokens handles defineTokens.<category>({...}) and
// defineSemanticTokens.<category>({...}).
func (ex *tsExtractor) defineCallTokens(call *ts.Node) {
	fn := call.ChildByFieldName("function")
	if fn == nil || fn.Kind() != "member_expression" {
		return
	}
	object := fn.ChildByFieldName("object")
	property := fn.ChildByFieldName("property")
	if object == nil || property == nil {
		return
	}

	receiver := object.Utf8Text(ex.source)
	semantic := false
	switch receiver {
	case "defineTokens":
	case "defineSemanticTokens":
		semantic = true
	default:
		return
	}

	args := call.ChildByFieldName("arguments")
	if args == nil {
		return
	}
	var obj *ts.Node
	for i := uint(0); i < uint(args.ChildCount()); i++ {
		if child := args.Child(i); child.Kind() == "object" {
			obj = child
			break
		}
	}
	if obj == nil {
		return
	}

	category := property.Utf8Text(ex.source)
	line := int(call.StartPosition().Row) + 1
	entries := objlit.ParseEntries(objlit.Inner(obj.Utf8Text(ex.source)))
	walkEntries(entries, category, inferFromName(category), semantic, ex.emitter(category, line))
}

// emitter adapts walker output into DesignTokens attributed to the
// declaration at line under typeName.
func (ex *tsExtractor) emitter(typeName string, line int) walkEmit {
	return func(name, rawValue string, category Category) {
		ex.tokens = append(ex.tokens, DesignToken{
			ID:       ident.TokenID(string(SourceTypeScript), ex.path, name),
			Name:     name,
			Category: category,
			Value:    Normalize(category, rawValue),
			Source: Source{
				Kind:     SourceTypeScript,
				Path:     ex.path,
				TypeName: typeName,
				Line:     line,
			},
			ScannedAt: ex.now,
		})
	}
}

// unwrapToObject digs through `as const` / satisfies wrappers to the
// underlying object literal, or returns nil.
func unwrapToObject(node *ts.Node) *ts.Node {
	switch node.Kind() {
	case "object":
		return node
	case "as_expression", "satisfies_expression", "parenthesized_expression", "non_null_expression":
		for i := uint(0); i < uint(node.ChildCount()); i++ {
			if obj := unwrapToObject(node.Child(i)); obj != nil {
				return obj
			}
		}
	}
	return nil
}

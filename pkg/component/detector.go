package component

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/driftlens/driftlens/pkg/ident"
	"github.com/driftlens/driftlens/pkg/parser"
)

// frameworkSniffs is checked in order; the first marker hit decides which
// class extractor runs for the whole file. The ordering is a contract:
// a file importing both lit and haunted dispatches its classes to Lit.
var frameworkSniffs = []struct {
	fw      Framework
	markers []string
}{
	{FrameworkLit, []string{"LitElement", `from "lit"`, `from 'lit'`, `"lit/`, `'lit/`}},
	{FrameworkStencil, []string{"@stencil/core"}},
	{FrameworkFAST, []string{"@microsoft/fast-element"}},
	{FrameworkHaunted, []string{"haunted"}},
	{FrameworkHybrids, []string{"hybrids"}},
}

// SniffFramework picks the framework for a file by coarse substring search.
// Returns "" when no marker matches.
func SniffFramework(source []byte) Framework {
	text := string(source)
	for _, sniff := range frameworkSniffs {
		for _, marker := range sniff.markers {
			if strings.Contains(text, marker) {
				return sniff.fw
			}
		}
	}
	return ""
}

// Detector extracts web components from TypeScript/JavaScript sources.
type Detector struct {
	parsers *parser.Manager
	log     *slog.Logger
}

func NewDetector(pm *parser.Manager, log *slog.Logger) *Detector {
	if log == nil {
		log = slog.Default()
	}
	return &Detector{parsers: pm, log: log}
}

// DetectFile parses one file and returns every component declared in it.
// hint overrides the textual framework sniff when non-empty. Registration
// discovery (customElements.define and friends) always runs, so anonymous
// class expressions and vanilla classes are found under any sniff result.
func (d *Detector) DetectFile(path string, source []byte, hint Framework) ([]Component, error) {
	tree, err := d.parsers.ParseFile(source, path)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	fx := &fileExtractor{
		path:   path,
		source: source,
		reg:    collectRegistry(root, source),
		now:    time.Now().UTC(),
	}

	fw := hint
	if fw == "" {
		fw = SniffFramework(source)
	}
	d.log.Debug("detecting components", "path", path, "framework", string(fw))

	var comps []Component

	// Pass 1: class declarations. The sniffed extractor gets first refusal;
	// classes it rejects still get the vanilla HTMLElement+define test.
	walkTree(root, func(n *ts.Node) {
		if n.Kind() != "class_declaration" {
			return
		}
		var comp *Component
		switch fw {
		case FrameworkLit:
			comp = fx.extractLit(n)
		case FrameworkStencil:
			comp = fx.extractStencil(n)
		case FrameworkFAST:
			comp = fx.extractFAST(n)
		}
		if comp == nil {
			comp = fx.extractVanilla(n)
		}
		if comp != nil {
			comps = append(comps, *comp)
		}
	})

	// Anonymous class expressions registered inline with define().
	for _, ad := range fx.reg.anonDefines {
		if comp := fx.extractAnonClass(ad); comp != nil {
			comps = append(comps, *comp)
		}
	}

	// Pass 2: non-class declaration forms.
	comps = append(comps, fx.stencilFunctionalComponents(root)...)
	comps = append(comps, fx.hauntedComponents(root)...)
	comps = append(comps, fx.hybridsComponents()...)

	return comps, nil
}

// fileExtractor carries the per-file state the framework extractors share.
type fileExtractor struct {
	path   string
	source []byte
	reg    *registry
	now    time.Time
}

func (fx *fileExtractor) newComponent(fw Framework, name, tag string, line int) Component {
	return Component{
		ID:   ident.ComponentID(fx.path, name),
		Name: name,
		Source: Source{
			Framework:  fw,
			Path:       fx.path,
			ExportName: name,
			TagName:    tag,
			Line:       line,
		},
		ScannedAt: fx.now,
	}
}

// applyClassDoc folds the class JSDoc block into the component metadata.
func (fx *fileExtractor) applyClassDoc(comp *Component, classNode *ts.Node) {
	doc := classDocComment(classNode, fx.source)
	if doc == "" {
		return
	}
	info := parseClassDoc(doc)
	comp.Metadata.Description = info.Description
	comp.Metadata.Summary = info.Summary
	comp.Metadata.Deprecated = info.Deprecated
	comp.Metadata.Events = info.Events
	comp.Metadata.Slots = info.Slots
	comp.Metadata.CSSProperties = info.CSSProps
	comp.Metadata.CSSParts = info.CSSParts
}

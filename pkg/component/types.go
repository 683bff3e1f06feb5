// Package component detects web-component definitions in TypeScript and
// JavaScript sources across the Lit, Stencil, FAST, vanilla Custom Elements,
// Haunted, and Hybrids authoring conventions, and extracts their props,
// events, queries, and JSDoc metadata from the AST.
package component

import "time"

// Framework identifies the authoring convention a component was declared in.
type Framework string

const (
	FrameworkLit               Framework = "lit"
	FrameworkStencil           Framework = "stencil"
	FrameworkStencilFunctional Framework = "stencil-functional"
	FrameworkFAST              Framework = "fast"
	FrameworkVanilla           Framework = "vanilla"
	FrameworkHaunted           Framework = "haunted"
	FrameworkHybrids           Framework = "hybrids"
)

// Source identifies where and how a component was declared.
type Source struct {
	Framework  Framework `json:"framework"`
	Path       string    `json:"path"`
	ExportName string    `json:"exportName"`
	TagName    string    `json:"tagName,omitempty"`
	Line       int       `json:"line"`
}

// PropDefinition describes one public property or event of a component.
// EventName being non-empty marks an event definition.
type PropDefinition struct {
	Name         string `json:"name"`
	Type         string `json:"type,omitempty"`
	Required     bool   `json:"required"`
	DefaultValue string `json:"defaultValue,omitempty"`
	Description  string `json:"description,omitempty"`

	// Property extras (Stencil @Prop options, Lit @property options).
	Mutable   bool   `json:"mutable,omitempty"`
	Reflect   bool   `json:"reflect,omitempty"`
	Attribute string `json:"attribute,omitempty"`

	// Event extras (Stencil @Event options).
	EventName  string `json:"eventName,omitempty"`
	Bubbles    bool   `json:"bubbles,omitempty"`
	Composed   bool   `json:"composed,omitempty"`
	Cancelable bool   `json:"cancelable,omitempty"`
}

// Watcher records a Stencil @Watch method.
type Watcher struct {
	PropName string `json:"propName"`
	Method   string `json:"method"`
}

// Listener records a Stencil @Listen method.
type Listener struct {
	EventName string `json:"eventName"`
	Method    string `json:"method"`
}

// Query records a Lit DOM query decorator.
type Query struct {
	Kind     string `json:"kind"` // query, queryAll, queryAsync, queryAssignedElements, queryAssignedNodes
	Field    string `json:"field"`
	Selector string `json:"selector,omitempty"`
	Slot     string `json:"slot,omitempty"`
	Flatten  bool   `json:"flatten,omitempty"`
	Cache    bool   `json:"cache,omitempty"`
}

// JSDocEvent is a `@fires` tag parsed from the class doc comment.
type JSDocEvent struct {
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

// JSDocSlot is a `@slot` tag; Name is empty for the default slot.
type JSDocSlot struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// JSDocCSSProperty is a `@cssProperty`/`@cssProp` tag.
type JSDocCSSProperty struct {
	Name        string `json:"name"`
	Default     string `json:"default,omitempty"`
	Description string `json:"description,omitempty"`
}

// JSDocPart is a `@cssPart` tag.
type JSDocPart struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Metadata carries deprecation, JSDoc-derived documentation, and
// framework-specific extras. Zero values mean "not present".
type Metadata struct {
	Deprecated bool              `json:"deprecated,omitempty"`
	Tags       map[string]string `json:"tags,omitempty"`

	// JSDoc-derived.
	Description   string             `json:"description,omitempty"`
	Summary       string             `json:"summary,omitempty"`
	Events        []JSDocEvent       `json:"events,omitempty"`
	Slots         []JSDocSlot        `json:"slots,omitempty"`
	CSSProperties []JSDocCSSProperty `json:"cssProperties,omitempty"`
	CSSParts      []JSDocPart        `json:"cssParts,omitempty"`

	// Stencil extras.
	Watchers       []Watcher  `json:"watchers,omitempty"`
	Methods        []string   `json:"methods,omitempty"`
	Listeners      []Listener `json:"listeners,omitempty"`
	FormAssociated bool       `json:"formAssociated,omitempty"`
	HasElement     bool       `json:"hasElement,omitempty"`
	ShadowMode     string     `json:"shadowMode,omitempty"` // shadow, scoped, light
	AssetsDirs     []string   `json:"assetsDirs,omitempty"`
	StyleURLs      string     `json:"styleUrls,omitempty"`

	// Lit extras.
	Controllers []string `json:"controllers,omitempty"`
	Queries     []Query  `json:"queries,omitempty"`
}

// Component is a declared UI component. Immutable after extraction; the
// Variants, Tokens, and Dependencies slices are reserved for downstream
// enrichment and stay empty here.
type Component struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Source       Source           `json:"source"`
	Props        []PropDefinition `json:"props,omitempty"`
	Variants     []string         `json:"variants,omitempty"`
	Tokens       []string         `json:"tokens,omitempty"`
	Dependencies []string         `json:"dependencies,omitempty"`
	Metadata     Metadata         `json:"metadata"`
	ScannedAt    time.Time        `json:"scannedAt"`
}

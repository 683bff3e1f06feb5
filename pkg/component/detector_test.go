package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftlens/driftlens/pkg/parser"
)

func detect(t *testing.T, path, source string) []Component {
	t.Helper()
	pm := parser.NewManager(nil)
	defer pm.Close()

	d := NewDetector(pm, nil)
	comps, err := d.DetectFile(path, []byte(source), "")
	require.NoError(t, err)
	return comps
}

func propByName(t *testing.T, comp Component, name string) PropDefinition {
	t.Helper()
	for _, p := range comp.Props {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("prop %q not found in %v", name, comp.Props)
	return PropDefinition{}
}

func TestSniffFramework(t *testing.T) {
	tests := []struct {
		source string
		want   Framework
	}{
		{`import { LitElement } from 'lit';`, FrameworkLit},
		{`import { Component } from '@stencil/core';`, FrameworkStencil},
		{`import { FASTElement } from '@microsoft/fast-element';`, FrameworkFAST},
		{`import { component } from 'haunted';`, FrameworkHaunted},
		{`import { define } from 'hybrids';`, FrameworkHybrids},
		{`const split = x.split(',');`, Framework("")},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SniffFramework([]byte(tt.source)), tt.source)
	}
}

func TestDetect_LitDecorated(t *testing.T) {
	src := `import { LitElement, html } from 'lit';
import { customElement, property, state } from 'lit/decorators.js';

@customElement('my-button')
export class MyButton extends LitElement {
  @property({ type: String }) variant = 'primary';
  @property({ type: Number, reflect: true }) count = 0;
  @property({ attribute: 'full-width' }) fullWidth: boolean;
  @state() private pressed = false;
}
`
	comps := detect(t, "/src/my-button.ts", src)
	require.Len(t, comps, 1)

	comp := comps[0]
	assert.Equal(t, "MyButton", comp.Name)
	assert.Equal(t, FrameworkLit, comp.Source.Framework)
	assert.Equal(t, "my-button", comp.Source.TagName)
	assert.Equal(t, "/src/my-button.ts", comp.Source.Path)
	assert.NotEmpty(t, comp.ID)
	require.Len(t, comp.Props, 4)

	variant := propByName(t, comp, "variant")
	assert.Equal(t, "string", variant.Type)
	assert.Equal(t, "primary", variant.DefaultValue)

	count := propByName(t, comp, "count")
	assert.Equal(t, "number", count.Type)
	assert.True(t, count.Reflect)

	fullWidth := propByName(t, comp, "fullWidth")
	assert.Equal(t, "full-width", fullWidth.Attribute)
	assert.Equal(t, "boolean", fullWidth.Type, "falls back to the field annotation")
}

func TestDetect_LitViaDefineOnly(t *testing.T) {
	src := `import { LitElement } from 'lit';
class Foo extends LitElement {}
customElements.define('foo-bar', Foo);
`
	comps := detect(t, "/src/foo.ts", src)
	require.Len(t, comps, 1)
	assert.Equal(t, "Foo", comps[0].Name)
	assert.Equal(t, "foo-bar", comps[0].Source.TagName)
	assert.Equal(t, FrameworkLit, comps[0].Source.Framework)
}

func TestDetect_LitKebabFallbackTag(t *testing.T) {
	src := `import { LitElement } from 'lit';
export class FancyDropdown extends LitElement {}
`
	comps := detect(t, "/src/d.ts", src)
	require.Len(t, comps, 1)
	assert.Equal(t, "fancy-dropdown", comps[0].Source.TagName)
}

func TestDetect_LitStaticProperties(t *testing.T) {
	src := `import { LitElement } from 'lit';
class XBadge extends LitElement {
  static properties = {
    label: { type: String },
    level: { type: Number, reflect: true },
  };
}
customElements.define('x-badge', XBadge);
`
	comps := detect(t, "/src/badge.js", src)
	require.Len(t, comps, 1)
	require.Len(t, comps[0].Props, 2)
	assert.Equal(t, "string", propByName(t, comps[0], "label").Type)
	assert.True(t, propByName(t, comps[0], "level").Reflect)
}

func TestDetect_LitQueriesAndControllers(t *testing.T) {
	src := `import { LitElement } from 'lit';
import { customElement, query, queryAssignedElements } from 'lit/decorators.js';

@customElement('x-menu')
export class XMenu extends LitElement {
  @query('#list', true) list: HTMLElement;
  @queryAssignedElements({ slot: 'item', flatten: true }) items: Array<HTMLElement>;
  private resize = new ResizeController(this);
}
`
	comps := detect(t, "/src/menu.ts", src)
	require.Len(t, comps, 1)

	meta := comps[0].Metadata
	require.Len(t, meta.Queries, 2)
	assert.Equal(t, Query{Kind: "query", Field: "list", Selector: "#list", Cache: true}, meta.Queries[0])
	assert.Equal(t, Query{Kind: "queryAssignedElements", Field: "items", Slot: "item", Flatten: true}, meta.Queries[1])
	assert.Equal(t, []string{"ResizeController"}, meta.Controllers)
}

func TestDetect_AnonymousClassExpression(t *testing.T) {
	src := `customElements.define('inline-note', class extends HTMLElement {
  static properties = { text: { type: String } };
});
`
	comps := detect(t, "/src/note.js", src)
	require.Len(t, comps, 1)
	assert.Equal(t, "InlineNote", comps[0].Name)
	assert.Equal(t, "inline-note", comps[0].Source.TagName)
	assert.Equal(t, FrameworkLit, comps[0].Source.Framework)
	require.Len(t, comps[0].Props, 1)
	assert.Equal(t, "text", comps[0].Props[0].Name)
}

func TestDetect_AnonymousDefaultExportIgnored(t *testing.T) {
	src := `import { LitElement } from 'lit';
export default class extends LitElement {}
`
	comps := detect(t, "/src/anon.ts", src)
	assert.Empty(t, comps, "no name, no decorator, no define: nothing to register")
}

func TestDetect_VanillaObservedAttributes(t *testing.T) {
	src := `class ToggleSwitch extends HTMLElement {
  static get observedAttributes() {
    return ['checked', 'disabled'];
  }
}
customElements.define('toggle-switch', ToggleSwitch);
`
	comps := detect(t, "/src/toggle.js", src)
	require.Len(t, comps, 1)

	comp := comps[0]
	assert.Equal(t, FrameworkVanilla, comp.Source.Framework)
	assert.Equal(t, "toggle-switch", comp.Source.TagName)
	require.Len(t, comp.Props, 2)
	assert.Equal(t, "checked", comp.Props[0].Name)
	assert.Equal(t, "disabled", comp.Props[1].Name)
}

func TestDetect_VanillaWithoutDefineRejected(t *testing.T) {
	src := `class Base extends HTMLElement {}`
	comps := detect(t, "/src/base.js", src)
	assert.Empty(t, comps)
}

func TestDetect_ClassDocMetadata(t *testing.T) {
	src := `import { LitElement } from 'lit';

/**
 * A themed button.
 * @summary Primary action trigger.
 * @fires {CustomEvent<void>} press - emitted on activation
 * @slot - default content
 * @slot icon - leading icon
 * @cssProperty [--button-bg=#fff] - background color
 * @cssPart label - the text wrapper
 * @deprecated
 */
export class OldButton extends LitElement {}
`
	comps := detect(t, "/src/old.ts", src)
	require.Len(t, comps, 1)

	meta := comps[0].Metadata
	assert.Equal(t, "A themed button.", meta.Description)
	assert.Equal(t, "Primary action trigger.", meta.Summary)
	assert.True(t, meta.Deprecated)
	require.Len(t, meta.Events, 1)
	assert.Equal(t, JSDocEvent{Name: "press", Type: "CustomEvent<void>", Description: "emitted on activation"}, meta.Events[0])
	require.Len(t, meta.Slots, 2)
	assert.Equal(t, "", meta.Slots[0].Name)
	assert.Equal(t, "icon", meta.Slots[1].Name)
	require.Len(t, meta.CSSProperties, 1)
	assert.Equal(t, JSDocCSSProperty{Name: "--button-bg", Default: "#fff", Description: "background color"}, meta.CSSProperties[0])
	require.Len(t, meta.CSSParts, 1)
	assert.Equal(t, "label", meta.CSSParts[0].Name)
}

func TestDetect_FrameworkHintOverridesSniff(t *testing.T) {
	pm := parser.NewManager(nil)
	defer pm.Close()
	d := NewDetector(pm, nil)

	// No lit marker anywhere; the hint forces the Lit extractor.
	src := `export class PlainCard extends BaseElement {}`
	comps, err := d.DetectFile("/src/card.ts", []byte(src), FrameworkLit)
	require.NoError(t, err)
	require.Len(t, comps, 1)
	assert.Equal(t, FrameworkLit, comps[0].Source.Framework)
}

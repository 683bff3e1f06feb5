package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect_FASTDecorated(t *testing.T) {
	src := `import { FASTElement, customElement, attr, observable } from '@microsoft/fast-element';

@customElement('fast-chip')
export class Chip extends FASTElement {
  @attr label: string = 'chip';
  @attr({ attribute: 'is-active' }) active: boolean;
  @observable items: string[];
}
`
	comps := detect(t, "/src/chip.ts", src)
	require.Len(t, comps, 1)

	comp := comps[0]
	assert.Equal(t, FrameworkFAST, comp.Source.Framework)
	assert.Equal(t, "fast-chip", comp.Source.TagName)
	require.Len(t, comp.Props, 3)
	assert.Equal(t, "chip", propByName(t, comp, "label").DefaultValue)
	assert.Equal(t, "is-active", propByName(t, comp, "active").Attribute)
	assert.Equal(t, "string[]", propByName(t, comp, "items").Type)
}

func TestDetect_FASTViaCompose(t *testing.T) {
	src := `import { FASTElement } from '@microsoft/fast-element';

export class Toolbar extends FASTElement {
  @attr density: string;
}

export const toolbar = Toolbar.compose({ name: 'app-toolbar' });
`
	comps := detect(t, "/src/toolbar.ts", src)
	require.Len(t, comps, 1)
	assert.Equal(t, "app-toolbar", comps[0].Source.TagName)
}

func TestDetect_FASTExtendsOnlyRejected(t *testing.T) {
	src := `import { FASTElement } from '@microsoft/fast-element';
export class BaseControl extends FASTElement {}
`
	comps := detect(t, "/src/base.ts", src)
	assert.Empty(t, comps)
}

func TestDetect_FASTElementDefine(t *testing.T) {
	src := `import { FASTElement } from '@microsoft/fast-element';
class Divider extends FASTElement {}
FASTElement.define(Divider, { name: 'app-divider' });
`
	comps := detect(t, "/src/divider.ts", src)
	require.Len(t, comps, 1)
	assert.Equal(t, "app-divider", comps[0].Source.TagName)
}

func TestDetect_HauntedFunction(t *testing.T) {
	src := `import { component, html } from 'haunted';

function Counter({ count = 0, label, onChange }) {
  return html` + "`<span>${label}: ${count}</span>`" + `;
}

customElements.define('x-counter', component(Counter));
`
	comps := detect(t, "/src/counter.js", src)
	require.Len(t, comps, 1)

	comp := comps[0]
	assert.Equal(t, FrameworkHaunted, comp.Source.Framework)
	assert.Equal(t, "Counter", comp.Name)
	assert.Equal(t, "x-counter", comp.Source.TagName)
	require.Len(t, comp.Props, 3)

	count := propByName(t, comp, "count")
	assert.False(t, count.Required)
	assert.Equal(t, "0", count.DefaultValue)
	assert.True(t, propByName(t, comp, "label").Required)
	assert.True(t, propByName(t, comp, "onChange").Required)
}

func TestDetect_HauntedArrowFunction(t *testing.T) {
	src := `import { component } from 'haunted';
const Clock = ({ tz }) => null;
customElements.define('x-clock', component(Clock));
`
	comps := detect(t, "/src/clock.js", src)
	require.Len(t, comps, 1)
	assert.Equal(t, "Clock", comps[0].Name)
	require.Len(t, comps[0].Props, 1)
	assert.Equal(t, "tz", comps[0].Props[0].Name)
}

func TestDetect_HauntedUnregisteredIgnored(t *testing.T) {
	src := `import { component } from 'haunted';
function Loose({ a }) { return null; }
`
	comps := detect(t, "/src/loose.js", src)
	assert.Empty(t, comps)
}

func TestDetect_HybridsDefine(t *testing.T) {
	src := `import { define, html } from 'hybrids';

define({
  tag: 'simple-counter',
  count: 0,
  step: 1,
  render: () => html` + "`<button>+</button>`" + `,
});
`
	comps := detect(t, "/src/counter.js", src)
	require.Len(t, comps, 1)

	comp := comps[0]
	assert.Equal(t, FrameworkHybrids, comp.Source.Framework)
	assert.Equal(t, "SimpleCounter", comp.Name)
	assert.Equal(t, "simple-counter", comp.Source.TagName)
	require.Len(t, comp.Props, 2)
	assert.Equal(t, "count", comp.Props[0].Name)
	assert.Equal(t, "0", comp.Props[0].DefaultValue)
	assert.Equal(t, "step", comp.Props[1].Name)
}

func TestDetect_HybridsShorthandProps(t *testing.T) {
	src := `import { define, html } from 'hybrids';

const count = 0;
const render = () => html` + "`<span></span>`" + `;

define({ tag: 'my-counter', count, label: 'Count', render });
`
	comps := detect(t, "/src/counter.js", src)
	require.Len(t, comps, 1)

	names := make([]string, 0, len(comps[0].Props))
	for _, p := range comps[0].Props {
		names = append(names, p.Name)
	}
	assert.ElementsMatch(t, []string{"count", "label"}, names,
		"shorthand keys become props; tag and render stay excluded")
	assert.Equal(t, "Count", propByName(t, comps[0], "label").DefaultValue)
}

func TestDetect_HybridsGenericName(t *testing.T) {
	src := `import { define } from 'hybrids';

interface UserCard {
  name: string;
}

define<UserCard>({
  tag: 'user-card',
  name: '',
});
`
	comps := detect(t, "/src/card.ts", src)
	require.Len(t, comps, 1)
	assert.Equal(t, "UserCard", comps[0].Name)
	require.Len(t, comps[0].Props, 1)
	assert.Equal(t, "name", comps[0].Props[0].Name)
}

func TestDetect_HybridsWithoutTagIgnored(t *testing.T) {
	src := `import { define } from 'hybrids';
define({ count: 0 });
`
	comps := detect(t, "/src/no-tag.js", src)
	assert.Empty(t, comps)
}

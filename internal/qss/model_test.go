package qss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertySetMerge(t *testing.T) {
	base := PropertySet{"background": "#1e1e1e", "color": "#e0e0e0"}
	over := PropertySet{"background": "#0d6efd", "padding": "6px"}

	got := base.Merge(over)

	// Merge mutates and returns the receiver; later values win.
	assert.Equal(t, PropertySet{
		"background": "#0d6efd",
		"color":      "#e0e0e0",
		"padding":    "6px",
	}, base)
	assert.Equal(t, base, got)

	// The source set is untouched.
	assert.Equal(t, PropertySet{"background": "#0d6efd", "padding": "6px"}, over)
}

func TestPropertySetClone(t *testing.T) {
	orig := PropertySet{"color": "#fff"}
	copied := orig.Clone()
	copied["color"] = "#000"
	copied["border"] = "none"

	assert.Equal(t, "#fff", orig["color"])
	assert.NotContains(t, orig, "border")
}

func TestPropertySetKeysAndString(t *testing.T) {
	props := PropertySet{"color": "#fff", "background": "#0d6efd"}
	assert.Equal(t, []string{"background", "color"}, props.Keys())
	assert.Equal(t, "background: #0d6efd; color: #fff;", props.String())

	assert.Empty(t, PropertySet{}.Keys())
	assert.Equal(t, "", PropertySet{}.String())
}

func TestSelectorMatches(t *testing.T) {
	tests := []struct {
		name    string
		sel     Selector
		query   Query
		matches bool
	}{
		{
			name:    "exact class",
			sel:     Selector{Class: "QPushButton"},
			query:   Query{Class: "QPushButton"},
			matches: true,
		},
		{
			name:    "different class",
			sel:     Selector{Class: "QPushButton"},
			query:   Query{Class: "QLineEdit"},
			matches: false,
		},
		{
			name:    "universal class",
			sel:     Selector{Class: "*"},
			query:   Query{Class: "QLineEdit"},
			matches: true,
		},
		{
			name:    "stateless rule applies to stateful query",
			sel:     Selector{Class: "QPushButton"},
			query:   Query{Class: "QPushButton", States: []string{"hover"}},
			matches: true,
		},
		{
			name:    "stateful rule needs the state",
			sel:     Selector{Class: "QPushButton", States: []string{"hover"}},
			query:   Query{Class: "QPushButton"},
			matches: false,
		},
		{
			name:    "state satisfied",
			sel:     Selector{Class: "QPushButton", States: []string{"hover"}},
			query:   Query{Class: "QPushButton", States: []string{"hover", "focus"}},
			matches: true,
		},
		{
			name:    "all states must be present",
			sel:     Selector{Class: "QListWidget", States: []string{"hover", "!selected"}},
			query:   Query{Class: "QListWidget", States: []string{"hover"}},
			matches: false,
		},
		{
			name:    "negated state is literal",
			sel:     Selector{Class: "QListWidget", States: []string{"hover", "!selected"}},
			query:   Query{Class: "QListWidget", States: []string{"hover", "!selected"}},
			matches: true,
		},
		{
			name:    "sub element rule needs sub element query",
			sel:     Selector{Class: "QHeaderView", SubElement: "section"},
			query:   Query{Class: "QHeaderView"},
			matches: false,
		},
		{
			name:    "widget rule does not leak into sub element",
			sel:     Selector{Class: "QHeaderView"},
			query:   Query{Class: "QHeaderView", SubElement: "section"},
			matches: false,
		},
		{
			name:    "sub element match",
			sel:     Selector{Class: "QHeaderView", SubElement: "section"},
			query:   Query{Class: "QHeaderView", SubElement: "section"},
			matches: true,
		},
		{
			name:    "object name required",
			sel:     Selector{Class: "QLabel", ObjectName: "title"},
			query:   Query{Class: "QLabel"},
			matches: false,
		},
		{
			name:    "object name match",
			sel:     Selector{Class: "QLabel", ObjectName: "title"},
			query:   Query{Class: "QLabel", ObjectName: "title"},
			matches: true,
		},
		{
			name:    "named rule ignored for other names",
			sel:     Selector{Class: "QLabel", ObjectName: "title"},
			query:   Query{Class: "QLabel", ObjectName: "body"},
			matches: false,
		},
		{
			name:    "plain rule still applies to named widget",
			sel:     Selector{Class: "QLabel"},
			query:   Query{Class: "QLabel", ObjectName: "title"},
			matches: true,
		},
		{
			name:    "bare object name matches any class",
			sel:     Selector{ObjectName: "title"},
			query:   Query{Class: "QLabel", ObjectName: "title"},
			matches: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.matches, tt.sel.Matches(tt.query))
		})
	}
}

func TestStylesheetResolveCascade(t *testing.T) {
	src := `
QWidget { background: #1e1e1e; color: #e0e0e0; }
QPushButton { background: #0d6efd; color: #fff; }
QPushButton { border-radius: 6px; background: #0b5ed7; }
`
	sheet, err := Parse(src, "test.qss")
	require.NoError(t, err)

	// Later rules override earlier ones key by key.
	props := sheet.Resolve(Query{Class: "QPushButton"})
	assert.Equal(t, PropertySet{
		"background":    "#0b5ed7",
		"color":         "#fff",
		"border-radius": "6px",
	}, props)

	// The universal-ish QWidget rule only applies to QWidget queries here;
	// class matching is exact.
	props = sheet.Resolve(Query{Class: "QWidget"})
	assert.Equal(t, PropertySet{"background": "#1e1e1e", "color": "#e0e0e0"}, props)
}

func TestStylesheetResolveNoMatch(t *testing.T) {
	sheet, err := Parse(`QPushButton { color: #fff; }`, "test.qss")
	require.NoError(t, err)

	props := sheet.Resolve(Query{Class: "QCheckBox"})
	assert.NotNil(t, props)
	assert.Empty(t, props)
}

func TestStylesheetResolveWithinRuleOrder(t *testing.T) {
	sheet, err := Parse(`QWidget { color: #111; color: #222; }`, "test.qss")
	require.NoError(t, err)

	// Within one rule the last declaration of a property wins.
	props := sheet.Resolve(Query{Class: "QWidget"})
	assert.Equal(t, "#222", props["color"])
}

func TestStylesheetResolveGroupSelectors(t *testing.T) {
	sheet, err := Parse(`QTableWidget, QListView { border: 1px solid #444; }`, "test.qss")
	require.NoError(t, err)

	for _, class := range []string{"QTableWidget", "QListView"} {
		props := sheet.Resolve(Query{Class: class})
		assert.Equal(t, "1px solid #444", props["border"], "class %s", class)
	}
}

func TestStylesheetString(t *testing.T) {
	src := `QPushButton:hover { background: #1a75ff; }`
	sheet, err := Parse(src, "test.qss")
	require.NoError(t, err)

	rendered := sheet.String()
	assert.Contains(t, rendered, "QPushButton:hover {")
	assert.Contains(t, rendered, "background: #1a75ff;")

	// Rendered output parses back to the same rules.
	again, err := Parse(rendered, "roundtrip.qss")
	require.NoError(t, err)
	assert.Equal(t, sheet.Rules, again.Rules)
}

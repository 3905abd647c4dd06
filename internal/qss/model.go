// Package qss models the widget stylesheet dialect theme files are written
// in: rules made of selector groups and property declarations, plus the
// ordered cascade used to resolve the effective properties for a widget.
package qss

import (
	"sort"
	"strings"
)

// PropertySet holds string-encoded style properties keyed by property name.
type PropertySet map[string]string

// Merge folds src into p. Values from src win on conflicting keys, so callers
// control the cascade by the order they merge in.
func (p PropertySet) Merge(src PropertySet) PropertySet {
	for k, v := range src {
		p[k] = v
	}
	return p
}

// Clone returns an independent copy of the set.
func (p PropertySet) Clone() PropertySet {
	out := make(PropertySet, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Keys returns the property names in sorted order.
func (p PropertySet) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String renders the set as declaration text with sorted keys.
func (p PropertySet) String() string {
	var b strings.Builder
	for i, k := range p.Keys() {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(p[k])
		b.WriteString(";")
	}
	return b.String()
}

// Declaration is a single property/value pair inside a rule body.
type Declaration struct {
	Property string
	Value    string
}

// Selector identifies the widgets a rule applies to. The zero class matches
// any widget, as does the explicit "*". Ancestors holds the descendant
// prefixes of combinator selectors; the subject fields describe the rightmost
// simple selector, which is what lookups match against.
type Selector struct {
	Ancestors  []string
	Class      string
	ObjectName string
	SubElement string
	States     []string
}

// String reassembles the selector in source form.
func (s Selector) String() string {
	var b strings.Builder
	for _, a := range s.Ancestors {
		b.WriteString(a)
		b.WriteString(" ")
	}
	b.WriteString(s.Class)
	if s.ObjectName != "" {
		b.WriteString("#")
		b.WriteString(s.ObjectName)
	}
	if s.SubElement != "" {
		b.WriteString("::")
		b.WriteString(s.SubElement)
	}
	for _, st := range s.States {
		b.WriteString(":")
		b.WriteString(st)
	}
	return b.String()
}

// Query describes the widget context a style lookup resolves against.
type Query struct {
	Class      string
	ObjectName string
	SubElement string
	States     []string
}

// Matches reports whether the selector applies to the queried widget context.
// The class must match exactly (or be universal), an object name or
// sub-element on the selector must be present on the query, and every
// selector state must appear among the query states. A selector without a
// sub-element never matches a sub-element query and vice versa; sub-controls
// are styled by their own rules.
func (s Selector) Matches(q Query) bool {
	if s.Class != "" && s.Class != "*" && s.Class != q.Class {
		return false
	}
	if s.ObjectName != "" && s.ObjectName != q.ObjectName {
		return false
	}
	if s.SubElement != q.SubElement {
		return false
	}
	for _, st := range s.States {
		if !containsState(q.States, st) {
			return false
		}
	}
	return true
}

func containsState(states []string, want string) bool {
	for _, st := range states {
		if st == want {
			return true
		}
	}
	return false
}

// Rule is a selector group with the declarations that apply to it.
type Rule struct {
	Selectors    []Selector
	Declarations []Declaration
}

// Matches reports whether any selector in the group applies to the query.
func (r Rule) Matches(q Query) bool {
	for _, s := range r.Selectors {
		if s.Matches(q) {
			return true
		}
	}
	return false
}

// Properties folds the rule's declarations into a set in declaration order.
func (r Rule) Properties() PropertySet {
	out := make(PropertySet, len(r.Declarations))
	for _, d := range r.Declarations {
		out[d.Property] = d.Value
	}
	return out
}

// String renders the rule in source form.
func (r Rule) String() string {
	var b strings.Builder
	for i, s := range r.Selectors {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(s.String())
	}
	b.WriteString(" {\n")
	for _, d := range r.Declarations {
		b.WriteString("    ")
		b.WriteString(d.Property)
		b.WriteString(": ")
		b.WriteString(d.Value)
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

// Stylesheet is an ordered list of rules parsed from one source.
type Stylesheet struct {
	Source string
	Rules  []Rule
}

// Resolve merges the properties of every rule matching the query, in rule
// order, so later rules override earlier ones. A query nothing matches
// yields an empty, non-nil set.
func (s *Stylesheet) Resolve(q Query) PropertySet {
	out := PropertySet{}
	for _, r := range s.Rules {
		if r.Matches(q) {
			out.Merge(r.Properties())
		}
	}
	return out
}

// Classes returns the distinct selector subject classes in first-seen order.
func (s *Stylesheet) Classes() []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range s.Rules {
		for _, sel := range r.Selectors {
			name := sel.Class
			if name == "" {
				continue
			}
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	return out
}

// String renders the whole stylesheet in source form.
func (s *Stylesheet) String() string {
	parts := make([]string, 0, len(s.Rules))
	for _, r := range s.Rules {
		parts = append(parts, r.String())
	}
	return strings.Join(parts, "\n\n")
}

// recognizedProperties is the property vocabulary the lint surface knows
// about. Unknown names still parse and resolve; they are carried opaquely
// for whatever consumes the resolved set.
var recognizedProperties = []string{
	"alternate-background-color",
	"background",
	"background-color",
	"border",
	"border-radius",
	"color",
	"font-family",
	"font-size",
	"font-weight",
	"gridline-color",
	"margin",
	"margin-top",
	"min-height",
	"min-width",
	"outline",
	"padding",
	"selection-background-color",
	"selection-color",
	"spacing",
	"subcontrol-origin",
	"subcontrol-position",
}

var knownProperties = func() map[string]bool {
	m := make(map[string]bool, len(recognizedProperties))
	for _, name := range recognizedProperties {
		m[name] = true
	}
	return m
}()

// IsKnownProperty reports whether the property name is part of the
// recognized vocabulary.
func IsKnownProperty(name string) bool {
	return knownProperties[strings.ToLower(name)]
}

// UnknownProperties lists the declaration property names the vocabulary does
// not recognize, in first-seen order.
func (s *Stylesheet) UnknownProperties() []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range s.Rules {
		for _, d := range r.Declarations {
			if IsKnownProperty(d.Property) {
				continue
			}
			if !seen[d.Property] {
				seen[d.Property] = true
				out = append(out, d.Property)
			}
		}
	}
	return out
}

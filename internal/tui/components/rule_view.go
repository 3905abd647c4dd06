package components

import (
	"strings"

	"themed/internal/tui/common"
	"themed/internal/tui/styles"
)

// RuleView renders the rules of the inspected theme
type RuleView struct {
	rules  []common.RuleEntry
	filter string
}

func NewRuleView() *RuleView {
	return &RuleView{}
}

func (rv *RuleView) SetRules(rules []common.RuleEntry) {
	rv.rules = rules
}

func (rv *RuleView) SetFilter(pattern string) {
	rv.filter = pattern
}

func (rv *RuleView) View() string {
	var s strings.Builder

	header := "Rules"
	if rv.filter != "" {
		header += " matching " + rv.filter
	}
	s.WriteString(styles.Title.Render(header) + "\n")

	if len(rv.rules) == 0 {
		s.WriteString("No rules to show\n")
		return s.String()
	}

	for _, rule := range rv.rules {
		s.WriteString(styles.Selected.Render(rule.Selector) + " {\n")
		for _, line := range rule.Lines {
			if line.Unknown {
				s.WriteString("    " + styles.Error.Render(line.Text+"   <- unknown property") + "\n")
				continue
			}
			s.WriteString("    " + styles.Unselected.Render(line.Text) + "\n")
		}
		s.WriteString("}\n")
	}

	return s.String()
}

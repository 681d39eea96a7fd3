package validator

import (
	"strings"

	"github.com/helmcode/specscout/pkg/parser"
)

// Rule is one presence check. Check receives the raw and the lowercased
// document and returns the issue text, or "" when the check passes.
type Rule struct {
	Name  string
	Check func(content, lower string) string
}

// Checklist is the ordered rule set for one document type.
type Checklist struct {
	Type  DocType
	Label string
	Rules []Rule
}

// Run applies every rule; failures are reported in rule order.
func (c Checklist) Run(content string) []string {
	lower := strings.ToLower(content)
	issues := []string{}
	for _, r := range c.Rules {
		if issue := r.Check(content, lower); issue != "" {
			issues = append(issues, issue)
		}
	}
	return issues
}

func requireSection(heading, name string) Rule {
	needle := strings.ToLower(heading)
	return Rule{
		Name: name,
		Check: func(_, lower string) string {
			if strings.Contains(lower, needle) {
				return ""
			}
			return "Missing: " + name
		},
	}
}

func requireAny(name, issue string, keywords ...string) Rule {
	return Rule{
		Name: name,
		Check: func(_, lower string) string {
			for _, kw := range keywords {
				if strings.Contains(lower, kw) {
					return ""
				}
			}
			return issue
		},
	}
}

func requireAll(name, issue string, keywords ...string) Rule {
	return Rule{
		Name: name,
		Check: func(_, lower string) string {
			for _, kw := range keywords {
				if !strings.Contains(lower, kw) {
					return issue
				}
			}
			return ""
		},
	}
}

var taskItemsRule = Rule{
	Name: "task checkboxes",
	Check: func(content, _ string) string {
		switch parser.CountTaskItems(content) {
		case 0:
			return "No task checkboxes found. Use '- [ ] Task description' format."
		case 1:
			return "Only one task found. Consider breaking down further."
		default:
			return ""
		}
	},
}

var (
	specKitRules = []Rule{
		requireSection("# Overview", "Overview section"),
		requireSection("# User Stories", "User Stories section"),
		requireSection("# Requirements", "Requirements section"),
		requireSection("# Acceptance Criteria", "Acceptance Criteria section"),
		requireAny("examples", "No examples found. Add concrete usage examples.", "example"),
		requireAny("edge cases", "No edge cases or error handling documented.", "edge case", "error"),
		requireAll("user story format", "User stories may be incomplete. Use format: 'As a [user], I want...'", "as a", "i want"),
		requireAny("non-functional requirements",
			"Consider adding non-functional requirements (performance, security, etc.)",
			"performance", "security", "scalability", "availability"),
	}

	proposalRules = []Rule{
		requireSection("# Problem", "Problem statement"),
		requireSection("# Solution", "Proposed solution"),
		requireSection("# Impact", "Impact analysis"),
		requireAny("rationale", "Missing rationale. Explain why this change is needed.", "why", "because"),
		requireAny("alternatives", "Consider documenting alternatives considered.", "alternative"),
		requireAny("affected components", "Document what files/components are affected.", "affect", "impact"),
	}

	tasksRules = []Rule{
		taskItemsRule,
		requireAny("dependencies", "Consider documenting task dependencies.", "depend", "after"),
	}

	designRules = []Rule{
		requireAny("technical details",
			"Consider adding technical details (API, database, schema changes).",
			"api", "database", "schema"),
	}
)

var checklists = map[DocType]Checklist{
	TypeSpecKit:       {Type: TypeSpecKit, Label: "spec-kit specification", Rules: specKitRules},
	TypeProposal:      {Type: TypeProposal, Label: "OpenSpec proposal", Rules: proposalRules},
	TypeTasks:         {Type: TypeTasks, Label: "OpenSpec tasks", Rules: tasksRules},
	TypeDesign:        {Type: TypeDesign, Label: "OpenSpec design", Rules: designRules},
	TypeSpecification: {Type: TypeSpecification, Label: "OpenSpec specification", Rules: proposalRules},
}

// ChecklistFor returns the checklist of a known document type.
func ChecklistFor(t DocType) (Checklist, bool) {
	c, ok := checklists[t]
	return c, ok
}

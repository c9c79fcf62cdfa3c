package filter

import (
	"fmt"
	"regexp"
	"strings"
)

type shorthandRule struct {
	pattern *regexp.Regexp
	replace func(matches []string) string
}

// dateRule turns field_after:"YYYY-MM-DD" style terms into time comparisons.
func dateRule(keyword, field, op string) shorthandRule {
	return shorthandRule{
		pattern: regexp.MustCompile(keyword + `:"([^"]+)"`),
		replace: func(matches []string) string {
			return fmt.Sprintf(`%s %s parseDate(%q)`, field, op, matches[1])
		},
	}
}

var shorthandRules = []shorthandRule{
	// tag:"value" or tag!:"value"
	{
		pattern: regexp.MustCompile(`tag(!?):"([^"]+)"`),
		replace: func(matches []string) string {
			if matches[1] == "!" {
				return fmt.Sprintf(`not hasTag(%q)`, matches[2])
			}
			return fmt.Sprintf(`hasTag(%q)`, matches[2])
		},
	},
	// company:"Acme"
	{
		pattern: regexp.MustCompile(`company:"([^"]+)"`),
		replace: func(matches []string) string {
			return fmt.Sprintf(`containsText(CompanyName, %q)`, matches[1])
		},
	},
	// email:"@acme.com"
	{
		pattern: regexp.MustCompile(`email:"([^"]+)"`),
		replace: func(matches []string) string {
			return fmt.Sprintf(`hasEmail(%q)`, matches[1])
		},
	},
	dateRule("created_after", "CreatedAt", ">"),
	dateRule("created_before", "CreatedAt", "<"),
	dateRule("updated_after", "UpdatedAt", ">"),
	dateRule("updated_before", "UpdatedAt", "<"),
}

var shorthandKeywords = []string{
	"tag:",
	"tag!:",
	"company:",
	"email:",
	"created_after:",
	"created_before:",
	"updated_after:",
	"updated_before:",
}

// ConvertShorthand converts shorthand filter syntax to expr syntax
func ConvertShorthand(shorthand string) (string, error) {
	if strings.TrimSpace(shorthand) == "" {
		return "", nil
	}

	filter := strings.ReplaceAll(shorthand, " AND ", " and ")
	filter = strings.ReplaceAll(filter, " OR ", " or ")
	filter = strings.ReplaceAll(filter, " NOT ", " not ")
	if strings.HasPrefix(filter, "NOT ") {
		filter = "not " + filter[len("NOT "):]
	}

	for _, rule := range shorthandRules {
		filter = rule.pattern.ReplaceAllStringFunc(filter, func(match string) string {
			return rule.replace(rule.pattern.FindStringSubmatch(match))
		})
	}

	if strings.Contains(filter, `:"`) {
		return "", fmt.Errorf("unsupported shorthand term in %q", shorthand)
	}

	return filter, nil
}

// IsShorthand checks if a filter uses the shorthand syntax
func IsShorthand(filter string) bool {
	for _, keyword := range shorthandKeywords {
		if strings.Contains(filter, keyword) {
			return true
		}
	}
	return false
}

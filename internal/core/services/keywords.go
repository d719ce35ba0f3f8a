package services

import "strings"

// matchKeywords are the themes surfaced while a match runs.
var matchKeywords = []string{
	"AI", "ML", "SaaS", "marketplace", "platform", "fintech", "healthtech",
	"climate", "enterprise", "consumer", "B2B", "B2C", "data", "analytics",
	"mobile", "web3", "crypto", "blockchain", "automation", "robotics",
}

// ExtractKeywords returns the known themes mentioned in text, in a fixed order.
// Matching is a case-insensitive substring check.
func ExtractKeywords(text string) []string {
	lower := strings.ToLower(text)
	found := make([]string, 0, len(matchKeywords))
	for _, kw := range matchKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			found = append(found, kw)
		}
	}
	return found
}

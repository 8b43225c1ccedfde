package dispatch

import (
	"strings"
	"unicode"
)

// GeneralAgent labels responses that were not produced by a workflow tool.
const GeneralAgent = "general_response_agent"

// AgentLabel derives the conversational agent name from a tool name by
// splitting on capitalization boundaries: "ClaimValidationTool" becomes
// "claim_validation_agent".
func AgentLabel(toolName string) string {
	base := strings.TrimSuffix(strings.TrimSpace(toolName), "Tool")
	if base == "" {
		return GeneralAgent
	}

	var words []string
	var word strings.Builder
	for i, r := range base {
		if i > 0 && unicode.IsUpper(r) {
			words = append(words, strings.ToLower(word.String()))
			word.Reset()
		}
		word.WriteRune(r)
	}
	words = append(words, strings.ToLower(word.String()))

	return strings.Join(words, "_") + "_agent"
}

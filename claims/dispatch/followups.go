package dispatch

import "fmt"

// FollowUps returns the candidate next prompts offered after a tool ran,
// keyed by tool name with the claim id spliced in. Unrecognized tools fall
// back to a single generic prompt.
func FollowUps(toolName, claimID string) []string {
	switch toolName {
	case ToolClaimRegistration:
		return []string{
			fmt.Sprintf("Can you validate the claim %s?", claimID),
			fmt.Sprintf("Assign an investigator for claim %s.", claimID),
		}
	case ToolClaimValidation:
		return []string{
			fmt.Sprintf("What is the next step after validating %s?", claimID),
			fmt.Sprintf("Assign this for investigation: %s.", claimID),
		}
	case ToolClaimAssignmentInvestigation:
		return []string{
			fmt.Sprintf("What's the update from the investigator for %s?", claimID),
			fmt.Sprintf("Make a decision on claim %s.", claimID),
		}
	case ToolClaimDecision:
		return []string{
			fmt.Sprintf("Initiate payment for claim %s.", claimID),
			fmt.Sprintf("Can you explain the decision made for %s?", claimID),
		}
	case ToolClaimPayment:
		return []string{
			fmt.Sprintf("Has the payment been credited for %s?", claimID),
			fmt.Sprintf("Notify the claimant about the payment for %s.", claimID),
		}
	case ToolClaimNotification:
		return []string{
			fmt.Sprintf("Can I close claim %s now?", claimID),
			fmt.Sprintf("Send a reminder to the claimant about %s.", claimID),
		}
	case ToolClaimClosure:
		return []string{
			fmt.Sprintf("Show me the summary of closed claim %s.", claimID),
			fmt.Sprintf("Reopen claim %s if needed.", claimID),
		}
	default:
		return []string{fmt.Sprintf("What else can I do with claim %s?", claimID)}
	}
}

// GeneralFollowUps are offered when no tool was invoked at all.
func GeneralFollowUps() []string {
	return []string{
		"Would you like to register a new claim?",
		"Do you want me to fetch details for another claim?",
	}
}

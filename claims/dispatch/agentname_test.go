package dispatch

import "testing"

func TestAgentLabel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		tool string
		want string
	}{
		{"ClaimRegistrationTool", "claim_registration_agent"},
		{"ClaimValidationTool", "claim_validation_agent"},
		{"ClaimAssignmentInvestigationTool", "claim_assignment_investigation_agent"},
		{"ClaimDecisionTool", "claim_decision_agent"},
		{"ClaimPaymentTool", "claim_payment_agent"},
		{"ClaimNotificationTool", "claim_notification_agent"},
		{"ClaimClosureTool", "claim_closure_agent"},
		{"Tool", GeneralAgent},
		{"", GeneralAgent},
		{"Single", "single_agent"},
	}
	for _, tc := range cases {
		t.Run(tc.tool, func(t *testing.T) {
			t.Parallel()
			if got := AgentLabel(tc.tool); got != tc.want {
				t.Fatalf("AgentLabel(%q) = %q, want %q", tc.tool, got, tc.want)
			}
		})
	}
}

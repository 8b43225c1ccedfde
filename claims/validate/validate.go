// Package validate holds the pure field-presence predicates shared by the
// workflow handlers. Nothing here touches a store or produces a response;
// every function is a deterministic check over its input.
package validate

import (
	"strings"

	contractx "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/claims/contract"
)

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// RegistrationMissing reports the blank required registration fields in
// fixed order: claimId, claimantInfo.name, claimantInfo.contact,
// claimDetails.policyNumber, claimDetails.incidentDescription.
func RegistrationMissing(in contractx.ClaimRegistrationInput) []string {
	var missing []string
	if blank(in.ClaimID) {
		missing = append(missing, "claimId")
	}
	if blank(in.ClaimantInfo.Name) {
		missing = append(missing, "claimantInfo.name")
	}
	if blank(in.ClaimantInfo.Contact) {
		missing = append(missing, "claimantInfo.contact")
	}
	if blank(in.ClaimDetails.PolicyNumber) {
		missing = append(missing, "claimDetails.policyNumber")
	}
	if blank(in.ClaimDetails.IncidentDescription) {
		missing = append(missing, "claimDetails.incidentDescription")
	}
	return missing
}

// ClaimDetailFindings is the result of the standalone claim-detail check:
// the missing fields plus the per-field narrative the validation log is
// built from.
type ClaimDetailFindings struct {
	Missing []string
	Log     []string
}

// CheckClaimDetails verifies policyNumber and incidentDescription presence.
// Investigation data is noted in the log when supplied but never required.
func CheckClaimDetails(details contractx.ClaimDetails, investigation *contractx.InvestigationData) ClaimDetailFindings {
	var f ClaimDetailFindings

	if blank(details.PolicyNumber) {
		f.Missing = append(f.Missing, "policyNumber")
		f.Log = append(f.Log, "policyNumber missing or empty.")
	} else {
		f.Log = append(f.Log, "policyNumber present and valid.")
	}

	if blank(details.IncidentDescription) {
		f.Missing = append(f.Missing, "incidentDescription")
		f.Log = append(f.Log, "incidentDescription missing or empty.")
	} else {
		f.Log = append(f.Log, "incidentDescription present and valid.")
	}

	if investigation != nil {
		f.Log = append(f.Log, "Investigation data provided.")
	}
	return f
}

// ClosureNotesBlank reports whether closure notes are absent after trimming.
func ClosureNotesBlank(notes string) bool {
	return blank(notes)
}

// PaymentFieldMissing names the first blank payment routing field, in check
// order accountNumber then routingNumber. Empty string means both present.
func PaymentFieldMissing(details contractx.PaymentDetails) string {
	if blank(details.AccountNumber) {
		return "accountNumber"
	}
	if blank(details.RoutingNumber) {
		return "routingNumber"
	}
	return ""
}

// GatewayRejected is the simulated payment-gateway policy hook: an account
// number carrying the literal token INVALID or a routing number with seven
// consecutive X characters is rejected as if by a real gateway.
func GatewayRejected(details contractx.PaymentDetails) bool {
	account := strings.TrimSpace(details.AccountNumber)
	routing := strings.TrimSpace(details.RoutingNumber)
	return strings.Contains(account, "INVALID") || strings.Contains(routing, "XXXXXXX")
}

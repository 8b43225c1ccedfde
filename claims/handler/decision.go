package handler

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	contractx "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/claims/contract"
)

// Decide applies the fixed three-way decision rule over the investigation
// text. Rule order matters: insufficient evidence wins over escalation
// triggers even when both match.
func (w *Workflow) Decide(ctx context.Context, in contractx.ClaimDecisionInput) (resp contractx.ClaimDecisionResponse) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("claim_id", in.ClaimID).Msg("claim decision failed")
			resp = contractx.ClaimDecisionResponse{ToolResponse: fault(r), ClaimID: in.ClaimID}
		}
	}()

	evidence := strings.ToLower(strings.TrimSpace(in.InvestigationData.EvidenceSummary))
	notes := strings.ToLower(strings.TrimSpace(in.InvestigationData.Notes))

	var decision, rationale, followUp, questions string
	switch {
	case evidence == "" || strings.Contains(evidence, "blurry") || strings.Contains(evidence, "sparse"):
		decision = contractx.DecisionAdditionalInfo
		rationale = "The evidence provided is insufficient or unclear to reach a conclusive decision."
		followUp = "Request additional documentation and clearer evidence from the claimant."
		questions = "Please submit detailed photos, reports, or any additional documentation that can clarify the claim."
	case strings.Contains(evidence, "inconclusive") || strings.Contains(notes, "fraud") || strings.Contains(notes, "suspicious"):
		decision = contractx.DecisionEscalate
		rationale = "The investigation findings indicate potential issues that require further human expert review."
		followUp = "Escalate to a human claims examiner for a detailed evaluation."
	default:
		decision = contractx.DecisionApproved
		rationale = "Investigation findings are clear and all necessary documentation are verified."
		followUp = "Trigger payment and notify the claimant of the approval."
	}

	log.Info().Str("claim_id", in.ClaimID).Str("decision", decision).Msg("claim decision made")
	return contractx.ClaimDecisionResponse{
		ToolResponse:     contractx.ToolResponse{Error: false, Details: "Decision processed successfully"},
		ClaimID:          in.ClaimID,
		Decision:         decision,
		Rationale:        rationale,
		RequiredFollowUp: followUp,
		QuestionsForUser: questions,
	}
}

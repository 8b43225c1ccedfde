package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	contractx "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/claims/contract"
)

// AssignExaminer picks an examiner for the claim. The examiner id is derived
// deterministically from the trailing characters of the claim id; the pool
// criterion string must be supplied or the caller is asked to clarify.
func (w *Workflow) AssignExaminer(ctx context.Context, in contractx.ExaminerAssignmentInput) (resp contractx.ExaminerAssignmentResponse) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("claim_id", in.ClaimID).Msg("examiner assignment failed")
			resp = contractx.ExaminerAssignmentResponse{
				ToolResponse:      fault(r),
				ClaimID:           in.ClaimID,
				AssignmentDetails: contractx.AssignmentDetails{Timestamp: w.now().UTC()},
			}
		}
	}()

	if strings.TrimSpace(in.ExaminerPool) == "" {
		details := fmt.Sprintf(
			"Please specify the examiner pool or selection criteria for assigning claim %s.",
			in.ClaimID,
		)
		log.Info().Str("claim_id", in.ClaimID).Msg("examiner assignment rejected: empty pool")
		return contractx.ExaminerAssignmentResponse{
			ToolResponse:      contractx.ToolResponse{Error: true, Details: details},
			ClaimID:           in.ClaimID,
			AssignmentDetails: contractx.AssignmentDetails{Timestamp: w.now().UTC()},
		}
	}

	examinerID := "EX-" + lastFour(in.ClaimID)
	log.Info().Str("claim_id", in.ClaimID).Str("examiner_id", examinerID).Msg("examiner assigned")

	return contractx.ExaminerAssignmentResponse{
		ToolResponse:       contractx.ToolResponse{Error: false, Details: "Examiner assigned successfully."},
		ClaimID:            in.ClaimID,
		AssignedExaminerID: examinerID,
		AssignmentDetails: contractx.AssignmentDetails{
			Criteria:  fmt.Sprintf("%s, lowest current workload", in.ExaminerPool),
			Timestamp: w.now().UTC(),
		},
	}
}

// Investigate records the supplied evidence summary and notes with a fresh
// timestamp. The result is handed back to the caller rather than persisted;
// the decision step receives it as input.
func (w *Workflow) Investigate(ctx context.Context, in contractx.ClaimInvestigationInput) (resp contractx.ClaimInvestigationResponse) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("claim_id", in.ClaimID).Msg("claim investigation failed")
			resp = contractx.ClaimInvestigationResponse{
				ToolResponse:  fault(r),
				ClaimID:       in.ClaimID,
				ExaminerID:    in.ExaminerID,
				Investigation: contractx.InvestigationDetails{Timestamp: w.now().UTC()},
			}
		}
	}()

	log.Info().Str("claim_id", in.ClaimID).Str("examiner_id", in.ExaminerID).Msg("investigation recorded")
	return contractx.ClaimInvestigationResponse{
		ToolResponse: contractx.ToolResponse{Error: false, Details: "Investigation completed successfully."},
		ClaimID:      in.ClaimID,
		ExaminerID:   in.ExaminerID,
		Investigation: contractx.InvestigationDetails{
			EvidenceSummary: in.InvestigationData.EvidenceSummary,
			Notes:           in.InvestigationData.Notes,
			Timestamp:       w.now().UTC(),
		},
	}
}

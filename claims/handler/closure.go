package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	contractx "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/claims/contract"
	validatex "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/claims/validate"
)

// archivedDocuments is the fixed archive list attached at closure.
var archivedDocuments = []string{
	"claim-form.pdf",
	"investigator-report.pdf",
	"payment-confirmation.pdf",
}

// Close finalizes a claim: the claim must exist and closure notes must be
// present. The two rejection cases carry distinct issue descriptions so the
// caller can tell an unknown claim from missing notes.
func (w *Workflow) Close(ctx context.Context, in contractx.ClaimClosureInput) (resp contractx.ClaimClosureResponse) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("claim_id", in.ClaimID).Msg("claim closure failed")
			resp = contractx.ClaimClosureResponse{
				ToolResponse:   fault(r),
				Result:         "alert",
				ClaimID:        in.ClaimID,
				Issue:          "Internal processing error",
				ActionRequired: "Please contact system administrator.",
			}
		}
	}()

	if _, ok := w.claims.FindByClaimID(in.ClaimID); !ok {
		log.Info().Str("claim_id", in.ClaimID).Msg("closure rejected: claim not found")
		return contractx.ClaimClosureResponse{
			ToolResponse: contractx.ToolResponse{
				Error:   false,
				Details: fmt.Sprintf("Claim record with claimId %s not found.", in.ClaimID),
			},
			Result:         "alert",
			ClaimID:        in.ClaimID,
			Issue:          "Claim record not found",
			ActionRequired: "Please verify the claim ID and try again.",
		}
	}

	if validatex.ClosureNotesBlank(in.ClosureNotes) {
		log.Info().Str("claim_id", in.ClaimID).Msg("closure rejected: missing notes")
		return contractx.ClaimClosureResponse{
			ToolResponse: contractx.ToolResponse{
				Error:   false,
				Details: "Closure notes not provided or empty.",
			},
			Result:         "alert",
			ClaimID:        in.ClaimID,
			Issue:          "No closureNotes provided and the notification step is not recorded as completed.",
			ActionRequired: "Please provide closure notes and confirm claimant notification.",
		}
	}

	now := w.now().UTC()
	notes := strings.TrimSpace(in.ClosureNotes)

	w.closures.Add(contractx.ClosureRecord{
		ClaimID:           in.ClaimID,
		ClosureNotes:      notes,
		ArchivedDocuments: archivedDocuments,
		Timestamp:         now,
	})

	log.Info().Str("claim_id", in.ClaimID).Msg("claim closed")
	return contractx.ClaimClosureResponse{
		ToolResponse: contractx.ToolResponse{
			Error:   false,
			Details: fmt.Sprintf("Claim %s closed successfully.", in.ClaimID),
		},
		Result:            "success",
		ClaimID:           in.ClaimID,
		Status:            "Closed",
		Timestamp:         now.Format("2006-01-02T15:04:05.000000") + "Z",
		ArchivedDocuments: archivedDocuments,
		ClosureNotes:      notes,
	}
}

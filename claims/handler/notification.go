package handler

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	contractx "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/claims/contract"
)

// Notify composes and "sends" a claimant notification. No real transport is
// involved; the confirmation string is the whole effect, and there is no
// retry concept.
func (w *Workflow) Notify(ctx context.Context, in contractx.ClaimNotificationInput) (resp contractx.ClaimNotificationResponse) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("claim_id", in.ClaimID).Msg("notification failed")
			resp = contractx.ClaimNotificationResponse{
				ToolResponse: contractx.ToolResponse{
					Error:   true,
					Details: fmt.Sprintf("Failed to send notification: %v", r),
				},
			}
		}
	}()

	confirmation := fmt.Sprintf(
		"Notification for claim %s sent successfully to %s.",
		in.ClaimID, in.ClaimantContact,
	)
	log.Info().Str("claim_id", in.ClaimID).Str("contact", in.ClaimantContact).Msg("notification sent")

	return contractx.ClaimNotificationResponse{
		ToolResponse:       contractx.ToolResponse{Error: false, Details: "Notification sent successfully."},
		NotificationStatus: confirmation,
	}
}

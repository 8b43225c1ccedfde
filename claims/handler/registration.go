package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	contractx "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/claims/contract"
	validatex "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/claims/validate"
)

// Register stores a new claim after checking required fields and duplicate
// claim ids. The claim is appended to the in-memory store and the file
// snapshot; a snapshot write failure is logged but does not fail the
// registration, matching the store's best-effort persistence.
func (w *Workflow) Register(ctx context.Context, in contractx.ClaimRegistrationInput) (resp contractx.ClaimRegistrationResponse) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("claim_id", in.ClaimID).Msg("claim registration failed")
			resp = contractx.ClaimRegistrationResponse{ToolResponse: fault(r)}
		}
	}()

	echo := contractx.ClaimRegistrationResponse{
		ClaimID:             in.ClaimID,
		ClaimantName:        in.ClaimantInfo.Name,
		ClaimantContact:     in.ClaimantInfo.Contact,
		PolicyNumber:        in.ClaimDetails.PolicyNumber,
		IncidentDescription: in.ClaimDetails.IncidentDescription,
	}

	if missing := validatex.RegistrationMissing(in); len(missing) > 0 {
		log.Info().Strs("missing_fields", missing).Str("claim_id", in.ClaimID).Msg("registration rejected: missing fields")
		echo.ToolResponse = contractx.ToolResponse{
			Error: true,
			Details: fmt.Sprintf(
				"Missing or empty fields: %s. Please provide the required information.",
				strings.Join(missing, ", "),
			),
		}
		return echo
	}

	if _, ok := w.claims.FindByClaimID(in.ClaimID); ok {
		log.Info().Str("claim_id", in.ClaimID).Msg("registration rejected: duplicate claim id")
		echo.ToolResponse = contractx.ToolResponse{
			Error:   true,
			Details: fmt.Sprintf("Duplicate claimId: %s. Claim already registered.", in.ClaimID),
		}
		return echo
	}

	rec := contractx.ClaimRecord{
		ClaimID:        in.ClaimID,
		ClaimantInfo:   in.ClaimantInfo,
		ClaimDetails:   in.ClaimDetails,
		PaymentDetails: in.PaymentDetails,
	}
	if err := w.claims.AddAndSnapshot(rec); err != nil {
		log.Error().Err(err).Str("claim_id", in.ClaimID).Msg("claim snapshot write failed")
	}
	if err := w.archive.ArchiveClaim(ctx, rec); err != nil {
		log.Warn().Err(err).Str("claim_id", in.ClaimID).Msg("claim archive write failed")
	}

	log.Info().Str("claim_id", in.ClaimID).Msg("claim registered")
	echo.ToolResponse = contractx.ToolResponse{
		Error:   false,
		Details: fmt.Sprintf("Claim registered successfully with claimId %s.", in.ClaimID),
	}
	return echo
}

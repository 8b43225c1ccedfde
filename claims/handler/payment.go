package handler

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	contractx "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/claims/contract"
	validatex "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/claims/validate"
)

// ProcessPayment simulates a payout through a payment gateway. Checks run in
// order: field presence, duplicate payment for the claim id, simulated
// gateway rejection. Only the first processed payment per claim id is ever
// stored; a duplicate attempt is rejected without overwriting.
func (w *Workflow) ProcessPayment(ctx context.Context, in contractx.PaymentProcessingInput) (resp contractx.PaymentProcessingResponse) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("claim_id", in.ClaimID).Msg("payment processing failed")
			resp = contractx.PaymentProcessingResponse{
				ToolResponse:     fault(r),
				ClaimID:          in.ClaimID,
				PaymentStatus:    contractx.PaymentFailed,
				ErrorMessage:     "An unexpected error occurred.",
				EscalationAdvice: "Please retry the payment process or contact support.",
			}
		}
	}()

	switch validatex.PaymentFieldMissing(in.PaymentDetails) {
	case "accountNumber":
		log.Info().Str("claim_id", in.ClaimID).Msg("payment rejected: missing account number")
		return contractx.PaymentProcessingResponse{
			ToolResponse: contractx.ToolResponse{
				Error:   true,
				Details: fmt.Sprintf("Missing bank account number for claim %s.", in.ClaimID),
			},
			ClaimID:          in.ClaimID,
			PaymentStatus:    contractx.PaymentFailed,
			ErrorMessage:     "Bank account number is missing.",
			EscalationAdvice: "Please provide a valid bank account number.",
		}
	case "routingNumber":
		log.Info().Str("claim_id", in.ClaimID).Msg("payment rejected: missing routing number")
		return contractx.PaymentProcessingResponse{
			ToolResponse: contractx.ToolResponse{
				Error:   true,
				Details: fmt.Sprintf("Missing routing number for claim %s.", in.ClaimID),
			},
			ClaimID:          in.ClaimID,
			PaymentStatus:    contractx.PaymentFailed,
			ErrorMessage:     "Routing number is missing.",
			EscalationAdvice: "Please provide a valid routing number.",
		}
	}

	if _, ok := w.payments.FindByClaimID(in.ClaimID); ok {
		log.Info().Str("claim_id", in.ClaimID).Msg("payment rejected: duplicate")
		return contractx.PaymentProcessingResponse{
			ToolResponse: contractx.ToolResponse{
				Error: true,
				Details: fmt.Sprintf(
					"Duplicate payment processing detected for claim %s. Payment already processed.",
					in.ClaimID,
				),
			},
			ClaimID:          in.ClaimID,
			PaymentStatus:    contractx.PaymentFailed,
			ErrorMessage:     "Duplicate payment detected.",
			EscalationAdvice: "If you intend to process the payment again, please confirm explicitly.",
		}
	}

	if validatex.GatewayRejected(in.PaymentDetails) {
		log.Info().Str("claim_id", in.ClaimID).Msg("payment rejected: gateway simulation")
		return contractx.PaymentProcessingResponse{
			ToolResponse: contractx.ToolResponse{
				Error: true,
				Details: fmt.Sprintf(
					"Payment gateway processing failed for claim %s due to invalid account details.",
					in.ClaimID,
				),
			},
			ClaimID:          in.ClaimID,
			PaymentStatus:    contractx.PaymentFailed,
			ErrorMessage:     "Bank account number or routing number is invalid.",
			EscalationAdvice: "Please verify and provide correct payment details.",
		}
	}

	now := w.now().UTC()
	transactionID := "TRX" + now.Format("20060102150405")
	amount := in.PaymentDetails.PaymentAmount

	w.payments.Add(contractx.PaymentRecord{
		ClaimID:        in.ClaimID,
		PaymentDetails: in.PaymentDetails,
		Status:         contractx.PaymentProcessed,
		TransactionID:  transactionID,
		Timestamp:      now,
	})

	log.Info().Str("claim_id", in.ClaimID).Str("transaction_id", transactionID).Msg("payment processed")
	return contractx.PaymentProcessingResponse{
		ToolResponse: contractx.ToolResponse{
			Error:   false,
			Details: fmt.Sprintf("Payment processed successfully for claim %s.", in.ClaimID),
		},
		ClaimID:       in.ClaimID,
		PaymentStatus: contractx.PaymentProcessed,
		TransactionID: transactionID,
		Timestamp:     &now,
		AmountPaid:    &amount,
	}
}

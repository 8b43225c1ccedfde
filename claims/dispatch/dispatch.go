// Package dispatch maps resolved tool names onto workflow handlers and
// derives the conversational metadata (agent label, follow-up prompts)
// attached to their results.
package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	contractx "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/claims/contract"
	handlerx "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/claims/handler"
)

// The seven tool names the intent resolver may select.
const (
	ToolClaimRegistration            = "ClaimRegistrationTool"
	ToolClaimValidation              = "ClaimValidationTool"
	ToolClaimAssignmentInvestigation = "ClaimAssignmentInvestigationTool"
	ToolClaimDecision                = "ClaimDecisionTool"
	ToolClaimPayment                 = "ClaimPaymentTool"
	ToolClaimNotification            = "ClaimNotificationTool"
	ToolClaimClosure                 = "ClaimClosureTool"
)

var ErrUnknownTool = errors.New("unknown tool")

// Result is one dispatched tool invocation with its conversational metadata.
type Result struct {
	Tool      string
	Agent     string
	ClaimID   string
	FollowUps []string
	Payload   any
}

type Dispatcher struct {
	wf *handlerx.Workflow
}

func New(wf *handlerx.Workflow) (*Dispatcher, error) {
	if wf == nil {
		return nil, errors.New("workflow is required")
	}
	return &Dispatcher{wf: wf}, nil
}

// Dispatch decodes args into the tool's typed input, runs the handler, and
// wraps the typed response with agent label and follow-up prompts.
func (d *Dispatcher) Dispatch(ctx context.Context, tool string, args json.RawMessage) (*Result, error) {
	claimID, payload, err := d.invoke(ctx, tool, args)
	if err != nil {
		return nil, err
	}

	return &Result{
		Tool:      tool,
		Agent:     AgentLabel(tool),
		ClaimID:   claimID,
		FollowUps: FollowUps(tool, claimID),
		Payload:   payload,
	}, nil
}

func (d *Dispatcher) invoke(ctx context.Context, tool string, args json.RawMessage) (string, any, error) {
	switch tool {
	case ToolClaimRegistration:
		in, err := decode[contractx.ClaimRegistrationInput](tool, args)
		if err != nil {
			return "", nil, err
		}
		return in.ClaimID, d.wf.Register(ctx, in), nil

	case ToolClaimValidation:
		in, err := decode[contractx.ClaimValidationInput](tool, args)
		if err != nil {
			return "", nil, err
		}
		return in.ClaimID, d.wf.Validate(ctx, in), nil

	case ToolClaimAssignmentInvestigation:
		in, err := decode[contractx.ExaminerAssignmentInput](tool, args)
		if err != nil {
			return "", nil, err
		}
		return in.ClaimID, d.wf.AssignExaminer(ctx, in), nil

	case ToolClaimDecision:
		in, err := decode[contractx.ClaimDecisionInput](tool, args)
		if err != nil {
			return "", nil, err
		}
		return in.ClaimID, d.wf.Decide(ctx, in), nil

	case ToolClaimPayment:
		in, err := decode[contractx.PaymentProcessingInput](tool, args)
		if err != nil {
			return "", nil, err
		}
		return in.ClaimID, d.wf.ProcessPayment(ctx, in), nil

	case ToolClaimNotification:
		in, err := decode[contractx.ClaimNotificationInput](tool, args)
		if err != nil {
			return "", nil, err
		}
		return in.ClaimID, d.wf.Notify(ctx, in), nil

	case ToolClaimClosure:
		in, err := decode[contractx.ClaimClosureInput](tool, args)
		if err != nil {
			return "", nil, err
		}
		return in.ClaimID, d.wf.Close(ctx, in), nil

	default:
		return "", nil, fmt.Errorf("%w: %q", ErrUnknownTool, tool)
	}
}

func decode[T any](tool string, args json.RawMessage) (T, error) {
	var in T
	if len(args) == 0 {
		return in, fmt.Errorf("%w: empty args for tool=%s", contractx.ErrSchemaViolation, tool)
	}
	if err := json.Unmarshal(args, &in); err != nil {
		return in, fmt.Errorf("%w: decode args for tool=%s: %v", contractx.ErrSchemaViolation, tool, err)
	}
	return in, nil
}

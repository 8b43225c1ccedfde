package resolver

import (
	openaisdk "github.com/openai/openai-go"

	dispatchx "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/claims/dispatch"
)

// toolSchemas declares the seven workflow tools the model may select. The
// parameter shapes mirror the HTTP operation inputs so a resolved payload
// can be dispatched without translation.
func toolSchemas() []openaisdk.ChatCompletionToolParam {
	return []openaisdk.ChatCompletionToolParam{
		{
			Function: openaisdk.FunctionDefinitionParam{
				Name:        dispatchx.ToolClaimRegistration,
				Description: openaisdk.String("Register a new insurance claim in the system."),
				Parameters: openaisdk.FunctionParameters{
					"type": "object",
					"properties": map[string]any{
						"claimId": map[string]any{"type": "string"},
						"claimantInfo": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"name":    map[string]any{"type": "string"},
								"contact": map[string]any{"type": "string"},
							},
							"required": []string{"name", "contact"},
						},
						"claimDetails": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"policyNumber":        map[string]any{"type": "string"},
								"incidentDescription": map[string]any{"type": "string"},
							},
							"required": []string{"policyNumber", "incidentDescription"},
						},
					},
					"required": []string{"claimId", "claimantInfo", "claimDetails"},
				},
			},
		},
		{
			Function: openaisdk.FunctionDefinitionParam{
				Name:        dispatchx.ToolClaimValidation,
				Description: openaisdk.String("Validate submitted claim information for completeness and eligibility."),
				Parameters: openaisdk.FunctionParameters{
					"type": "object",
					"properties": map[string]any{
						"claimId": map[string]any{"type": "string"},
						"claimDetails": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"policyNumber":        map[string]any{"type": "string"},
								"incidentDescription": map[string]any{"type": "string"},
							},
							"required": []string{"policyNumber", "incidentDescription"},
						},
					},
					"required": []string{"claimId", "claimDetails"},
				},
			},
		},
		{
			Function: openaisdk.FunctionDefinitionParam{
				Name:        dispatchx.ToolClaimAssignmentInvestigation,
				Description: openaisdk.String("Assign an examiner to the claim for further investigation."),
				Parameters: openaisdk.FunctionParameters{
					"type": "object",
					"properties": map[string]any{
						"claimId":      map[string]any{"type": "string"},
						"examinerPool": map[string]any{"type": "string"},
					},
					"required": []string{"claimId", "examinerPool"},
				},
			},
		},
		{
			Function: openaisdk.FunctionDefinitionParam{
				Name:        dispatchx.ToolClaimDecision,
				Description: openaisdk.String("Make a decision on a claim based on investigation data."),
				Parameters: openaisdk.FunctionParameters{
					"type": "object",
					"properties": map[string]any{
						"claimId": map[string]any{"type": "string"},
						"investigationData": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"evidenceSummary": map[string]any{"type": "string"},
								"notes":           map[string]any{"type": "string"},
							},
							"required": []string{"evidenceSummary", "notes"},
						},
					},
					"required": []string{"claimId", "investigationData"},
				},
			},
		},
		{
			Function: openaisdk.FunctionDefinitionParam{
				Name:        dispatchx.ToolClaimPayment,
				Description: openaisdk.String("Initiate claim payment to the claimant."),
				Parameters: openaisdk.FunctionParameters{
					"type": "object",
					"properties": map[string]any{
						"claimId": map[string]any{"type": "string"},
						"paymentDetails": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"paymentAmount": map[string]any{"type": "number"},
								"accountNumber": map[string]any{"type": "string"},
								"routingNumber": map[string]any{"type": "string"},
							},
							"required": []string{"paymentAmount", "accountNumber", "routingNumber"},
						},
					},
					"required": []string{"claimId", "paymentDetails"},
				},
			},
		},
		{
			Function: openaisdk.FunctionDefinitionParam{
				Name:        dispatchx.ToolClaimNotification,
				Description: openaisdk.String("Notify the claimant about the status of their claim."),
				Parameters: openaisdk.FunctionParameters{
					"type": "object",
					"properties": map[string]any{
						"claimId":         map[string]any{"type": "string"},
						"claimantContact": map[string]any{"type": "string"},
						"message":         map[string]any{"type": "string"},
					},
					"required": []string{"claimId", "claimantContact", "message"},
				},
			},
		},
		{
			Function: openaisdk.FunctionDefinitionParam{
				Name:        dispatchx.ToolClaimClosure,
				Description: openaisdk.String("Close a claim and archive supporting documents."),
				Parameters: openaisdk.FunctionParameters{
					"type": "object",
					"properties": map[string]any{
						"claimId":      map[string]any{"type": "string"},
						"closureNotes": map[string]any{"type": "string"},
					},
					"required": []string{"claimId", "closureNotes"},
				},
			},
		},
	}
}

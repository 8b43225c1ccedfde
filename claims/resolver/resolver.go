// Package resolver turns free-text user input into a tool invocation using
// an OpenAI-compatible chat-completions endpoint with function tools.
package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	openaisdk "github.com/openai/openai-go"
	"github.com/rs/zerolog/log"

	contractx "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/claims/contract"
	openrouterx "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/pkg/openrouter"
)

const systemPrompt = "You are a helpful insurance assistant."

var claimIDPattern = regexp.MustCompile(`CLM-[0-9]+`)

type OpenAIResolver struct {
	client      *openaisdk.Client
	model       string
	temperature float64
	maxTokens   int64
}

var _ contractx.Resolver = (*OpenAIResolver)(nil)

func NewOpenAIResolver(cfg openrouterx.Config) (*OpenAIResolver, error) {
	client := openrouterx.NewClient(cfg)
	if client == nil {
		return nil, fmt.Errorf("%w: resolver api key is required", contractx.ErrValidation)
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		return nil, fmt.Errorf("%w: resolver model is required", contractx.ErrValidation)
	}
	return &OpenAIResolver{
		client:      client,
		model:       model,
		temperature: cfg.Temperature,
		maxTokens:   int64(cfg.MaxCompletionToken),
	}, nil
}

// Resolve asks the model to pick one of the workflow tools for the user
// text. A nil Intent means the model produced no tool call, which the caller
// must treat as could-not-route rather than an error.
func (r *OpenAIResolver) Resolve(ctx context.Context, text string, history []contractx.Message) (*contractx.Intent, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: message is empty", contractx.ErrValidation)
	}

	messages := make([]openaisdk.ChatCompletionMessageParamUnion, 0, len(history)+2)
	messages = append(messages, openaisdk.SystemMessage(systemPrompt))
	for _, m := range history {
		switch strings.ToLower(strings.TrimSpace(m.Role)) {
		case "assistant":
			messages = append(messages, openaisdk.AssistantMessage(m.Content))
		case "system":
			messages = append(messages, openaisdk.SystemMessage(m.Content))
		default:
			messages = append(messages, openaisdk.UserMessage(m.Content))
		}
	}
	messages = append(messages, openaisdk.UserMessage(text))

	params := openaisdk.ChatCompletionNewParams{
		Model:       openaisdk.ChatModel(r.model),
		Messages:    messages,
		Tools:       toolSchemas(),
		Temperature: openaisdk.Float(r.temperature),
	}
	if r.maxTokens > 0 {
		params.MaxCompletionTokens = openaisdk.Int(r.maxTokens)
	}

	completion, err := r.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve intent: %v", contractx.ErrModelInvoke, err)
	}

	if len(completion.Choices) == 0 {
		return nil, nil
	}
	calls := completion.Choices[0].Message.ToolCalls
	if len(calls) == 0 {
		return nil, nil
	}

	call := calls[0]
	tool := strings.TrimSpace(call.Function.Name)
	if tool == "" {
		return nil, fmt.Errorf("%w: tool call name is empty", contractx.ErrSchemaViolation)
	}

	args := json.RawMessage(strings.TrimSpace(call.Function.Arguments))
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	if !json.Valid(args) {
		return nil, fmt.Errorf("%w: invalid tool args for tool=%s", contractx.ErrSchemaViolation, tool)
	}

	intent := &contractx.Intent{
		Tool:    tool,
		Args:    args,
		ClaimID: claimIDFrom(text, args),
	}
	log.Debug().Str("tool", tool).Str("claim_id", intent.ClaimID).Msg("intent resolved")
	return intent, nil
}

// claimIDFrom extracts the claim id for follow-up prompts, preferring the
// literal CLM-nnn token in the user text and falling back to the resolved
// arguments.
func claimIDFrom(text string, args json.RawMessage) string {
	if id := ExtractClaimID(text); id != "" {
		return id
	}
	var probe struct {
		ClaimID string `json:"claimId"`
	}
	if err := json.Unmarshal(args, &probe); err == nil {
		return strings.TrimSpace(probe.ClaimID)
	}
	return ""
}

// ExtractClaimID finds the first CLM-style claim identifier in text, or ""
// when absent.
func ExtractClaimID(text string) string {
	return claimIDPattern.FindString(text)
}

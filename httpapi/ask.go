package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	contractx "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/claims/contract"
	dispatchx "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/claims/dispatch"
)

const couldNotRouteMessage = "Sorry, I couldn't understand the request. Could you rephrase?"

type askRequest struct {
	Message             string              `json:"message"`
	ConversationHistory []contractx.Message `json:"conversation_history,omitempty"`
}

type askResponse struct {
	Response  string   `json:"response"`
	Agent     string   `json:"agent"`
	Tool      string   `json:"tool,omitempty"`
	FollowUps []string `json:"followups"`
	Payload   any      `json:"payload,omitempty"`
}

// handleAsk routes free text through the intent resolver and dispatches the
// resolved tool. An unroutable message is a normal response, not an error.
func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, contractx.ToolResponse{
			Error:   true,
			Details: "Invalid request body: " + err.Error(),
		})
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		writeJSON(w, http.StatusBadRequest, contractx.ToolResponse{
			Error:   true,
			Details: "message is required",
		})
		return
	}

	if s.resolver == nil {
		writeJSON(w, http.StatusServiceUnavailable, contractx.ToolResponse{
			Error:   true,
			Details: "intent resolver is not configured",
		})
		return
	}

	intent, err := s.resolver.Resolve(r.Context(), message, req.ConversationHistory)
	if err != nil {
		log.Error().Err(err).Msg("intent resolution failed")
		writeJSON(w, http.StatusInternalServerError, contractx.ToolResponse{
			Error:   true,
			Details: "Internal error: " + err.Error(),
		})
		return
	}
	if intent == nil {
		writeJSON(w, http.StatusOK, couldNotRoute(""))
		return
	}

	result, err := s.dispatcher.Dispatch(r.Context(), intent.Tool, intent.Args)
	if err != nil {
		// A tool name or payload the dispatch table cannot serve is a
		// routing miss, not a server fault.
		if errors.Is(err, dispatchx.ErrUnknownTool) || errors.Is(err, contractx.ErrSchemaViolation) {
			log.Warn().Err(err).Str("tool", intent.Tool).Msg("resolved intent could not be dispatched")
			writeJSON(w, http.StatusOK, couldNotRoute(intent.ClaimID))
			return
		}
		log.Error().Err(err).Str("tool", intent.Tool).Msg("dispatch failed")
		writeJSON(w, http.StatusInternalServerError, contractx.ToolResponse{
			Error:   true,
			Details: "Internal error: " + err.Error(),
		})
		return
	}

	response := ""
	if env, ok := result.Payload.(contractx.Enveloped); ok {
		response = env.Envelope().Details
	}

	followups := result.FollowUps
	if len(followups) > 2 {
		followups = followups[:2]
	}

	writeJSON(w, http.StatusOK, askResponse{
		Response:  response,
		Agent:     result.Agent,
		Tool:      result.Tool,
		FollowUps: followups,
		Payload:   result.Payload,
	})
}

func couldNotRoute(claimID string) askResponse {
	followups := dispatchx.GeneralFollowUps()
	if claimID != "" {
		followups = dispatchx.FollowUps("", claimID)
	}
	return askResponse{
		Response:  couldNotRouteMessage,
		Agent:     dispatchx.GeneralAgent,
		FollowUps: followups,
	}
}

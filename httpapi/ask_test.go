package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	contractx "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/claims/contract"
	dispatchx "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/claims/dispatch"
)

func TestAskDispatchesResolvedIntent(t *testing.T) {
	t.Parallel()

	resolver := &fakeResolver{intent: &contractx.Intent{
		Tool: dispatchx.ToolClaimAssignmentInvestigation,
		Args: json.RawMessage(`{"claimId": "CLM-0042", "examinerPool": "auto claims"}`),
		// The claim id the resolver spotted in the user text.
		ClaimID: "CLM-0042",
	}}
	h := newTestServer(t, resolver).Handler()

	rec := postJSON(t, h, "/ask", `{"message": "Assign an examiner to CLM-0042 from the auto claims pool"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}
	resp := decodeBody[askResponse](t, rec)
	if resp.Agent != "claim_assignment_investigation_agent" {
		t.Fatalf("agent = %s", resp.Agent)
	}
	if resp.Tool != dispatchx.ToolClaimAssignmentInvestigation {
		t.Fatalf("tool = %s", resp.Tool)
	}
	if resp.Response != "Examiner assigned successfully." {
		t.Fatalf("response = %q", resp.Response)
	}
	if len(resp.FollowUps) != 2 {
		t.Fatalf("expected 2 follow-ups, got %d", len(resp.FollowUps))
	}
}

func TestAskUnroutableMessage(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, &fakeResolver{}).Handler()
	rec := postJSON(t, h, "/ask", `{"message": "tell me a joke"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	resp := decodeBody[askResponse](t, rec)
	if resp.Response != couldNotRouteMessage {
		t.Fatalf("response = %q", resp.Response)
	}
	if resp.Agent != dispatchx.GeneralAgent {
		t.Fatalf("agent = %s, want %s", resp.Agent, dispatchx.GeneralAgent)
	}
	if resp.Tool != "" {
		t.Fatalf("tool = %q, want empty", resp.Tool)
	}
	if len(resp.FollowUps) == 0 {
		t.Fatal("expected general follow-ups")
	}
}

func TestAskUnknownToolFromResolverIsARoutingMiss(t *testing.T) {
	t.Parallel()

	resolver := &fakeResolver{intent: &contractx.Intent{
		Tool:    "FraudScoringTool",
		Args:    json.RawMessage(`{}`),
		ClaimID: "CLM-001",
	}}
	h := newTestServer(t, resolver).Handler()

	rec := postJSON(t, h, "/ask", `{"message": "score CLM-001 for fraud"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	resp := decodeBody[askResponse](t, rec)
	if resp.Response != couldNotRouteMessage {
		t.Fatalf("response = %q", resp.Response)
	}
	// With a claim id in hand the fallback prompt mentions it.
	if len(resp.FollowUps) != 1 || resp.FollowUps[0] != "What else can I do with claim CLM-001?" {
		t.Fatalf("unexpected follow-ups: %v", resp.FollowUps)
	}
}

func TestAskResolverFailureIsHTTP500(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, &fakeResolver{err: errors.New("upstream timeout")}).Handler()
	rec := postJSON(t, h, "/ask", `{"message": "register a claim"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	resp := decodeBody[contractx.ToolResponse](t, rec)
	if !resp.Error {
		t.Fatal("expected error envelope")
	}
}

func TestAskWithoutResolverIsHTTP503(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, nil).Handler()
	rec := postJSON(t, h, "/ask", `{"message": "register a claim"}`)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestAskEmptyMessageIsHTTP400(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, &fakeResolver{}).Handler()

	rec := postJSON(t, h, "/ask", `{"message": "   "}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	rec = postJSON(t, h, "/ask", `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for malformed body", rec.Code)
	}
}

func TestAskCapsFollowUpsAtTwo(t *testing.T) {
	t.Parallel()

	resolver := &fakeResolver{intent: &contractx.Intent{
		Tool:    dispatchx.ToolClaimRegistration,
		Args:    json.RawMessage(`{"claimId": "CLM-002", "claimantInfo": {"name": "A", "contact": "a@b.c"}, "claimDetails": {"policyNumber": "P", "incidentDescription": "I"}}`),
		ClaimID: "CLM-002",
	}}
	h := newTestServer(t, resolver).Handler()

	rec := postJSON(t, h, "/ask", `{"message": "register claim CLM-002"}`)
	resp := decodeBody[askResponse](t, rec)
	if len(resp.FollowUps) > 2 {
		t.Fatalf("follow-ups not capped: %d", len(resp.FollowUps))
	}
}

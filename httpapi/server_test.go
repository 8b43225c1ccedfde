package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	contractx "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/claims/contract"
	dispatchx "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/claims/dispatch"
	handlerx "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/claims/handler"
	storex "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/claims/store"
)

type fakeResolver struct {
	intent *contractx.Intent
	err    error
}

func (f *fakeResolver) Resolve(context.Context, string, []contractx.Message) (*contractx.Intent, error) {
	return f.intent, f.err
}

func newTestServer(t *testing.T, resolver contractx.Resolver) *Server {
	t.Helper()

	claims, err := storex.NewClaimStore(storex.ClaimStoreConfig{
		SnapshotPath: filepath.Join(t.TempDir(), "claims_data.json"),
	})
	if err != nil {
		t.Fatalf("new claim store: %v", err)
	}
	wf, err := handlerx.NewWorkflow(claims, storex.NewPaymentStore(), storex.NewClosureStore())
	if err != nil {
		t.Fatalf("new workflow: %v", err)
	}
	dispatcher, err := dispatchx.New(wf)
	if err != nil {
		t.Fatalf("new dispatcher: %v", err)
	}
	s, err := New(wf, dispatcher, resolver)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return s
}

func postJSON(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v\nbody: %s", err, rec.Body.String())
	}
	return out
}

const registrationBody = `{
	"claimId": "CLM-002",
	"claimantInfo": {"name": "Alice Johnson", "contact": "alice@email.com"},
	"claimDetails": {"policyNumber": "AUTO-123456", "incidentDescription": "Rear-ended."}
}`

func TestRegistrationEndpoint(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, nil).Handler()
	rec := postJSON(t, h, "/claim_registration_agent/claim_db_storage_tool", registrationBody)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}
	resp := decodeBody[contractx.ClaimRegistrationResponse](t, rec)
	if resp.Error {
		t.Fatalf("unexpected error: %s", resp.Details)
	}
	if resp.Details != "Claim registered successfully with claimId CLM-002." {
		t.Fatalf("unexpected details: %s", resp.Details)
	}
}

func TestBusinessRejectionStaysHTTP200(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, nil).Handler()
	rec := postJSON(t, h, "/claim_registration_agent/claim_db_storage_tool", `{}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 for business rejection", rec.Code)
	}
	resp := decodeBody[contractx.ClaimRegistrationResponse](t, rec)
	if !resp.Error {
		t.Fatal("expected rejection in the payload")
	}
}

func TestMalformedJSONIsHTTP400(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, nil).Handler()
	rec := postJSON(t, h, "/claim_validation_agent/claimvalidatortool", `{not json`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	resp := decodeBody[contractx.ToolResponse](t, rec)
	if !resp.Error {
		t.Fatal("expected error envelope")
	}
	if !strings.HasPrefix(resp.Details, "Invalid request body:") {
		t.Fatalf("unexpected details: %s", resp.Details)
	}
}

func TestAllOperationRoutesAreRegistered(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, nil).Handler()
	paths := []string{
		"/claim_registration_agent/claim_db_storage_tool",
		"/claim_validation_agent/claimvalidatortool",
		"/claim_validation_agent/additionalinforequesttool",
		"/claim_assignment_investigation_agent/examiner_assignment_tool",
		"/claim_assignment_investigation_agent/claim_investigation_tool",
		"/claim_decision_agent/decision_support_tool",
		"/claim_payment_agent/payment_processing_tool",
		"/claim_notification_agent/notification_sending_tool",
		"/claim_closure_agent/ClaimClosureTool",
	}
	for _, path := range paths {
		rec := postJSON(t, h, path, `{"claimId": "CLM-001"}`)
		if rec.Code == http.StatusNotFound {
			t.Fatalf("route %s not registered", path)
		}
	}
}

func TestOperationRoutesRejectGET(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, nil).Handler()
	req := httptest.NewRequest(http.MethodGet, "/claim_registration_agent/claim_db_storage_tool", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestAdditionalInfoRequestEndpoint(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, nil).Handler()
	rec := postJSON(t, h, "/claim_validation_agent/additionalinforequesttool", `{
		"claimId": "CLM-001",
		"missingFields": {"fields": "policyNumber"}
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}
	resp := decodeBody[contractx.AdditionalInfoRequestResponse](t, rec)
	if resp.Error {
		t.Fatalf("unexpected error: %s", resp.Details)
	}
	if resp.AdditionalInformationRequest != "Please provide the following missing information for claim CLM-001: policyNumber." {
		t.Fatalf("unexpected request: %s", resp.AdditionalInformationRequest)
	}
}

func TestValidationEndpointSingularPhrasing(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, nil).Handler()
	rec := postJSON(t, h, "/claim_validation_agent/claimvalidatortool", `{
		"claimId": "CLM-001",
		"claimDetails": {"policyNumber": "", "incidentDescription": "Rear-ended."}
	}`)

	resp := decodeBody[contractx.ClaimValidationResponse](t, rec)
	if resp.Status != contractx.ValidationInvalid {
		t.Fatalf("status = %s, want INVALID", resp.Status)
	}
	if resp.AdditionalInformationRequest != "Please provide the missing field: policyNumber for claim CLM-001." {
		t.Fatalf("unexpected request: %s", resp.AdditionalInformationRequest)
	}
}

package handler

import (
	"context"
	"reflect"
	"testing"
	"time"

	contractx "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/claims/contract"
)

func TestCloseSuccess(t *testing.T) {
	t.Parallel()

	// The seeded demo claim CLM-001 is closeable without a registration step.
	fixed := time.Date(2024, 3, 15, 10, 30, 0, 123456000, time.UTC)
	wf := newTestWorkflow(t, WithClock(func() time.Time { return fixed }))

	resp := wf.Close(context.Background(), contractx.ClaimClosureInput{
		ClaimID:      "CLM-001",
		ClosureNotes: "All steps completed, claimant notified.",
	})

	if resp.Error {
		t.Fatalf("unexpected error: %s", resp.Details)
	}
	if resp.Result != "success" {
		t.Fatalf("result = %s, want success", resp.Result)
	}
	if resp.Status != "Closed" {
		t.Fatalf("status = %s, want Closed", resp.Status)
	}
	if resp.Timestamp != "2024-03-15T10:30:00.123456Z" {
		t.Fatalf("timestamp = %s, want 2024-03-15T10:30:00.123456Z", resp.Timestamp)
	}
	wantDocs := []string{"claim-form.pdf", "investigator-report.pdf", "payment-confirmation.pdf"}
	if !reflect.DeepEqual(resp.ArchivedDocuments, wantDocs) {
		t.Fatalf("archivedDocuments = %v, want %v", resp.ArchivedDocuments, wantDocs)
	}
	if resp.Details != "Claim CLM-001 closed successfully." {
		t.Fatalf("unexpected details: %s", resp.Details)
	}
	if _, ok := wf.closures.FindByClaimID("CLM-001"); !ok {
		t.Fatal("closure record not stored")
	}
}

func TestCloseUnknownClaimIsAnAlert(t *testing.T) {
	t.Parallel()

	wf := newTestWorkflow(t)
	resp := wf.Close(context.Background(), contractx.ClaimClosureInput{
		ClaimID:      "CLM-404",
		ClosureNotes: "done",
	})

	if resp.Error {
		t.Fatal("an alert is a business outcome, not an error")
	}
	if resp.Result != "alert" {
		t.Fatalf("result = %s, want alert", resp.Result)
	}
	if resp.Issue != "Claim record not found" {
		t.Fatalf("unexpected issue: %s", resp.Issue)
	}
	if resp.ActionRequired != "Please verify the claim ID and try again." {
		t.Fatalf("unexpected actionRequired: %s", resp.ActionRequired)
	}
	if resp.Details != "Claim record with claimId CLM-404 not found." {
		t.Fatalf("unexpected details: %s", resp.Details)
	}
}

func TestCloseMissingNotesIsADistinctAlert(t *testing.T) {
	t.Parallel()

	wf := newTestWorkflow(t)

	resp := wf.Close(context.Background(), contractx.ClaimClosureInput{
		ClaimID:      "CLM-001",
		ClosureNotes: "   ",
	})

	if resp.Result != "alert" {
		t.Fatalf("result = %s, want alert", resp.Result)
	}
	if resp.Issue != "No closureNotes provided and the notification step is not recorded as completed." {
		t.Fatalf("unexpected issue: %s", resp.Issue)
	}
	if resp.ActionRequired != "Please provide closure notes and confirm claimant notification." {
		t.Fatalf("unexpected actionRequired: %s", resp.ActionRequired)
	}
	if _, ok := wf.closures.FindByClaimID("CLM-001"); ok {
		t.Fatal("rejected closure must not be stored")
	}
}

func TestCloseTrimsClosureNotes(t *testing.T) {
	t.Parallel()

	wf := newTestWorkflow(t)

	resp := wf.Close(context.Background(), contractx.ClaimClosureInput{
		ClaimID:      "CLM-001",
		ClosureNotes: "  wrapped up  ",
	})

	if resp.ClosureNotes != "wrapped up" {
		t.Fatalf("closureNotes = %q, want trimmed", resp.ClosureNotes)
	}
}

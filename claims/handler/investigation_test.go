package handler

import (
	"context"
	"testing"
	"time"

	contractx "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/claims/contract"
)

func TestAssignExaminerDerivesIDFromClaimID(t *testing.T) {
	t.Parallel()

	wf := newTestWorkflow(t)
	resp := wf.AssignExaminer(context.Background(), contractx.ExaminerAssignmentInput{
		ClaimID:      "CLM-0042",
		ExaminerPool: "auto claims specialists",
	})

	if resp.Error {
		t.Fatalf("unexpected error: %s", resp.Details)
	}
	if resp.AssignedExaminerID != "EX-0042" {
		t.Fatalf("assignedExaminerId = %s, want EX-0042", resp.AssignedExaminerID)
	}
	if resp.AssignmentDetails.Criteria != "auto claims specialists, lowest current workload" {
		t.Fatalf("unexpected criteria: %s", resp.AssignmentDetails.Criteria)
	}
	if resp.Details != "Examiner assigned successfully." {
		t.Fatalf("unexpected details: %s", resp.Details)
	}
}

func TestAssignExaminerIsDeterministic(t *testing.T) {
	t.Parallel()

	wf := newTestWorkflow(t)
	in := contractx.ExaminerAssignmentInput{ClaimID: "CLM-0042", ExaminerPool: "auto"}

	first := wf.AssignExaminer(context.Background(), in)
	second := wf.AssignExaminer(context.Background(), in)

	if first.AssignedExaminerID != second.AssignedExaminerID {
		t.Fatalf("examiner id not stable: %s vs %s", first.AssignedExaminerID, second.AssignedExaminerID)
	}
}

func TestAssignExaminerShortClaimID(t *testing.T) {
	t.Parallel()

	wf := newTestWorkflow(t)
	resp := wf.AssignExaminer(context.Background(), contractx.ExaminerAssignmentInput{
		ClaimID:      "C1",
		ExaminerPool: "auto",
	})

	if resp.AssignedExaminerID != "EX-C1" {
		t.Fatalf("assignedExaminerId = %s, want EX-C1", resp.AssignedExaminerID)
	}
}

func TestAssignExaminerEmptyPoolAsksForCriteria(t *testing.T) {
	t.Parallel()

	wf := newTestWorkflow(t)
	resp := wf.AssignExaminer(context.Background(), contractx.ExaminerAssignmentInput{
		ClaimID:      "CLM-001",
		ExaminerPool: "   ",
	})

	if !resp.Error {
		t.Fatal("expected error for empty examiner pool")
	}
	want := "Please specify the examiner pool or selection criteria for assigning claim CLM-001."
	if resp.Details != want {
		t.Fatalf("details = %q, want %q", resp.Details, want)
	}
	if resp.AssignedExaminerID != "" {
		t.Fatalf("no examiner must be assigned, got %s", resp.AssignedExaminerID)
	}
}

func TestInvestigateEchoesFindingsWithTimestamp(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	wf := newTestWorkflow(t, WithClock(func() time.Time { return fixed }))

	resp := wf.Investigate(context.Background(), contractx.ClaimInvestigationInput{
		ClaimID:    "CLM-001",
		ExaminerID: "EX-0001",
		InvestigationData: contractx.InvestigationData{
			EvidenceSummary: "Photos and police report collected.",
			Notes:           "Damage consistent with the incident description.",
		},
	})

	if resp.Error {
		t.Fatalf("unexpected error: %s", resp.Details)
	}
	if resp.Details != "Investigation completed successfully." {
		t.Fatalf("unexpected details: %s", resp.Details)
	}
	if resp.Investigation.EvidenceSummary != "Photos and police report collected." {
		t.Fatalf("evidence not echoed: %s", resp.Investigation.EvidenceSummary)
	}
	if resp.Investigation.Notes != "Damage consistent with the incident description." {
		t.Fatalf("notes not echoed: %s", resp.Investigation.Notes)
	}
	if !resp.Investigation.Timestamp.Equal(fixed) {
		t.Fatalf("timestamp = %v, want %v", resp.Investigation.Timestamp, fixed)
	}
	if resp.ExaminerID != "EX-0001" {
		t.Fatalf("examinerId = %s, want EX-0001", resp.ExaminerID)
	}
}

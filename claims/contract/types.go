package contract

import (
	"encoding/json"
	"time"
)

// ToolResponse is the envelope shared by every operation response.
// Error marks unexpected faults; business-rule rejections keep their own
// status fields and describe the condition in Details.
type ToolResponse struct {
	Error   bool   `json:"error"`
	Details string `json:"details"`
}

// Envelope returns the embedded envelope; every operation response promotes
// this method, letting callers read error/details without knowing the
// concrete type.
func (t ToolResponse) Envelope() ToolResponse { return t }

// Enveloped is satisfied by every operation response via the embedded
// ToolResponse.
type Enveloped interface {
	Envelope() ToolResponse
}

type ClaimantInfo struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

type ClaimDetails struct {
	PolicyNumber        string `json:"policyNumber"`
	IncidentDescription string `json:"incidentDescription"`
}

type PaymentDetails struct {
	PaymentAmount float64 `json:"paymentAmount"`
	AccountNumber string  `json:"accountNumber"`
	RoutingNumber string  `json:"routingNumber"`
}

type InvestigationData struct {
	EvidenceSummary string `json:"evidenceSummary"`
	Notes           string `json:"notes"`
}

/* ------------------------------ Operation inputs ------------------------------ */

type ClaimRegistrationInput struct {
	ClaimID        string          `json:"claimId"`
	ClaimantInfo   ClaimantInfo    `json:"claimantInfo"`
	ClaimDetails   ClaimDetails    `json:"claimDetails"`
	PaymentDetails *PaymentDetails `json:"paymentDetails,omitempty"`
}

type ClaimValidationInput struct {
	ClaimID           string             `json:"claimId"`
	ClaimDetails      ClaimDetails       `json:"claimDetails"`
	InvestigationData *InvestigationData `json:"investigationData,omitempty"`
}

// MissingFieldList wraps the comma separated field list produced by the
// validation step.
type MissingFieldList struct {
	Fields string `json:"fields"`
}

type AdditionalInfoRequestInput struct {
	ClaimID       string           `json:"claimId"`
	MissingFields MissingFieldList `json:"missingFields"`
}

type ExaminerAssignmentInput struct {
	ClaimID      string `json:"claimId"`
	ExaminerPool string `json:"examinerPool"`
}

type ClaimInvestigationInput struct {
	ClaimID           string            `json:"claimId"`
	ExaminerID        string            `json:"examinerId"`
	InvestigationData InvestigationData `json:"investigationData"`
}

type ClaimDecisionInput struct {
	ClaimID           string            `json:"claimId"`
	InvestigationData InvestigationData `json:"investigationData"`
	ClaimDetails      *ClaimDetails     `json:"claimDetails,omitempty"`
	AdditionalContext string            `json:"additionalContext,omitempty"`
}

type PaymentProcessingInput struct {
	ClaimID        string         `json:"claimId"`
	PaymentDetails PaymentDetails `json:"paymentDetails"`
}

type ClaimNotificationInput struct {
	ClaimID         string `json:"claimId"`
	ClaimantContact string `json:"claimantContact"`
	Message         string `json:"message"`
}

type ClaimClosureInput struct {
	ClaimID      string `json:"claimId"`
	ClosureNotes string `json:"closureNotes"`
}

/* ----------------------------- Operation responses ---------------------------- */

type ClaimRegistrationResponse struct {
	ToolResponse
	ClaimID             string `json:"claimId"`
	ClaimantName        string `json:"claimantName"`
	ClaimantContact     string `json:"claimantContact"`
	PolicyNumber        string `json:"policyNumber"`
	IncidentDescription string `json:"incidentDescription"`
}

type ClaimValidationResponse struct {
	ToolResponse
	ClaimID                      string `json:"claimId"`
	Status                       string `json:"status"`
	Log                          string `json:"log"`
	MissingFields                string `json:"missingFields,omitempty"`
	AdditionalInformationRequest string `json:"additionalInformationRequest,omitempty"`
}

type AdditionalInfoRequestResponse struct {
	ToolResponse
	ClaimID                      string `json:"claimId"`
	MissingFields                string `json:"missingFields"`
	AdditionalInformationRequest string `json:"additionalInformationRequest"`
	Log                          string `json:"log"`
}

type AssignmentDetails struct {
	Criteria  string    `json:"criteria"`
	Timestamp time.Time `json:"timestamp"`
}

type ExaminerAssignmentResponse struct {
	ToolResponse
	ClaimID            string            `json:"claimId"`
	AssignedExaminerID string            `json:"assignedExaminerId"`
	AssignmentDetails  AssignmentDetails `json:"assignmentDetails"`
}

type InvestigationDetails struct {
	EvidenceSummary string    `json:"evidenceSummary"`
	Notes           string    `json:"notes"`
	Timestamp       time.Time `json:"timestamp"`
}

type ClaimInvestigationResponse struct {
	ToolResponse
	ClaimID       string               `json:"claimId"`
	ExaminerID    string               `json:"examinerId"`
	Investigation InvestigationDetails `json:"investigation"`
}

type ClaimDecisionResponse struct {
	ToolResponse
	ClaimID          string `json:"claimId"`
	Decision         string `json:"decision"`
	Rationale        string `json:"rationale"`
	RequiredFollowUp string `json:"requiredFollowUp"`
	QuestionsForUser string `json:"questionsForUser"`
}

type PaymentProcessingResponse struct {
	ToolResponse
	ClaimID          string     `json:"claimId"`
	PaymentStatus    string     `json:"paymentStatus"`
	TransactionID    string     `json:"transactionId,omitempty"`
	Timestamp        *time.Time `json:"timestamp,omitempty"`
	AmountPaid       *float64   `json:"amountPaid,omitempty"`
	ErrorMessage     string     `json:"errorMessage,omitempty"`
	EscalationAdvice string     `json:"escalationAdvice,omitempty"`
}

type ClaimNotificationResponse struct {
	ToolResponse
	NotificationStatus string `json:"notificationStatus,omitempty"`
}

// ClaimClosureResponse covers both outcomes: Result is "success" with the
// status/timestamp/archive fields set, or "alert" with issue/actionRequired.
type ClaimClosureResponse struct {
	ToolResponse
	Result            string   `json:"result"`
	ClaimID           string   `json:"claimId"`
	Status            string   `json:"status,omitempty"`
	Timestamp         string   `json:"timestamp,omitempty"`
	ArchivedDocuments []string `json:"archivedDocuments,omitempty"`
	ClosureNotes      string   `json:"closureNotes,omitempty"`
	Issue             string   `json:"issue,omitempty"`
	ActionRequired    string   `json:"actionRequired,omitempty"`
}

/* --------------------------------- Records ---------------------------------- */

// ClaimRecord is the registered claim as owned by the claim store.
type ClaimRecord struct {
	ClaimID        string          `json:"claimId"`
	ClaimantInfo   ClaimantInfo    `json:"claimantInfo"`
	ClaimDetails   ClaimDetails    `json:"claimDetails"`
	PaymentDetails *PaymentDetails `json:"paymentDetails,omitempty"`
}

func (r ClaimRecord) Key() string { return r.ClaimID }

type PaymentRecord struct {
	ClaimID        string         `json:"claimId"`
	PaymentDetails PaymentDetails `json:"paymentDetails"`
	Status         string         `json:"status"`
	TransactionID  string         `json:"transactionId"`
	Timestamp      time.Time      `json:"timestamp"`
}

func (r PaymentRecord) Key() string { return r.ClaimID }

type ClosureRecord struct {
	ClaimID           string    `json:"claimId"`
	ClosureNotes      string    `json:"closureNotes"`
	ArchivedDocuments []string  `json:"archivedDocuments"`
	Timestamp         time.Time `json:"timestamp"`
}

func (r ClosureRecord) Key() string { return r.ClaimID }

const (
	PaymentProcessed = "Processed"
	PaymentFailed    = "Failed"

	DecisionApproved       = "Approved"
	DecisionEscalate       = "Escalate"
	DecisionAdditionalInfo = "Additional Info Required"

	ValidationValid   = "VALID"
	ValidationInvalid = "INVALID"
)

/* ----------------------------- Intent resolution ----------------------------- */

// Intent is a resolved user request: which tool to run and its raw argument
// payload as produced by the completion service.
type Intent struct {
	Tool    string
	Args    json.RawMessage
	ClaimID string
}

// Message is one turn of conversation history forwarded to the resolver.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

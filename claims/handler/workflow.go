// Package handler implements the claim workflow steps. Each step validates
// only its own local preconditions; nothing enforces cross-step ordering, so
// callers may invoke steps in any order and each behaves independently.
package handler

import (
	"errors"
	"fmt"
	"time"

	contractx "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/claims/contract"
	storex "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/claims/store"
)

// Workflow owns the stores the handlers read and write. Construct one per
// process and pass it by reference; the stores are never ambient globals.
type Workflow struct {
	claims   *storex.ClaimStore
	payments *storex.PaymentStore
	closures *storex.ClosureStore
	archive  contractx.Archiver

	now func() time.Time
}

type Option func(*Workflow)

// WithArchiver mirrors successful registrations into durable storage.
func WithArchiver(a contractx.Archiver) Option {
	return func(w *Workflow) {
		if a != nil {
			w.archive = a
		}
	}
}

// WithClock overrides the timestamp source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(w *Workflow) {
		if now != nil {
			w.now = now
		}
	}
}

func NewWorkflow(
	claims *storex.ClaimStore,
	payments *storex.PaymentStore,
	closures *storex.ClosureStore,
	opts ...Option,
) (*Workflow, error) {
	if claims == nil {
		return nil, errors.New("claim store is required")
	}
	if payments == nil {
		return nil, errors.New("payment store is required")
	}
	if closures == nil {
		return nil, errors.New("closure store is required")
	}

	w := &Workflow{
		claims:   claims,
		payments: payments,
		closures: closures,
		archive:  storex.NoopArchiver{},
		now:      time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}
	return w, nil
}

// fault converts a recovered panic into the shared error envelope. Handlers
// never let a failure escape past their own boundary.
func fault(v any) contractx.ToolResponse {
	return contractx.ToolResponse{
		Error:   true,
		Details: fmt.Sprint(v),
	}
}

// lastFour returns the trailing four characters of id, or id itself when
// shorter.
func lastFour(id string) string {
	if len(id) <= 4 {
		return id
	}
	return id[len(id)-4:]
}

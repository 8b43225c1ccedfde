// Package store holds the in-memory record collections backing the claim
// workflow. The collections are plain slices with no locking: the workflow
// assumes sequential access per process, and two concurrent registrations of
// the same unseen claimId can both pass the handler-level duplicate check.
// That race is a documented property of the system, not a bug to patch here.
package store

import (
	contractx "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/claims/contract"
)

// Record is anything keyed by a claim identifier.
type Record interface {
	Key() string
}

// Store is an insertion-ordered collection of records. Add never checks for
// duplicate keys; duplicate prevention is a handler concern performed before
// calling Add.
type Store[T Record] struct {
	records []T
}

func New[T Record]() *Store[T] {
	return &Store[T]{}
}

func (s *Store[T]) Add(rec T) {
	s.records = append(s.records, rec)
}

// FindByClaimID returns the first record with the given claim id in
// insertion order, or false when absent.
func (s *Store[T]) FindByClaimID(claimID string) (T, bool) {
	for _, rec := range s.records {
		if rec.Key() == claimID {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// DeleteByClaimID removes every record with the given claim id. No-op when
// none match.
func (s *Store[T]) DeleteByClaimID(claimID string) {
	kept := s.records[:0]
	for _, rec := range s.records {
		if rec.Key() != claimID {
			kept = append(kept, rec)
		}
	}
	s.records = kept
}

// All returns the records in insertion order. The slice is shared with the
// store; callers must not mutate it.
func (s *Store[T]) All() []T {
	return s.records
}

func (s *Store[T]) Len() int {
	return len(s.records)
}

// PaymentStore and ClosureStore are plain in-memory stores; their state is
// lost on restart.
type (
	PaymentStore = Store[contractx.PaymentRecord]
	ClosureStore = Store[contractx.ClosureRecord]
)

func NewPaymentStore() *PaymentStore {
	return New[contractx.PaymentRecord]()
}

func NewClosureStore() *ClosureStore {
	return New[contractx.ClosureRecord]()
}

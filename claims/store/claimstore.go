package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	contractx "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/claims/contract"
)

// ClaimStoreConfig configures the file snapshot behind the claim store.
type ClaimStoreConfig struct {
	SnapshotPath string `envconfig:"SNAPSHOT_PATH" split_words:"true" default:"claims_data.json"`
}

// ClaimStore keeps registered claims in memory and mirrors them into a
// whole-file JSON snapshot: the file is read in full at startup and written
// in full after every successful registration. The write is not atomic
// across concurrent writers; the snapshot is a deliberately simple demo
// primitive, not a transactional store.
type ClaimStore struct {
	Store[contractx.ClaimRecord]
	snapshotPath string
}

// NewClaimStore loads the snapshot at path (if any) and returns a store
// seeded with its contents. A missing file starts the store with the demo
// claim so the downstream workflow steps have something to act on; a corrupt
// file is an error so that a damaged snapshot is never silently truncated.
func NewClaimStore(cfg ClaimStoreConfig) (*ClaimStore, error) {
	path := strings.TrimSpace(cfg.SnapshotPath)
	if path == "" {
		return nil, fmt.Errorf("%w: snapshot path is empty", contractx.ErrSnapshot)
	}

	s := &ClaimStore{snapshotPath: path}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.records = seedClaims()
			return s, nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", contractx.ErrSnapshot, path, err)
	}

	var records []contractx.ClaimRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", contractx.ErrSnapshot, path, err)
	}
	s.records = records
	return s, nil
}

// AddAndSnapshot appends the record and rewrites the snapshot file. The
// in-memory append sticks even when the write fails; persistence is
// best-effort.
func (s *ClaimStore) AddAndSnapshot(rec contractx.ClaimRecord) error {
	s.Add(rec)
	return s.writeSnapshot()
}

// seedClaims is the demo claim a fresh install starts with.
func seedClaims() []contractx.ClaimRecord {
	return []contractx.ClaimRecord{{
		ClaimID: "CLM-001",
		ClaimantInfo: contractx.ClaimantInfo{
			Name:    "Alice Johnson",
			Contact: "alice.johnson@email.com",
		},
		ClaimDetails: contractx.ClaimDetails{
			PolicyNumber:        "AUTO-123456",
			IncidentDescription: "Rear-ended at traffic lights. Police report attached.",
		},
		PaymentDetails: &contractx.PaymentDetails{
			PaymentAmount: 2200.00,
			AccountNumber: "1111222233334444",
			RoutingNumber: "026009593",
		},
	}}
}

func (s *ClaimStore) SnapshotPath() string {
	return s.snapshotPath
}

func (s *ClaimStore) writeSnapshot() error {
	payload, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode snapshot: %v", contractx.ErrSnapshot, err)
	}
	if err := os.WriteFile(s.snapshotPath, payload, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", contractx.ErrSnapshot, s.snapshotPath, err)
	}
	return nil
}

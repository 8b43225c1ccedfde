package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	contractx "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/claims/contract"
)

// ArchiveConfig configures the optional Postgres claim archive. An empty DSN
// disables archiving entirely.
type ArchiveConfig struct {
	DSN string `envconfig:"DSN" split_words:"true"`
}

type claimArchiveRow struct {
	bun.BaseModel `bun:"table:claim_archive"`

	ClaimID             string  `bun:"claim_id,pk"`
	ClaimantName        string  `bun:"claimant_name"`
	ClaimantContact     string  `bun:"claimant_contact"`
	PolicyNumber        string  `bun:"policy_number"`
	IncidentDescription string  `bun:"incident_description"`
	PaymentAmount       float64 `bun:"payment_amount,nullzero"`
	AccountNumber       string  `bun:"account_number,nullzero"`
	RoutingNumber       string  `bun:"routing_number,nullzero"`
}

// BunClaimArchive mirrors registered claims into Postgres. It exists next to
// the file snapshot, not instead of it: the snapshot remains the source the
// in-memory store reloads from.
type BunClaimArchive struct {
	db *bun.DB
}

var _ contractx.Archiver = (*BunClaimArchive)(nil)

func NewBunClaimArchive(ctx context.Context, cfg ArchiveConfig) (*BunClaimArchive, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, fmt.Errorf("claim archive dsn is empty")
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())

	if _, err := db.NewCreateTable().
		Model((*claimArchiveRow)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("create claim_archive table: %w", err)
	}

	return &BunClaimArchive{db: db}, nil
}

func (a *BunClaimArchive) ArchiveClaim(ctx context.Context, rec contractx.ClaimRecord) error {
	row := claimArchiveRow{
		ClaimID:             rec.ClaimID,
		ClaimantName:        rec.ClaimantInfo.Name,
		ClaimantContact:     rec.ClaimantInfo.Contact,
		PolicyNumber:        rec.ClaimDetails.PolicyNumber,
		IncidentDescription: rec.ClaimDetails.IncidentDescription,
	}
	if rec.PaymentDetails != nil {
		row.PaymentAmount = rec.PaymentDetails.PaymentAmount
		row.AccountNumber = rec.PaymentDetails.AccountNumber
		row.RoutingNumber = rec.PaymentDetails.RoutingNumber
	}

	if _, err := a.db.NewInsert().
		Model(&row).
		On("CONFLICT (claim_id) DO NOTHING").
		Exec(ctx); err != nil {
		return fmt.Errorf("archive claim %s: %w", rec.ClaimID, err)
	}
	return nil
}

func (a *BunClaimArchive) Close() error {
	return a.db.Close()
}

// NoopArchiver is used when no archive DSN is configured.
type NoopArchiver struct{}

func (NoopArchiver) ArchiveClaim(context.Context, contractx.ClaimRecord) error {
	return nil
}

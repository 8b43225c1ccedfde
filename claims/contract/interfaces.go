package contract

import "context"

// Resolver maps free-text user input to a tool invocation. A nil Intent with
// a nil error means the text could not be routed to any tool.
type Resolver interface {
	Resolve(ctx context.Context, text string, history []Message) (*Intent, error)
}

// Archiver mirrors registered claims into durable storage. Implementations
// are best-effort; registration never fails on archive errors.
type Archiver interface {
	ArchiveClaim(ctx context.Context, rec ClaimRecord) error
}

package session

import "context"

// Store persists the session record between process runs.
//
// Contract:
//   - Load returns (nil, nil) when no record exists.
//   - Load returns an error wrapping common.ErrCorruptRecord when a record
//     exists but cannot be decoded; it does not remove the record itself.
//   - Save writes the full record in a single durable operation, so a
//     settled write always reflects the complete token pair.
//   - Clear is idempotent.
type Store interface {
	Load(ctx context.Context) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Clear(ctx context.Context) error
}

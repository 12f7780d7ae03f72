package content

import "context"

// Store provides persistence for one content collection. Implementations:
// MongoStore for production, MemoryStore for unit tests and degraded mode.
type Store interface {
	// List returns all records in the collection's descriptor order.
	List(ctx context.Context) ([]Record, error)
	// Get returns the record with the given id or ErrNotFound.
	Get(ctx context.Context, id string) (Record, error)
	// Insert persists a new record, assigning id and timestamps.
	Insert(ctx context.Context, fields map[string]any) (Record, error)
	// Update merges patch fields over the stored record and returns the
	// result, or ErrNotFound when the id is absent.
	Update(ctx context.Context, id string, patch map[string]any) (Record, error)
	// Delete removes the record. Deleting an absent id is not an error.
	Delete(ctx context.Context, id string) error
	// ClearActive sets isActive=false on every record except exceptID
	// (all records when exceptID is empty).
	ClearActive(ctx context.Context, exceptID string) error
}

package snapshot

import (
	"context"
	"errors"

	"github.com/velarium/scriptorium/internal/domain"
)

// ErrNoSnapshot is returned by Load when nothing has been saved yet
var ErrNoSnapshot = errors.New("no snapshot stored")

// Store persists the player snapshot. Implementations must return an
// independent copy from Load so callers can mutate freely.
type Store interface {
	Load(ctx context.Context) (*domain.PlayerState, error)
	Save(ctx context.Context, state *domain.PlayerState) error
	Close()
}

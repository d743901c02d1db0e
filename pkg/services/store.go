package services

import (
	"github.com/weftworks/weft/ent"
	"github.com/weftworks/weft/pkg/engine"
	"github.com/weftworks/weft/pkg/hitl"
	"github.com/weftworks/weft/pkg/queue"
)

// Store bundles the per-entity services into the single storage surface the
// engine, the queue, and the human input controller consume.
type Store struct {
	*ExecutionService
	*MessageService
	*InteractionService
}

// NewStore creates the storage facade over one ent client.
func NewStore(client *ent.Client) *Store {
	return &Store{
		ExecutionService:   NewExecutionService(client),
		MessageService:     NewMessageService(client),
		InteractionService: NewInteractionService(client),
	}
}

var (
	_ engine.Store         = (*Store)(nil)
	_ hitl.Store           = (*Store)(nil)
	_ queue.ExecutionStore = (*Store)(nil)
)

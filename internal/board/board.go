// Package board keeps the idea Kanban board responsive to drag-and-drop moves
// while the record store stays authoritative.
//
// The displayed list is always derived as the confirmed snapshot with the
// still-pending moves replayed in drop order. Snapshots are immutable values
// replaced wholesale, so a late failure only drops its own move and never
// clobbers other in-flight or confirmed moves.
package board

import (
	"context"
	"sync"

	"publiflow-backend/internal/database/models"
	apperrors "publiflow-backend/internal/errors"
	"publiflow-backend/internal/logger"
	"publiflow-backend/internal/metrics"

	"github.com/google/uuid"
)

// Store persists a stage change of one idea
type Store interface {
	SetStatus(ctx context.Context, ideaID uuid.UUID, status models.IdeaStatus) error
}

// StoreFunc adapts a function to Store
type StoreFunc func(ctx context.Context, ideaID uuid.UUID, status models.IdeaStatus) error

// SetStatus calls f
func (f StoreFunc) SetStatus(ctx context.Context, ideaID uuid.UUID, status models.IdeaStatus) error {
	return f(ctx, ideaID, status)
}

// Position is a slot on the board
type Position struct {
	Container models.IdeaStatus `json:"container" binding:"required"`
	Index     int               `json:"index"`
}

// DropEvent describes a finished drag. A nil Destination means the drag was cancelled.
type DropEvent struct {
	ItemID      uuid.UUID `json:"item_id" binding:"required"`
	Source      Position  `json:"source"`
	Destination *Position `json:"destination"`
}

// Move is an optimistic stage change awaiting persistence
type Move struct {
	Seq    uint64            `json:"-"`
	ItemID uuid.UUID         `json:"item_id"`
	To     models.IdeaStatus `json:"to"`
}

// FailureHandler is told about every move the store rejected, after the rollback.
// It runs with the board locked and must not call back into the board.
type FailureHandler func(move Move, err error)

// Board reconciles optimistic moves against the store
type Board struct {
	mu        sync.Mutex
	scheme    models.IdeaStageScheme
	store     Store
	confirmed []models.Idea
	pending   []Move
	displayed []models.Idea
	seq       uint64
	onFailure FailureHandler
	inflight  sync.WaitGroup
}

// Option configures a Board
type Option func(*Board)

// WithFailureHandler registers the handler that surfaces rejected moves
func WithFailureHandler(h FailureHandler) Option {
	return func(b *Board) {
		b.onFailure = h
	}
}

// New creates a board over items in store order
func New(scheme models.IdeaStageScheme, store Store, items []models.Idea, opts ...Option) *Board {
	snapshot := cloneIdeas(items)
	b := &Board{
		scheme:    scheme,
		store:     store,
		confirmed: snapshot,
		displayed: snapshot,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Items returns a copy of the displayed list
func (b *Board) Items() []models.Idea {
	b.mu.Lock()
	defer b.mu.Unlock()
	return cloneIdeas(b.displayed)
}

// Confirmed returns a copy of the last confirmed snapshot
func (b *Board) Confirmed() []models.Idea {
	b.mu.Lock()
	defer b.mu.Unlock()
	return cloneIdeas(b.confirmed)
}

// Pending reports how many moves are still awaiting the store
func (b *Board) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}

// Drop applies a drop event. It returns false when the event is a no-op
// (cancelled drag or same container and index). Otherwise the item is shown in
// the destination stage immediately and persisted asynchronously.
func (b *Board) Drop(ctx context.Context, ev DropEvent) (bool, error) {
	if ev.Destination == nil {
		return false, nil
	}
	if ev.Destination.Container == ev.Source.Container && ev.Destination.Index == ev.Source.Index {
		return false, nil
	}
	if !b.scheme.Contains(ev.Destination.Container) {
		return false, apperrors.ErrInvalidIdeaStage
	}

	b.mu.Lock()
	if indexOf(b.displayed, ev.ItemID) < 0 {
		b.mu.Unlock()
		return false, apperrors.ErrIdeaNotFound
	}
	b.seq++
	move := Move{Seq: b.seq, ItemID: ev.ItemID, To: ev.Destination.Container}
	b.pending = append(b.pending, move)
	b.displayed = replay(b.confirmed, b.pending)
	b.inflight.Add(1)
	b.mu.Unlock()

	go b.persist(context.WithoutCancel(ctx), move)
	return true, nil
}

// Wait blocks until every in-flight persistence call has settled
func (b *Board) Wait() {
	b.inflight.Wait()
}

func (b *Board) persist(ctx context.Context, move Move) {
	defer b.inflight.Done()

	err := b.safeSetStatus(ctx, move)

	if err != nil {
		logger.WithContext(ctx).WithError(err).WithField("idea_id", move.ItemID.String()).Warn("Idea move rolled back")
		metrics.BoardMovesTotal.WithLabelValues("rolled_back").Inc()
	} else {
		metrics.BoardMovesTotal.WithLabelValues("confirmed").Inc()
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending = removeMove(b.pending, move.Seq)
	if err == nil {
		b.confirmed = replay(b.confirmed, []Move{move})
	}
	b.displayed = replay(b.confirmed, b.pending)
	// Surfaced under the lock so no reader sees the rollback without its error.
	if err != nil && b.onFailure != nil {
		b.onFailure(move, err)
	}
}

// safeSetStatus turns a panicking store into a failed move
func (b *Board) safeSetStatus(ctx context.Context, move Move) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = apperrors.ErrUnexpected
		}
	}()
	return b.store.SetStatus(ctx, move.ItemID, move.To)
}

// replay returns a new list with moves applied to base in order; base is not modified
func replay(base []models.Idea, moves []Move) []models.Idea {
	out := cloneIdeas(base)
	for _, m := range moves {
		if i := indexOf(out, m.ItemID); i >= 0 {
			out[i].Status = m.To
		}
	}
	return out
}

func removeMove(moves []Move, seq uint64) []Move {
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		if m.Seq != seq {
			out = append(out, m)
		}
	}
	return out
}

func indexOf(items []models.Idea, id uuid.UUID) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneIdeas(items []models.Idea) []models.Idea {
	out := make([]models.Idea, len(items))
	copy(out, items)
	return out
}

package board

import (
	"context"
	"sync"

	"publiflow-backend/internal/database/models"

	"github.com/google/uuid"
)

// Loader reads a user's ideas in store order
type Loader func(ctx context.Context, userID uuid.UUID) ([]models.Idea, error)

// StatusWriter persists a stage change on behalf of a user
type StatusWriter func(ctx context.Context, userID, ideaID uuid.UUID, status models.IdeaStatus) error

// View is the board state returned to a client
type View struct {
	Columns []Column `json:"columns"`
	Pending int      `json:"pending"`
	// Error carries the last rejected move since the previous read
	Error string `json:"error,omitempty"`
}

// userBoard is a user's board plus the failure not yet shown to its owner.
// The entry stays in the registry while moves are in flight or a failure is
// unread, so a rollback always reports to the entry its owner reads next.
type userBoard struct {
	// op serializes reloads, drops and reads of this user's board
	op      sync.Mutex
	board   *Board
	evicted bool

	mu  sync.Mutex
	err error
}

func (u *userBoard) setErr(err error) {
	u.mu.Lock()
	u.err = err
	u.mu.Unlock()
}

func (u *userBoard) takeErr() error {
	u.mu.Lock()
	defer u.mu.Unlock()
	err := u.err
	u.err = nil
	return err
}

// Registry holds the boards of users with moves in flight or unread failures
type Registry struct {
	scheme models.IdeaStageScheme
	load   Loader
	write  StatusWriter

	mu     sync.Mutex
	boards map[uuid.UUID]*userBoard
}

// NewRegistry creates a registry backed by the given store functions
func NewRegistry(scheme models.IdeaStageScheme, load Loader, write StatusWriter) *Registry {
	return &Registry{
		scheme: scheme,
		load:   load,
		write:  write,
		boards: make(map[uuid.UUID]*userBoard),
	}
}

// Scheme returns the active idea stage scheme
func (r *Registry) Scheme() models.IdeaStageScheme {
	return r.scheme
}

// Len reports how many user boards are held
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.boards)
}

// acquire returns the user's entry with its op lock held
func (r *Registry) acquire(userID uuid.UUID) *userBoard {
	for {
		r.mu.Lock()
		ub, ok := r.boards[userID]
		if !ok {
			ub = &userBoard{}
			r.boards[userID] = ub
		}
		r.mu.Unlock()

		ub.op.Lock()
		if !ub.evicted {
			return ub
		}
		ub.op.Unlock()
	}
}

// release drops the entry once nothing is in flight and no failure is unread.
// Called with ub.op held.
func (r *Registry) release(userID uuid.UUID, ub *userBoard) {
	defer ub.op.Unlock()
	if ub.board != nil && ub.board.Pending() > 0 {
		return
	}
	ub.mu.Lock()
	unread := ub.err != nil
	ub.mu.Unlock()
	if unread {
		return
	}
	ub.evicted = true
	r.mu.Lock()
	if r.boards[userID] == ub {
		delete(r.boards, userID)
	}
	r.mu.Unlock()
}

// refresh reloads the board from the store when no move is in flight.
// Called with ub.op held.
func (r *Registry) refresh(ctx context.Context, userID uuid.UUID, ub *userBoard) error {
	if ub.board != nil && ub.board.Pending() > 0 {
		return nil
	}
	items, err := r.load(ctx, userID)
	if err != nil {
		return err
	}
	store := StoreFunc(func(ctx context.Context, ideaID uuid.UUID, status models.IdeaStatus) error {
		return r.write(ctx, userID, ideaID, status)
	})
	ub.board = New(r.scheme, store, items, WithFailureHandler(func(_ Move, err error) {
		ub.setErr(err)
	}))
	return nil
}

// Get returns the user's board and any move failure not yet reported
func (r *Registry) Get(ctx context.Context, userID uuid.UUID) (*View, error) {
	ub := r.acquire(userID)
	defer r.release(userID, ub)

	if err := r.refresh(ctx, userID, ub); err != nil {
		return nil, err
	}
	return r.view(ub), nil
}

// Drop applies a drop event to the user's board and returns the optimistic view
func (r *Registry) Drop(ctx context.Context, userID uuid.UUID, ev DropEvent) (*View, bool, error) {
	ub := r.acquire(userID)
	defer r.release(userID, ub)

	if err := r.refresh(ctx, userID, ub); err != nil {
		return nil, false, err
	}
	applied, err := ub.board.Drop(ctx, ev)
	if err != nil {
		return nil, false, err
	}
	return r.view(ub), applied, nil
}

func (r *Registry) view(ub *userBoard) *View {
	v := &View{
		Columns: ub.board.Columns(),
		Pending: ub.board.Pending(),
	}
	if err := ub.takeErr(); err != nil {
		v.Error = err.Error()
	}
	return v
}

package selection

import (
	"clickchess/src/base"
	"clickchess/src/logic/position"
	"fmt"
	"strings"
)

// ---- State ----

// State is either empty or an active selection of one piece together with
// the move-set computed when it was selected. States are values and are
// replaced on every transition, never patched.
type State struct {
	active bool
	square base.Square
	piece  base.Piece
	moves  base.SquareSet
}

func Empty() State { return State{} }

func Active(sq base.Square, pc base.Piece, moves base.SquareSet) State {
	return State{active: true, square: sq, piece: pc, moves: moves}
}

func (s State) IsActive() bool { return s.active }

// Square returns the selected square, false when empty
func (s State) Square() (base.Square, bool) { return s.square, s.active }

func (s State) Piece() base.Piece { return s.piece }

func (s State) Side() base.Side { return s.piece.Side }

func (s State) Moves() base.SquareSet {
	if !s.active {
		return base.EmptySet
	}
	return s.moves
}

func (s State) String() string {
	if !s.active {
		return "empty"
	}
	return fmt.Sprintf("active(%v, %v, %v)", s.square, s.piece, s.moves)
}

// ---- Policy ----

// Policy decides what a click on a non-move, non-friendly square does
// while a piece is selected
type Policy uint8

const (
	// keep the selection
	Sticky Policy = iota
	// drop the selection
	ClearOnMiss
)

func (p Policy) String() string {
	if p == ClearOnMiss {
		return "clear"
	}
	return "sticky"
}

func PolicyFromString(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sticky":
		return Sticky, nil
	case "clear":
		return ClearOnMiss, nil
	default:
		return Sticky, fmt.Errorf("unknown selection policy %q", s)
	}
}

// ---- Outcome ----

type Outcome uint8

const (
	Ignored    Outcome = iota // empty state stays empty
	Selected                  // empty -> active
	Retargeted                // active -> active on another (or the same) friendly piece
	Moved                     // move applied, active -> empty
	Kept                      // active state unchanged
	Cleared                   // active -> empty without a move
)

func (o Outcome) String() string {
	switch o {
	case Ignored:
		return "ignored"
	case Selected:
		return "selected"
	case Retargeted:
		return "retargeted"
	case Moved:
		return "moved"
	case Kept:
		return "kept"
	case Cleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// ---- Controller ----

// Controller owns the selection state and resolves clicks against the
// position store. It is not safe for concurrent use; callers serialise
// clicks (see Session).
type Controller struct {
	store  *position.Store
	state  State
	policy Policy
}

func NewController(store *position.Store, policy Policy) *Controller {
	return &Controller{store: store, state: Empty(), policy: policy}
}

func (c *Controller) State() State { return c.state }

func (c *Controller) Store() *position.Store { return c.store }

func (c *Controller) Policy() Policy { return c.policy }

// Reset drops any selection, used when the store is replaced
func (c *Controller) Reset(store *position.Store) {
	c.store = store
	c.state = Empty()
}

// Click resolves one SquareClicked event
func (c *Controller) Click(sq base.Square) (Outcome, error) {
	if !c.state.active {
		next, ok := c.selectAt(sq)
		if !ok {
			return Ignored, nil
		}
		c.state = next
		return Selected, nil
	}

	if c.state.moves.Has(sq) {
		from := c.state.square
		c.state = Empty()
		if err := c.store.ApplyMove(from, sq); err != nil {
			return Cleared, err
		}
		return Moved, nil
	}

	if next, ok := c.selectAt(sq); ok {
		c.state = next
		return Retargeted, nil
	}

	if c.policy == ClearOnMiss {
		c.state = Empty()
		return Cleared, nil
	}
	return Kept, nil
}

// selectAt builds an active state for a side-to-move piece on sq
func (c *Controller) selectAt(sq base.Square) (State, bool) {
	pc, ok := c.store.PieceAt(sq)
	if !ok || pc.Side != c.store.SideToMove() {
		return Empty(), false
	}
	return Active(sq, pc, c.store.LegalDestinations(sq)), true
}

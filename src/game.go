package src

import (
	"clickchess/src/base"
	"clickchess/src/logic/convert/convfen"
	"clickchess/src/logic/position"
	"clickchess/src/logic/rules"
	"clickchess/src/logic/selection"
	"clickchess/src/logx"
	"fmt"
	"sync"
)

// Session owns the position store and the selection controller. Every
// public method takes the lock, so a click is fully resolved before any
// other click or read is served.
type Session struct {
	mu     sync.Mutex
	rules  rules.Engine
	ctrl   *selection.Controller
	logger logx.Logger
}

func NewSession(logger logx.Logger, policy selection.Policy) *Session {
	if logger == nil {
		logger = logx.NewNop()
	}
	engine := rules.Standard()
	store := position.NewStore(convfen.StartPosition(), engine)
	return &Session{
		rules:  engine,
		ctrl:   selection.NewController(store, policy),
		logger: logger,
	}
}

func (s *Session) CreateClassic() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logger.Debug("create classic game")
	s.ctrl.Reset(position.NewStore(convfen.StartPosition(), s.rules))
}

func (s *Session) CreateFromFEN(fen string) error {
	s.logger.Debugf("create game by FEN: %v", fen)
	pos, err := convfen.ConvertFENToPosition(fen)
	if err != nil {
		return fmt.Errorf("error parse FEN: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ctrl.Reset(position.NewStore(pos, s.rules))
	return nil
}

// Click handles one SquareClicked event and returns the fresh projection
func (s *Session) Click(sq base.Square) (selection.Outcome, selection.Projection) {
	s.mu.Lock()
	defer s.mu.Unlock()

	outcome, err := s.ctrl.Click(sq)
	if err != nil {
		s.logger.Errorf("click %v: %v", sq, err)
	}
	switch outcome {
	case selection.Moved:
		s.logger.Infof("move to %v, %v to move", sq, s.ctrl.Store().SideToMove())
	default:
		s.logger.Debugf("click %v: %v, state %v", sq, outcome, s.ctrl.State())
	}
	return outcome, s.project()
}

func (s *Session) Projection() selection.Projection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.project()
}

func (s *Session) project() selection.Projection {
	return selection.Project(s.ctrl.Store().Position(), s.ctrl.State())
}

func (s *Session) Selection() selection.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.State()
}

func (s *Session) PieceAt(sq base.Square) (base.Piece, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.Store().PieceAt(sq)
}

func (s *Session) SideToMove() base.Side {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.Store().SideToMove()
}

// Snapshot returns position, selection and projection taken under one lock
func (s *Session) Snapshot() (base.Position, selection.State, selection.Projection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.Store().Position(), s.ctrl.State(), s.project()
}

// return FEN of this game
func (s *Session) FEN() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return convfen.ConvertPositionToFEN(s.ctrl.Store().Position())
}

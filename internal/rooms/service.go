// Package rooms owns the room lifecycle: creating rooms, seating humans and
// computers, routing roll and move actions to the engine, and playing the
// computer's turns when a room is read.
package rooms

import (
	"context"
	"fmt"
	"hash/fnv"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/ladders/internal/board"
	"github.com/vovakirdan/ladders/internal/config"
	"github.com/vovakirdan/ladders/internal/dice"
	"github.com/vovakirdan/ladders/internal/game"
)

// Store loads and saves whole room states keyed by room id.
// Load returns nil, nil for an unknown room.
type Store interface {
	Load(ctx context.Context, roomID string) (*game.State, error)
	Save(ctx context.Context, st *game.State) error
	List(ctx context.Context, status game.Status) ([]*game.State, error)
}

// ResultSaver records finished games.
// This allows the service to keep history without depending on the storage package.
type ResultSaver interface {
	SaveResult(ctx context.Context, r game.Result) error
}

// Ticket identifies a seat in a room.
type Ticket struct {
	RoomID string
	Token  string // Seat token; a computer marker for computer seats
}

// Action is the payload of a roll or move request.
type Action struct {
	Token string
	Pawn  *int      // Required for Move
	Bias  dice.Bias // Optional die weights for Roll
}

// lockStripes is the number of mutexes shared out among room ids.
const lockStripes = 64

type lockSet [lockStripes]sync.Mutex

// Service manages rooms stored in a Store.
type Service struct {
	cfg         config.Config
	store       Store
	engine      *game.Engine
	src         dice.Source
	logger      *log.Logger
	resultSaver ResultSaver // Optional, can be nil

	locks *lockSet // serialize each room's read-modify-write
}

// NewService creates a room service. A nil logger discards output.
func NewService(cfg config.Config, store Store, src dice.Source, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Service{
		cfg:    cfg,
		store:  store,
		engine: game.NewEngine(src),
		src:    src,
		logger: logger,
		locks:  new(lockSet),
	}
}

// WithSource returns a service over the same store, result saver and room
// locks that draws boards, dice and computer choices from src.
func (s *Service) WithSource(src dice.Source) *Service {
	return &Service{
		cfg:         s.cfg,
		store:       s.store,
		engine:      game.NewEngine(src),
		src:         src,
		logger:      s.logger,
		resultSaver: s.resultSaver,
		locks:       s.locks,
	}
}

// SetResultSaver sets the optional result saver.
func (s *Service) SetResultSaver(saver ResultSaver) {
	s.resultSaver = saver
}

// lock acquires the room's lock and returns its release func.
// Rooms hashing to the same stripe share a lock; the set never grows.
func (s *Service) lock(roomID string) func() {
	l := s.lockFor(roomID)
	l.Lock()
	return l.Unlock
}

func (s *Service) lockFor(roomID string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(roomID))
	return &s.locks[h.Sum32()%lockStripes]
}

// load fetches a room, mapping absence to ErrRoomNotFound.
func (s *Service) load(ctx context.Context, roomID string) (*game.State, error) {
	st, err := s.store.Load(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, fmt.Errorf("%w: %s", ErrRoomNotFound, roomID)
	}
	return st, nil
}

// Create opens a room with a freshly generated board and seats the creator.
// An empty variant selects the configured default.
func (s *Service) Create(ctx context.Context, variant string) (Ticket, error) {
	v, err := s.cfg.VariantByName(variant)
	if err != nil {
		return Ticket{}, err
	}
	if variant == "" {
		variant = s.cfg.Variant
	}

	for {
		roomID := generateRoomID()
		unlock := s.lock(roomID)

		existing, err := s.store.Load(ctx, roomID)
		if err != nil {
			unlock()
			return Ticket{}, err
		}
		if existing != nil {
			unlock()
			continue
		}

		token := uuid.NewString()
		st := game.NewState(roomID, token, board.Generate(s.src, v), v.PawnsPerPlayer)
		err = s.store.Save(ctx, st)
		unlock()
		if err != nil {
			return Ticket{}, err
		}

		s.logger.Info("room created", "room", roomID, "variant", variant)
		return Ticket{RoomID: roomID, Token: token}, nil
	}
}

// Join seats a second human and starts the game.
func (s *Service) Join(ctx context.Context, roomID string) (Ticket, error) {
	return s.seat(ctx, NormalizeRoomID(roomID), uuid.NewString())
}

// PlayComputer seats a computer opponent of the given difficulty.
// The difficulty is validated before the room is looked up.
func (s *Service) PlayComputer(ctx context.Context, roomID, difficulty string) (Ticket, error) {
	d, err := config.ParseDifficulty(difficulty)
	if err != nil {
		return Ticket{}, fmt.Errorf("%w: %q (want one of %s)", ErrInvalidDifficulty, difficulty, config.DifficultyNames())
	}
	return s.seat(ctx, NormalizeRoomID(roomID), game.ComputerSeat(d))
}

func (s *Service) seat(ctx context.Context, roomID, token string) (Ticket, error) {
	defer s.lock(roomID)()

	st, err := s.load(ctx, roomID)
	if err != nil {
		return Ticket{}, err
	}
	if st.Seated() >= game.MaxSeats {
		return Ticket{}, fmt.Errorf("%w: %s", ErrRoomFull, roomID)
	}

	st.AddPlayer(token)
	if err := s.store.Save(ctx, st); err != nil {
		return Ticket{}, err
	}

	s.logger.Info("seat assigned", "room", roomID, "seat", st.Seated(), "computer", game.IsComputerSeat(token))
	return Ticket{RoomID: roomID, Token: token}, nil
}

// Roll throws the die for the acting seat.
func (s *Service) Roll(ctx context.Context, roomID string, a Action) (*game.State, error) {
	roomID = NormalizeRoomID(roomID)
	defer s.lock(roomID)()

	st, err := s.load(ctx, roomID)
	if err != nil {
		return nil, err
	}
	next, err := s.engine.Roll(st, a.Token, a.Bias)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

// Move advances one of the acting seat's pawns by the pending roll.
// With autoplay_on_move set, a computer opponent then takes its turn at once.
func (s *Service) Move(ctx context.Context, roomID string, a Action) (*game.State, error) {
	roomID = NormalizeRoomID(roomID)
	defer s.lock(roomID)()

	st, err := s.load(ctx, roomID)
	if err != nil {
		return nil, err
	}
	next, err := s.engine.Move(st, a.Token, a.Pawn)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, next); err != nil {
		return nil, err
	}
	s.recordResult(ctx, st, next)

	if s.cfg.AutoplayOnMove {
		next = s.computerTurn(ctx, next)
	}
	return next, nil
}

// State returns the current state of a room.
//
// Reading triggers autoplay: when the seat to act is a computer, its turns are
// played and saved before the state is returned.
func (s *Service) State(ctx context.Context, roomID string) (*game.State, error) {
	roomID = NormalizeRoomID(roomID)
	defer s.lock(roomID)()

	st, err := s.load(ctx, roomID)
	if err != nil {
		return nil, err
	}
	return s.computerTurn(ctx, st), nil
}

// List returns stored rooms; an empty status lists all of them.
func (s *Service) List(ctx context.Context, status game.Status) ([]*game.State, error) {
	return s.store.List(ctx, status)
}

// recordResult saves the outcome when an action ended the game.
// Failures are logged and otherwise ignored.
func (s *Service) recordResult(ctx context.Context, before, after *game.State) {
	if before.Status == game.StatusFinished {
		return
	}
	r, ok := after.Result()
	if !ok {
		return
	}

	s.logger.Info("game finished", "room", r.RoomID, "winner", r.Winner+1, "moves", r.Moves)
	if s.resultSaver == nil {
		return
	}
	if err := s.resultSaver.SaveResult(ctx, r); err != nil {
		s.logger.Warn("could not save result", "room", r.RoomID, "error", err)
	}
}

// Package session owns the active list and the closed history for one
// interactive run and applies parsed commands to them.
package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todolist/internal/command"
	"github.com/idilsaglam/todolist/internal/model"
)

var (
	ErrInvalidIndex   = errors.New("invalid index")
	ErrInvalidCommand = errors.New("invalid command")
)

// Store persists the active list. Load is called once per session and
// Save after every mutation.
type Store interface {
	Load() ([]model.Item, error)
	Save(items []model.Item) error
}

// Kind classifies the outcome of a command.
type Kind int

const (
	Added Kind = iota
	Closed
	Swapped
	Listed
	Exited
	Rejected
)

func (k Kind) String() string {
	switch k {
	case Added:
		return "added"
	case Closed:
		return "closed"
	case Swapped:
		return "swapped"
	case Listed:
		return "listed"
	case Exited:
		return "exited"
	default:
		return "rejected"
	}
}

// Result describes what a command did. Rejected results carry the
// reason in Err and leave the session untouched.
type Result struct {
	Kind    Kind
	Message string
	Err     error
	History []model.Item
}

// Exit reports whether the front-end should stop.
func (r Result) Exit() bool { return r.Kind == Exited }

// Session is the single owner of the in-memory state.
type Session struct {
	store  Store
	logger *log.Logger
	active []model.Item
	closed []model.Item
}

// New loads the active list from store. A nil logger discards output.
func New(store Store, logger *log.Logger) (*Session, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	items, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	logger.Debug("loaded list", "items", len(items))
	return &Session{
		store:  store,
		logger: logger,
		active: items,
	}, nil
}

// Items returns a copy of the active list.
func (s *Session) Items() []model.Item { return clone(s.active) }

// Closed returns a copy of the items closed so far, oldest first.
func (s *Session) Closed() []model.Item { return clone(s.closed) }

// Apply runs cmd against the session. The returned error is only ever a
// storage failure; bad input is reported through Result.
func (s *Session) Apply(cmd command.Command) (Result, error) {
	s.logger.Debug("apply", "command", cmd.String())

	switch c := cmd.(type) {
	case command.Add:
		next := append(clone(s.active), model.Item{Title: c.Text})
		if err := s.commit(next); err != nil {
			return Result{}, err
		}
		return Result{Kind: Added, Message: "Added item: " + c.Text}, nil

	case command.Close:
		if !s.valid(c.Index) {
			return s.reject(ErrInvalidIndex, "index", c.Index)
		}
		i := int(c.Index - 1)
		item := s.active[i]
		next := make([]model.Item, 0, len(s.active)-1)
		next = append(next, s.active[:i]...)
		next = append(next, s.active[i+1:]...)
		if err := s.commit(next); err != nil {
			return Result{}, err
		}
		s.closed = append(s.closed, item)
		return Result{Kind: Closed, Message: "Closed item: " + item.Title}, nil

	case command.Swap:
		if !s.valid(c.A) || !s.valid(c.B) {
			return s.reject(ErrInvalidIndex, "a", c.A, "b", c.B)
		}
		next := clone(s.active)
		a, b := int(c.A-1), int(c.B-1)
		next[a], next[b] = next[b], next[a]
		if err := s.commit(next); err != nil {
			return Result{}, err
		}
		return Result{Kind: Swapped, Message: fmt.Sprintf("Swapped %d with %d", c.A, c.B)}, nil

	case command.Exit:
		return Result{Kind: Exited}, nil

	case command.History:
		return Result{Kind: Listed, Message: "Completed items:", History: s.Closed()}, nil

	case command.Invalid:
		return s.reject(ErrInvalidCommand, "detail", c.Reason)
	}
	return s.reject(ErrInvalidCommand, "type", fmt.Sprintf("%T", cmd))
}

func (s *Session) valid(idx uint64) bool {
	return idx >= 1 && idx <= uint64(len(s.active))
}

// commit saves next and only then makes it the active list, so the
// file and memory never disagree after a failed write.
func (s *Session) commit(next []model.Item) error {
	if err := s.store.Save(next); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	s.active = next
	s.logger.Debug("saved list", "items", len(next))
	return nil
}

func (s *Session) reject(reason error, keyvals ...any) (Result, error) {
	s.logger.Debug("rejected", append([]any{"reason", reason}, keyvals...)...)
	msg := "Invalid command"
	if errors.Is(reason, ErrInvalidIndex) {
		msg = "Invalid index"
	}
	return Result{Kind: Rejected, Message: msg, Err: reason}, nil
}

func clone(items []model.Item) []model.Item {
	out := make([]model.Item, len(items))
	copy(out, items)
	return out
}

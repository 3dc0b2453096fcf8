package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/naka-gawa/candidate-search/internal/domain"
)

// State is the phase of a candidate search session.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateError
	StateShowing
	StateEmpty
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	case StateShowing:
		return "showing"
	case StateEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// User-facing messages for the error and empty states.
const (
	LoadErrorMessage = "Failed to load candidates. Please try again later."
	EmptyMessage     = "There are no more candidates available. Please restart candidate-search to generate a new list of candidates."
)

// ErrNoCandidate is returned by Accept when no candidate is being shown.
var ErrNoCandidate = errors.New("no candidate to accept")

// DetailRequest asks the caller to resolve the candidate at Index and hand
// the result back through ApplyDetail. Generation identifies the session
// position the request was made for.
type DetailRequest struct {
	Index      int
	Login      string
	Generation uint64
}

// Session is the traversal state machine over a candidate sequence. It does
// no network I/O itself: whenever the shown candidate still needs its
// detail, a DetailRequest is returned to the caller.
//
// A Session is not safe for concurrent use.
type Session struct {
	saved  *SavedList
	logger *log.Logger

	state      State
	candidates []domain.Candidate
	index      int
	errMsg     string
	err        error
	generation uint64
}

// NewSession creates a Session that records accepted candidates in saved.
func NewSession(saved *SavedList, logger *log.Logger) *Session {
	return &Session{
		saved:  saved,
		logger: logger,
	}
}

// BeginLoad enters the loading state and clears any previous error.
func (s *Session) BeginLoad() {
	s.state = StateLoading
	s.errMsg = ""
	s.err = nil
}

// Loaded stores the outcome of a load. On success the first showable
// candidate is selected the same way Advance selects the next one.
func (s *Session) Loaded(candidates []domain.Candidate, err error) *DetailRequest {
	s.generation++
	if err != nil {
		s.state = StateError
		s.errMsg = LoadErrorMessage
		s.err = err
		s.candidates = nil
		s.index = 0
		return nil
	}
	s.candidates = candidates
	s.index = -1
	return s.advance()
}

// Accept saves the current candidate, then advances. The store is written
// before Accept returns; if that fails nothing changes and the error is returned.
func (s *Session) Accept(ctx context.Context) (*DetailRequest, error) {
	current := s.Current()
	if current == nil {
		return nil, ErrNoCandidate
	}
	if err := s.saved.Append(ctx, *current); err != nil {
		return nil, err
	}
	s.logger.Printf("Accepted candidate %s (%d saved).", current.Login, s.saved.Len())
	return s.advance(), nil
}

// Reject advances without saving.
func (s *Session) Reject() *DetailRequest {
	if s.state != StateShowing {
		return nil
	}
	return s.advance()
}

// ApplyDetail hands back the result of req. Results for a position the
// session has already left are discarded. A nil detail skips the candidate.
func (s *Session) ApplyDetail(req DetailRequest, detail *domain.Candidate) *DetailRequest {
	if req.Generation != s.generation || s.state != StateShowing || req.Index != s.index {
		s.logger.Printf("Discarding stale detail for %s.", req.Login)
		return nil
	}
	if detail == nil {
		return s.advance()
	}
	s.candidates[req.Index] = *detail
	return nil
}

// advance moves to the next candidate that can be shown. Candidates without
// a login or already known to be unresolvable are skipped; running off the
// end empties the sequence.
func (s *Session) advance() *DetailRequest {
	for {
		s.generation++
		if s.index >= len(s.candidates)-1 {
			s.candidates = nil
			s.index = 0
			s.state = StateEmpty
			s.logger.Println("No more candidates.")
			return nil
		}
		s.index++
		next := s.candidates[s.index]
		if next.Detailed {
			s.state = StateShowing
			return nil
		}
		if !next.HasLogin() {
			s.logger.Printf("Skipping candidate %d without a login.", s.index)
			continue
		}
		if next.Unresolvable {
			s.logger.Printf("Skipping unresolvable candidate %s.", next.Login)
			continue
		}
		s.state = StateShowing
		return &DetailRequest{
			Index:      s.index,
			Login:      next.Login,
			Generation: s.generation,
		}
	}
}

// State returns the current phase.
func (s *Session) State() State {
	return s.state
}

// Current returns the candidate being shown, or nil when there is none.
func (s *Session) Current() *domain.Candidate {
	if s.state != StateShowing || len(s.candidates) == 0 {
		return nil
	}
	c := s.candidates[s.index]
	return &c
}

// Index returns the cursor into the candidate sequence.
func (s *Session) Index() int {
	return s.index
}

// Candidates returns a copy of the candidate sequence.
func (s *Session) Candidates() []domain.Candidate {
	out := make([]domain.Candidate, len(s.candidates))
	copy(out, s.candidates)
	return out
}

// ErrorMessage returns the user-facing error, empty unless in StateError.
func (s *Session) ErrorMessage() string {
	return s.errMsg
}

// Err returns the error behind the current error state.
func (s *Session) Err() error {
	return s.err
}

// Saved returns the accepted candidates.
func (s *Session) Saved() []domain.Candidate {
	return s.saved.Items()
}

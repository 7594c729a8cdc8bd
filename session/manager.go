package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/poiesic/planmatch/ai"
	"github.com/poiesic/planmatch/core"
	"github.com/poiesic/planmatch/search"
	"github.com/poiesic/planmatch/storage"
)

const defaultResultCount = 5

// Manager drives multi-turn conversations: it accumulates requirement state
// per session, runs searches against the engine, and produces follow-up
// questions for the fields still missing.
//
// Messages for the same session are serialized so concurrent turns cannot
// lose a merge; different sessions never contend.
type Manager struct {
	requirements storage.RequirementRepository
	engine       *search.Engine
	extractor    ai.RequirementExtractor
	followup     ai.FollowupGenerator
	resultCount  int
	logger       *slog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// Turn is the outcome of handling one user message.
type Turn struct {
	SessionID    string
	Requirements core.RequirementState
	Outcome      *core.SearchOutcome
	Followup     string
}

// Option configures a Manager.
type Option func(*Manager) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) error {
		if logger == nil {
			logger = slog.Default()
		}
		m.logger = logger
		return nil
	}
}

// WithResultCount sets how many plans each turn asks the engine for.
func WithResultCount(k int) Option {
	return func(m *Manager) error {
		if k <= 0 {
			return search.ErrInvalidResultCount
		}
		m.resultCount = k
		return nil
	}
}

// NewManager creates a new session manager.
func NewManager(requirements storage.RequirementRepository, engine *search.Engine, provider ai.AIProvider, opts ...Option) (*Manager, error) {
	if requirements == nil {
		return nil, ErrRequirementRepositoryRequired
	}
	if engine == nil {
		return nil, ErrEngineRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	m := &Manager{
		requirements: requirements,
		engine:       engine,
		extractor:    provider.RequirementExtractor(),
		followup:     provider.FollowupGenerator(),
		resultCount:  defaultResultCount,
		logger:       slog.Default(),
		locks:        make(map[string]*sync.Mutex),
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// NewSession returns a fresh session identifier. State is created lazily on
// the first message, so no storage write happens here.
func (m *Manager) NewSession() string {
	return uuid.NewString()
}

// HandleMessage processes one conversational turn: extract the requirement
// delta from the text, merge it into the session's accumulated state, search,
// and persist the merged state. The stored state is only updated after the
// search succeeds; a failed or empty search leaves it untouched.
func (m *Manager) HandleMessage(ctx context.Context, sessionID string, text string) (*Turn, error) {
	lock := m.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	existing, err := m.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	delta, err := m.extractor.ExtractRequirements(ctx, text)
	if err != nil {
		m.logger.Error("error extracting requirements", "session", sessionID, "err", err)
		return nil, err
	}

	merged := core.Merge(existing, delta)
	if err := core.ValidateRequirement(&merged); err != nil {
		return nil, err
	}

	outcome, err := m.engine.Search(ctx, &merged, m.resultCount)
	if err != nil {
		return nil, err
	}

	if _, err := m.requirements.UpsertRequirements(ctx, &core.RequirementRecord{
		SessionID:    sessionID,
		Requirements: merged,
	}); err != nil {
		m.logger.Error("error persisting requirements", "session", sessionID, "err", err)
		return nil, err
	}

	turn := &Turn{
		SessionID:    sessionID,
		Requirements: merged,
		Outcome:      outcome,
	}

	if outcome.FollowupNeeded {
		question, err := m.followup.FollowupQuestion(ctx, outcome.MissingFields)
		if err != nil {
			// The search already succeeded; a missing follow-up question
			// does not fail the turn.
			m.logger.Warn("error generating follow-up question", "session", sessionID, "err", err)
		} else {
			turn.Followup = question
		}
	}

	return turn, nil
}

// Requirements returns the accumulated requirement state for a session, or
// nil when the session has no stored state yet.
func (m *Manager) Requirements(ctx context.Context, sessionID string) (*core.RequirementState, error) {
	return m.loadState(ctx, sessionID)
}

// Reset discards a session's accumulated requirement state.
func (m *Manager) Reset(ctx context.Context, sessionID string) error {
	lock := m.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	err := m.requirements.DeleteRequirements(ctx, sessionID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	return err
}

func (m *Manager) loadState(ctx context.Context, sessionID string) (*core.RequirementState, error) {
	record, err := m.requirements.GetRequirements(ctx, sessionID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record.Requirements, nil
}

func (m *Manager) sessionLock(sessionID string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()

	lock, ok := m.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[sessionID] = lock
	}
	return lock
}

package session

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/reviewlens/reviewlens/pkg/documents"
	"github.com/reviewlens/reviewlens/pkg/index"
	"github.com/reviewlens/reviewlens/pkg/memory"
	"github.com/reviewlens/reviewlens/pkg/models"
)

// State is the lifecycle state of a session. A session starts Idle, becomes
// Indexed once the product's reviews are fetched and indexed, and never
// transitions back: a new product requires a new session.
type State string

const (
	StateIdle    State = "idle"
	StateIndexed State = "indexed"
	StateClosed  State = "closed"
)

var ErrSessionNotLoaded = errors.New("session has no product loaded")
var ErrSessionAlreadyLoaded = errors.New("session already has a product loaded")
var ErrSessionClosed = errors.New("session is closed")

// Session drives the question-answering pipeline for one product. All state
// — the index, the metadata, the conversation memory — is scoped to the
// session and discarded when it closes. Ask is serialized per session so
// conversation memory stays strictly ordered.
type Session struct {
	ID   string
	ASIN string

	appState  *models.AppState
	generator *Generator
	memory    *memory.ConversationMemory

	mu       sync.Mutex
	state    State
	index    *index.Index
	metadata []models.ProductMetadata
}

func NewSession(appState *models.AppState, asin string) *Session {
	mem := memory.NewConversationMemory()
	return &Session{
		ID:        uuid.New().String(),
		ASIN:      asin,
		appState:  appState,
		memory:    mem,
		generator: NewGenerator(appState.LLM, mem, appState.Config),
		state:     StateIdle,
	}
}

// Load fetches the product's reviews and metadata and builds the index.
// A metadata fetch failure only degrades available context; an empty review
// set is terminal and returns a NoReviewDataError without ever invoking the
// indexer.
func (s *Session) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateIndexed:
		return ErrSessionAlreadyLoaded
	case StateClosed:
		return ErrSessionClosed
	}

	reviews := s.appState.Warehouse.FetchReviews(ctx, s.ASIN)
	s.metadata = s.appState.Warehouse.FetchMetadata(ctx, s.ASIN)

	if len(reviews) == 0 {
		log.Warnf("No reviews found for ASIN: %s", s.ASIN)
		return models.NewNoReviewDataError(s.ASIN)
	}

	docs := documents.BuildDocuments(reviews)
	if len(docs) == 0 {
		// rows existed but none carried usable text
		log.Warnf("No usable review text for ASIN: %s", s.ASIN)
		return models.NewNoReviewDataError(s.ASIN)
	}

	idx, err := index.NewIndex(ctx, docs, s.appState.EmbeddingsClient)
	if err != nil {
		return err
	}

	s.index = idx
	s.state = StateIndexed

	log.Infof("Session %s indexed %d documents for ASIN: %s", s.ID, idx.Len(), s.ASIN)
	return nil
}

// Ask retrieves the most relevant reviews for the question and generates an
// answer. It is re-entrant per question and does not change session state.
func (s *Session) Ask(ctx context.Context, question string) (*models.Answer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateIdle:
		return nil, ErrSessionNotLoaded
	case StateClosed:
		return nil, ErrSessionClosed
	}

	results, err := s.index.Search(ctx, question, s.appState.Config.Retrieval.TopK)
	if err != nil {
		return nil, err
	}

	docs := make([]models.Document, len(results))
	for i := range results {
		docs[i] = results[i].Document
	}

	return s.generator.Generate(ctx, question, docs), nil
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// History returns the session's conversation turns in order.
func (s *Session) History() []models.Message {
	return s.memory.History()
}

// Metadata returns the product metadata rows fetched at load time.
// May be empty when the metadata fetch failed or matched nothing.
func (s *Session) Metadata() []models.ProductMetadata {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.metadata
}

// Close releases the session's resources. A closed session rejects all
// further operations.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateClosed
	s.index = nil
	s.metadata = nil
}

package server

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/reviewlens/reviewlens/pkg/models"
	"github.com/reviewlens/reviewlens/pkg/server/handlertools"
	"github.com/reviewlens/reviewlens/pkg/session"
)

var validate = validator.New()

type ChatRequest struct {
	ASIN      string `json:"asin"      validate:"required"`
	Question  string `json:"question"  validate:"required"`
	SessionID string `json:"session_id,omitempty"`
}

type ChatResponse struct {
	ASIN      string `json:"asin"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	SessionID string `json:"session_id"`
}

type SessionResponse struct {
	SessionID string           `json:"session_id"`
	ASIN      string           `json:"asin"`
	State     session.State    `json:"state"`
	Messages  []models.Message `json:"messages"`
}

// PostChatHandler returns a handler for POST requests to /chat. A request
// without a session_id starts a new session for the ASIN; subsequent
// requests carry the returned session_id to continue the conversation.
func PostChatHandler(manager *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload ChatRequest
		if err := handlertools.DecodeJSON(r, &payload); err != nil {
			handlertools.RenderError(w, err, http.StatusBadRequest)
			return
		}
		if err := validate.Struct(payload); err != nil {
			handlertools.RenderError(w, err, http.StatusBadRequest)
			return
		}

		s, err := resolveSession(r, manager, &payload)
		if err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}

		answer, err := s.Ask(r.Context(), payload.Question)
		if err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}

		if err := handlertools.EncodeJSON(w, ChatResponse{
			ASIN:      payload.ASIN,
			Question:  payload.Question,
			Answer:    answer.Content,
			SessionID: s.ID,
		}); err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
		}
	}
}

// resolveSession looks up an existing session or creates and loads a new
// one. A create that finds no review data is rolled back so the registry
// never holds unusable sessions.
func resolveSession(
	r *http.Request,
	manager *session.Manager,
	payload *ChatRequest,
) (*session.Session, error) {
	if payload.SessionID != "" {
		s, err := manager.Get(payload.SessionID)
		if err != nil {
			return nil, err
		}
		if s.ASIN != payload.ASIN {
			return nil, fmt.Errorf(
				"%w: session %s is for ASIN %s",
				models.ErrBadRequest,
				s.ID,
				s.ASIN,
			)
		}
		return s, nil
	}

	s := manager.Create(payload.ASIN)
	if err := s.Load(r.Context()); err != nil {
		if closeErr := manager.Close(s.ID); closeErr != nil {
			log.Errorf("error closing unloaded session %s: %v", s.ID, closeErr)
		}
		return nil, err
	}
	return s, nil
}

// GetSessionHandler returns a handler for GET requests to /sessions/{sessionId}
func GetSessionHandler(manager *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := chi.URLParam(r, "sessionId")
		s, err := manager.Get(sessionID)
		if err != nil {
			handlertools.RenderError(w, err, http.StatusNotFound)
			return
		}

		if err := handlertools.EncodeJSON(w, SessionResponse{
			SessionID: s.ID,
			ASIN:      s.ASIN,
			State:     s.State(),
			Messages:  s.History(),
		}); err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
		}
	}
}

// DeleteSessionHandler returns a handler for DELETE requests to /sessions/{sessionId}
func DeleteSessionHandler(manager *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := chi.URLParam(r, "sessionId")
		if err := manager.Close(sessionID); err != nil {
			handlertools.RenderError(w, err, http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

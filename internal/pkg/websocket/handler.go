package websocket

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/spicalc/internal/app/models"
	"github.com/yigit/spicalc/internal/app/models/dto"
	"github.com/yigit/spicalc/internal/pkg/apperrors"
)

// StateSource returns the current state of a session
type StateSource interface {
	GetSession(ctx context.Context, sessionID string) (models.SessionState, error)
}

// Handler for WebSocket connections
type Handler struct {
	hub    *Hub
	states StateSource
	logger zerolog.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, states StateSource, logger zerolog.Logger) *Handler {
	return &Handler{
		hub:    hub,
		states: states,
		logger: logger,
	}
}

// HandleConnection godoc
// @Summary Follow a calculator session
// @Description Upgrades to a WebSocket that receives the session state after every change. The first frame is the current state.
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 101 {object} dto.SessionUpdate "Switching Protocols to WebSocket"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id}/ws [get]
func (h *Handler) HandleConnection(c *gin.Context) {
	sessionID := c.Param("id")

	if _, err := h.states.GetSession(c.Request.Context(), sessionID); err != nil {
		h.respondError(c, sessionID, err)
		return
	}

	// Upgrade HTTP connection to WebSocket
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn().Err(err).Str("sessionID", sessionID).Msg("Failed to upgrade connection to WebSocket")
		return
	}

	client := &Client{
		hub:       h.hub,
		conn:      conn,
		send:      make(chan []byte, 16),
		sessionID: sessionID,
		logger:    h.logger,
	}
	if !h.hub.Register(client) {
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()

	// Loaded after registration so no change can fall between the first
	// frame and the live updates
	state, err := h.states.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		h.logger.Debug().Err(err).Str("sessionID", sessionID).Msg("Session gone before first frame")
		h.hub.Unregister(client)
		return
	}
	h.hub.SendState(client, state)

	h.logger.Debug().
		Str("sessionID", sessionID).
		Str("remoteAddr", conn.RemoteAddr().String()).
		Msg("WebSocket connection established")
}

func (h *Handler) respondError(c *gin.Context, sessionID string, err error) {
	if errors.Is(err, apperrors.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeSessionNotFound, "Session not found")))
		return
	}
	h.logger.Error().Err(err).Str("sessionID", sessionID).Msg("Failed to load session for WebSocket")
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
		dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
}

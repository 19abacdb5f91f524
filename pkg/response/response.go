// Package response centralizes HTTP response shapes and helpers.
// Handlers rely on it to keep controllers thin and uniform.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hslcabal/team-roster-service/internal/service"
)

// ErrorPayload is the canonical error envelope returned by the API.
type ErrorPayload struct {
	Error string `json:"error"`
}

// MessagePayload is the confirmation envelope for successful mutations.
type MessagePayload struct {
	Message string `json:"message"`
}

// Fixed client-facing error texts. Store-layer detail never leaks; anything
// unrecognized collapses to the generic database failure.
const (
	MsgTeamNotFound      = "Team not found"
	MsgPlayerNotFound    = "Player not found"
	MsgInvalidPlayerData = "Invalid player data"
	MsgInvalidJSON       = "Invalid JSON data"
	MsgNoFieldsToUpdate  = "No fields to update"
	MsgEndpointNotFound  = "Endpoint not found"
	MsgMethodNotAllowed  = "Method not allowed"
	MsgTeamsReadOnly     = "Team modifications are not supported"
	MsgDatabaseError     = "Database error"
	MsgConnectionFailed  = "Database connection failed"
)

// MapError converts a domain / infrastructure error into an HTTP status and payload.
// Extend here as new domain error categories emerge.
func MapError(err error) (int, ErrorPayload) {
	switch {
	case errors.Is(err, service.ErrTeamNotFound):
		return http.StatusNotFound, ErrorPayload{Error: MsgTeamNotFound}
	case errors.Is(err, service.ErrPlayerNotFound):
		return http.StatusNotFound, ErrorPayload{Error: MsgPlayerNotFound}
	case errors.Is(err, service.ErrInvalidPlayerData):
		return http.StatusBadRequest, ErrorPayload{Error: MsgInvalidPlayerData}
	case errors.Is(err, service.ErrInvalidJSON):
		return http.StatusBadRequest, ErrorPayload{Error: MsgInvalidJSON}
	case errors.Is(err, service.ErrNoFieldsToUpdate):
		return http.StatusBadRequest, ErrorPayload{Error: MsgNoFieldsToUpdate}
	default:
		return http.StatusInternalServerError, ErrorPayload{Error: MsgDatabaseError}
	}
}

// WriteError writes an error response and aborts the context.
func WriteError(c *gin.Context, err error) {
	status, payload := MapError(err)
	c.AbortWithStatusJSON(status, payload)
}

// WriteFailure writes a fixed dispatcher-level failure and aborts the context.
func WriteFailure(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, ErrorPayload{Error: msg})
}

// WriteData writes a successful JSON response.
func WriteData(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// WriteMessage writes a confirmation response for a successful mutation.
func WriteMessage(c *gin.Context, status int, msg string) {
	c.JSON(status, MessagePayload{Message: msg})
}

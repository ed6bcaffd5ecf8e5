package api

import (
	"net/http"
	"unicode/utf8"

	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/constants"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/logging"

	"github.com/gin-gonic/gin"
)

type CreateRoomPayload struct {
	Name    string `json:"name"`
	Private bool   `json:"private"`
}

// CreateRoom opens a room hosted by the caller and returns its join code.
func (h *GameHandler) CreateRoom(c *gin.Context) {
	var req CreateRoomPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if utf8.RuneCountInString(req.Name) > constants.MaxRoomNameChars {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrRoomNameExceeds})
		return
	}

	r, err := h.svc.CreateRoom(sessionWallet(c), sessionName(c), req.Name, generateJoinCode(), req.Private)
	if err != nil {
		logging.Error("failed to create room", err, logging.Fields{constants.LogFieldWallet: sessionWallet(c)})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateRoom})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"room_id":   r.ID,
		"join_code": r.JoinCode,
	})
}

type JoinRoomPayload struct {
	JoinCode string `json:"join_code"`
}

// JoinRoom seats the caller as the second player.
func (h *GameHandler) JoinRoom(c *gin.Context) {
	var req JoinRoomPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	code := normalizeJoinCode(req.JoinCode)
	if code == "" || !joinCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrRoomNotFound})
		return
	}
	r, err := h.svc.JoinRoom(code, sessionWallet(c), sessionName(c))
	if err != nil {
		respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"room_id": r.ID, "join_code": r.JoinCode, constants.JSONKeyMessage: "Successfully joined room"})
}

// LeaveRoom removes the caller from a room that has not started yet.
func (h *GameHandler) LeaveRoom(c *gin.Context) {
	r, ok := h.roomFromParam(c)
	if !ok {
		return
	}
	r, err := h.svc.LeaveRoom(r.ID, sessionWallet(c))
	if err != nil {
		respondError(c, err, nil)
		return
	}
	respondRoom(c, http.StatusOK, r, nil)
}

// Forfeit ends the game in favour of the opponent.
func (h *GameHandler) Forfeit(c *gin.Context) {
	r, ok := h.roomFromParam(c)
	if !ok {
		return
	}
	r, err := h.svc.Forfeit(r.ID, sessionWallet(c))
	if err != nil {
		respondError(c, err, nil)
		return
	}
	respondRoom(c, http.StatusOK, r, nil)
}

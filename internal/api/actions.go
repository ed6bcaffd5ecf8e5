package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/constants"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/engine"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/game"

	"github.com/gin-gonic/gin"
)

type SelectCharacterPayload struct {
	CharacterID string `json:"character_id"`
}

// SelectCharacter locks in the caller's character.
func (h *GameHandler) SelectCharacter(c *gin.Context) {
	r, ok := h.roomFromParam(c)
	if !ok {
		return
	}
	var req SelectCharacterPayload
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.CharacterID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	r, err := h.svc.SelectCharacter(r.ID, sessionWallet(c), req.CharacterID)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	respondRoom(c, http.StatusOK, r, nil)
}

// RollForFirstTurn rolls the caller's first-turn die. Rolling twice is not
// an error for the client: the previous roll is returned with a notice.
func (h *GameHandler) RollForFirstTurn(c *gin.Context) {
	r, ok := h.roomFromParam(c)
	if !ok {
		return
	}
	updated, roll, err := h.svc.RollForFirstTurn(r.ID, sessionWallet(c))
	switch {
	case errors.Is(err, engine.ErrAlreadyRolled):
		respondRoom(c, http.StatusOK, updated, gin.H{"roll": roll, constants.JSONKeyNotice: constants.NoticeAlreadyRolled})
	case err != nil:
		respondError(c, err, nil)
	default:
		respondRoom(c, http.StatusOK, updated, gin.H{"roll": roll})
	}
}

// TakeTurn rolls the turn die and executes the matching ability.
func (h *GameHandler) TakeTurn(c *gin.Context) {
	r, ok := h.roomFromParam(c)
	if !ok {
		return
	}
	updated, res, err := h.svc.TakeTurn(r.ID, sessionWallet(c))
	if err != nil {
		var extra gin.H
		if res.Roll > 0 {
			extra = gin.H{"roll": res.Roll}
		}
		respondError(c, err, extra)
		return
	}
	respondRoom(c, http.StatusOK, updated, gin.H{"roll": res.Roll, "entry": res.Entry})
}

type DefenseStancePayload struct {
	Hold bool `json:"hold"`
}

// SetDefenseStance toggles whether the caller keeps unused defenses.
func (h *GameHandler) SetDefenseStance(c *gin.Context) {
	r, ok := h.roomFromParam(c)
	if !ok {
		return
	}
	var req DefenseStancePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	r, err := h.svc.SetDefenseStance(r.ID, sessionWallet(c), req.Hold)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	respondRoom(c, http.StatusOK, r, nil)
}

type BuffPayload struct {
	Name           string `json:"name"`
	Effect         int    `json:"effect"`
	RemainingTurns int    `json:"remaining_turns"`
}

// ApplyBuff adds a timed damage modifier to the caller.
func (h *GameHandler) ApplyBuff(c *gin.Context) {
	r, ok := h.roomFromParam(c)
	if !ok {
		return
	}
	var req BuffPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	buff := game.ActiveBuff{Name: strings.TrimSpace(req.Name), Effect: req.Effect, RemainingTurns: req.RemainingTurns}
	r, err := h.svc.ApplyBuff(r.ID, sessionWallet(c), buff)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	respondRoom(c, http.StatusOK, r, nil)
}

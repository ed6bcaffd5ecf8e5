package api

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/constants"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/keys"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/logging"

	"github.com/gin-gonic/gin"
)

type SessionPayload struct {
	WalletAddress string `json:"wallet_address"`
	Name          string `json:"name"`
}

// CreateSession starts a session for a wallet. The address is normalized to
// its checksum form so the same wallet always maps to the same player.
func (h *GameHandler) CreateSession(c *gin.Context) {
	var req SessionPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	wallet, err := keys.NormalizeWallet(req.WalletAddress)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidWallet})
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" || utf8.RuneCountInString(name) > constants.MaxPlayerNameChars {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	token, err := h.sessions.create(wallet, name)
	if err != nil {
		logging.Error("failed to create session", err, logging.Fields{constants.LogFieldWallet: wallet})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateSession})
		return
	}
	if err := h.repo.UpsertProfile(wallet, name); err != nil {
		logging.Error("failed to upsert profile", err, logging.Fields{constants.LogFieldWallet: wallet})
	}
	h.sessions.setSessionCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"wallet_address": wallet, "name": name, "token": token})
}

// DeleteSession clears the session cookie.
func (h *GameHandler) DeleteSession(c *gin.Context) {
	h.sessions.clearSessionCookie(c)
	c.Status(http.StatusNoContent)
}

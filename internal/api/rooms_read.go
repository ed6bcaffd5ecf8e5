package api

import (
	"net/http"
	"strconv"

	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/constants"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/game"

	"github.com/gin-gonic/gin"
)

// ListCharacters returns the selectable character catalog.
func (h *GameHandler) ListCharacters(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Characters())
}

// ListPublicRooms returns recent public rooms still waiting for an opponent.
func (h *GameHandler) ListPublicRooms(c *gin.Context) {
	rooms, err := h.repo.GetPublicRooms()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchRooms})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(rooms)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchRooms})
		return
	}
	c.JSON(http.StatusOK, out)
}

// ListLeaderboard returns the top players by wins (desc), limited to top 10 by default.
func (h *GameHandler) ListLeaderboard(c *gin.Context) {
	// optional ?limit=N
	limit := 10
	if s := c.Query(constants.QueryLimit); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	players, err := h.repo.GetTopPlayers(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaderboard})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(players)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaderboard})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetProfile returns the caller's stats.
func (h *GameHandler) GetProfile(c *gin.Context) {
	p, err := h.repo.GetProfile(sessionWallet(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchProfile})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchProfile})
		return
	}
	c.JSON(http.StatusOK, out)
}

// roomFromParam resolves the :roomCode path parameter. It writes the error
// response and returns false when the room cannot be found.
func (h *GameHandler) roomFromParam(c *gin.Context) (*game.Room, bool) {
	code := normalizeJoinCode(c.Param(constants.ParamRoomCode))
	if code == "" || !joinCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrRoomNotFound})
		return nil, false
	}
	r, err := h.repo.FindRoomByJoinCode(code)
	if err != nil {
		respondError(c, err, nil)
		return nil, false
	}
	return r, true
}

// GetRoom returns the full room snapshot.
func (h *GameHandler) GetRoom(c *gin.Context) {
	r, ok := h.roomFromParam(c)
	if !ok {
		return
	}
	respondRoom(c, http.StatusOK, r, nil)
}

// respondRoom writes a room snapshot, merging extra keys into the body.
func respondRoom(c *gin.Context, status int, r *game.Room, extra gin.H) {
	out, err := MarshalIntoSnakeTimestamps(r)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedUpdateRoom})
		return
	}
	if len(extra) > 0 {
		if m, ok := out.(map[string]interface{}); ok {
			for k, v := range extra {
				m[k] = v
			}
		}
	}
	c.JSON(status, out)
}

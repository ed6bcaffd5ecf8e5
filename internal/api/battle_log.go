package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/battlelog"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/constants"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/logging"

	"github.com/gin-gonic/gin"
)

// Storyboard returns the recent combat frames of a room.
func (h *GameHandler) Storyboard(c *gin.Context) {
	r, ok := h.roomFromParam(c)
	if !ok {
		return
	}
	board, err := h.svc.Storyboard(r.ID)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, board)
}

// ExportBattleLog downloads the full battle log as JSON or tab separated text.
func (h *GameHandler) ExportBattleLog(c *gin.Context) {
	r, ok := h.roomFromParam(c)
	if !ok {
		return
	}
	format, err := battlelog.ParseFormat(c.Query(constants.QueryFormat))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUnknownExportFormat})
		return
	}
	out, err := h.svc.ExportBattleLog(r.ID, format)
	if err != nil {
		if errors.Is(err, battlelog.ErrUnknownFormat) {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUnknownExportFormat})
			return
		}
		logging.Error("battle log export failed", err, logging.Fields{constants.LogFieldRoomCode: r.JoinCode, constants.LogFieldFormat: format})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedExport})
		return
	}
	filename := fmt.Sprintf("battle-log-%s.%s", r.JoinCode, format.Extension())
	c.Header(constants.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	c.Header(constants.CacheControlHeader, constants.CacheControlNoCache)
	c.Data(http.StatusOK, format.ContentType(), out)
}

// Socket upgrades to a websocket that streams room snapshots.
func (h *GameHandler) Socket(c *gin.Context) {
	if h.hub == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{constants.JSONKeyError: "Realtime updates are disabled"})
		return
	}
	r, ok := h.roomFromParam(c)
	if !ok {
		return
	}
	h.hub.Serve(c.Writer, c.Request, r)
}

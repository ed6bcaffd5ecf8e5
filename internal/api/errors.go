package api

import (
	"errors"
	"net/http"

	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/constants"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/engine"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/logging"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/service"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/storage"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	err     error
	status  int
	message string
}

var errorMappings = []errorMapping{
	{service.ErrRoomNotFound, http.StatusNotFound, constants.ErrRoomNotFound},
	{storage.ErrRoomNotFound, http.StatusNotFound, constants.ErrRoomNotFound},
	{service.ErrPlayerNotInRoom, http.StatusForbidden, constants.ErrPlayerNotInThisRoom},
	{engine.ErrUnknownPlayer, http.StatusForbidden, constants.ErrPlayerNotInThisRoom},
	{engine.ErrNotYourTurn, http.StatusForbidden, constants.ErrNotYourTurn},
	{service.ErrRoomFull, http.StatusConflict, constants.ErrRoomFull},
	{service.ErrAlreadyInRoom, http.StatusConflict, constants.ErrAlreadyInRoom},
	{service.ErrCannotLeave, http.StatusConflict, constants.ErrCannotLeaveAfterStart},
	{service.ErrUnknownCharacter, http.StatusBadRequest, constants.ErrUnknownCharacter},
	{service.ErrInvalidBuff, http.StatusBadRequest, constants.ErrInvalidBuff},
	{service.ErrInvalidPlayerName, http.StatusBadRequest, constants.ErrInvalidRequest},
	{service.ErrTooManyBuffs, http.StatusConflict, constants.ErrTooManyBuffs},
	{service.ErrCooldown, http.StatusTooManyRequests, constants.ErrCooldown},
	{engine.ErrCharacterAlreadySelected, http.StatusConflict, constants.ErrCharacterAlreadyChosen},
	{engine.ErrNotSelecting, http.StatusConflict, constants.ErrNotSelecting},
	{engine.ErrNotRolling, http.StatusConflict, constants.ErrNotRolling},
	{engine.ErrGameNotInProgress, http.StatusConflict, constants.ErrGameNotInProgress},
	{engine.ErrGameFinished, http.StatusConflict, constants.ErrGameFinished},
	{engine.ErrRollOutOfRange, http.StatusConflict, constants.ErrRollOutOfRange},
	{engine.ErrMissingCharacter, http.StatusConflict, constants.ErrMissingCharacter},
	{engine.ErrUndefinedDefenseType, http.StatusConflict, constants.ErrUndefinedDefenseType},
	{engine.ErrUnknownAbilityType, http.StatusConflict, constants.ErrUnknownAbilityType},
	{engine.ErrUnknownSeat, http.StatusConflict, constants.ErrUnknownSeat},
	{engine.ErrInvalidRoll, http.StatusBadRequest, constants.ErrInvalidRoll},
	{engine.ErrInvalidCharacter, http.StatusBadRequest, constants.ErrInvalidCharacter},
	{storage.ErrStaleRoom, http.StatusConflict, constants.ErrRoomConflict},
}

// statusFor maps a service or engine error to an HTTP status and message.
func statusFor(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, constants.ErrFailedUpdateRoom
}

// respondError writes the mapped error; extra keys are merged into the body.
func respondError(c *gin.Context, err error, extra gin.H) {
	status, msg := statusFor(err)
	if status == http.StatusInternalServerError {
		logging.Error("request failed", err, logging.Fields{constants.LogFieldRoomCode: c.Param(constants.ParamRoomCode)})
	}
	body := gin.H{constants.JSONKeyError: msg}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(status, body)
}

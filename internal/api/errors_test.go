package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/engine"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestStatusForEngineErrors(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{engine.ErrUnknownSeat, http.StatusConflict},
		{engine.ErrInvalidRoll, http.StatusBadRequest},
		{engine.ErrInvalidCharacter, http.StatusBadRequest},
		{fmt.Errorf("%w: %q", engine.ErrUnknownAbilityType, "heal"), http.StatusConflict},
		{engine.ErrRollOutOfRange, http.StatusConflict},
		{fmt.Errorf("%w: effect must be within ±10", service.ErrInvalidBuff), http.StatusBadRequest},
	}
	for _, tc := range cases {
		status, msg := statusFor(tc.err)
		assert.Equal(t, tc.want, status, tc.err.Error())
		assert.NotEmpty(t, msg)
	}

	status, _ := statusFor(errors.New("disk full"))
	assert.Equal(t, http.StatusInternalServerError, status)
}

package main

import (
	"time"

	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/constants"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/game"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/logging"
)

const (
	scanInterval = time.Second
	scanBatch    = 20
	scanLease    = 2 * time.Minute
)

type timeoutRepo interface {
	ClaimTimedOutRoomIDs(now time.Time, limit int, lease time.Duration, workerID string) ([]uint, error)
	GetRoomByID(id uint) (*game.Room, error)
}

type timeoutHandler interface {
	HandleTimedOutRoom(r *game.Room) error
}

// startTimeoutScanner claims rooms whose turn deadline passed and delegates
// the skip to the service.
func startTimeoutScanner(repo timeoutRepo, svc timeoutHandler, workerID string) {
	go func() {
		ticker := time.NewTicker(scanInterval)
		defer ticker.Stop()
		for range ticker.C {
			ids, err := repo.ClaimTimedOutRoomIDs(time.Now().UTC(), scanBatch, scanLease, workerID)
			if err != nil {
				logging.Error("timeout scanner failed to list ids", err, logging.Fields{constants.LogFieldWorker: workerID})
				continue
			}
			// process each id sequentially (keeps DB safe under SQLite)
			for _, id := range ids {
				r, err := repo.GetRoomByID(id)
				if err != nil {
					continue
				}
				if err := svc.HandleTimedOutRoom(r); err != nil {
					logging.Error("failed to skip timed out turn", err, logging.Fields{constants.LogFieldRoomID: id, constants.LogFieldWorker: workerID})
				}
			}
		}
	}()
}

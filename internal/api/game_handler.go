package api

import (
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/realtime"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/service"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/storage"
)

// GameHandler groups all room-related HTTP handlers.
type GameHandler struct {
	svc      *service.Service
	repo     storage.Repository
	hub      *realtime.Hub
	sessions *Sessions
}

// NewGameHandler creates a GameHandler. hub may be nil, which disables the
// websocket endpoint.
func NewGameHandler(svc *service.Service, repo storage.Repository, hub *realtime.Hub, sessions *Sessions) *GameHandler {
	return &GameHandler{svc: svc, repo: repo, hub: hub, sessions: sessions}
}

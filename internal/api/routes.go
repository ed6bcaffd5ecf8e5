package api

import (
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/constants"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the public and session-protected endpoints under
// the API prefix.
func (h *GameHandler) RegisterRoutes(router *gin.Engine) {
	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		// Public endpoints
		apiRoutes.GET(constants.RouteVersion, Version)
		apiRoutes.GET(constants.RouteCharacters, h.ListCharacters)
		apiRoutes.GET(constants.RoutePublicRooms, h.ListPublicRooms)
		apiRoutes.GET(constants.RouteLeaderboard, h.ListLeaderboard)
		apiRoutes.POST(constants.RouteAuthSession, h.CreateSession)
		apiRoutes.DELETE(constants.RouteAuthSession, h.DeleteSession)

		// Authenticated endpoints
		protected := apiRoutes.Group("")
		protected.Use(h.sessions.AuthRequired())

		protected.GET(constants.RouteProfile, h.GetProfile)
		protected.POST(constants.RouteRooms, h.CreateRoom)
		protected.POST(constants.RouteRoomsJoin, h.JoinRoom)
		protected.GET(constants.RouteRoomByCode, h.GetRoom)
		protected.POST(constants.RouteRoomLeave, h.LeaveRoom)
		protected.POST(constants.RouteRoomCharacter, h.SelectCharacter)
		protected.POST(constants.RouteRoomFirstRoll, h.RollForFirstTurn)
		protected.POST(constants.RouteRoomTurn, h.TakeTurn)
		protected.POST(constants.RouteRoomDefense, h.SetDefenseStance)
		protected.POST(constants.RouteRoomBuffs, h.ApplyBuff)
		protected.POST(constants.RouteRoomForfeit, h.Forfeit)
		protected.GET(constants.RouteRoomStoryboard, h.Storyboard)
		protected.GET(constants.RouteRoomExport, h.ExportBattleLog)
		protected.GET(constants.RouteRoomSocket, h.Socket)
	}
}

package constants

// Centralized constants for headers, env keys, routes and messages.
const (
	// Environment variable keys
	EnvConfigPath          = "STAKEWARS_CONFIG"
	EnvDatabasePath        = "STAKEWARS_DB"
	EnvSessionSecret       = "SESSION_SECRET"
	EnvSessionSecureCookie = "SESSION_SECURE_COOKIE"
	EnvLogLevel            = "LOG_LEVEL"
	EnvHealthcheckURL      = "HEALTHCHECK_URL"
	EnvAllowedOrigins      = "ALLOWED_ORIGINS"

	// HTTP headers and content types
	HeaderAuthorization      = "Authorization"
	HeaderContentType        = "Content-Type"
	HeaderContentDisposition = "Content-Disposition"

	ContentTypeJSON = "application/json"

	CacheControlHeader  = "Cache-Control"
	CacheControlNoCache = "no-cache, no-store, must-revalidate"

	// Authorization prefix
	BearerPrefix = "Bearer "

	// Session / Cookie names
	CookieSessionName = "sw_session"
	// Gin context key holding the authenticated wallet address
	ContextKeyWallet = "walletAddress"
)

// Routes used by the backend router
const (
	RouteAPIPrefix      = "/api"
	RouteCharacters     = "/characters"
	RoutePublicRooms    = "/public-rooms"
	RouteLeaderboard    = "/leaderboard"
	RouteVersion        = "/version"
	RouteAuthSession    = "/auth/session"
	RouteProfile        = "/profile"
	RouteRooms          = "/rooms"
	RouteRoomsJoin      = "/rooms/join"
	RouteRoomByCode     = "/rooms/:roomCode"
	RouteRoomLeave      = "/rooms/:roomCode/leave"
	RouteRoomCharacter  = "/rooms/:roomCode/character"
	RouteRoomFirstRoll  = "/rooms/:roomCode/first-turn-roll"
	RouteRoomTurn       = "/rooms/:roomCode/turn"
	RouteRoomDefense    = "/rooms/:roomCode/defense-stance"
	RouteRoomBuffs      = "/rooms/:roomCode/buffs"
	RouteRoomForfeit    = "/rooms/:roomCode/forfeit"
	RouteRoomStoryboard = "/rooms/:roomCode/storyboard"
	RouteRoomExport     = "/rooms/:roomCode/battle-log/export"
	RouteRoomSocket     = "/rooms/:roomCode/ws"

	ParamRoomCode      = "roomCode"
	QueryFormat        = "format"
	QueryLimit         = "limit"
	MaxRoomNameChars   = 32
	MaxPlayerNameChars = 32
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyDetails = "details"
	JSONKeyStatus  = "status"
	JSONKeyNotice  = "notice"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest         = "Invalid request"
	ErrInvalidWallet          = "Invalid wallet address"
	ErrRoomNotFound           = "Room not found"
	ErrFailedFetchRooms       = "Failed to fetch rooms"
	ErrFailedFetchLeaderboard = "Failed to fetch leaderboard"
	ErrFailedFetchProfile     = "Failed to fetch profile"
	ErrFailedCreateRoom       = "Failed to create room"
	ErrFailedUpdateRoom       = "Failed to update room"
	ErrRoomNameExceeds        = "Room name exceeds 32 characters"
	ErrRoomFull               = "Room is full"
	ErrRoomConflict           = "Room was modified concurrently; reload and retry"
	ErrPlayerNotInThisRoom    = "Player not in this room"
	ErrCannotLeaveAfterStart  = "Cannot leave after the game has started"
	ErrAlreadyInRoom          = "Player already in this room"
	ErrUnknownCharacter       = "Unknown character"
	ErrCharacterAlreadyChosen = "Character already selected"
	ErrNotSelecting           = "Room is not in character selection"
	ErrNotRolling             = "Room is not rolling for the first turn"
	ErrGameNotInProgress      = "Game is not in progress"
	ErrGameFinished           = "Game already finished"
	ErrNotYourTurn            = "It is not your turn"
	ErrRollOutOfRange         = "Roll does not map to an ability"
	ErrMissingCharacter       = "No character selected"
	ErrUndefinedDefenseType   = "Defense ability has no defense type"
	ErrUnknownAbilityType     = "Ability has an unknown type"
	ErrUnknownSeat            = "Unknown seat"
	ErrInvalidRoll            = "Dice roll out of range"
	ErrInvalidCharacter       = "Character has no abilities or health"
	ErrInvalidBuff            = "Invalid buff"
	ErrTooManyBuffs           = "Too many active buffs"
	ErrCooldown               = "Slow down; dice are cooling down"
	ErrUnknownExportFormat    = "Unknown export format"
	ErrFailedExport           = "Failed to export battle log"
	ErrFailedCreateSession    = "Failed to create session"

	ErrAuthRequired   = "Authentication required"
	ErrInvalidSession = "Invalid session"

	NoticeAlreadyRolled = "You already rolled for the first turn"
)

// Logging field names
const (
	LogFieldRoomID   = "room_id"
	LogFieldRoomCode = "room_code"
	LogFieldWallet   = "wallet"
	LogFieldSeat     = "seat"
	LogFieldKind     = "kind"
	LogFieldTurn     = "turn"
	LogFieldFormat   = "format"
	LogFieldWorker   = "worker_id"
	LogFieldCount    = "count"
	LogFieldAddr     = "addr"
	LogFieldVersion  = "version"
)

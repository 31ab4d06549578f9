package constants

// Centralized constants for environment keys, routes and API messages.
const (
	// Environment variable keys
	EnvHealthURL = "ARENA_HEALTHCHECK_URL"

	DefaultConfigPath = "./arena_config.yaml"
	DefaultDBPath     = "./data/arena.db"
	DefaultAddr       = ":8080"

	// HTTP headers and content types
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"

	CacheControlHeader  = "Cache-Control"
	CacheControlNoCache = "no-cache, no-store, must-revalidate"
)

// Routes used by the backend router
const (
	RouteAPIPrefix    = "/api"
	RouteCharacters   = "/characters"
	RouteTeamSummary  = "/teams/summary"
	RouteMatches      = "/matches"
	RouteMatchByID    = "/matches/:matchID"
	RouteMatchAction  = "/matches/:matchID/action"
	RouteMatchSkip    = "/matches/:matchID/skip"
	RouteVersion      = "/version"
	ParamMatchID      = "matchID"
	HealthcheckTarget = "http://127.0.0.1:8080/api/version"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyDetails = "details"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest         = "Invalid request"
	ErrMatchNotFound          = "Match not found"
	ErrFailedFetchCharacters  = "Failed to fetch characters"
	ErrFailedCreateMatch      = "Failed to create match"
	ErrFailedApplyAction      = "Failed to apply action"
	ErrFailedSummarizeTeam    = "Failed to summarize team"
	ErrTeamSize               = "A team needs exactly 3 characters"
	ErrDuplicateCharacter     = "A character can only be picked once"
	ErrUnknownCharacter       = "Unknown character"
	ErrMatchNotActive         = "Match is not active"
	ErrInvalidActionFmt       = "Action rejected: %s"
	ErrActionRequiresAbility  = "actor_id and ability_id are required"
	ErrMatchAbandonFailed     = "Failed to abandon match"
	ErrEnemyRosterUnavailable = "Enemy roster unavailable"
)

// Logging field names
const (
	LogFieldMatchID   = "match_id"
	LogFieldSide      = "side"
	LogFieldActorID   = "actor_id"
	LogFieldAbilityID = "ability_id"
	LogFieldTargetID  = "target_id"
	LogFieldDamage    = "damage"
	LogFieldStatus    = "status"
	LogFieldCount     = "count"
	LogFieldAddr      = "addr"
	LogFieldPath      = "path"
)

package utils

// Environment variables read by LoadConfig. They override the config file.
const (
	EnvHTTPAddr        = "PICKLEBALL_ADDR"
	EnvRedisURL        = "REDIS_URL"
	EnvRedisChannel    = "PICKLEBALL_REDIS_CHANNEL"
	EnvLogFile         = "PICKLEBALL_LOG_FILE"
	EnvWinScore        = "PICKLEBALL_WIN_SCORE"
	EnvStartDifficulty = "PICKLEBALL_START_DIFFICULTY"
	EnvStepsPerSecond  = "PICKLEBALL_STEPS_PER_SECOND"
	EnvAutoplayLevel   = "PICKLEBALL_AUTOPLAY_LEVEL"
	EnvAudioEnabled    = "PICKLEBALL_AUDIO"
	EnvAutoplay        = "PICKLEBALL_AUTOPLAY"
)

// DefaultConfigPath is looked up in the working directory when no -config flag is given.
const DefaultConfigPath = "pickleball.toml"

// HighestDifficulty caps the difficulty level. The AI reacts with probability level/10.
const HighestDifficulty = 10

// File: utils/config.go
package utils

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all configurable game parameters.
type Config struct {
	// Timing
	StepsPerSecond    int `json:"stepsPerSecond" toml:"steps_per_second"`       // Fixed simulation rate
	AutoContinueSteps int `json:"autoContinueSteps" toml:"auto_continue_steps"` // Pause before the next match in autoplay (0 waits for input)

	// Field
	FieldWidth  float64 `json:"fieldWidth" toml:"field_width"`
	FieldHeight float64 `json:"fieldHeight" toml:"field_height"`

	// Paddle Properties
	PaddleWidth  float64 `json:"paddleWidth" toml:"paddle_width"`
	PaddleHeight float64 `json:"paddleHeight" toml:"paddle_height"`
	PaddleInset  float64 `json:"paddleInset" toml:"paddle_inset"` // Distance between a paddle and its edge of the field
	PaddleSpeed  float64 `json:"paddleSpeed" toml:"paddle_speed"` // Pixels per step

	// Ball Physics & Properties
	BallSize          float64   `json:"ballSize" toml:"ball_size"`
	BaseBallSpeed     float64   `json:"baseBallSpeed" toml:"base_ball_speed"`
	MaxBallSpeedX     float64   `json:"maxBallSpeedX" toml:"max_ball_speed_x"`    // Clamp applied to the horizontal component only
	BallSpeedUp       float64   `json:"ballSpeedUp" toml:"ball_speed_up"`         // Horizontal multiplier per paddle hit
	MaxBounceAngle    float64   `json:"maxBounceAngle" toml:"max_bounce_angle"`   // Radians, reached at the paddle tips
	ServeInset        float64   `json:"serveInset" toml:"serve_inset"`            // Serve distance from the scorer's edge
	ServeAngleFactors []float64 `json:"serveAngleFactors" toml:"serve_angle_factors"` // Vertical serve speed as a fraction of base speed
	DepthSpeed        float64   `json:"depthSpeed" toml:"depth_speed"`
	MaxDepth          float64   `json:"maxDepth" toml:"max_depth"`

	// Match & Session
	WinScore        int `json:"winScore" toml:"win_score"`
	StartDifficulty int `json:"startDifficulty" toml:"start_difficulty"`
	MaxDifficulty   int `json:"maxDifficulty" toml:"max_difficulty"`

	// Host
	HTTPAddr      string `json:"httpAddr" toml:"http_addr"`
	RedisURL      string `json:"redisURL" toml:"redis_url"` // Empty disables the event relay
	RedisChannel  string `json:"redisChannel" toml:"redis_channel"`
	AudioEnabled  bool   `json:"audioEnabled" toml:"audio_enabled"`
	Autoplay      bool   `json:"autoplay" toml:"autoplay"` // Player paddle driven by the AI policy
	AutoplayLevel int    `json:"autoplayLevel" toml:"autoplay_level"`
	LogFile       string `json:"logFile" toml:"log_file"`
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	return Config{
		// Timing
		StepsPerSecond:    60,
		AutoContinueSteps: 180,

		// Field
		FieldWidth:  800,
		FieldHeight: 600,

		// Paddle Properties
		PaddleWidth:  15,
		PaddleHeight: 100,
		PaddleInset:  20,
		PaddleSpeed:  8,

		// Ball Physics & Properties
		BallSize:          15,
		BaseBallSpeed:     5,
		MaxBallSpeedX:     15,
		BallSpeedUp:       1.05,
		MaxBounceAngle:    math.Pi / 4,
		ServeInset:        100,
		ServeAngleFactors: []float64{-0.7, -0.3, 0.3, 0.7},
		DepthSpeed:        0.2,
		MaxDepth:          10,

		// Match & Session
		WinScore:        20,
		StartDifficulty: 1,
		MaxDifficulty:   10,

		// Host
		HTTPAddr:      ":3001",
		RedisChannel:  "pickleball:events",
		AudioEnabled:  true,
		AutoplayLevel: 7,
		LogFile:       "pickleball.log",
	}
}

// StepPeriod is the wall-clock time between two simulation steps.
func (c Config) StepPeriod() time.Duration {
	if c.StepsPerSecond <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.StepsPerSecond)
}

// Validate rejects configurations the simulation cannot run with.
func (c Config) Validate() error {
	switch {
	case c.FieldWidth <= 0 || c.FieldHeight <= 0:
		return fmt.Errorf("invalid field size %vx%v", c.FieldWidth, c.FieldHeight)
	case c.PaddleWidth <= 0 || c.PaddleHeight <= 0 || c.BallSize <= 0:
		return errors.New("paddle and ball sizes must be positive")
	case c.PaddleHeight > c.FieldHeight:
		return fmt.Errorf("paddle height %v exceeds field height %v", c.PaddleHeight, c.FieldHeight)
	case c.PaddleSpeed <= 0 || c.BaseBallSpeed <= 0 || c.MaxBallSpeedX <= 0:
		return errors.New("speeds must be positive")
	case len(c.ServeAngleFactors) == 0:
		return errors.New("at least one serve angle factor is required")
	case c.WinScore <= 0:
		return fmt.Errorf("invalid win score %d", c.WinScore)
	case c.MaxDifficulty < 1 || c.MaxDifficulty > HighestDifficulty:
		return fmt.Errorf("max difficulty %d outside 1..%d", c.MaxDifficulty, HighestDifficulty)
	case c.StartDifficulty < 1 || c.StartDifficulty > c.MaxDifficulty:
		return fmt.Errorf("start difficulty %d outside 1..%d", c.StartDifficulty, c.MaxDifficulty)
	case c.AutoplayLevel < 1 || c.AutoplayLevel > HighestDifficulty:
		return fmt.Errorf("autoplay level %d outside 1..%d", c.AutoplayLevel, HighestDifficulty)
	}
	return nil
}

// LoadConfig builds a Config from the defaults, the TOML file at path (when it
// exists) and finally the environment, including a .env file if present.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return cfg, fmt.Errorf("decode config %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("stat config %s: %w", path, err)
		}
	}

	// A missing .env is fine, the process environment still applies.
	_ = godotenv.Load()
	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.HTTPAddr = getEnv(EnvHTTPAddr, cfg.HTTPAddr)
	cfg.RedisURL = getEnv(EnvRedisURL, cfg.RedisURL)
	cfg.RedisChannel = getEnv(EnvRedisChannel, cfg.RedisChannel)
	cfg.LogFile = getEnv(EnvLogFile, cfg.LogFile)
	cfg.WinScore = getEnvInt(EnvWinScore, cfg.WinScore)
	cfg.StartDifficulty = getEnvInt(EnvStartDifficulty, cfg.StartDifficulty)
	cfg.StepsPerSecond = getEnvInt(EnvStepsPerSecond, cfg.StepsPerSecond)
	cfg.AutoplayLevel = getEnvInt(EnvAutoplayLevel, cfg.AutoplayLevel)
	cfg.AudioEnabled = getEnvBool(EnvAudioEnabled, cfg.AudioEnabled)
	cfg.Autoplay = getEnvBool(EnvAutoplay, cfg.Autoplay)
}

package main

import "time"

type Config struct {
	Host                 string        `env:"HOST,default=localhost"`
	Port                 int           `env:"PORT,default=8080"`
	BadgerFilepath       string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel             string        `env:"LOG_LEVEL,default=INFO"`
	JWTSecret            string        `env:"JWT_SECRET,required=true"`
	AuthTokenDuration    time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`
	MessageCap           int           `env:"MESSAGE_CAP,default=20"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=256"`
	RateLimitEnabled     bool          `env:"RATE_LIMIT_ENABLED,default=true"`
	MessagesPerSecond    float64       `env:"RATE_LIMIT_MESSAGES_PER_SECOND,default=20"`
	RateLimitBurst       int           `env:"RATE_LIMIT_BURST,default=40"`
	ShutdownTimeout      time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
	MetricInterval       time.Duration `env:"METRIC_INTERVAL,default=30s"`
}

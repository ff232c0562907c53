package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Server captures process level configuration.
type Server struct {
	Addr     string `env:"EVC_ADDR" envDefault:":8080"`
	LogLevel string `env:"EVC_LOG_LEVEL" envDefault:"info"`

	DBDriver        string        `env:"EVC_DB_DRIVER" envDefault:"pgx"`
	DBDSN           string        `env:"EVC_DB_DSN"`
	DBMaxOpenConns  int           `env:"EVC_DB_MAX_OPEN_CONNS" envDefault:"10"`
	DBMaxIdleConns  int           `env:"EVC_DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBConnLifetime  time.Duration `env:"EVC_DB_CONN_MAX_LIFETIME" envDefault:"30m"`
	MigrateOnStart  bool          `env:"EVC_MIGRATE" envDefault:"false"`
	MaxPageSize     int           `env:"EVC_MAX_PAGE_SIZE" envDefault:"100"`
	TxTimeout       time.Duration `env:"EVC_TX_TIMEOUT" envDefault:"5s"`
	RequestTimeout  time.Duration `env:"EVC_REQUEST_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"EVC_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// AtomicPackets runs each registration packet inside one transaction.
	AtomicPackets bool `env:"EVC_ATOMIC_PACKETS" envDefault:"false"`
	// StrictAudit reports history write failures to the caller.
	StrictAudit bool `env:"EVC_STRICT_AUDIT" envDefault:"false"`
	// CheckActors confirms X-Actor-ID refers to a recorded participant.
	CheckActors bool `env:"EVC_CHECK_ACTORS" envDefault:"false"`

	KafkaBrokers []string `env:"EVC_KAFKA_BROKERS" envSeparator:","`
	HistoryTopic string   `env:"EVC_HISTORY_TOPIC" envDefault:"evc.history"`
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

func (s Server) validate() error {
	switch s.DBDriver {
	case "pgx", "sqlite":
	default:
		return fmt.Errorf("EVC_DB_DRIVER must be pgx or sqlite, got %q", s.DBDriver)
	}
	if strings.TrimSpace(s.DBDSN) == "" {
		return fmt.Errorf("EVC_DB_DSN is required")
	}
	if s.MaxPageSize <= 0 {
		return fmt.Errorf("EVC_MAX_PAGE_SIZE must be positive, got %d", s.MaxPageSize)
	}
	return nil
}

// KafkaEnabled reports whether history records are fanned out to Kafka.
func (s Server) KafkaEnabled() bool { return len(s.KafkaBrokers) > 0 }

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"orderdesk/internal/adapters/out/memory"
	"orderdesk/internal/adapters/out/notification"
	"orderdesk/internal/adapters/out/redistracker"
	"orderdesk/internal/core/application/lookup"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/pkg/errs"

	"github.com/joho/godotenv"
)

// Backend selectors.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"

	TrackerMemory = "memory"
	TrackerRedis  = "redis"

	NotifierLog   = "log"
	NotifierKafka = "kafka"
)

type Config struct {
	HTTPPort string

	StoreDriver string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSslMode   string

	AttemptTracker string
	RedisAddr      string
	RedisPassword  string
	RetryStateTTL  time.Duration

	Notifier               string
	KafkaBrokers           []string
	KafkaNotificationTopic string
	NotifyLatency          time.Duration

	LLMAPIKey  string
	LLMModel   string
	LLMBaseURL string

	LookupMaxAttempts           int
	LookupRetryDelay            time.Duration
	LookupFailuresBeforeSuccess int
	FlakyOrderID                string
	VipOrderID                  string
	IDExtractionPolicy          services.ExtractionPolicy
	SynthesizeNotFound          bool

	LogLevel slog.Level
}

// DefaultConfig returns the configuration of a self-contained in-memory deployment.
func DefaultConfig() Config {
	policy := lookup.DefaultPolicy()
	return Config{
		HTTPPort:                    "8080",
		StoreDriver:                 StoreMemory,
		DBPort:                      "5432",
		DBSslMode:                   "disable",
		AttemptTracker:              TrackerMemory,
		RedisAddr:                   "localhost:6379",
		RetryStateTTL:               redistracker.DefaultTTL,
		Notifier:                    NotifierLog,
		KafkaNotificationTopic:      notification.DefaultTopic,
		NotifyLatency:               notification.DefaultLatency,
		LookupMaxAttempts:           policy.MaxAttempts,
		LookupRetryDelay:            policy.RetryDelay,
		LookupFailuresBeforeSuccess: policy.FailuresBeforeSuccess,
		FlakyOrderID:                policy.FlakyOrderID.String(),
		VipOrderID:                  memory.DefaultVipOrderID.String(),
		IDExtractionPolicy:          services.LiteralFirst,
		LogLevel:                    slog.LevelInfo,
	}
}

// LoadConfig reads envFile into the process environment when it exists and builds
// the configuration from the environment. A missing envFile is not an error.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}
	return ConfigFromEnv(os.Getenv)
}

// ConfigFromEnv builds the configuration from getenv on top of DefaultConfig.
// Every malformed variable is reported, not only the first.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	c := DefaultConfig()
	p := envParser{getenv: getenv}

	p.str("HTTP_PORT", &c.HTTPPort)
	p.str("STORE_DRIVER", &c.StoreDriver)
	p.str("DB_HOST", &c.DBHost)
	p.str("DB_PORT", &c.DBPort)
	p.str("DB_USER", &c.DBUser)
	p.str("DB_PASSWORD", &c.DBPassword)
	p.str("DB_NAME", &c.DBName)
	p.str("DB_SSLMODE", &c.DBSslMode)
	p.str("ATTEMPT_TRACKER", &c.AttemptTracker)
	p.str("REDIS_ADDR", &c.RedisAddr)
	p.str("REDIS_PASSWORD", &c.RedisPassword)
	p.duration("RETRY_STATE_TTL", &c.RetryStateTTL)
	p.str("NOTIFIER", &c.Notifier)
	p.list("KAFKA_BROKERS", &c.KafkaBrokers)
	p.str("KAFKA_NOTIFICATION_TOPIC", &c.KafkaNotificationTopic)
	p.duration("NOTIFY_LATENCY", &c.NotifyLatency)
	p.str("LLM_API_KEY", &c.LLMAPIKey)
	p.str("LLM_MODEL", &c.LLMModel)
	p.str("LLM_BASE_URL", &c.LLMBaseURL)
	p.integer("LOOKUP_MAX_ATTEMPTS", &c.LookupMaxAttempts)
	p.duration("LOOKUP_RETRY_DELAY", &c.LookupRetryDelay)
	p.integer("LOOKUP_FAILURES_BEFORE_SUCCESS", &c.LookupFailuresBeforeSuccess)
	p.str("FLAKY_ORDER_ID", &c.FlakyOrderID)
	p.str("VIP_ORDER_ID", &c.VipOrderID)
	p.boolean("SYNTHESIZE_NOT_FOUND", &c.SynthesizeNotFound)

	if raw := getenv("ID_EXTRACTION_POLICY"); raw != "" {
		policy, err := services.ParseExtractionPolicy(raw)
		p.fail(err)
		c.IDExtractionPolicy = policy
	}
	if raw := getenv("LOG_LEVEL"); raw != "" {
		p.fail(c.LogLevel.UnmarshalText([]byte(raw)))
	}

	if p.err != nil {
		return Config{}, p.err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the backend selections and the lookup policy.
func (c Config) Validate() error {
	var err error

	if strings.TrimSpace(c.HTTPPort) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("HTTP_PORT"))
	}

	switch c.StoreDriver {
	case StoreMemory:
	case StorePostgres:
		if c.DBHost == "" || c.DBName == "" || c.DBUser == "" {
			err = errors.Join(err, errs.NewValueIsRequiredError("DB_HOST, DB_NAME and DB_USER"))
		}
	default:
		err = errors.Join(err, errs.NewValueIsInvalidError("STORE_DRIVER"))
	}

	switch c.AttemptTracker {
	case TrackerMemory:
	case TrackerRedis:
		if c.RedisAddr == "" {
			err = errors.Join(err, errs.NewValueIsRequiredError("REDIS_ADDR"))
		}
	default:
		err = errors.Join(err, errs.NewValueIsInvalidError("ATTEMPT_TRACKER"))
	}

	switch c.Notifier {
	case NotifierLog:
	case NotifierKafka:
		if len(c.KafkaBrokers) == 0 {
			err = errors.Join(err, errs.NewValueIsRequiredError("KAFKA_BROKERS"))
		}
	default:
		err = errors.Join(err, errs.NewValueIsInvalidError("NOTIFIER"))
	}

	if c.RetryStateTTL <= 0 {
		err = errors.Join(err, errs.NewValueIsInvalidError("RETRY_STATE_TTL must be positive"))
	} else if minTTL := c.LookupPolicy().MinRetryStateTTL(); c.RetryStateTTL <= minTTL {
		err = errors.Join(err, errs.NewValueIsInvalidError(
			fmt.Sprintf("RETRY_STATE_TTL must exceed %s for the configured lookup policy", minTTL),
		))
	}
	if c.NotifyLatency < 0 {
		err = errors.Join(err, errs.NewValueIsInvalidError("NOTIFY_LATENCY must not be negative"))
	}
	if _, idErr := order.NewID(c.VipOrderID); idErr != nil {
		err = errors.Join(err, errs.NewValueIsRequiredError("VIP_ORDER_ID"))
	}

	return errors.Join(err, c.LookupPolicy().Validate())
}

// LookupPolicy returns the retry policy of the order lookup.
func (c Config) LookupPolicy() lookup.Policy {
	return lookup.Policy{
		MaxAttempts:           c.LookupMaxAttempts,
		RetryDelay:            c.LookupRetryDelay,
		FailuresBeforeSuccess: c.LookupFailuresBeforeSuccess,
		FlakyOrderID:          order.ID(strings.TrimSpace(c.FlakyOrderID)),
	}
}

type envParser struct {
	getenv func(string) string
	err    error
}

func (p *envParser) fail(err error) {
	if err != nil {
		p.err = errors.Join(p.err, err)
	}
}

func (p *envParser) str(key string, dst *string) {
	if v := strings.TrimSpace(p.getenv(key)); v != "" {
		*dst = v
	}
}

func (p *envParser) list(key string, dst *[]string) {
	raw := p.getenv(key)
	if strings.TrimSpace(raw) == "" {
		return
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	*dst = out
}

func (p *envParser) integer(key string, dst *int) {
	raw := strings.TrimSpace(p.getenv(key))
	if raw == "" {
		return
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.fail(errs.NewValueIsInvalidErrorWithCause(key, err))
		return
	}
	*dst = v
}

func (p *envParser) duration(key string, dst *time.Duration) {
	raw := strings.TrimSpace(p.getenv(key))
	if raw == "" {
		return
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		p.fail(errs.NewValueIsInvalidErrorWithCause(key, err))
		return
	}
	*dst = v
}

func (p *envParser) boolean(key string, dst *bool) {
	raw := strings.TrimSpace(p.getenv(key))
	if raw == "" {
		return
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		p.fail(errs.NewValueIsInvalidErrorWithCause(key, err))
		return
	}
	*dst = v
}

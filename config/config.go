package config

import (
	"book_rental_dapp/internal/model"
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Env               string        `env:"ENV" envDefault:"local"`
	LogLevel          string        `env:"LOG_LEVEL" envDefault:"info"`
	MaxGoroutineCnt   int           `env:"MAX_GOROUTINE_CNT" envDefault:"0"`
	BooksPerPage      int           `env:"BOOKS_PER_PAGE" envDefault:"5"`
	SessionExpiration time.Duration `env:"SESSION_EXPIRATION" envDefault:"720h"`
	Chain             Chain
	Economics         Economics
	Gateway           Gateway
	Pinning           Pinning
	Postgres          Postgres
	Redis             Redis
	Telegram          Telegram
	Jobs              Jobs
}

type Chain struct {
	RpcUrl          string `env:"CHAIN_RPC_URL"`
	ContractAddress string `env:"CHAIN_CONTRACT_ADDRESS"`
	ChainID         int64  `env:"CHAIN_ID"`
	PrivateKey      string `env:"CHAIN_PRIVATE_KEY" envDefault:""`
}

type Economics struct {
	Model            string `env:"ECONOMIC_MODEL" envDefault:"time_based"`
	MaxPenaltyDays   string `env:"MAX_PENALTY_DAYS" envDefault:"5"`
	PenaltyPerDayWei string `env:"PENALTY_PER_DAY_WEI" envDefault:"100000000000000"`
	SecondsPerDay    string `env:"SECONDS_PER_DAY" envDefault:"86400"`
}

type Gateway struct {
	BaseUrl       string        `env:"GATEWAY_BASE_URL"`
	FallbackImage string        `env:"GATEWAY_FALLBACK_IMAGE" envDefault:"/default-image.jpg"`
	Timeout       time.Duration `env:"GATEWAY_TIMEOUT" envDefault:"15s"`
	ProxyUrl      string        `env:"PROXY_URL" envDefault:""`
}

type Pinning struct {
	Backend       string        `env:"PINNING_BACKEND" envDefault:"presigned"`
	PresignUrl    string        `env:"PINNING_PRESIGN_URL" envDefault:""`
	S3Endpoint    string        `env:"PINNING_S3_ENDPOINT" envDefault:""`
	S3AccessKey   string        `env:"PINNING_S3_ACCESS_KEY" envDefault:""`
	S3SecretKey   string        `env:"PINNING_S3_SECRET_KEY" envDefault:""`
	S3Bucket      string        `env:"PINNING_S3_BUCKET" envDefault:""`
	S3UseSSL      bool          `env:"PINNING_S3_USE_SSL" envDefault:"true"`
	UploadTimeout time.Duration `env:"PINNING_UPLOAD_TIMEOUT" envDefault:"60s"`
}

type Postgres struct {
	Host            string `env:"PG_HOST" envDefault:""`
	Port            int    `env:"PG_PORT" envDefault:"5432"`
	DbName          string `env:"PG_DB_NAME" envDefault:"book_rental"`
	Password        string `env:"PG_PASSWORD" envDefault:""`
	User            string `env:"PG_USER" envDefault:"postgres"`
	MaxOpenConns    int    `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`
	ConnMaxLifetime int    `env:"PG_CONN_MAX_LIFETIME" envDefault:"300"`
	MaxIdleConns    int    `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxIdleTime int    `env:"PG_CONN_MAX_IDLE_TIME" envDefault:"60"`
	MigrationsDir   string `env:"PG_MIGRATIONS_DIR" envDefault:"migrations"`
}

type Redis struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     int    `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`

	DialTimeout time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	OpTimeout   time.Duration `env:"REDIS_OP_TIMEOUT" envDefault:"2s"`
}

type Telegram struct {
	Token      string        `env:"TELEGRAM_TOKEN" envDefault:""`
	UpdTimeout time.Duration `env:"TELEGRAM_UPD_TIMEOUT" envDefault:"10s"`
}

type Jobs struct {
	OverdueCheckInterval time.Duration `env:"JOBS_OVERDUE_CHECK_INTERVAL" envDefault:"1h"`
	ChainProbeInterval   time.Duration `env:"JOBS_CHAIN_PROBE_INTERVAL" envDefault:"30s"`
	ChainProbeTimeout    time.Duration `env:"JOBS_CHAIN_PROBE_TIMEOUT" envDefault:"5s"`
}

func MustLoad() *Config {
	_ = godotenv.Load(".env")

	cfg := &Config{}

	opts := env.Options{RequiredIfNoDef: true}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		log.Fatalf("parse config error: %s", err)
	}

	return cfg
}

// EconomicModel parses the configured economic model tag.
func (c *Config) EconomicModel() (model.EconomicModel, error) {
	return model.ParseEconomicModel(c.Economics.Model)
}

// EconomicsParams parses the contract constants once, as exact integers.
func (c *Config) EconomicsParams() (model.EconomicsParams, error) {
	maxPenaltyDays, err := parseUint(c.Economics.MaxPenaltyDays, "MAX_PENALTY_DAYS")
	if err != nil {
		return model.EconomicsParams{}, err
	}

	penaltyPerDay, err := parseUint(c.Economics.PenaltyPerDayWei, "PENALTY_PER_DAY_WEI")
	if err != nil {
		return model.EconomicsParams{}, err
	}

	secondsPerDay, err := parseUint(c.Economics.SecondsPerDay, "SECONDS_PER_DAY")
	if err != nil {
		return model.EconomicsParams{}, err
	}

	if secondsPerDay.Sign() == 0 {
		return model.EconomicsParams{}, fmt.Errorf("SECONDS_PER_DAY must be positive")
	}

	return model.EconomicsParams{
		MaxPenaltyDays:   maxPenaltyDays,
		PenaltyPerDayWei: penaltyPerDay,
		SecondsPerDay:    secondsPerDay,
	}, nil
}

func parseUint(s, name string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("%s must be a non-negative integer, got %q", name, s)
	}
	return v, nil
}

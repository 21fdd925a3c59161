package config

import (
	"time"

	"github.com/shopspring/decimal"
)

type DB struct {
	Url          string `envconfig:"URL"`
	AutoMigrate  bool   `envconfig:"AUTO_MIGRATE" default:"false"`
	MaxOpenConns int    `envconfig:"MAX_OPEN_CONNS" default:"25"`
}

// Memory seeds the in-memory account store used when no database URL is set.
// Accounts is a list of id:balance pairs, e.g. "A123:1000.00,C456:1000.00".
type Memory struct {
	Accounts map[string]string `envconfig:"ACCOUNTS"`
}

type Transfer struct {
	MinimumAmount decimal.Decimal `envconfig:"MINIMUM_AMOUNT" default:"1.00"`
}

type Fee struct {
	Strategy             string          `envconfig:"STRATEGY" default:"zero"`
	FlatAmount           decimal.Decimal `envconfig:"FLAT_AMOUNT" default:"0.00"`
	ServiceFeePercentage decimal.Decimal `envconfig:"SERVICE_FEE_PERCENTAGE" default:"0.01"`
}

type ServiceWindow struct {
	Enabled  bool   `envconfig:"ENABLED" default:"true"`
	Begin    string `envconfig:"BEGIN" default:"05:59"`
	End      string `envconfig:"END" default:"21:59"`
	TimeZone string `envconfig:"TIMEZONE" default:"Local"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"json"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[banktransfer]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

type App struct {
	Env           string         `envconfig:"APP_ENV" default:"development"`
	Server        *Server        `envconfig:"SERVER"`
	Log           *Log           `envconfig:"LOG"`
	DB            *DB            `envconfig:"DATABASE"`
	Memory        *Memory        `envconfig:"MEMORY"`
	Transfer      *Transfer      `envconfig:"TRANSFER"`
	Fee           *Fee           `envconfig:"FEE"`
	ServiceWindow *ServiceWindow `envconfig:"SERVICE_WINDOW"`
	RateLimit     *RateLimit     `envconfig:"RATE_LIMIT"`
}

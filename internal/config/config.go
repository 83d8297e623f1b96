package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer

	Database  Database  `envPrefix:"DB_"`
	JWT       JWT       `envPrefix:"JWT_"`
	Razorpay  Razorpay  `envPrefix:"RAZORPAY_"`
	BrainTree Braintree `envPrefix:"BRAINTREE_"`
	Postmark  Postmark  `envPrefix:"POSTMARK_"`

	SeedOnStartup      bool `env:"SEED_ON_STARTUP" envDefault:"false"`
	MaintenanceEnabled bool `env:"MAINTENANCE_ENABLED" envDefault:"false"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

func (e Environment) IsDevelopment() bool {
	return e.Name == "development"
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host            string        `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port            string        `env:"HTTP_PORT" envDefault:"3001"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

func (h HTTPServer) Address() string {
	return h.Host + ":" + h.Port
}

// Database describes the relational store. URL wins over the discrete fields.
type Database struct {
	Dialect  string `env:"DIALECT" envDefault:"postgres"` // postgres, mysql, sqlite
	URL      string `env:"URL"`
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT"`
	Name     string `env:"NAME" envDefault:"freshdb"`
	User     string `env:"USER" envDefault:"postgres"`
	Password string `env:"PASSWORD"`
	SSLMode  string `env:"SSLMODE" envDefault:"disable"`

	MaxOpenConns    int           `env:"MAX_OPEN_CONNS" envDefault:"5"`
	MaxIdleConns    int           `env:"MAX_IDLE_CONNS" envDefault:"2"`
	ConnMaxIdleTime time.Duration `env:"CONN_MAX_IDLE_TIME" envDefault:"10s"`
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME" envDefault:"30m"`
}

// DSN returns the driver-specific data source name.
func (d Database) DSN() (string, error) {
	if d.URL != "" {
		return d.URL, nil
	}

	switch d.Dialect {
	case "postgres":
		port := d.Port
		if port == "" {
			port = "5432"
		}
		return fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			d.Host, port, d.User, d.Password, d.Name, d.SSLMode,
		), nil
	case "mysql":
		port := d.Port
		if port == "" {
			port = "3306"
		}
		params := url.Values{}
		params.Set("charset", "utf8mb4")
		params.Set("parseTime", "True")
		params.Set("loc", "UTC")
		if d.SSLMode != "" && d.SSLMode != "disable" {
			params.Set("tls", "true")
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", d.User, d.Password, d.Host, port, d.Name, params.Encode()), nil
	case "sqlite":
		if strings.TrimSpace(d.Name) == "" {
			return "", fmt.Errorf("sqlite requires DB_NAME or DB_URL")
		}
		return d.Name, nil
	default:
		return "", fmt.Errorf("unsupported database dialect %q", d.Dialect)
	}
}

type JWT struct {
	Secret string        `env:"SECRET" envDefault:"your-secret-key"`
	TTL    time.Duration `env:"TTL" envDefault:"24h"`
}

type Razorpay struct {
	BaseApiURL string        `env:"BASE_API_URL" envDefault:"https://api.razorpay.com"`
	KeyID      string        `env:"KEY_ID"`
	KeySecret  string        `env:"KEY_SECRET"`
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

type Braintree struct {
	Environment string `env:"ENVIRONMENT" envDefault:"sandbox"`
	MerchantID  string `env:"MERCHANT_ID"`
	PublicKey   string `env:"PUBLIC_KEY"`
	PrivateKey  string `env:"PRIVATE_KEY"`
}

func (b Braintree) Enabled() bool {
	return b.MerchantID != ""
}

type Postmark struct {
	BaseURL      string        `env:"BASE_URL" envDefault:"https://api.postmarkapp.com"`
	ServerToken  string        `env:"SERVER_TOKEN"`
	AccountToken string        `env:"ACCOUNT_TOKEN"`
	Sender       string        `env:"SENDER" envDefault:"orders@freshgrupo.com"`
	Timeout      time.Duration `env:"TIMEOUT" envDefault:"5s"`
}

func (p Postmark) Enabled() bool {
	return p.ServerToken != ""
}

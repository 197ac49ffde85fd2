package config

import (
	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"github.com/mxpv/pledgesync/pkg/model"
)

type Server struct {
	// Port is a server port to listen to
	Port int `toml:"port"`
	// BindAddress to listen on, "*" or empty means all interfaces
	BindAddress string `toml:"bind_address"`
}

type Database struct {
	// URL is a Postgres connection string.
	// Hosts in "project:region:instance" form are dialed through Cloud SQL proxy.
	URL string `toml:"url"`
	// Install creates missing tables on start
	Install bool `toml:"install"`
}

// Redis is optional, event deduplication and stats are disabled without it
type Redis struct {
	URL string `toml:"url"`
	// EventTTL is how long processed webhook event IDs are remembered
	EventTTL Duration `toml:"event_ttl"`
}

type Stripe struct {
	// APIKey is a secret key used for checkout sessions and refunds
	APIKey string `toml:"api_key"`
	// WebhookSecret is a signing secret of the webhook endpoint (whsec_...)
	WebhookSecret string `toml:"webhook_secret"`
	// Tolerance is the maximum age of a signed webhook
	Tolerance Duration `toml:"tolerance"`
}

// Queue is an SQS queue the mailer reads confirmations from.
// Confirmations are only logged when URL is empty.
type Queue struct {
	URL    string `toml:"url"`
	Region string `toml:"region"`
}

// Kafka receives pledge events, publishing is disabled when no brokers set
type Kafka struct {
	Brokers StringSlice `toml:"brokers"`
	Topic   string      `toml:"topic"`
}

type Sweeper struct {
	// Schedule is a cron expression of how often to look for funded campaigns
	Schedule string `toml:"schedule"`
}

type Config struct {
	// Server is the web server configuration
	Server   Server   `toml:"server"`
	Database Database `toml:"database"`
	Redis    Redis    `toml:"redis"`
	Stripe   Stripe   `toml:"stripe"`
	Queue    Queue    `toml:"queue"`
	Kafka    Kafka    `toml:"kafka"`
	Sweeper  Sweeper  `toml:"sweeper"`
}

// LoadConfig loads TOML configuration from a file path
func LoadConfig(path string) (*Config, error) {
	config := Config{}
	_, err := toml.DecodeFile(path, &config)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config file")
	}

	config.applyDefaults()

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Override replaces secrets with values from command line or environment
func (c *Config) Override(webhookSecret, apiKey string) {
	if webhookSecret != "" {
		c.Stripe.WebhookSecret = webhookSecret
	}

	if apiKey != "" {
		c.Stripe.APIKey = apiKey
	}
}

// Warn logs settings that are allowed but leave parts of the service unusable
func (c *Config) Warn() {
	if c.Stripe.WebhookSecret == "" {
		log.Warn("stripe webhook secret is not configured, all webhooks will be rejected")
	}

	if c.Stripe.APIKey == "" {
		log.Warn("stripe API key is not configured, checkout and refunds won't work")
	}
}

func (c *Config) validate() error {
	var result *multierror.Error

	if c.Database.URL == "" {
		result = multierror.Append(result, errors.New("database URL is required"))
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		result = multierror.Append(result, errors.Errorf("invalid port %d", c.Server.Port))
	}

	if c.Stripe.Tolerance.Duration < 0 {
		result = multierror.Append(result, errors.New("signature tolerance can't be negative"))
	}

	if c.Queue.URL != "" && c.Queue.Region == "" {
		result = multierror.Append(result, errors.New("queue region is required"))
	}

	if _, err := cron.ParseStandard(c.Sweeper.Schedule); err != nil {
		result = multierror.Append(result, errors.Wrapf(err, "invalid sweeper schedule %q", c.Sweeper.Schedule))
	}

	return result.ErrorOrNil()
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = model.DefaultPort
	}

	if c.Redis.EventTTL.Duration == 0 {
		c.Redis.EventTTL.Duration = model.DefaultEventTTL
	}

	if c.Stripe.Tolerance.Duration == 0 {
		c.Stripe.Tolerance.Duration = model.DefaultSignatureTolerance
	}

	if c.Kafka.Topic == "" {
		c.Kafka.Topic = model.DefaultEventsTopic
	}

	if c.Sweeper.Schedule == "" {
		c.Sweeper.Schedule = model.DefaultSweepSchedule
	}
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultNotifyNotice is appended to the confirmation reply when the webhook notifier fires
const DefaultNotifyNotice = "\nYou have a Beeminder account. Cute. I sent them a message."

// Config holds application configuration loaded from environment variables
type Config struct {
	// AWS
	AWSRegion string

	// Slack
	SlackBotToken string
	SlackDebug    bool

	// DynamoDB
	PapersTable string

	// Notifications
	NotifyWebhookURL     string
	NotifyUsers          []string
	NotifyNotice         string
	NotifyTimeoutSeconds int

	// RabbitMQ
	AMQPURL        string
	AMQPExchange   string
	AMQPRoutingKey string

	// Step Functions
	EnrichmentStateMachineArn string

	// Environment
	Environment string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		AWSRegion:                 getEnv("AWS_REGION", "us-east-1"),
		SlackBotToken:             getEnv("SLACK_BOT_TOKEN", ""),
		SlackDebug:                getEnvBool("SLACK_DEBUG", false),
		PapersTable:               getEnv("PAPERS_TABLE", "paper-a-day_papers"),
		NotifyWebhookURL:          getEnv("NOTIFY_WEBHOOK_URL", ""),
		NotifyUsers:               getEnvList("NOTIFY_USERS"),
		NotifyNotice:              getEnv("NOTIFY_NOTICE", DefaultNotifyNotice),
		NotifyTimeoutSeconds:      getEnvInt("NOTIFY_TIMEOUT_SECONDS", 5),
		AMQPURL:                   getEnv("AMQP_URL", ""),
		AMQPExchange:              getEnv("AMQP_EXCHANGE", "paper-a-day"),
		AMQPRoutingKey:            getEnv("AMQP_ROUTING_KEY", "paper.read"),
		EnrichmentStateMachineArn: getEnv("ENRICHMENT_STATE_MACHINE_ARN", ""),
		Environment:               getEnv("ENVIRONMENT", "dev"),
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that required configuration is present
func (c *Config) Validate() error {
	if c.PapersTable == "" {
		return fmt.Errorf("PAPERS_TABLE is required")
	}
	if len(c.NotifyUsers) > 0 && c.NotifyWebhookURL == "" {
		return fmt.Errorf("NOTIFY_WEBHOOK_URL is required when NOTIFY_USERS is set")
	}
	return nil
}

// ValidateLambda checks configuration the webhook handler needs on top of Validate
func (c *Config) ValidateLambda() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.SlackBotToken == "" {
		return fmt.Errorf("SLACK_BOT_TOKEN is required for Lambda")
	}
	return nil
}

// WebhookEnabled reports whether the webhook notifier should be wired
func (c *Config) WebhookEnabled() bool {
	return c.NotifyWebhookURL != "" && len(c.NotifyUsers) > 0
}

// PublisherEnabled reports whether read events should be published to RabbitMQ
func (c *Config) PublisherEnabled() bool {
	return c.AMQPURL != ""
}

// GetNotifyTimeout returns the outbound notification timeout as a duration
func (c *Config) GetNotifyTimeout() time.Duration {
	return time.Duration(c.NotifyTimeoutSeconds) * time.Second
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, ok := os.LookupEnv(key); ok {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		switch value {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return defaultValue
}

// getEnvList splits a comma separated variable, dropping blank entries
func getEnvList(key string) []string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

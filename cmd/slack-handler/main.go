package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	appconfig "github.com/savaki/paper-a-day/pkg/config"
	"github.com/savaki/paper-a-day/pkg/dynamodb"
	"github.com/savaki/paper-a-day/pkg/handler"
	"github.com/savaki/paper-a-day/pkg/notify"
	slackclient "github.com/savaki/paper-a-day/pkg/slack"
	"github.com/savaki/paper-a-day/pkg/stepfunctions"
)

func main() {
	ctx := context.Background()

	// Load configuration once per cold start
	cfg, err := appconfig.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := cfg.ValidateLambda(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	// Initialize AWS SDK
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(cfg.AWSRegion))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}

	// Initialize clients
	slackClient := slackclient.NewClient(cfg.SlackBotToken, cfg.SlackDebug)
	readRepo := dynamodb.NewReadRecordRepository(dynamodb.NewClientWithConfig(awsCfg), cfg.PapersTable)

	var notifiers notify.Chain
	if cfg.WebhookEnabled() {
		notifiers = append(notifiers, notify.NewWebhook(cfg.NotifyWebhookURL, cfg.NotifyUsers, cfg.NotifyNotice, cfg.GetNotifyTimeout()))
	}
	if cfg.PublisherEnabled() {
		notifiers = append(notifiers, notify.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPRoutingKey, cfg.GetNotifyTimeout()))
	}

	interactions := handler.NewInteractionHandler(slackClient, readRepo, notifiers)
	if cfg.EnrichmentStateMachineArn != "" {
		interactions = interactions.WithEnricher(stepfunctions.NewClient(awsCfg, cfg.EnrichmentStateMachineArn))
	}

	d := handler.NewDispatcher(handler.NewFileEventHandler(slackClient), interactions)

	log.Printf("Starting paper-a-day handler (env=%s, table=%s, notifiers=%d)", cfg.Environment, cfg.PapersTable, len(notifiers))
	lambda.Start(d.Handle)
}

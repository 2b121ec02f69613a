package stepfunctions

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sfn"
	"github.com/savaki/paper-a-day/pkg/models"
)

// Client is a wrapper around AWS Step Functions SDK
type Client struct {
	client          *sfn.Client
	stateMachineArn string
}

// NewClient creates a new Step Functions client bound to one state machine
func NewClient(cfg aws.Config, stateMachineArn string) *Client {
	return &Client{
		client:          sfn.NewFromConfig(cfg),
		stateMachineArn: stateMachineArn,
	}
}

// StartEnrichment starts an execution that fills in the reserved paper
// fields (title, DOI, ...) for a freshly recorded read.
func (c *Client) StartEnrichment(ctx context.Context, rec *models.ReadRecord) (string, error) {
	input := map[string]string{
		"id":           rec.ID,
		"submissionId": rec.SubmissionID,
		"paper":        rec.Paper,
		"user":         rec.User,
	}

	inputJSON, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("marshal input: %w", err)
	}

	// Execution names must be unique per state machine
	result, err := c.client.StartExecution(ctx, &sfn.StartExecutionInput{
		StateMachineArn: &c.stateMachineArn,
		Input:           aws.String(string(inputJSON)),
		Name:            aws.String(rec.SubmissionID),
	})
	if err != nil {
		return "", fmt.Errorf("start execution: %w", err)
	}

	return *result.ExecutionArn, nil
}

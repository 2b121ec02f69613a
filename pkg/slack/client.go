package slack

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"
)

// Client wraps the Slack SDK client for use throughout the application
type Client struct {
	client *slack.Client
}

// NewClient creates a new Slack client with bot token
func NewClient(botToken string, debug bool) *Client {
	return &Client{
		client: slack.New(botToken, slack.OptionDebug(debug)),
	}
}

// GetFileInfo fetches the metadata of an uploaded file
func (c *Client) GetFileInfo(ctx context.Context, fileID string) (*slack.File, error) {
	file, _, _, err := c.client.GetFileInfoContext(ctx, fileID, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("get file info: %w", err)
	}

	return file, nil
}

// PostMessage posts a message to a Slack channel
func (c *Client) PostMessage(ctx context.Context, channelID string, opts ...slack.MsgOption) (string, error) {
	_, timestamp, err := c.client.PostMessageContext(ctx, channelID, opts...)
	if err != nil {
		return "", fmt.Errorf("post message: %w", err)
	}

	return timestamp, nil
}

// PostText posts a plain text message to a Slack channel
func (c *Client) PostText(ctx context.Context, channelID, text string) (string, error) {
	return c.PostMessage(ctx, channelID, slack.MsgOptionText(text, false))
}

// PostEphemeralAttachments posts attachments visible only to userID
func (c *Client) PostEphemeralAttachments(ctx context.Context, channelID, userID string, attachments ...slack.Attachment) (string, error) {
	timestamp, err := c.client.PostEphemeralContext(ctx, channelID, userID, slack.MsgOptionAttachments(attachments...))
	if err != nil {
		return "", fmt.Errorf("post ephemeral: %w", err)
	}

	return timestamp, nil
}

// DeleteMessage deletes a message posted by the bot
func (c *Client) DeleteMessage(ctx context.Context, channelID, timestamp string) error {
	_, _, err := c.client.DeleteMessageContext(ctx, channelID, timestamp)
	if err != nil {
		return fmt.Errorf("delete message: %w", err)
	}

	return nil
}

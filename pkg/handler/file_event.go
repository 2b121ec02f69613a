package handler

import (
	"context"
	"fmt"
	"log"

	"github.com/savaki/paper-a-day/pkg/models"
	"github.com/slack-go/slack"
)

// SlackClientInterface defines the interface for Slack operations
type SlackClientInterface interface {
	GetFileInfo(ctx context.Context, fileID string) (*slack.File, error)
	PostEphemeralAttachments(ctx context.Context, channelID, userID string, attachments ...slack.Attachment) (string, error)
	DeleteMessage(ctx context.Context, channelID, timestamp string) error
	PostText(ctx context.Context, channelID, text string) (string, error)
}

// FileEventHandler turns PDF uploads into read confirmation prompts
type FileEventHandler struct {
	slackClient SlackClientInterface
}

// NewFileEventHandler creates a new file event handler
func NewFileEventHandler(slackClient SlackClientInterface) *FileEventHandler {
	return &FileEventHandler{
		slackClient: slackClient,
	}
}

// HandleFileEvent prompts the uploader when event is a PDF upload.
// Events that are not eligible are ignored without error.
func (h *FileEventHandler) HandleFileEvent(ctx context.Context, event models.PlatformEvent) error {
	if event.Kind() == models.EventOther {
		log.Printf("Ignoring %s event: %s", models.EventOther, event.Type)
		return nil
	}
	if event.FileID == "" {
		log.Printf("Ignoring %s event without file_id", event.Type)
		return nil
	}

	file, err := h.slackClient.GetFileInfo(ctx, event.FileID)
	if err != nil {
		log.Printf("Warning: failed to fetch file %s: %v", event.FileID, err)
		return nil
	}

	if !isPaper(file) {
		log.Printf("Ignoring %s file %s", file.Filetype, event.FileID)
		return nil
	}

	prompt := BuildConfirmationPrompt(event, file)
	if _, err := h.slackClient.PostEphemeralAttachments(ctx, event.ChannelID, event.UserID, prompt); err != nil {
		return fmt.Errorf("post confirmation prompt: %w", err)
	}

	log.Printf("Asked user %s in channel %s about file %s", event.UserID, event.ChannelID, event.FileID)
	return nil
}

// isPaper reports whether file is eligible for a read confirmation
func isPaper(file *slack.File) bool {
	return file != nil && file.Filetype == "pdf"
}

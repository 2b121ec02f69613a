package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/savaki/paper-a-day/pkg/models"
	"github.com/savaki/paper-a-day/pkg/notify"
	"github.com/slack-go/slack"
)

// Reply texts
const (
	declineText      = "Okay, I won't do anything then. We don't want another ... incident."
	confirmText      = "Okay, I'll mark %s down as having read %s."
	announceText     = "%s just read %s :tada:"
	missingFileText  = "Sorry, I couldn't find that file anymore, so nothing was recorded."
	recordFailedText = "Sorry, I couldn't record that read. Please try again."
)

// ReadRecordStore persists confirmed reads
type ReadRecordStore interface {
	Save(ctx context.Context, rec *models.ReadRecord) error
}

// Enricher starts out-of-band enrichment of a recorded paper
type Enricher interface {
	StartEnrichment(ctx context.Context, rec *models.ReadRecord) (string, error)
}

// Reply is the acknowledgment returned to Slack. An empty Text means a bare 200.
type Reply struct {
	Text string
}

// InteractionHandler resolves button clicks and message shortcuts into read records
type InteractionHandler struct {
	slackClient SlackClientInterface
	store       ReadRecordStore
	notifier    notify.Notifier
	enricher    Enricher
}

// NewInteractionHandler creates a new interaction handler
func NewInteractionHandler(slackClient SlackClientInterface, store ReadRecordStore, notifier notify.Notifier) *InteractionHandler {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &InteractionHandler{
		slackClient: slackClient,
		store:       store,
		notifier:    notifier,
	}
}

// WithEnricher starts enrichment after every successful save
func (h *InteractionHandler) WithEnricher(enricher Enricher) *InteractionHandler {
	h.enricher = enricher
	return h
}

// HandleInteraction dispatches on the callback type
func (h *InteractionHandler) HandleInteraction(ctx context.Context, callback slack.InteractionCallback) Reply {
	switch callback.Type {
	case slack.InteractionTypeInteractionMessage:
		return h.handleButton(ctx, callback)
	case slack.InteractionTypeMessageAction:
		return h.handleShortcut(ctx, callback)
	default:
		log.Printf("Ignoring interaction type: %s", callback.Type)
		return Reply{}
	}
}

// handleButton resolves a click on the confirmation prompt
func (h *InteractionHandler) handleButton(ctx context.Context, callback slack.InteractionCallback) Reply {
	h.deletePrompt(ctx, callback)

	if callback.CallbackID != CallbackReadPaper {
		log.Printf("Ignoring button callback: %s", callback.CallbackID)
		return Reply{}
	}

	value, ok := actionValue(callback)
	if !ok {
		log.Printf("Ignoring %s callback without actions", callback.CallbackID)
		return Reply{}
	}

	if value == ActionValueNo {
		log.Printf("User %s declined the prompt", callback.User.Name)
		return Reply{Text: declineText}
	}

	return h.confirmRead(ctx, callback, value)
}

// confirmRead records a "yes" for fileID
func (h *InteractionHandler) confirmRead(ctx context.Context, callback slack.InteractionCallback, fileID string) Reply {
	file, err := h.slackClient.GetFileInfo(ctx, fileID)
	if err != nil {
		log.Printf("Warning: failed to fetch file %s: %v", fileID, err)
		return Reply{Text: missingFileText}
	}

	user := callback.User.Name
	channelID := callback.Channel.ID
	paper := models.NewPaper(file.ID, file.Name)
	anon := models.IsAnonymousChannel(callback.Channel.Name)

	rec := models.NewReadRecord(paper, user, channelID, snapshot(file), anon)
	if !h.record(ctx, rec) {
		return Reply{Text: recordFailedText}
	}

	suffix := h.notify(ctx, notify.Read{User: user, Paper: paper, Anonymous: anon})
	if !anon {
		h.announce(ctx, channelID, user, paper)
	}

	return Reply{Text: fmt.Sprintf(confirmText, user, paper.Filename) + suffix}
}

// handleShortcut records a read straight from the "mark paper read" message shortcut
func (h *InteractionHandler) handleShortcut(ctx context.Context, callback slack.InteractionCallback) Reply {
	if callback.CallbackID != CallbackShortcutMarkRead {
		log.Printf("Ignoring message action: %s", callback.CallbackID)
		return Reply{}
	}

	paper, ok := paperFromShortcut(callback)
	if !ok {
		log.Printf("Ignoring incomplete %s payload", callback.CallbackID)
		return Reply{}
	}

	user := callback.User.Name
	channelID := callback.Channel.ID

	rec := models.NewReadRecord(paper, user, channelID, snapshot(callback.Message.Files), false)
	if !h.record(ctx, rec) {
		return Reply{}
	}

	h.notify(ctx, notify.Read{User: user, Paper: paper})
	h.announce(ctx, channelID, user, paper)
	return Reply{}
}

// deletePrompt removes the prompt that was clicked. The prompt may already
// be gone, so failure only reports false.
func (h *InteractionHandler) deletePrompt(ctx context.Context, callback slack.InteractionCallback) bool {
	if err := h.slackClient.DeleteMessage(ctx, callback.Channel.ID, callback.MessageTs); err != nil {
		log.Printf("Warning: failed to delete prompt %s: %v", callback.MessageTs, err)
		return false
	}
	return true
}

// record saves rec and, when configured, kicks off enrichment
func (h *InteractionHandler) record(ctx context.Context, rec *models.ReadRecord) bool {
	if err := h.store.Save(ctx, rec); err != nil {
		log.Printf("ERROR: failed to save read of %s by %s: %v", rec.ID, rec.User, err)
		return false
	}

	if h.enricher != nil {
		executionArn, err := h.enricher.StartEnrichment(ctx, rec)
		if err != nil {
			log.Printf("Warning: failed to start enrichment for %s: %v", rec.ID, err)
		} else {
			log.Printf("Started enrichment execution: %s", executionArn)
		}
	}
	return true
}

// notify returns the user-facing suffix; notifier errors are logged only
func (h *InteractionHandler) notify(ctx context.Context, read notify.Read) string {
	suffix, err := h.notifier.NotifyRead(ctx, read)
	if err != nil {
		log.Printf("Warning: notification for %s failed: %v", read.User, err)
	}
	return suffix
}

// announce tells the channel about the read
func (h *InteractionHandler) announce(ctx context.Context, channelID, user string, paper models.Paper) {
	text := fmt.Sprintf(announceText, user, paper.Filename)
	if _, err := h.slackClient.PostText(ctx, channelID, text); err != nil {
		log.Printf("Warning: failed to announce read in %s: %v", channelID, err)
	}
}

// actionValue returns the value of the first attachment action
func actionValue(callback slack.InteractionCallback) (string, bool) {
	actions := callback.ActionCallback.AttachmentActions
	if len(actions) == 0 || actions[0] == nil {
		return "", false
	}
	return actions[0].Value, true
}

// paperFromShortcut reads the paper from the first file of the shortcut's
// message. ok is false when any field the shortcut needs is missing.
func paperFromShortcut(callback slack.InteractionCallback) (paper models.Paper, ok bool) {
	if callback.Channel.ID == "" || callback.User.Name == "" {
		return models.Paper{}, false
	}

	files := callback.Message.Files
	if len(files) == 0 || files[0].ID == "" || files[0].Name == "" {
		return models.Paper{}, false
	}

	return models.NewPaper(files[0].ID, files[0].Name), true
}

// snapshot serialises raw file metadata for the record
func snapshot(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Warning: failed to snapshot file metadata: %v", err)
		return ""
	}
	return string(data)
}

package handler

import (
	"encoding/json"
	"fmt"
	"net/url"
	"testing"

	"github.com/slack-go/slack"
)

const promptTS = "1700000000.000100"

// formBody wraps an interaction payload the way Slack posts it
func formBody(payload string) string {
	return url.Values{"payload": {payload}}.Encode()
}

// buttonPayload is a click on the read-paper prompt
func buttonPayload(channelName, value string) string {
	return fmt.Sprintf(`{
		"type": "interactive_message",
		"callback_id": "read-paper",
		"channel": {"id": "C123", "name": %q},
		"user": {"id": "U456", "name": "alice"},
		"message_ts": %q,
		"actions": [{"name": "yes", "type": "button", "value": %q}]
	}`, channelName, promptTS, value)
}

// shortcutPayload is the mark-paper-read message shortcut; files is raw JSON or empty
func shortcutPayload(files string) string {
	message := `{"type": "message", "text": "look at this"}`
	if files != "" {
		message = fmt.Sprintf(`{"type": "message", "files": %s}`, files)
	}
	return fmt.Sprintf(`{
		"type": "message_action",
		"callback_id": "shortcut-mark_paper_read",
		"channel": {"id": "C123", "name": "general"},
		"user": {"id": "U456", "name": "alice"},
		"message": %s
	}`, message)
}

func callbackFromJSON(t *testing.T, raw string) slack.InteractionCallback {
	t.Helper()
	var callback slack.InteractionCallback
	if err := json.Unmarshal([]byte(raw), &callback); err != nil {
		t.Fatalf("unmarshal callback: %v", err)
	}
	return callback
}

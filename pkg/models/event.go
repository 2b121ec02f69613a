package models

// EventType is the kind of asynchronous Slack event received
type EventType string

// EventType constants
const (
	EventFileCreated EventType = "file_created"
	EventFileShared  EventType = "file_shared"
	EventOther       EventType = "other"
)

// PlatformEvent is the inner "event" object of a Slack event callback
type PlatformEvent struct {
	Type      EventType `json:"type"`
	ChannelID string    `json:"channel_id"`
	UserID    string    `json:"user_id"`
	FileID    string    `json:"file_id"`
}

// IsFileEvent returns true for the file events that may trigger a prompt
func (e PlatformEvent) IsFileEvent() bool {
	return e.Type == EventFileCreated || e.Type == EventFileShared
}

// Kind normalises Type so anything that is not a file event reads as EventOther
func (e PlatformEvent) Kind() EventType {
	if e.IsFileEvent() {
		return e.Type
	}
	return EventOther
}

// SlackEventCallback is the outer envelope of Slack Events API requests
type SlackEventCallback struct {
	Type      string         `json:"type"`
	Token     string         `json:"token"`
	Challenge string         `json:"challenge"`
	TeamID    string         `json:"team_id"`
	EventID   string         `json:"event_id"`
	Event     *PlatformEvent `json:"event"`
}

// CallbackTypeURLVerification is the envelope type of Slack's endpoint handshake
const CallbackTypeURLVerification = "url_verification"

package handler

import (
	"fmt"

	"github.com/savaki/paper-a-day/pkg/models"
	"github.com/slack-go/slack"
)

// Callback identifiers and action values shared between the prompt and the resolver
const (
	CallbackReadPaper        = "read-paper"
	CallbackShortcutMarkRead = "shortcut-mark_paper_read"
	ActionValueNo            = "NO"
)

// BuildConfirmationPrompt creates the ephemeral Yes/No question asking the
// uploader whether file is a paper they read. The yes button carries the
// file ID and asks for an explicit promise before it fires.
func BuildConfirmationPrompt(event models.PlatformEvent, file *slack.File) slack.Attachment {
	return slack.Attachment{
		Text:       fmt.Sprintf("Is this (%s) a paper you (<@%s>) read?", file.Name, event.UserID),
		Fallback:   "The office is now closed. [Closes window on your hands.]",
		CallbackID: CallbackReadPaper,
		Color:      "#3AA3E3",
		Actions: []slack.AttachmentAction{
			{
				Name:  "yes",
				Text:  "Yes!",
				Style: "danger",
				Type:  "button",
				Value: event.FileID,
				Confirm: &slack.ConfirmationField{
					Title:       "Don't be a weasel.",
					Text:        "It's better to not accomplish your goals than to be a liar!",
					OkText:      "I PROMISE I READ IT!",
					DismissText: "I did not read it.",
				},
			},
			{
				Name:  "no",
				Text:  "No.",
				Type:  "button",
				Value: ActionValueNo,
			},
		},
	}
}

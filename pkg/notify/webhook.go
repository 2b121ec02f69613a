package notify

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Webhook triggers an IFTTT-style maker webhook for users known to have a
// linked habit-tracking account.
type Webhook struct {
	url        string
	users      map[string]bool
	notice     string
	httpClient *http.Client
}

// NewWebhook creates a webhook notifier for the allow-listed users
func NewWebhook(webhookURL string, users []string, notice string, timeout time.Duration) *Webhook {
	allowed := make(map[string]bool, len(users))
	for _, u := range users {
		allowed[u] = true
	}
	return &Webhook{
		url:        webhookURL,
		users:      allowed,
		notice:     notice,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Allowed reports whether user has a linked account
func (w *Webhook) Allowed(user string) bool {
	return w.users[user]
}

// NotifyRead posts the paper filename to the webhook when user is allow-listed
func (w *Webhook) NotifyRead(ctx context.Context, read Read) (string, error) {
	if !w.Allowed(read.User) {
		return "", nil
	}

	form := url.Values{
		"value1": {read.Paper.Filename},
		"value2": {""},
		"value3": {""},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("post webhook: unexpected status %d", resp.StatusCode)
	}

	log.Printf("Sent webhook notification for %s reading %s", read.User, read.Paper.Filename)
	return w.notice, nil
}

// Package notify delivers confirmed reads to systems outside Slack.
package notify

import (
	"context"
	"errors"

	"github.com/savaki/paper-a-day/pkg/models"
)

// Read is a confirmed read handed to notifiers
type Read struct {
	User      string
	Paper     models.Paper
	Anonymous bool
}

// Notifier is told about every confirmed read. The returned suffix is
// appended to the reply shown to the user and may be empty.
type Notifier interface {
	NotifyRead(ctx context.Context, read Read) (string, error)
}

// Chain calls each notifier in order
type Chain []Notifier

// NotifyRead concatenates the suffixes of every notifier and joins their errors
func (c Chain) NotifyRead(ctx context.Context, read Read) (string, error) {
	var suffix string
	var errs []error
	for _, n := range c {
		s, err := n.NotifyRead(ctx, read)
		if err != nil {
			errs = append(errs, err)
		}
		suffix += s
	}
	return suffix, errors.Join(errs...)
}

// Nop never notifies anyone
type Nop struct{}

// NotifyRead implements Notifier
func (Nop) NotifyRead(context.Context, Read) (string, error) {
	return "", nil
}

package handler

import (
	"context"
	"errors"
	"sync"

	"github.com/savaki/paper-a-day/pkg/models"
	"github.com/savaki/paper-a-day/pkg/notify"
	"github.com/slack-go/slack"
)

type ephemeralCall struct {
	ChannelID   string
	UserID      string
	Attachments []slack.Attachment
}

type textCall struct {
	ChannelID string
	Text      string
}

type deleteCall struct {
	ChannelID string
	Timestamp string
}

// MockSlackClient mocks the SlackClientInterface for testing and records every call
type MockSlackClient struct {
	GetFileInfoFunc   func(ctx context.Context, fileID string) (*slack.File, error)
	DeleteMessageFunc func(ctx context.Context, channelID, timestamp string) error
	PostTextFunc      func(ctx context.Context, channelID, text string) (string, error)

	mu          sync.Mutex
	FileLookups []string
	Ephemerals  []ephemeralCall
	Deletes     []deleteCall
	Texts       []textCall
}

// Verify MockSlackClient implements SlackClientInterface
var _ SlackClientInterface = (*MockSlackClient)(nil)

func (m *MockSlackClient) GetFileInfo(ctx context.Context, fileID string) (*slack.File, error) {
	m.mu.Lock()
	m.FileLookups = append(m.FileLookups, fileID)
	m.mu.Unlock()
	if m.GetFileInfoFunc != nil {
		return m.GetFileInfoFunc(ctx, fileID)
	}
	return &slack.File{ID: fileID, Name: "attention.pdf", Filetype: "pdf"}, nil
}

func (m *MockSlackClient) PostEphemeralAttachments(ctx context.Context, channelID, userID string, attachments ...slack.Attachment) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Ephemerals = append(m.Ephemerals, ephemeralCall{ChannelID: channelID, UserID: userID, Attachments: attachments})
	return "1700000000.000100", nil
}

func (m *MockSlackClient) DeleteMessage(ctx context.Context, channelID, timestamp string) error {
	m.mu.Lock()
	m.Deletes = append(m.Deletes, deleteCall{ChannelID: channelID, Timestamp: timestamp})
	m.mu.Unlock()
	if m.DeleteMessageFunc != nil {
		return m.DeleteMessageFunc(ctx, channelID, timestamp)
	}
	return nil
}

func (m *MockSlackClient) PostText(ctx context.Context, channelID, text string) (string, error) {
	m.mu.Lock()
	m.Texts = append(m.Texts, textCall{ChannelID: channelID, Text: text})
	m.mu.Unlock()
	if m.PostTextFunc != nil {
		return m.PostTextFunc(ctx, channelID, text)
	}
	return "1700000000.000200", nil
}

// calls returns the total number of calls made to Slack
func (m *MockSlackClient) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.FileLookups) + len(m.Ephemerals) + len(m.Deletes) + len(m.Texts)
}

// MockStore records saved read records
type MockStore struct {
	SaveFunc func(ctx context.Context, rec *models.ReadRecord) error

	mu      sync.Mutex
	Records []*models.ReadRecord
}

var _ ReadRecordStore = (*MockStore)(nil)

func (m *MockStore) Save(ctx context.Context, rec *models.ReadRecord) error {
	if m.SaveFunc != nil {
		if err := m.SaveFunc(ctx, rec); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Records = append(m.Records, rec)
	return nil
}

func (m *MockStore) saved() []*models.ReadRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*models.ReadRecord(nil), m.Records...)
}

// MockNotifier records notified reads and returns a fixed suffix
type MockNotifier struct {
	Suffix string
	Err    error

	mu    sync.Mutex
	Reads []notify.Read
}

var _ notify.Notifier = (*MockNotifier)(nil)

func (m *MockNotifier) NotifyRead(ctx context.Context, read notify.Read) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Reads = append(m.Reads, read)
	return m.Suffix, m.Err
}

func (m *MockNotifier) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Reads)
}

// MockEnricher records enrichment requests
type MockEnricher struct {
	Err     error
	Started []string
}

var _ Enricher = (*MockEnricher)(nil)

func (m *MockEnricher) StartEnrichment(ctx context.Context, rec *models.ReadRecord) (string, error) {
	m.Started = append(m.Started, rec.ID)
	if m.Err != nil {
		return "", m.Err
	}
	return "arn:aws:states:us-east-1:123456789012:execution:enrich:" + rec.SubmissionID, nil
}

var errSlack = errors.New("slack api error")

package models

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// AnonymousChannelName is the channel name Slack reports for direct messages.
// Reads confirmed there are recorded but never announced.
const AnonymousChannelName = "directmessage"

// Paper is the subject of a read confirmation. Only SlackID and Filename are
// filled in by the webhook; the rest are left for later enrichment.
type Paper struct {
	SlackID      string `json:"slackID" dynamodbav:"slackID"`
	Filename     string `json:"filename" dynamodbav:"filename"`
	DOI          string `json:"doi,omitempty" dynamodbav:"doi,omitempty"`
	PMID         string `json:"pmid,omitempty" dynamodbav:"pmid,omitempty"`
	ArXiv        string `json:"arXiv,omitempty" dynamodbav:"arXiv,omitempty"`
	SlackLink    string `json:"slackLink,omitempty" dynamodbav:"slackLink,omitempty"`
	ExternalLink string `json:"externalLink,omitempty" dynamodbav:"externalLink,omitempty"`
	Title        string `json:"title,omitempty" dynamodbav:"title,omitempty"`
	MD5          string `json:"md5,omitempty" dynamodbav:"md5,omitempty"`
	Rating       string `json:"rating,omitempty" dynamodbav:"rating,omitempty"`
	OSS          string `json:"OSS,omitempty" dynamodbav:"OSS,omitempty"`
	Field        string `json:"field,omitempty" dynamodbav:"field,omitempty"`
}

// NewPaper creates a paper from the Slack file identifier and name
func NewPaper(slackID, filename string) Paper {
	return Paper{SlackID: slackID, Filename: filename}
}

// ReadRecord is a single confirmed read stored in the papers table
type ReadRecord struct {
	ID             string    `dynamodbav:"id"` // Slack file ID
	User           string    `dynamodbav:"user"`
	Channel        string    `dynamodbav:"channel"`
	Paper          string    `dynamodbav:"paper"`
	FileData       string    `dynamodbav:"filedata"`
	AnonSubmission bool      `dynamodbav:"anonSubmission"`
	SubmissionID   string    `dynamodbav:"submission_id"`
	RecordedAt     time.Time `dynamodbav:"recorded_at"`
}

// NewReadRecord creates a read record for a confirmed paper.
// fileData is the raw file metadata snapshot as returned by Slack.
func NewReadRecord(paper Paper, user, channel, fileData string, anon bool) *ReadRecord {
	return &ReadRecord{
		ID:             paper.SlackID,
		User:           user,
		Channel:        channel,
		Paper:          paper.Filename,
		FileData:       fileData,
		AnonSubmission: anon,
		SubmissionID:   generateSubmissionID(),
		RecordedAt:     time.Now().UTC(),
	}
}

// IsAnonymousChannel reports whether reads confirmed in the named channel
// should be kept out of the public announcement.
func IsAnonymousChannel(name string) bool {
	return name == AnonymousChannelName
}

// generateSubmissionID creates a unique, time-ordered identifier for one write
func generateSubmissionID() string {
	id, _ := ulid.New(ulid.Timestamp(time.Now()), rand.Reader)
	return "read-" + id.String()
}

package handler

import (
	"log"
	"strings"
)

// Headers read from inbound requests
const (
	HeaderRetryNum    = "X-Slack-Retry-Num"
	HeaderRetryReason = "X-Slack-Retry-Reason"
	HeaderUserAgent   = "User-Agent"
)

// header retrieves a header value in a case-insensitive manner
func header(h map[string]string, key string) (string, bool) {
	for k, v := range h {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return "", false
}

// IsRedelivery reports whether Slack is re-sending a request it already
// delivered. Any value of the retry header counts.
func IsRedelivery(headers map[string]string) bool {
	num, ok := header(headers, HeaderRetryNum)
	if !ok {
		return false
	}

	reason, _ := header(headers, HeaderRetryReason)
	log.Printf("Ignoring Slack redelivery %s (reason: %s)", num, reason)
	return true
}

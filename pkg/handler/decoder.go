package handler

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/savaki/paper-a-day/pkg/models"
	"github.com/slack-go/slack"
)

// Payload is the decoded body of an inbound request. It is one of
// EventPayload, InteractionPayload, VerificationPayload or MalformedPayload.
type Payload interface {
	payload()
}

// EventPayload is an asynchronous Events API notification
type EventPayload struct {
	Event models.PlatformEvent
}

// InteractionPayload is a button click or message shortcut callback
type InteractionPayload struct {
	Callback slack.InteractionCallback
}

// VerificationPayload is Slack's URL verification handshake
type VerificationPayload struct {
	Challenge string
}

// MalformedPayload is a body that could not be located or decoded
type MalformedPayload struct {
	Reason string
}

func (EventPayload) payload()        {}
func (InteractionPayload) payload()  {}
func (VerificationPayload) payload() {}
func (MalformedPayload) payload()    {}

var (
	errNoBody    = errors.New("no body; invalid request")
	errNoPayload = errors.New("form body has no payload field")
)

// DecodeRequest normalises an API Gateway request into a Payload.
//
// JSON bodies carrying an "event" object are platform events. Anything else
// is tried as a form body whose "payload" field holds an interaction
// callback. The User-Agent header only matters when both readings are
// possible: a non-Slackbot agent prefers the interaction.
func DecodeRequest(req events.APIGatewayProxyRequest) Payload {
	body, err := requestBody(req)
	if err != nil {
		return MalformedPayload{Reason: err.Error()}
	}

	var envelope models.SlackEventCallback
	if err := json.Unmarshal([]byte(body), &envelope); err == nil {
		if envelope.Event != nil {
			if agent, ok := header(req.Headers, HeaderUserAgent); ok && !strings.Contains(agent, "Slackbot") {
				if callback, err := decodeInteraction(body); err == nil {
					return InteractionPayload{Callback: callback}
				}
			}
			return EventPayload{Event: *envelope.Event}
		}
		if envelope.Type == models.CallbackTypeURLVerification {
			return VerificationPayload{Challenge: envelope.Challenge}
		}
	}

	callback, err := decodeInteraction(body)
	if err != nil {
		return MalformedPayload{Reason: err.Error()}
	}
	return InteractionPayload{Callback: callback}
}

// requestBody returns the text body, decoding base64 when API Gateway says so
func requestBody(req events.APIGatewayProxyRequest) (string, error) {
	if req.Body == "" {
		return "", errNoBody
	}
	if !req.IsBase64Encoded {
		return req.Body, nil
	}

	data, err := base64.StdEncoding.DecodeString(req.Body)
	if err != nil {
		return "", fmt.Errorf("decode base64 body: %w", err)
	}
	if len(data) == 0 {
		return "", errNoBody
	}
	return string(data), nil
}

// decodeInteraction parses a form body with a JSON payload field
func decodeInteraction(body string) (slack.InteractionCallback, error) {
	var callback slack.InteractionCallback

	values, err := url.ParseQuery(body)
	if err != nil {
		return callback, fmt.Errorf("parse form body: %w", err)
	}

	payload := values.Get("payload")
	if payload == "" {
		return callback, errNoPayload
	}

	if err := json.Unmarshal([]byte(payload), &callback); err != nil {
		return callback, fmt.Errorf("parse interaction payload: %w", err)
	}
	return callback, nil
}

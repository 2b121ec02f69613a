package handler

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/events"
)

// Dispatcher routes inbound webhook requests. It holds no per-request state,
// so one instance serves every invocation.
type Dispatcher struct {
	files        *FileEventHandler
	interactions *InteractionHandler
}

// NewDispatcher creates a new dispatcher
func NewDispatcher(files *FileEventHandler, interactions *InteractionHandler) *Dispatcher {
	return &Dispatcher{
		files:        files,
		interactions: interactions,
	}
}

// Handle is the Lambda handler for Slack requests. Only a body that cannot
// be decoded produces a non-200 response.
func (d *Dispatcher) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	// Slack re-sends requests it thinks timed out; the first delivery already ran
	if IsRedelivery(request.Headers) {
		return ackResponse(), nil
	}

	switch p := DecodeRequest(request).(type) {
	case VerificationPayload:
		log.Printf("Responding to Slack URL verification challenge")
		return okResponse(map[string]string{"challenge": p.Challenge}), nil

	case EventPayload:
		if err := d.files.HandleFileEvent(ctx, p.Event); err != nil {
			log.Printf("Warning: failed to handle %s event: %v", p.Event.Type, err)
		}
		return ackResponse(), nil

	case InteractionPayload:
		reply := d.interactions.HandleInteraction(ctx, p.Callback)
		if reply.Text == "" {
			return ackResponse(), nil
		}
		return messageResponse(reply.Text), nil

	case MalformedPayload:
		log.Printf("Rejecting malformed request: %s", p.Reason)
		return badRequest(p.Reason), nil

	default:
		log.Printf("Ignoring unknown payload %T", p)
		return ackResponse(), nil
	}
}

package handler

import (
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	"github.com/slack-go/slack"
)

// ackResponse returns a bare 200 so Slack does not retry
func ackResponse() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: 200,
	}
}

// badRequest returns a 400 error response
func badRequest(message string) events.APIGatewayProxyResponse {
	data, _ := json.Marshal(map[string]string{"error": message})
	return events.APIGatewayProxyResponse{
		StatusCode: 400,
		Body:       string(data),
		Headers:    map[string]string{"Content-Type": "application/json"},
	}
}

// okResponse returns a successful JSON response
func okResponse(body interface{}) events.APIGatewayProxyResponse {
	data, _ := json.Marshal(body)
	return events.APIGatewayProxyResponse{
		StatusCode: 200,
		Body:       string(data),
		Headers:    map[string]string{"Content-Type": "application/json"},
	}
}

// messageResponse answers an interaction by replacing the ephemeral prompt with text
func messageResponse(text string) events.APIGatewayProxyResponse {
	return okResponse(slack.Msg{
		Text:            text,
		ResponseType:    "ephemeral",
		ReplaceOriginal: true,
	})
}

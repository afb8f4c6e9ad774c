package assistant

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// RemoteResponder forwards chat messages to an external completion API.
// It satisfies Responder so it can replace the keyword lookup once a
// real model endpoint is configured.
type RemoteResponder struct {
	client *resty.Client
	apiKey string
}

type remoteRequest struct {
	Message string `json:"message"`
	Subject string `json:"subject,omitempty"`
	PlanID  string `json:"plan_id,omitempty"`
}

type remoteResponse struct {
	Content         string   `json:"content"`
	Sources         []Source `json:"sources"`
	SuggestedTopics []string `json:"suggested_topics"`
	Error           string   `json:"error"`
}

func NewRemoteResponder(baseURL, apiKey string) *RemoteResponder {
	return &RemoteResponder{
		client: resty.New().SetBaseURL(baseURL),
		apiKey: apiKey,
	}
}

func (r *RemoteResponder) Respond(ctx context.Context, msg Message) (Reply, error) {
	var result remoteResponse

	resp, err := r.client.R().
		SetContext(ctx).
		SetAuthToken(r.apiKey).
		SetBody(remoteRequest{
			Message: msg.Content,
			Subject: msg.Subject,
			PlanID:  msg.PlanID,
		}).
		SetResult(&result).
		Post("/chat")
	if err != nil {
		return Reply{}, fmt.Errorf("assistant request failed: %w", err)
	}
	if resp.IsError() {
		return Reply{}, fmt.Errorf("assistant API error: %s", resp.Status())
	}
	if result.Error != "" {
		return Reply{}, fmt.Errorf("assistant API error: %s", result.Error)
	}

	return Reply{
		Content:         result.Content,
		Sources:         result.Sources,
		SuggestedTopics: result.SuggestedTopics,
	}, nil
}

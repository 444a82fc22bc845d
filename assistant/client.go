package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/hearthdash/hearth/errors"
)

// systemInstruction is sent with every request; it is held constant so the
// assistant's register does not drift between turns.
const systemInstruction = "You are a helpful AI assistant integrated into a personal dashboard. " +
	"Be concise, practical, and helpful. Focus on actionable advice and clear explanations."

// HTTPDoer is the capability interface over the HTTP transport so the client
// is testable with fakes instead of a live network.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client issues chat-completion requests.
type Client struct {
	endpoint string
	model    string
	http     HTTPDoer
}

// NewClient creates a chat-completion client. Passing nil for doer uses
// http.DefaultClient.
func NewClient(endpoint, model string, doer HTTPDoer) *Client {
	if doer == nil {
		doer = http.DefaultClient
	}
	return &Client{endpoint: endpoint, model: model, http: doer}
}

// chatRequest is the wire shape of one completion request. The sampling
// parameters are fixed per request; only the user content varies.
type chatRequest struct {
	Model                  string        `json:"model"`
	Messages               []chatMessage `json:"messages"`
	Temperature            float64       `json:"temperature"`
	TopP                   float64       `json:"top_p"`
	MaxTokens              int           `json:"max_tokens"`
	ReturnImages           bool          `json:"return_images"`
	ReturnRelatedQuestions bool          `json:"return_related_questions"`
	FrequencyPenalty       float64       `json:"frequency_penalty"`
	PresencePenalty        float64       `json:"presence_penalty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends one user turn and returns the assistant's reply text. The
// wire contract carries only the fixed system instruction and the newest user
// content, never the full history. A missing content path in an otherwise
// valid response returns ("", nil); the caller substitutes its fallback.
func (c *Client) Complete(ctx context.Context, credential, userContent string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemInstruction},
			{Role: "user", Content: userContent},
		},
		Temperature:            0.2,
		TopP:                   0.9,
		MaxTokens:              1000,
		ReturnImages:           false,
		ReturnRelatedQuestions: false,
		FrequencyPenalty:       1,
		PresencePenalty:        0,
	})
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInternal, "cannot encode chat request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInternal, "cannot build chat request")
	}
	req.Header.Set("Authorization", "Bearer "+credential)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errors.Transport(c.endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.TransportStatus(c.endpoint, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Transport(c.endpoint, err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		// A 2xx with an unreadable body is still a transport failure; the
		// boundary never lets shape mismatches leak upward as panics.
		return "", errors.Wrap(err, errors.ErrCodeTransport, "chat response is not valid JSON").
			WithDetail("endpoint", c.endpoint)
	}

	if len(parsed.Choices) == 0 {
		return "", nil
	}
	return parsed.Choices[0].Message.Content, nil
}

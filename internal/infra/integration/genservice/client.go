package genservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/xbarbosa1/campaign-studio/internal/entity"
)

// TransportError is a non-success status from the generator. The message is a
// fixed human string per endpoint, there is no structured code on the wire.
type TransportError struct {
	Endpoint string
	Status   int
	Message  string
}

func (e *TransportError) Error() string {
	return e.Message
}

func IsTransportError(err error) bool {
	_, ok := err.(*TransportError)
	return ok
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		// Generation runs an LLM behind the scenes, so the timeout is generous.
		http: &http.Client{Timeout: 120 * time.Second},
	}
}

// GenerateCampaigns submits the canonical request and decodes the structured
// response.
func (c *Client) GenerateCampaigns(ctx context.Context, request entity.CampaignRequest) (*entity.CampaignResponse, error) {
	resp, err := c.post(ctx, "/generate-campaigns/", request)
	if err != nil {
		return nil, fmt.Errorf("generator request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, &TransportError{
			Endpoint: "/generate-campaigns/",
			Status:   resp.StatusCode,
			Message:  "Failed to generate campaign(s)",
		}
	}

	var response entity.CampaignResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("decode generator response: %w", err)
	}

	return &response, nil
}

// ExportCSV submits the same request shape and returns the CSV payload
// opaquely. The caller decides where the bytes go.
func (c *Client) ExportCSV(ctx context.Context, request entity.CampaignRequest) ([]byte, error) {
	resp, err := c.post(ctx, "/export-campaigns-csv/", request)
	if err != nil {
		return nil, fmt.Errorf("export request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, &TransportError{
			Endpoint: "/export-campaigns-csv/",
			Status:   resp.StatusCode,
			Message:  "Failed to export CSV",
		}
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read export payload: %w", err)
	}

	return content, nil
}

// SynthesizeAudio converts an email body to speech.
func (c *Client) SynthesizeAudio(ctx context.Context, emailBody, language string) ([]byte, error) {
	resp, err := c.post(ctx, "/generate-email-audio/", audioRequest{
		EmailBody: emailBody,
		Language:  language,
	})
	if err != nil {
		return nil, fmt.Errorf("audio request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, &TransportError{
			Endpoint: "/generate-email-audio/",
			Status:   resp.StatusCode,
			Message:  "Failed to generate audio",
		}
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read audio payload: %w", err)
	}

	return audio, nil
}

func (c *Client) post(ctx context.Context, path string, payload any) (*http.Response, error) {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	return c.http.Do(req)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	req.Header.Set("User-Agent", "CampaignStudio/1.0")
}

package observer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// LogEntry is one upstream gateway log record, as returned by the log API's
// list endpoint. Bodies are fetched separately.
type LogEntry struct {
	ID         string    `json:"id"`
	Provider   string    `json:"provider"`
	Model      string    `json:"model"`
	Success    bool      `json:"success"`
	StatusCode int       `json:"status_code"`
	Metadata   string    `json:"metadata"`
	CreatedAt  time.Time `json:"created_at"`
}

// LogClient reads and deletes upstream gateway log entries.
type LogClient struct {
	base string
	auth string
	http *http.Client
}

// NewLogClient builds a client for the gateway log API rooted at base.
func NewLogClient(base, authorization string) *LogClient {
	return &LogClient{
		base: strings.TrimSuffix(base, "/"),
		auth: authorization,
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

type listEnvelope struct {
	Success bool       `json:"success"`
	Result  []LogEntry `json:"result"`
}

// List returns the oldest perPage pending log entries.
func (c *LogClient) List(ctx context.Context, perPage int) ([]LogEntry, error) {
	q := url.Values{}
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("order_by", "created_at")
	q.Set("direction", "asc")

	raw, err := c.do(ctx, http.MethodGet, "/logs?"+q.Encode())
	if err != nil {
		return nil, err
	}

	var envelope listEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode log list: %w", err)
	}
	if !envelope.Success {
		return nil, fmt.Errorf("log list request unsuccessful")
	}
	return envelope.Result, nil
}

// RequestBody fetches the stored request body for a log entry.
func (c *LogClient) RequestBody(ctx context.Context, id string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, "/logs/"+url.PathEscape(id)+"/request")
}

// ResponseBody fetches the stored response body for a log entry. Streamed
// responses come back as a streamed_data JSON wrapper; see ReconstructSSE.
func (c *LogClient) ResponseBody(ctx context.Context, id string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, "/logs/"+url.PathEscape(id)+"/response")
}

// Delete removes a processed log entry. Logs are ephemeral; the entry is
// deleted whether or not processing produced a checkpoint.
func (c *LogClient) Delete(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/logs/"+url.PathEscape(id))
	return err
}

func (c *LogClient) do(ctx context.Context, method, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build log request: %w", err)
	}
	if c.auth != "" {
		req.Header.Set("Authorization", "Bearer "+c.auth)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("log api %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 32<<20))
	if err != nil {
		return nil, fmt.Errorf("read log api response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("log api %s %s: status %d", method, path, resp.StatusCode)
	}
	return body, nil
}

// ReconstructSSE rebuilds an SSE transcript from a flattened streamed_data
// body. Returns the input unchanged when it is not a streamed_data wrapper,
// along with whether reconstruction happened.
func ReconstructSSE(body []byte) (string, bool) {
	var wrapper struct {
		StreamedData []json.RawMessage `json:"streamed_data"`
	}
	if err := json.Unmarshal(body, &wrapper); err != nil || wrapper.StreamedData == nil {
		return string(body), false
	}

	var sb strings.Builder
	for _, chunk := range wrapper.StreamedData {
		sb.WriteString("data: ")
		sb.Write(chunk)
		sb.WriteString("\n\n")
	}
	return sb.String(), true
}

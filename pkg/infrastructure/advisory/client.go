// Package advisory wraps the external language-model advisory service that
// proposes priority scores, allocation plans, route plans and outcome
// analyses. Every response is validated against a fixed schema at this
// boundary; a malformed response surfaces as a *ParseError so callers can
// select their deterministic fallback explicitly. Transport failures are
// classified as ErrTimeout or ErrUnavailable and are never recovered here.
package advisory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Transport failure classification
var (
	// ErrTimeout indicates the advisory call exceeded its time bound
	ErrTimeout = errors.New("advisory request timed out")

	// ErrUnavailable indicates the advisory service could not be reached
	// or answered with a non-success status
	ErrUnavailable = errors.New("advisory service unavailable")
)

// ParseError indicates the advisory response was not well-formed for the
// requested phase. Callers recover from it by falling back to their
// deterministic algorithm; it must never abort a cycle.
type ParseError struct {
	Phase string
	Raw   string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("advisory response for %s phase is malformed: %v", e.Phase, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError reports whether err is (or wraps) a ParseError
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// Config holds advisory client settings
type Config struct {
	BaseURL    string
	Model      string
	Timeout    time.Duration
	NumPredict int
}

// DefaultConfig returns the standard advisory client settings
func DefaultConfig() Config {
	return Config{
		BaseURL:    "http://localhost:11434",
		Model:      "llama3.2:3b",
		Timeout:    120 * time.Second,
		NumPredict: 2048,
	}
}

// Client talks to an Ollama-compatible generation endpoint
type Client struct {
	config     Config
	httpClient *http.Client
	log        *logrus.Entry
}

// NewClient creates an advisory client with the given configuration
func NewClient(config Config, log *logrus.Logger) *Client {
	if config.Timeout <= 0 {
		config.Timeout = DefaultConfig().Timeout
	}
	if config.NumPredict <= 0 {
		config.NumPredict = DefaultConfig().NumPredict
	}
	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		log:        log.WithField("component", "advisory"),
	}
}

type generateRequest struct {
	Model       string          `json:"model"`
	Prompt      string          `json:"prompt"`
	Stream      bool            `json:"stream"`
	Temperature float64         `json:"temperature"`
	Options     generateOptions `json:"options"`
}

type generateOptions struct {
	NumPredict int `json:"num_predict"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// generate sends one prompt and returns the raw completion text
func (c *Client) generate(ctx context.Context, prompt string, temperature float64) (string, error) {
	payload, err := json.Marshal(generateRequest{
		Model:       c.config.Model,
		Prompt:      prompt,
		Stream:      false,
		Temperature: temperature,
		Options:     generateOptions{NumPredict: c.config.NumPredict},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode advisory request: %w", err)
	}

	url := c.config.BaseURL + "/api/generate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build advisory request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d from %s", ErrUnavailable, resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response body: %v", ErrUnavailable, err)
	}

	var gr generateResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return "", fmt.Errorf("%w: invalid envelope: %v", ErrUnavailable, err)
	}
	return gr.Response, nil
}

// classifyTransportError maps HTTP client errors onto the advisory taxonomy
func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

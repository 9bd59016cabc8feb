package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Client is a typed HTTP client for the StudyMind backend. Every call is
// fire-once: no retries, no backoff. Failures are logged centrally and then
// propagated unchanged to the caller, which owns user-facing handling.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// New returns a client targeting baseURL. A zero timeout falls back to 60s.
// A nil logger disables request logging.
func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger,
	}
}

// BaseURL returns the configured backend host.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Health pings GET /health. The response body is not consumed beyond success.
func (c *Client) Health(ctx context.Context) error {
	var out struct {
		Status string `json:"status"`
	}
	return c.getJSON(ctx, "/health", &out)
}

// Models fetches the backend model catalog: model key -> {name, description}.
func (c *Client) Models(ctx context.Context) (map[string]ModelInfo, error) {
	out := map[string]ModelInfo{}
	if err := c.getJSON(ctx, "/models", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Chapters lists the chapter labels detected across all uploaded documents.
func (c *Client) Chapters(ctx context.Context) ([]string, error) {
	var out struct {
		Chapters []string `json:"chapters"`
	}
	if err := c.getJSON(ctx, "/chapters", &out); err != nil {
		return nil, err
	}
	return out.Chapters, nil
}

// Upload posts all files as a single multipart request (field "files",
// repeated). The batch succeeds or fails as a unit.
func (c *Client) Upload(ctx context.Context, files []UploadFile) (*UploadResult, error) {
	if len(files) == 0 {
		return nil, errors.New("no files to upload")
	}
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		err := writeMultipart(mw, files)
		if cerr := mw.Close(); err == nil {
			err = cerr
		}
		pw.CloseWithError(err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", pr)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out UploadResult
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func writeMultipart(mw *multipart.Writer, files []UploadFile) error {
	for _, uf := range files {
		part, err := mw.CreateFormFile("files", uf.Name)
		if err != nil {
			return fmt.Errorf("create form part: %w", err)
		}
		f, err := os.Open(uf.Path)
		if err != nil {
			return fmt.Errorf("open %s: %w", uf.Name, err)
		}
		_, err = io.Copy(part, f)
		f.Close()
		if err != nil {
			return fmt.Errorf("copy %s: %w", uf.Name, err)
		}
	}
	return nil
}

// Query asks a question against the uploaded documents.
func (c *Client) Query(ctx context.Context, req QueryRequest) (*QueryResult, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, errors.New("query cannot be empty")
	}
	var out QueryResult
	if err := c.postJSON(ctx, "/query", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateQuiz requests a quiz for one chapter. numQuestions is expected to be
// within [1,10]; the caller clamps before getting here.
func (c *Client) GenerateQuiz(ctx context.Context, chapter string, numQuestions int) (*QuizResult, error) {
	if chapter == "" {
		return nil, errors.New("chapter cannot be empty")
	}
	body := struct {
		Chapter      string `json:"chapter"`
		NumQuestions int    `json:"num_questions"`
	}{Chapter: chapter, NumQuestions: numQuestions}
	var out QuizResult
	if err := c.postJSON(ctx, "/generate-quiz", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Clear deletes all uploaded data on the backend. Returns the backend's
// confirmation message.
func (c *Client) Clear(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/clear", nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	var out struct {
		Message string `json:"message"`
	}
	if err := c.do(req, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(string(payload)))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// do executes the request and decodes a JSON body into out. It is the single
// interception point: transport failures and non-2xx statuses are logged here
// before being returned to the caller.
func (c *Client) do(req *http.Request, out any) error {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("request failed",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 8<<10))
		apiErr := &APIError{StatusCode: resp.StatusCode, Method: req.Method, Path: req.URL.Path}
		var detail struct {
			Detail string `json:"detail"`
		}
		if jerr := json.Unmarshal(body, &detail); jerr == nil && detail.Detail != "" {
			apiErr.Detail = detail.Detail
		} else if len(body) > 0 {
			apiErr.Detail = strings.TrimSpace(string(body))
		}
		c.logger.Error("backend error",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Int("status", resp.StatusCode),
			zap.String("detail", apiErr.Detail),
			zap.Duration("elapsed", time.Since(start)))
		return apiErr
	}

	c.logger.Debug("request ok",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"grant-management-portal/internal/entity"
)

const requestTimeout = 30 * time.Second

// Client is the shared HTTP plumbing every typed backend client embeds. The
// portal owns no state of its own, so every read and write goes through here.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func NewClient(baseURL string, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
		log:     log,
	}
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) postJSON(ctx context.Context, path string, in interface{}, out interface{}) error {
	return c.doJSON(ctx, http.MethodPost, path, in, out)
}

func (c *Client) patchJSON(ctx context.Context, path string, in interface{}, out interface{}) error {
	return c.doJSON(ctx, http.MethodPatch, path, in, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) doJSON(ctx context.Context, method string, path string, in interface{}, out interface{}) error {
	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding %s %s request: %w", method, path, err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building %s %s request: %w", method, path, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, out)
}

// postMultipart uploads a single named file part plus any extra fields.
func (c *Client) postMultipart(ctx context.Context, path string, filename string, file io.Reader, fields map[string]string, out interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("attachment", filename)
	if err != nil {
		return fmt.Errorf("creating multipart file part: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("copying attachment into request: %w", err)
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return fmt.Errorf("writing multipart field %s: %w", name, err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("closing multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("building multipart request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("backend request failed",
			zap.String("method", req.Method), zap.String("path", req.URL.Path), zap.Error(err))

		return fmt.Errorf("calling backend %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	c.log.Debug("backend request",
		zap.String("method", req.Method), zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode), zap.Duration("duration", time.Since(started)))

	if resp.StatusCode >= 400 {
		return c.decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding backend %s %s response: %w", req.Method, req.URL.Path, err)
	}

	return nil
}

func (c *Client) decodeError(resp *http.Response) error {
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("backend returned status %d", resp.StatusCode)
	}

	var body struct {
		Errors []struct {
			FieldName    string `json:"fieldName"`
			ErrorMessage string `json:"errorMessage"`
		} `json:"errors"`
		Code string `json:"code"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		switch body.Code {
		case codeGrantNotPublished:
			return ErrGrantNotPublished
		case codeSubmissionAlreadyCreated:
			return ErrSubmissionAlreadyCreated
		}

		if len(body.Errors) > 0 {
			vErr := &ValidationError{}
			for _, fe := range body.Errors {
				vErr.FieldErrors = append(vErr.FieldErrors, entity.FieldError{
					FieldName:    fe.FieldName,
					ErrorMessage: fe.ErrorMessage,
				})
			}

			return vErr
		}
	}

	return fmt.Errorf("backend returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
}

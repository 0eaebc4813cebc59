package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/avolkovs/wpcloud/internal/client/models"
	"github.com/avolkovs/wpcloud/internal/common"
)

// blobTypeHeader is required by the storage protocol on direct writes.
const blobTypeHeader = "BlockBlob"

// TokenSource yields the current bearer token, or "" when logged out.
// Handing the api layer an accessor instead of a token keeps the session a
// single source of truth written elsewhere.
type TokenSource func() string

// HTTPClient implements Client over plain JSON/HTTPS.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// NewHTTPClient builds a client for the API at baseURL (e.g.
// "https://func-example.azurewebsites.net/api"). timeout applies to every
// request including the direct storage write.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (models.Session, error) {
	in := map[string]string{"email": email, "password": password}

	var out struct {
		Token string           `json:"token"`
		User  *models.Identity `json:"user"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", false, in, &out); err != nil {
		return models.Session{}, err
	}
	if out.Token == "" {
		return models.Session{}, fmt.Errorf("login response has no token: %w", common.ErrMalformedResponse)
	}
	return models.NewSession(out.Token, out.User), nil
}

func (c *HTTPClient) Register(ctx context.Context, email, password, displayName string) error {
	in := map[string]string{"email": email, "password": password}
	if displayName != "" {
		in["name"] = displayName
	}
	return c.doJSON(ctx, http.MethodPost, "/auth/register", false, in, nil)
}

func (c *HTTPClient) ListFiles(ctx context.Context, ownerID string) ([]models.FileItem, error) {
	path := "/files?userId=" + url.QueryEscape(ownerID)

	var out struct {
		Files []models.FileItem `json:"files"`
	}
	if err := c.doJSON(ctx, http.MethodGet, path, true, nil, &out); err != nil {
		return nil, err
	}
	if out.Files == nil {
		return []models.FileItem{}, nil
	}
	return out.Files, nil
}

func (c *HTTPClient) RequestUpload(ctx context.Context, fileName string) (models.UploadTicket, error) {
	in := map[string]string{"fileName": fileName}

	var ticket models.UploadTicket
	if err := c.doJSON(ctx, http.MethodPost, "/files/sas", true, in, &ticket); err != nil {
		return models.UploadTicket{}, err
	}
	return ticket, nil
}

func (c *HTTPClient) PutObject(ctx context.Context, uploadURL, contentType string, body io.Reader) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, body)
	if err != nil {
		return fmt.Errorf("build storage request: %w", err)
	}
	req.Header.Set("x-ms-blob-type", blobTypeHeader)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			data = nil
		}
		return &common.TransferError{Status: resp.StatusCode, Body: string(data)}
	}
	return nil
}

func (c *HTTPClient) Analyze(ctx context.Context, key string) (json.RawMessage, error) {
	in := map[string]string{"key": key}

	var out struct {
		Key      string          `json:"key"`
		Analysis json.RawMessage `json:"analysis"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/files/analyze", true, in, &out); err != nil {
		return nil, err
	}
	return out.Analysis, nil
}

// doJSON performs one API request. Transport failures map to
// ErrUnavailable, non-success statuses to *common.APIError (message from the
// body's "error" field when parseable), and an unparsable success body to
// ErrMalformedResponse.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, auth bool, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth {
		if token := c.tokens(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &common.APIError{Status: resp.StatusCode, Message: errorMessage(resp.StatusCode, data)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", common.ErrMalformedResponse, err)
	}
	return nil
}

// errorMessage extracts the backend's error text best-effort; anything
// unparsable degrades to a status-derived message.
func errorMessage(status int, body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return fmt.Sprintf("HTTP %d", status)
}

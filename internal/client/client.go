// Package client выполняет одиночные JSON-запросы к удаленному API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"storectl/internal/faults"
)

const jsonMediaType = "application/json"

// Client добавляет базовый адрес к пути и классифицирует ответы.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	log     *slog.Logger
}

// New создает клиент; baseURL должен быть абсолютным http(s) адресом.
func New(baseURL string, httpClient *http.Client, lg *slog.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, faults.New(faults.UsageError, "invalid base url", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, faults.Usage(fmt.Sprintf("invalid base url %q", baseURL))
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if lg == nil {
		lg = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{baseURL: u, http: httpClient, log: lg}, nil
}

// Request выполняет ровно один HTTP-вызов и возвращает JSON-тело ответа.
// Пустое тело успешного ответа возвращается как null.
func (c *Client) Request(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("request failed", "method", req.Method, "url", req.URL.String(), "err", err)
		return nil, faults.Network(unwrapURLError(err))
	}
	defer resp.Body.Close()
	c.log.Debug("request completed",
		"method", req.Method,
		"url", req.URL.String(),
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, faults.HTTPStatus(resp.StatusCode, reasonPhrase(resp))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, faults.Network(err)
	}
	return decodeBody(raw)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, faults.Internal("failed to encode request body", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, strings.ToUpper(method), c.resolve(path), reader)
	if err != nil {
		return nil, faults.Internal("failed to build request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", jsonMediaType)
	}
	return req, nil
}

func (c *Client) resolve(path string) string {
	target := *c.baseURL
	target.Path = strings.TrimRight(c.baseURL.Path, "/") + "/" + strings.TrimLeft(path, "/")
	target.RawPath = ""
	return target.String()
}

// reasonPhrase берет текст статуса из ответа сервера, иначе стандартный.
func reasonPhrase(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

func decodeBody(raw []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return json.RawMessage("null"), nil
	}
	if !json.Valid(trimmed) {
		return nil, faults.Protocol("invalid response body", nil)
	}
	return json.RawMessage(trimmed), nil
}

// unwrapURLError убирает префикс url.Error, чтобы в сообщении осталась причина.
func unwrapURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err
	}
	return err
}

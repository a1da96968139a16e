// Package fetch retrieves card data from the server. Every call makes a
// single GET attempt; cancellation and deadlines come from the context.
package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/osse101/cardtable/internal/domain"
	"github.com/osse101/cardtable/internal/logger"
)

// Fetcher issues GET requests against a base URL
type Fetcher struct {
	BaseURL string
	Client  *http.Client
}

// New creates a Fetcher using a client without its own timeout
func New(baseURL string) *Fetcher {
	return NewWithClient(baseURL, &http.Client{})
}

// NewWithClient creates a Fetcher with a caller-supplied client
func NewWithClient(baseURL string, client *http.Client) *Fetcher {
	return &Fetcher{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  client,
	}
}

// get returns the body of a 2xx response. The caller closes it.
func (f *Fetcher) get(ctx context.Context, path string) (io.ReadCloser, error) {
	log := logger.FromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.BaseURL+path, nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		log.Debug(LogMsgRequestFailed, "path", path, "error", err)
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		log.Debug(LogMsgRequestFailed, "path", path, "status", resp.StatusCode)
		return nil, &StatusError{Status: resp.StatusCode, StatusText: statusText(resp)}
	}

	log.Debug(LogMsgRequestDone, "path", path, "status", resp.StatusCode)
	return resp.Body, nil
}

// GetText returns the response body as a string
func (f *Fetcher) GetText(ctx context.Context, path string) (string, error) {
	body, err := f.get(ctx, path)
	if err != nil {
		return "", err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return "", &DecodeError{Err: err}
	}
	return string(data), nil
}

// validatable is implemented by payloads that can check their own shape
// once decoded
type validatable interface {
	Validate() error
}

// GetJSON decodes the response body into a T. The body must hold exactly
// one non-null JSON value whose fields all belong to T.
func GetJSON[T any](ctx context.Context, f *Fetcher, path string) (T, error) {
	var zero T

	body, err := f.get(ctx, path)
	if err != nil {
		return zero, err
	}
	defer body.Close()

	dec := json.NewDecoder(body)
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return zero, &DecodeError{Err: err}
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return zero, &DecodeError{Err: errTrailingData}
	}
	if bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return zero, &DecodeError{Err: errNullBody}
	}

	strict := json.NewDecoder(bytes.NewReader(raw))
	strict.DisallowUnknownFields()
	var v T
	if err := strict.Decode(&v); err != nil {
		return zero, &DecodeError{Err: err}
	}
	if check, ok := any(&v).(validatable); ok {
		if err := check.Validate(); err != nil {
			return zero, &DecodeError{Err: err}
		}
	}
	return v, nil
}

// Hello fetches the server greeting
func (f *Fetcher) Hello(ctx context.Context) (string, error) {
	return f.GetText(ctx, HelloPath)
}

// Cards fetches the hand of mock cards
func (f *Fetcher) Cards(ctx context.Context) (domain.Hand, error) {
	return GetJSON[domain.Hand](ctx, f, CardsPath)
}

// Card fetches one card by id
func (f *Fetcher) Card(ctx context.Context, id int) (domain.Card, error) {
	return GetJSON[domain.Card](ctx, f, CardPath(id))
}

// statusText prefers the reason phrase the server sent
func statusText(resp *http.Response) string {
	if text := strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)+" "); text != "" && text != resp.Status {
		return text
	}
	return http.StatusText(resp.StatusCode)
}

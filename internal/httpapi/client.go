package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"unitconv/internal/domain"
)

// Client talks to a unitconv API server.
type Client struct {
	Base string
	HTTP *http.Client
}

// NewClient returns a client for base, using http.DefaultClient when hc is nil.
func NewClient(base string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{Base: base, HTTP: hc}
}

// APIError is a non-2xx response. It unwraps to the matching domain sentinel
// when the code has one.
type APIError struct {
	Method  string
	Path    string
	Status  string
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unitconv %s %s: %s", e.Method, e.Path, e.Status)
	}
	return fmt.Sprintf("unitconv %s %s: %s: %s", e.Method, e.Path, e.Status, e.Message)
}

func (e *APIError) Unwrap() error { return sentinel(e.Code) }

// Convert performs a conversion on the server.
func (c *Client) Convert(ctx context.Context, rawInput string, from, to domain.Unit) (string, error) {
	req := ConvertRequest{Value: rawInput, From: from.String(), To: to.String()}
	var out ConvertResponse
	if err := c.do(ctx, http.MethodPost, routeConvert, req, &out); err != nil {
		return "", err
	}
	return out.Result, nil
}

// Units lists the units the server supports.
func (c *Client) Units(ctx context.Context) ([]UnitInfo, error) {
	var out []UnitInfo
	if err := c.do(ctx, http.MethodGet, routeUnits, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return err
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		apiErr := &APIError{Method: method, Path: path, Status: resp.Status}
		var e ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&e) == nil {
			apiErr.Code, apiErr.Message = e.Code, e.Error
		}
		return apiErr
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

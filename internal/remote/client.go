package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"binomci/internal/domain"
)

// Client talks to a binomci-server at Base.
type Client struct {
	Base string
	HTTP *http.Client
}

// New returns a client for base. A nil httpClient selects http.DefaultClient.
func New(base string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{Base: strings.TrimRight(base, "/"), HTTP: httpClient}
}

// Estimate requests a single interval.
func (c *Client) Estimate(ctx context.Context, req domain.EstimateRequest) (domain.ProportionEstimate, error) {
	var out domain.ProportionEstimate
	if err := c.do(ctx, http.MethodPost, "/estimate", req, &out); err != nil {
		return domain.ProportionEstimate{}, err
	}
	return out, nil
}

// Compare runs and stores a comparison on the server.
func (c *Client) Compare(ctx context.Context, req domain.CompareRequest) (domain.Report, error) {
	var out domain.Report
	if err := c.do(ctx, http.MethodPost, "/compare", req, &out); err != nil {
		return domain.Report{}, err
	}
	return out, nil
}

// LoadReport fetches a stored report.
func (c *Client) LoadReport(ctx context.Context, id string) (domain.Report, error) {
	var out domain.Report
	if err := c.do(ctx, http.MethodGet, "/reports/"+url.PathEscape(id), nil, &out); err != nil {
		return domain.Report{}, err
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
	u := c.Base + path

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		var e domain.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return statusError(method, u, resp, e.Error)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func statusError(method, u string, resp *http.Response, msg string) error {
	switch resp.StatusCode {
	case http.StatusBadRequest:
		return fmt.Errorf("%s %s: %w: %s", method, u, domain.ErrInvalidArgument, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%s %s: %w: %s", method, u, domain.ErrNotFound, msg)
	}
	return fmt.Errorf("%s %s: %s: %s", method, u, resp.Status, msg)
}

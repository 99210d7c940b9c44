// Package exa is a thin client for the Exa AI search API. It performs
// exactly one HTTP request per call over a shared pooled connection and
// maps non-2xx responses to typed errors.
package exa

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://api.exa.ai"

	websetsPrefix = "/v0"
)

type Client struct {
	url   string
	token string

	client  *http.Client
	limiter *rate.Limiter
}

func New(token string, options ...Option) (*Client, error) {
	c := &Client{
		url: DefaultBaseURL,

		token:  token,
		client: defaultClient(),
	}

	for _, option := range options {
		option(c)
	}

	if c.token == "" {
		return nil, errors.New("invalid token")
	}

	return c, nil
}

// Close releases the pooled connections. Safe to call once at shutdown.
func (c *Client) Close() {
	c.client.CloseIdleConnections()
}

func (c *Client) request(ctx context.Context, method, path string, body any, query url.Values) (json.RawMessage, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	u := strings.TrimRight(c.url, "/") + path

	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader

	if body != nil {
		data, err := json.Marshal(body)

		if err != nil {
			return nil, err
		}

		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)

	if err != nil {
		return nil, err
	}

	req.Header.Set("x-api-key", c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, convertError(resp)
	}

	return io.ReadAll(resp.Body)
}

func (c *Client) Search(ctx context.Context, request *SearchRequest) (*SearchResponse, error) {
	raw, err := c.request(ctx, http.MethodPost, "/search", request, nil)

	if err != nil {
		return nil, err
	}

	var result SearchResponse

	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}

	result.Raw = raw

	return &result, nil
}

func (c *Client) FindSimilar(ctx context.Context, request *FindSimilarRequest) (*SearchResponse, error) {
	raw, err := c.request(ctx, http.MethodPost, "/findSimilar", request, nil)

	if err != nil {
		return nil, err
	}

	var result SearchResponse

	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}

	result.Raw = raw

	return &result, nil
}

func (c *Client) Contents(ctx context.Context, request *ContentsRequest) (*ContentsResponse, error) {
	raw, err := c.request(ctx, http.MethodPost, "/contents", request, nil)

	if err != nil {
		return nil, err
	}

	var result ContentsResponse

	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}

	result.Raw = raw

	return &result, nil
}

func (c *Client) Answer(ctx context.Context, request *AnswerRequest) (*AnswerResponse, error) {
	raw, err := c.request(ctx, http.MethodPost, "/answer", request, nil)

	if err != nil {
		return nil, err
	}

	var result AnswerResponse

	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}

	result.Raw = raw

	return &result, nil
}

func (c *Client) CreateResearch(ctx context.Context, request *CreateResearchRequest) (*ResearchTask, error) {
	raw, err := c.request(ctx, http.MethodPost, "/research/v1", request, nil)

	if err != nil {
		return nil, err
	}

	var result ResearchTask

	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}

	result.Raw = raw

	return &result, nil
}

func (c *Client) Research(ctx context.Context, researchID string) (*ResearchTask, error) {
	raw, err := c.request(ctx, http.MethodGet, "/research/v1/"+url.PathEscape(researchID), nil, nil)

	if err != nil {
		return nil, err
	}

	var result ResearchTask

	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}

	result.Raw = raw

	return &result, nil
}

func (c *Client) ListResearch(ctx context.Context) (*ResearchList, error) {
	raw, err := c.request(ctx, http.MethodGet, "/research/v1", nil, nil)

	if err != nil {
		return nil, err
	}

	var result ResearchList

	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}

	result.Raw = raw

	return &result, nil
}

func (c *Client) CreateWebset(ctx context.Context, request *CreateWebsetRequest) (*Webset, error) {
	raw, err := c.request(ctx, http.MethodPost, websetsPrefix+"/websets", request, nil)

	if err != nil {
		return nil, err
	}

	var result Webset

	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}

	result.Raw = raw

	return &result, nil
}

func (c *Client) Webset(ctx context.Context, websetID string) (*Webset, error) {
	raw, err := c.request(ctx, http.MethodGet, websetsPrefix+"/websets/"+url.PathEscape(websetID), nil, nil)

	if err != nil {
		return nil, err
	}

	var result Webset

	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}

	result.Raw = raw

	return &result, nil
}

func (c *Client) ListWebsets(ctx context.Context, limit int, cursor string) (*WebsetList, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))

	if cursor != "" {
		query.Set("cursor", cursor)
	}

	raw, err := c.request(ctx, http.MethodGet, websetsPrefix+"/websets", nil, query)

	if err != nil {
		return nil, err
	}

	var result WebsetList

	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}

	result.Raw = raw

	return &result, nil
}

func (c *Client) DeleteWebset(ctx context.Context, websetID string) (*Webset, error) {
	raw, err := c.request(ctx, http.MethodDelete, websetsPrefix+"/websets/"+url.PathEscape(websetID), nil, nil)

	if err != nil {
		return nil, err
	}

	var result Webset

	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}

	result.Raw = raw

	return &result, nil
}

func (c *Client) WebsetItems(ctx context.Context, websetID string, limit int, cursor string) (*WebsetItems, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))

	if cursor != "" {
		query.Set("cursor", cursor)
	}

	raw, err := c.request(ctx, http.MethodGet, websetsPrefix+"/websets/"+url.PathEscape(websetID)+"/items", nil, query)

	if err != nil {
		return nil, err
	}

	var result WebsetItems

	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}

	result.Raw = raw

	return &result, nil
}

func (c *Client) EnrichWebset(ctx context.Context, websetID string, request *EnrichWebsetRequest) (*Webset, error) {
	raw, err := c.request(ctx, http.MethodPost, websetsPrefix+"/websets/"+url.PathEscape(websetID)+"/enrichments", request, nil)

	if err != nil {
		return nil, err
	}

	var result Webset

	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}

	result.Raw = raw

	return &result, nil
}

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	charsetpkg "golang.org/x/net/html/charset"
)

// Client represents an HTTP client bound to a base URL with default
// configuration options.
type Client struct {
	baseURL            string
	client             *http.Client
	followRedirect     bool
	dismiss404         bool
	defaultHeaders     map[string]string
	defaultContentType string
	defaultBackoff     *BackoffConfig
	logger             HTTPLogger
	breaker            *gobreaker.CircuitBreaker
}

// ClientOptions represents the configuration options for the HTTP client.
type ClientOptions struct {
	FollowRedirect      bool
	Dismiss404          bool
	DefaultHeaders      map[string]string
	DefaultContentType  string
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
	ConnectionTimeout   time.Duration
	ReadTimeout         time.Duration
	Backoff             *BackoffConfig
	Logger              HTTPLogger
}

// NewHttpClient creates a new HTTP client with the given base URL and
// configuration options.
func NewHttpClient(baseURL string, opts ClientOptions) *Client {
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 200
	}
	if opts.MaxIdleConnsPerHost == 0 {
		opts.MaxIdleConnsPerHost = 20
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 60 * time.Second
	}
	if opts.ConnectionTimeout == 0 {
		opts.ConnectionTimeout = 60 * time.Second
	}
	if opts.DefaultContentType == "" {
		opts.DefaultContentType = "application/json"
	}

	transport := &http.Transport{
		MaxIdleConns:        opts.MaxIdleConns,
		MaxIdleConnsPerHost: opts.MaxIdleConnsPerHost,
		IdleConnTimeout:     opts.IdleConnTimeout,
		DialContext: (&net.Dialer{
			Timeout: opts.ConnectionTimeout,
		}).DialContext,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   opts.ReadTimeout,
	}

	if !opts.FollowRedirect {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	return &Client{
		baseURL:            strings.TrimRight(baseURL, "/"),
		client:             client,
		followRedirect:     opts.FollowRedirect,
		dismiss404:         opts.Dismiss404,
		defaultHeaders:     opts.DefaultHeaders,
		defaultContentType: opts.DefaultContentType,
		defaultBackoff:     opts.Backoff,
		logger:             opts.Logger,
	}
}

// Request creates a new Request builder for the client.
func (hc *Client) Request() *Request {
	return NewHttpClientRequest(hc)
}

// doRequest sends one HTTP attempt and unmarshals the response into
// successResp or errorResp based on the status code. It returns the success
// response, error response, status code, and error if any.
func (hc *Client) doRequest(ctx context.Context, method, path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any) (any, any, int, error) {
	requestURL := hc.buildURL(path)
	if len(queryParams) > 0 {
		requestURL += "?" + buildQueryString(queryParams)
	}

	var bodyReader io.Reader
	var contentType string

	if body != nil {
		switch body := body.(type) {
		case string:
			bodyReader = bytes.NewBufferString(body)
			contentType = "text/plain"
		case []byte:
			bodyReader = bytes.NewBuffer(body)
			contentType = "application/octet-stream"
		default:
			contentType = hc.defaultContentType

			switch contentType {
			case "application/xml":
				xmlBody, err := xml.Marshal(body)
				if err != nil {
					return nil, nil, 0, fmt.Errorf("failed to marshal request body to XML: %w", err)
				}
				bodyReader = bytes.NewBuffer(xmlBody)
			default:
				jsonBody, err := json.Marshal(body)
				if err != nil {
					return nil, nil, 0, fmt.Errorf("failed to marshal request body to JSON: %w", err)
				}
				bodyReader = bytes.NewBuffer(jsonBody)
				contentType = "application/json"
			}
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return nil, nil, 0, err
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, v := range hc.defaultHeaders {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := hc.client.Do(req)
	if err != nil {
		return nil, nil, 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, resp.StatusCode, err
	}

	respContentType := resp.Header.Get("Content-Type")
	if respContentType == "" {
		respContentType = hc.defaultContentType
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if successResp != nil {
			if err = hc.unmarshalResponse(bodyBytes, respContentType, successResp); err != nil {
				return nil, nil, resp.StatusCode, err
			}
		}
		return successResp, nil, resp.StatusCode, nil
	}

	if resp.StatusCode == 404 && hc.dismiss404 {
		return nil, nil, resp.StatusCode, nil
	}

	if errorResp != nil {
		if err = hc.unmarshalResponse(bodyBytes, respContentType, errorResp); err != nil {
			return nil, errorResp, resp.StatusCode, fmt.Errorf("http error: status %d", resp.StatusCode)
		}
	}

	return nil, errorResp, resp.StatusCode, fmt.Errorf("http error: status %d", resp.StatusCode)
}

// unmarshalResponse unmarshals the response body based on its content type.
// XML decoding is charset-aware; several providers still answer in
// ISO-8859-1.
func (hc *Client) unmarshalResponse(bodyBytes []byte, contentType string, target any) error {
	mainContentType := strings.TrimSpace(strings.Split(contentType, ";")[0])

	switch mainContentType {
	case "application/xml", "text/xml":
		dec := xml.NewDecoder(bytes.NewReader(bodyBytes))
		dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
			return charsetpkg.NewReaderLabel(charset, input)
		}
		return dec.Decode(target)
	case "text/plain":
		if strPtr, ok := target.(*string); ok {
			*strPtr = string(bodyBytes)
			return nil
		}
		return json.Unmarshal(bodyBytes, target)
	default:
		// Providers routinely mislabel JSON (application/geo+json,
		// text/javascript); JSON is the safe default.
		return json.Unmarshal(bodyBytes, target)
	}
}

// buildURL joins the base URL and the path with exactly one separator.
func (hc *Client) buildURL(path string) string {
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimRight(hc.baseURL, "/") + path
}

// buildQueryString builds an encoded query string from the parameter map.
func buildQueryString(params map[string]string) string {
	values := url.Values{}
	for key, value := range params {
		values.Set(key, value)
	}
	return values.Encode()
}

// Package client provides methods to do http GET / POST request.
package client

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultTimeout = 30 // seconds

	maxIdleConns        int = 100
	maxIdleConnsPerHost int = 10
	maxConnsPerHost     int = 50
	idleConnTimeout     int = 90
)

// Client http client with connection re-use
type Client struct {
	rc *resty.Client
}

// NewClient creates client, timeout of zero uses the default timeout
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout * time.Second
	}
	rc := resty.NewWithClient(createHTTPClient())
	rc.SetTimeout(timeout)
	rc.SetHeader("Accept", "application/json")
	return &Client{rc: rc}
}

// createHTTPClient for connection re-use
func createHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxConnsPerHost:     maxConnsPerHost,
			MaxIdleConns:        maxIdleConns,
			MaxIdleConnsPerHost: maxIdleConnsPerHost,
			IdleConnTimeout:     time.Duration(idleConnTimeout) * time.Second,
		},
	}
}

// httpGet http get, the caller reads and closes resp.RawBody()
func (c *Client) httpGet(ctx context.Context, url string, params map[string]string) (*resty.Response, error) {
	req := c.rc.R().SetContext(ctx).SetDoNotParseResponse(true)
	if params != nil {
		req.SetQueryParams(params)
	}
	return req.Get(url)
}

// httpPost http post json body, the caller reads and closes resp.RawBody()
func (c *Client) httpPost(ctx context.Context, url string, body interface{}) (*resty.Response, error) {
	req := c.rc.R().SetContext(ctx).SetDoNotParseResponse(true)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	return req.Post(url)
}

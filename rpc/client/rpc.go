package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/go-resty/resty/v2"
)

const maxReadContentLength int64 = 1024 * 1024 * 10 // 10M

var errBodyTooLarge = errors.New("response body too large")

// StatusError a response with non success status
type StatusError struct {
	StatusCode int
	URL        string
	Body       []byte
}

// Error impl error interface
func (e *StatusError) Error() string {
	return fmt.Sprintf("error response status: %v (url: %v) body: %v", e.StatusCode, e.URL, string(e.Body))
}

// RequestError a transport level failure
type RequestError struct {
	Method string
	URL    string
	Err    error
}

// Error impl error interface
func (e *RequestError) Error() string {
	return fmt.Sprintf("%v request error: %v (url: %v)", e.Method, e.Err, e.URL)
}

// Unwrap returns the transport error
func (e *RequestError) Unwrap() error {
	return e.Err
}

// RPCGet get and unmarshal json result
func (c *Client) RPCGet(ctx context.Context, result interface{}, url string, params map[string]string) error {
	resp, err := c.httpGet(ctx, url, params)
	if err != nil {
		return &RequestError{Method: "GET", URL: url, Err: err}
	}
	return getResultFromResponse(result, "GET", url, resp)
}

// RPCPost post json body and unmarshal json result
func (c *Client) RPCPost(ctx context.Context, result interface{}, url string, body interface{}) error {
	resp, err := c.httpPost(ctx, url, body)
	if err != nil {
		return &RequestError{Method: "POST", URL: url, Err: err}
	}
	return getResultFromResponse(result, "POST", url, resp)
}

// readBody reads at most maxReadContentLength bytes of the raw response body.
// The returned flag reports whether the body was longer than that.
func readBody(resp *resty.Response) (body []byte, tooLarge bool, err error) {
	rawBody := resp.RawBody()
	if rawBody == nil {
		return nil, false, nil
	}
	defer rawBody.Close()
	body, err = ioutil.ReadAll(io.LimitReader(rawBody, maxReadContentLength+1))
	if err != nil {
		return nil, false, err
	}
	if int64(len(body)) > maxReadContentLength {
		return body[:maxReadContentLength], true, nil
	}
	return body, false, nil
}

func getResultFromResponse(result interface{}, method, url string, resp *resty.Response) error {
	body, tooLarge, err := readBody(resp)
	if err != nil {
		return &RequestError{Method: method, URL: url, Err: fmt.Errorf("read body error: %w", err)}
	}
	if !resp.IsSuccess() {
		return &StatusError{StatusCode: resp.StatusCode(), URL: url, Body: body}
	}
	if tooLarge {
		return &DecodeError{URL: url, Err: fmt.Errorf("%w: over %v bytes", errBodyTooLarge, maxReadContentLength)}
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return &DecodeError{URL: url, Err: err}
	}
	return nil
}

// DecodeError a response body that is not the expected json
type DecodeError struct {
	URL string
	Err error
}

// Error impl error interface
func (e *DecodeError) Error() string {
	return fmt.Sprintf("unmarshal result error: %v (url: %v)", e.Err, e.URL)
}

// Unwrap returns the json error
func (e *DecodeError) Unwrap() error {
	return e.Err
}

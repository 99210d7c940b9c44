package exa

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
)

type AuthError struct {
	Detail string
}

func (e *AuthError) Error() string {
	return "authentication failed: " + e.Detail
}

type NotFoundError struct {
	Detail string
}

func (e *NotFoundError) Error() string {
	return "not found: " + e.Detail
}

type RateLimitError struct {
	Detail string

	// RetryAfter is the suggested wait in seconds, zero when the remote
	// service did not send a Retry-After header.
	RetryAfter int
}

func (e *RateLimitError) Error() string {
	return "rate limit exceeded: " + e.Detail
}

type ServerError struct {
	Status int
	Detail string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.Status, e.Detail)
}

type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Detail)
}

func convertError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)

	detail := string(data)

	var body struct {
		Error string `json:"error"`
	}

	if err := json.Unmarshal(data, &body); err == nil && body.Error != "" {
		detail = body.Error
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return &AuthError{Detail: detail}

	case resp.StatusCode == http.StatusNotFound:
		return &NotFoundError{Detail: detail}

	case resp.StatusCode == http.StatusTooManyRequests:
		retryAfter, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		return &RateLimitError{Detail: detail, RetryAfter: retryAfter}

	case resp.StatusCode >= http.StatusInternalServerError:
		return &ServerError{Status: resp.StatusCode, Detail: detail}

	default:
		return &APIError{Status: resp.StatusCode, Detail: detail}
	}
}

// ErrorMessage converts any failure from the gateway into the fixed,
// user-actionable text returned as ordinary tool output. Errors never
// cross the tool boundary unformatted.
func ErrorMessage(err error) string {
	var authErr *AuthError

	if errors.As(err, &authErr) {
		return "Error: Authentication failed. Please verify your EXA_API_KEY environment variable is set correctly. Get your key at dashboard.exa.ai"
	}

	var rateErr *RateLimitError

	if errors.As(err, &rateErr) {
		msg := "Error: Rate limit exceeded. Please wait before making more requests."

		if rateErr.RetryAfter > 0 {
			msg += fmt.Sprintf(" Retry after %d seconds.", rateErr.RetryAfter)
		}

		return msg
	}

	var notFoundErr *NotFoundError

	if errors.As(err, &notFoundErr) {
		return fmt.Sprintf("Error: Resource not found - %s. Please verify the ID is correct.", notFoundErr.Detail)
	}

	var serverErr *ServerError

	if errors.As(err, &serverErr) {
		return "Error: Exa API server error. This is temporary - please try again. Details: " + serverErr.Detail
	}

	var apiErr *APIError

	if errors.As(err, &apiErr) {
		return fmt.Sprintf("Error: API request failed with status %d.", apiErr.Status)
	}

	var netErr net.Error

	if errors.As(err, &netErr) && netErr.Timeout() {
		return "Error: Request timed out. The Exa API took too long to respond. Try reducing the number of results or simplifying your query."
	}

	var opErr *net.OpError

	if errors.As(err, &opErr) {
		return "Error: Could not connect to Exa API. Please check your internet connection."
	}

	return "Error: " + err.Error()
}

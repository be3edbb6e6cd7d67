// SPDX-FileCopyrightText: The tweetkit/places Authors
//
// SPDX-License-Identifier: MIT

package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// errorBodyLimit caps how much of an error response body is kept for diagnostics
const errorBodyLimit = 8 << 10

// APIError is a non-success response from the platform. When the body carries
// the platform's error envelope it is decoded into Errors; otherwise the raw
// body is kept in Body.
type APIError struct {
	StatusCode int
	Errors     []APIErrorDetail
	Body       string
}

// APIErrorDetail is a single entry of the platform's error envelope
type APIErrorDetail struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("server returned %d: %s (code %d)", e.StatusCode,
			e.Errors[0].Message, e.Errors[0].Code)
	}
	return fmt.Sprintf("server returned %d", e.StatusCode)
}

// apiError reads a non-success response into an *APIError
func apiError(response *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(response.Body, errorBodyLimit))
	apiErr := &APIError{StatusCode: response.StatusCode}

	var envelope struct {
		Errors []APIErrorDetail `json:"errors"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Errors) > 0 {
		apiErr.Errors = envelope.Errors
		return apiErr
	}
	apiErr.Body = string(body)
	return apiErr
}

// SPDX-FileCopyrightText: The tweetkit/places Authors
//
// SPDX-License-Identifier: MIT

// Package auth holds the credential types used to authorize API requests.
package auth

import (
	"errors"
	"net/http"
)

var (
	// ErrEmptyToken is returned when a bearer token holds no credential material
	ErrEmptyToken = errors.New("empty bearer token")
)

// Token authorizes an outgoing API request. Implementations attach whatever
// credential material the platform expects; the places package never inspects
// the token beyond handing it the request.
type Token interface {
	Authorize(req *http.Request) error
}

// BearerToken authenticates requests with an OAuth2 bearer token
type BearerToken struct {
	token string
}

// Bearer returns a Token that authenticates with the given bearer token
func Bearer(token string) BearerToken {
	return BearerToken{token: token}
}

// Authorize sets the Authorization header on the given request
func (b BearerToken) Authorize(req *http.Request) error {
	if b.token == "" {
		return ErrEmptyToken
	}
	req.Header.Set("Authorization", "Bearer "+b.token)
	return nil
}

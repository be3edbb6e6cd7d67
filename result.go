// SPDX-FileCopyrightText: The tweetkit/places Authors
//
// SPDX-License-Identifier: MIT

package places

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedSearchResult is returned when a search response does not carry
// the expected envelope
var ErrMalformedSearchResult = errors.New("malformed search result")

// SearchResult is the result of a location search, either via ReverseGeocode
// or one of the Search* functions
type SearchResult struct {
	// URL is the full URL used to pull the result list, as echoed back by the
	// server. It is captured as the raw JSON value, so the surrounding quote
	// marks are included. Existing callers depend on that form; see DESIGN.md.
	URL string
	// Results is the ordered list of places matching the search
	Results []Place
}

// UnmarshalJSON implements the json.Unmarshaler interface. The response
// envelope has the shape {"query": {"url": ...}, "result": {"places": [...]}};
// exactly those two paths are read and everything else under query is ignored.
func (r *SearchResult) UnmarshalJSON(data []byte) error {
	var raw struct {
		Query struct {
			URL json.RawMessage `json:"url"`
		} `json:"query"`
		Result struct {
			Places json.RawMessage `json:"places"`
		} `json:"result"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %s", ErrMalformedSearchResult, err)
	}
	if len(raw.Query.URL) == 0 {
		return ErrMalformedSearchResult
	}
	placesData := bytes.TrimSpace(raw.Result.Places)
	if len(placesData) == 0 || placesData[0] != '[' {
		return ErrMalformedSearchResult
	}
	var results []Place
	if err := json.Unmarshal(placesData, &results); err != nil {
		return fmt.Errorf("%w: %s", ErrMalformedSearchResult, err)
	}
	r.URL = string(raw.Query.URL)
	r.Results = results
	return nil
}

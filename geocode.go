// SPDX-FileCopyrightText: The tweetkit/places Authors
//
// SPDX-License-Identifier: MIT

package places

import (
	"context"
	"net/url"
	"strconv"

	"github.com/tweetkit/places/auth"
	"github.com/tweetkit/places/rest"
)

const (
	// ReverseGeocodeEndpoint is the URL of the reverse-geocode API endpoint
	ReverseGeocodeEndpoint = "https://api.twitter.com/1.1/geo/reverse_geocode.json"

	// maxGeocodeResults is the server-side cap on reverse-geocode results
	maxGeocodeResults = 20
)

// GeocodeBuilder is a reverse-geocode query before it is sent. Every setter
// returns a rebuilt copy, so partially configured builders can be forked
// without sharing state. Hand your token to Call to perform the lookup, or
// use URL to format the request URL without executing it.
type GeocodeBuilder struct {
	latitude    float64
	longitude   float64
	accuracy    *Accuracy
	granularity *PlaceType
	maxResults  *uint
	client      *rest.Client
}

// ReverseGeocode begins building a reverse-geocode query for the given
// coordinate
func ReverseGeocode(latitude, longitude float64) GeocodeBuilder {
	return GeocodeBuilder{latitude: latitude, longitude: longitude}
}

// Accuracy expands the area to search to the given radius. By default this
// is zero. In practice this is whatever accuracy the device has measuring its
// location, whether from GPS or wi-fi triangulation.
func (b GeocodeBuilder) Accuracy(accuracy Accuracy) GeocodeBuilder {
	b.accuracy = &accuracy
	return b
}

// Granularity sets the minimal specificity of results to return. For example,
// passing City excludes neighborhoods and points of interest.
func (b GeocodeBuilder) Granularity(granularity PlaceType) GeocodeBuilder {
	b.granularity = &granularity
	return b
}

// MaxResults hints how many results to return. This is not a guarantee, just
// a hint as to how many "nearby" results the server should consider. The
// server caps this at 20; zero or anything above 20 is clamped to 20 before
// sending.
func (b GeocodeBuilder) MaxResults(count uint) GeocodeBuilder {
	b.maxResults = &count
	return b
}

// Client routes the eventual request through the given rest.Client instead of
// rest.DefaultClient
func (b GeocodeBuilder) Client(client *rest.Client) GeocodeBuilder {
	b.client = client
	return b
}

// params assembles the query parameters for the configured builder
func (b GeocodeBuilder) params() url.Values {
	params := url.Values{}
	params.Set("lat", formatFloat(b.latitude))
	params.Set("long", formatFloat(b.longitude))
	if b.accuracy != nil {
		params.Set("accuracy", b.accuracy.String())
	}
	if b.granularity != nil {
		params.Set("granularity", b.granularity.String())
	}
	if b.maxResults != nil {
		count := *b.maxResults
		if count == 0 || count > maxGeocodeResults {
			count = maxGeocodeResults
		}
		params.Set("max_results", strconv.FormatUint(uint64(count), 10))
	}
	return params
}

// URL returns the full request URL for the configured query without
// executing the call
func (b GeocodeBuilder) URL() string {
	return rest.Get(ReverseGeocodeEndpoint, nil, b.params()).URL()
}

// Call finalizes the query parameters and performs the lookup with the given
// token. The same configured builder may be called any number of times.
func (b GeocodeBuilder) Call(ctx context.Context, token auth.Token) (*rest.Response[SearchResult], error) {
	return rest.JSON[SearchResult](ctx, b.client, rest.Get(ReverseGeocodeEndpoint, token, b.params()))
}

// formatFloat renders a coordinate or distance the way the platform expects:
// plain decimal notation with no trailing zeros
func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

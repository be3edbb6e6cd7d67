// SPDX-FileCopyrightText: The tweetkit/places Authors
//
// SPDX-License-Identifier: MIT

package places

import (
	"context"
	"maps"
	"net/url"
	"strconv"

	"github.com/tweetkit/places/auth"
	"github.com/tweetkit/places/rest"
)

// SearchEndpoint is the URL of the place search API endpoint
const SearchEndpoint = "https://api.twitter.com/1.1/geo/search.json"

// queryKind discriminates the search term variants
type queryKind int

const (
	queryLatLon queryKind = iota
	queryText
	queryIP
)

// placeQuery is the search term: a coordinate, a free-text query, or an IP
// address. Exactly one variant is set, selected by kind.
type placeQuery struct {
	kind      queryKind
	latitude  float64
	longitude float64
	term      string
}

// SearchBuilder is a location search query before it is sent. Every setter
// returns a rebuilt copy, so partially configured builders can be forked
// without sharing state. Hand your token to Call to perform the search, or
// use URL to format the request URL without executing it.
type SearchBuilder struct {
	query           placeQuery
	accuracy        *Accuracy
	granularity     *PlaceType
	maxResults      *uint
	containedWithin string
	attributes      map[string]string
	client          *rest.Client
}

// SearchPoint begins building a location search around the given coordinate
func SearchPoint(latitude, longitude float64) SearchBuilder {
	return SearchBuilder{query: placeQuery{kind: queryLatLon, latitude: latitude, longitude: longitude}}
}

// SearchQuery begins building a location search for the given free-text query
func SearchQuery(query string) SearchBuilder {
	return SearchBuilder{query: placeQuery{kind: queryText, term: query}}
}

// SearchIP begins building a location search for the given IP address
func SearchIP(address string) SearchBuilder {
	return SearchBuilder{query: placeQuery{kind: queryIP, term: address}}
}

// Accuracy expands the area to search to the given radius. By default this
// is zero.
func (b SearchBuilder) Accuracy(accuracy Accuracy) SearchBuilder {
	b.accuracy = &accuracy
	return b
}

// Granularity sets the minimal specificity of results to return. For example,
// passing City excludes neighborhoods and points of interest.
func (b SearchBuilder) Granularity(granularity PlaceType) SearchBuilder {
	b.granularity = &granularity
	return b
}

// MaxResults hints how many results to return. The search endpoint accepts up
// to 100; the value is forwarded unchanged.
func (b SearchBuilder) MaxResults(count uint) SearchBuilder {
	b.maxResults = &count
	return b
}

// ContainedWithin restricts results to those contained within the place with
// the given ID
func (b SearchBuilder) ContainedWithin(placeID string) SearchBuilder {
	b.containedWithin = placeID
	return b
}

// Attribute restricts results to places carrying the given attribute, e.g.
// Attribute("street_address", "123 Main St"). It may be called multiple times
// with different keys to combine attribute parameters; a repeated key
// overwrites the earlier value.
func (b SearchBuilder) Attribute(key, value string) SearchBuilder {
	attrs := make(map[string]string, len(b.attributes)+1)
	maps.Copy(attrs, b.attributes)
	attrs[key] = value
	b.attributes = attrs
	return b
}

// Client routes the eventual request through the given rest.Client instead of
// rest.DefaultClient
func (b SearchBuilder) Client(client *rest.Client) SearchBuilder {
	b.client = client
	return b
}

// params assembles the query parameters for the configured builder
func (b SearchBuilder) params() url.Values {
	params := url.Values{}
	switch b.query.kind {
	case queryLatLon:
		params.Set("lat", formatFloat(b.query.latitude))
		params.Set("long", formatFloat(b.query.longitude))
	case queryText:
		params.Set("query", b.query.term)
	case queryIP:
		params.Set("ip", b.query.term)
	}
	if b.accuracy != nil {
		params.Set("accuracy", b.accuracy.String())
	}
	if b.granularity != nil {
		params.Set("granularity", b.granularity.String())
	}
	if b.maxResults != nil {
		params.Set("max_results", strconv.FormatUint(uint64(*b.maxResults), 10))
	}
	if b.containedWithin != "" {
		params.Set("contained_within", b.containedWithin)
	}
	for key, value := range b.attributes {
		params.Set("attribute:"+key, value)
	}
	return params
}

// URL returns the full request URL for the configured query without
// executing the call
func (b SearchBuilder) URL() string {
	return rest.Get(SearchEndpoint, nil, b.params()).URL()
}

// Call finalizes the search parameters and performs the search with the given
// token. The same configured builder may be called any number of times.
func (b SearchBuilder) Call(ctx context.Context, token auth.Token) (*rest.Response[SearchResult], error) {
	return rest.JSON[SearchResult](ctx, b.client, rest.Get(SearchEndpoint, token, b.params()))
}

// SPDX-FileCopyrightText: The tweetkit/places Authors
//
// SPDX-License-Identifier: MIT

// Package places looks up named locations through the platform's geo API.
//
// Location search works in one of two ways. The most direct method is to take
// a latitude/longitude coordinate (from a device's GPS, wi-fi geolocation, or
// simply a known point) and call ReverseGeocode, which shows the places that
// enclose or border that point. Alternatively the Search* functions look up
// places by coordinate, free-text query, or IP address, and may pull in
// "nearby" results for a broader selection.
//
// Both query methods take several optional parameters, so each one is
// assembled as a builder. Create the builder with ReverseGeocode, SearchPoint,
// SearchQuery, or SearchIP, chain any additional parameters onto it, and hand
// your token to Call to perform the lookup:
//
//	result, err := places.ReverseGeocode(37.78, -122.4).
//		Granularity(places.City).
//		MaxResults(5).
//		Call(ctx, auth.Bearer(token))
//
// Along with the list of results the server echoes back the full search URL,
// available as SearchResult.URL. The URL terminal on either builder formats
// the same request URL without executing the call.
package places

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

var (
	// ErrUnknownPlaceType is returned when a place type tag is not one of the
	// five the platform defines
	ErrUnknownPlaceType = errors.New("unknown place type")
	// ErrMalformedBoundingBox is returned when a bounding_box attribute does
	// not have the expected GeoJSON shape
	ErrMalformedBoundingBox = errors.New("malformed bounding_box attribute")
)

// Place represents a named location
type Place struct {
	// ID is the alphanumeric identifier of the location
	ID string `json:"id"`
	// Attributes is a map of miscellaneous information about this place,
	// e.g. street_address or phone
	Attributes map[string]string `json:"attributes"`
	// BoundingBox encloses this place
	BoundingBox BoundingBox `json:"bounding_box"`
	// Country is the name of the country containing this place
	Country string `json:"country"`
	// CountryCode is the shortened code of the country containing this place
	CountryCode string `json:"country_code"`
	// FullName is the full human-readable name of this place
	FullName string `json:"full_name"`
	// Name is the short human-readable name of this place
	Name string `json:"name"`
	// PlaceType is the type of location represented by this place
	PlaceType PlaceType `json:"place_type"`
	// ContainedWithin lists the enclosing places, if the server provided them
	ContainedWithin []Place `json:"contained_within,omitempty"`
}

// PlaceType is the type of region represented by a place
type PlaceType int

const (
	// PointOfInterest is a coordinate with no area
	PointOfInterest PlaceType = iota
	// Neighborhood is a region within a city
	Neighborhood
	// City is an entire city
	City
	// Admin is an administrative area, e.g. a state or province
	Admin
	// Country is an entire country
	Country
)

// placeTypeTags is the single source of truth for the wire representation of
// PlaceType. JSON encode/decode and the query-parameter form all read from it.
var placeTypeTags = map[PlaceType]string{
	PointOfInterest: "poi",
	Neighborhood:    "neighborhood",
	City:            "city",
	Admin:           "admin",
	Country:         "country",
}

// ParsePlaceType returns the PlaceType for the given wire tag
func ParsePlaceType(tag string) (PlaceType, error) {
	for placeType, t := range placeTypeTags {
		if t == tag {
			return placeType, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPlaceType, tag)
}

// String returns the wire tag of the place type, which is also its
// query-parameter form
func (p PlaceType) String() string {
	return placeTypeTags[p]
}

// MarshalJSON implements the json.Marshaler interface
func (p PlaceType) MarshalJSON() ([]byte, error) {
	tag, ok := placeTypeTags[p]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPlaceType, int(p))
	}
	return json.Marshal(tag)
}

// UnmarshalJSON implements the json.Unmarshaler interface. Only the five
// known tags are accepted.
func (p *PlaceType) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err != nil {
		return fmt.Errorf("failed to decode place type: %w", err)
	}
	placeType, err := ParsePlaceType(tag)
	if err != nil {
		return err
	}
	*p = placeType
	return nil
}

// BoundingBox is the ordered list of coordinate pairs enclosing a place. An
// empty box means the extent is unknown, a single pair is a point, and two or
// more pairs outline a polygon. Pair order within each coordinate is kept
// exactly as the server sent it.
type BoundingBox [][2]float64

// UnmarshalJSON implements the json.Unmarshaler interface. The platform wraps
// the coordinate list in a GeoJSON-like object whose coordinates field is an
// array of rings; only the first ring is read. A JSON null decodes to an
// empty box.
func (b *BoundingBox) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*b = nil
		return nil
	}
	var raw struct {
		Coordinates []json.RawMessage `json:"coordinates"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %s", ErrMalformedBoundingBox, err)
	}
	if len(raw.Coordinates) == 0 {
		return ErrMalformedBoundingBox
	}
	var ring [][2]float64
	if err := json.Unmarshal(raw.Coordinates[0], &ring); err != nil {
		return fmt.Errorf("%w: %s", ErrMalformedBoundingBox, err)
	}
	*b = ring
	return nil
}

// MarshalJSON implements the json.Marshaler interface. Unlike decoding, the
// coordinate list is emitted without the extra ring nesting; this is the
// outbound shape the platform expects. An empty box encodes as null.
func (b BoundingBox) MarshalJSON() ([]byte, error) {
	if len(b) == 0 {
		return []byte("null"), nil
	}
	boxType := "Polygon"
	if len(b) == 1 {
		boxType = "Point"
	}
	return json.Marshal(struct {
		Coordinates [][2]float64 `json:"coordinates"`
		Type        string       `json:"type"`
	}{Coordinates: b, Type: boxType})
}

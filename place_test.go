// SPDX-FileCopyrightText: The tweetkit/places Authors
//
// SPDX-License-Identifier: MIT

package places

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestPlaceType_RoundTrip(t *testing.T) {
	tests := []struct {
		placeType PlaceType
		tag       string
	}{
		{PointOfInterest, "poi"},
		{Neighborhood, "neighborhood"},
		{City, "city"},
		{Admin, "admin"},
		{Country, "country"},
	}

	for _, tc := range tests {
		t.Run(tc.tag, func(t *testing.T) {
			data, err := json.Marshal(tc.placeType)
			if err != nil {
				t.Fatalf("failed to marshal place type: %s", err)
			}
			if string(data) != `"`+tc.tag+`"` {
				t.Errorf("expected encoded tag %q, got %s", tc.tag, data)
			}

			var decoded PlaceType
			if err = json.Unmarshal(data, &decoded); err != nil {
				t.Fatalf("failed to unmarshal place type: %s", err)
			}
			if decoded != tc.placeType {
				t.Errorf("expected place type %v after round trip, got %v", tc.placeType, decoded)
			}

			if tc.placeType.String() != tc.tag {
				t.Errorf("expected parameter form %q, got %q", tc.tag, tc.placeType.String())
			}
		})
	}
}

func TestPlaceType_UnmarshalJSON(t *testing.T) {
	t.Run("unknown tag fails", func(t *testing.T) {
		var placeType PlaceType
		err := json.Unmarshal([]byte(`"continent"`), &placeType)
		if err == nil {
			t.Fatal("expected unmarshal to fail")
		}
		if !errors.Is(err, ErrUnknownPlaceType) {
			t.Errorf("expected error to be %s, got %s", ErrUnknownPlaceType, err)
		}
	})
	t.Run("non-string value fails", func(t *testing.T) {
		var placeType PlaceType
		if err := json.Unmarshal([]byte(`42`), &placeType); err == nil {
			t.Fatal("expected unmarshal to fail")
		}
	})
}

func TestPlaceType_MarshalJSON(t *testing.T) {
	t.Run("out-of-range value fails", func(t *testing.T) {
		if _, err := json.Marshal(PlaceType(42)); err == nil {
			t.Fatal("expected marshal to fail")
		}
	})
}

func TestParsePlaceType(t *testing.T) {
	t.Run("known tags parse", func(t *testing.T) {
		placeType, err := ParsePlaceType("city")
		if err != nil {
			t.Fatalf("failed to parse place type: %s", err)
		}
		if placeType != City {
			t.Errorf("expected place type %v, got %v", City, placeType)
		}
	})
	t.Run("unknown tag fails", func(t *testing.T) {
		if _, err := ParsePlaceType("metropolis"); !errors.Is(err, ErrUnknownPlaceType) {
			t.Errorf("expected error to be %s, got %s", ErrUnknownPlaceType, err)
		}
	})
}

func TestBoundingBox_UnmarshalJSON(t *testing.T) {
	t.Run("polygon decodes with pair order preserved", func(t *testing.T) {
		data := []byte(`{"type":"Polygon","coordinates":[[[-122.4,37.7],[-122.3,37.7],[-122.3,37.8],[-122.4,37.8]]]}`)
		var box BoundingBox
		if err := json.Unmarshal(data, &box); err != nil {
			t.Fatalf("failed to unmarshal bounding box: %s", err)
		}
		want := BoundingBox{{-122.4, 37.7}, {-122.3, 37.7}, {-122.3, 37.8}, {-122.4, 37.8}}
		if !reflect.DeepEqual(box, want) {
			t.Errorf("expected bounding box %v, got %v", want, box)
		}
	})
	t.Run("null decodes to an empty box", func(t *testing.T) {
		var box BoundingBox
		if err := json.Unmarshal([]byte(`null`), &box); err != nil {
			t.Fatalf("failed to unmarshal bounding box: %s", err)
		}
		if len(box) != 0 {
			t.Errorf("expected empty bounding box, got %v", box)
		}
	})
	t.Run("missing coordinates fails", func(t *testing.T) {
		var box BoundingBox
		err := json.Unmarshal([]byte(`{"type":"Polygon"}`), &box)
		if !errors.Is(err, ErrMalformedBoundingBox) {
			t.Errorf("expected error to be %s, got %s", ErrMalformedBoundingBox, err)
		}
	})
	t.Run("empty coordinates fails", func(t *testing.T) {
		var box BoundingBox
		err := json.Unmarshal([]byte(`{"type":"Polygon","coordinates":[]}`), &box)
		if !errors.Is(err, ErrMalformedBoundingBox) {
			t.Errorf("expected error to be %s, got %s", ErrMalformedBoundingBox, err)
		}
	})
	t.Run("malformed first ring fails", func(t *testing.T) {
		var box BoundingBox
		err := json.Unmarshal([]byte(`{"type":"Polygon","coordinates":[42]}`), &box)
		if !errors.Is(err, ErrMalformedBoundingBox) {
			t.Errorf("expected error to be %s, got %s", ErrMalformedBoundingBox, err)
		}
	})
	t.Run("non-object value fails", func(t *testing.T) {
		var box BoundingBox
		err := json.Unmarshal([]byte(`17`), &box)
		if !errors.Is(err, ErrMalformedBoundingBox) {
			t.Errorf("expected error to be %s, got %s", ErrMalformedBoundingBox, err)
		}
	})
}

func TestBoundingBox_MarshalJSON(t *testing.T) {
	t.Run("empty box encodes as null", func(t *testing.T) {
		data, err := json.Marshal(BoundingBox{})
		if err != nil {
			t.Fatalf("failed to marshal bounding box: %s", err)
		}
		if string(data) != "null" {
			t.Errorf("expected null, got %s", data)
		}
	})
	t.Run("single pair encodes as a point without ring nesting", func(t *testing.T) {
		data, err := json.Marshal(BoundingBox{{-122.4, 37.7}})
		if err != nil {
			t.Fatalf("failed to marshal bounding box: %s", err)
		}
		want := `{"coordinates":[[-122.4,37.7]],"type":"Point"}`
		if string(data) != want {
			t.Errorf("expected %s, got %s", want, data)
		}
	})
	t.Run("multiple pairs encode as a polygon without ring nesting", func(t *testing.T) {
		data, err := json.Marshal(BoundingBox{{-122.4, 37.7}, {-122.3, 37.7}, {-122.3, 37.8}})
		if err != nil {
			t.Fatalf("failed to marshal bounding box: %s", err)
		}
		want := `{"coordinates":[[-122.4,37.7],[-122.3,37.7],[-122.3,37.8]],"type":"Polygon"}`
		if string(data) != want {
			t.Errorf("expected %s, got %s", want, data)
		}
	})
}

func TestPlace_Decode(t *testing.T) {
	t.Run("a full place record decodes", func(t *testing.T) {
		data := []byte(`{
			"id": "df51dec6f4ee2b2c",
			"name": "SoMa",
			"full_name": "SoMa, San Francisco",
			"country": "United States",
			"country_code": "US",
			"place_type": "neighborhood",
			"attributes": {"street_address": "123 Main St"},
			"bounding_box": {"type": "Polygon", "coordinates": [[[-122.42, 37.76], [-122.39, 37.76], [-122.39, 37.78]]]},
			"contained_within": [{
				"id": "5a110d312052166f",
				"name": "San Francisco",
				"full_name": "San Francisco, CA",
				"country": "United States",
				"country_code": "US",
				"place_type": "city",
				"attributes": {},
				"bounding_box": null
			}]
		}`)
		var place Place
		if err := json.Unmarshal(data, &place); err != nil {
			t.Fatalf("failed to unmarshal place: %s", err)
		}
		if place.ID != "df51dec6f4ee2b2c" {
			t.Errorf("expected place ID df51dec6f4ee2b2c, got %q", place.ID)
		}
		if place.PlaceType != Neighborhood {
			t.Errorf("expected place type %v, got %v", Neighborhood, place.PlaceType)
		}
		if place.Attributes["street_address"] != "123 Main St" {
			t.Errorf("expected street_address attribute, got %v", place.Attributes)
		}
		if len(place.BoundingBox) != 3 {
			t.Errorf("expected 3 bounding box pairs, got %d", len(place.BoundingBox))
		}
		if len(place.ContainedWithin) != 1 {
			t.Fatalf("expected one enclosing place, got %d", len(place.ContainedWithin))
		}
		enclosing := place.ContainedWithin[0]
		if enclosing.PlaceType != City {
			t.Errorf("expected enclosing place type %v, got %v", City, enclosing.PlaceType)
		}
		if len(enclosing.BoundingBox) != 0 {
			t.Errorf("expected empty enclosing bounding box, got %v", enclosing.BoundingBox)
		}
	})
	t.Run("an invalid place type fails the whole place", func(t *testing.T) {
		data := []byte(`{"id": "abc", "place_type": "continent"}`)
		var place Place
		if err := json.Unmarshal(data, &place); !errors.Is(err, ErrUnknownPlaceType) {
			t.Errorf("expected error to be %s, got %s", ErrUnknownPlaceType, err)
		}
	})
}

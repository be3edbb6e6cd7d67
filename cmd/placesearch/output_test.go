// SPDX-FileCopyrightText: The tweetkit/places Authors
//
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tweetkit/places"
)

func TestPrintPlaces(t *testing.T) {
	t.Run("results are rendered as an aligned table", func(t *testing.T) {
		buf := bytes.NewBuffer(nil)
		printPlaces(buf, []places.Place{
			{
				ID:        "df51dec6f4ee2b2c",
				Name:      "SoMa",
				FullName:  "SoMa, San Francisco",
				Country:   "United States",
				PlaceType: places.Neighborhood,
			},
			{
				ID:        "0118c71c0ed41109",
				Name:      "东京",
				FullName:  "東京, 日本",
				Country:   "Japan",
				PlaceType: places.City,
			},
		})

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		if len(lines) != 3 {
			t.Fatalf("expected a header and two rows, got %d lines: %q", len(lines), buf.String())
		}
		if !strings.HasPrefix(lines[0], "ID") {
			t.Errorf("expected a header row, got %q", lines[0])
		}
		if !strings.Contains(lines[1], "neighborhood") {
			t.Errorf("expected the first row to carry the place type, got %q", lines[1])
		}
		if !strings.Contains(lines[2], "东京") {
			t.Errorf("expected the second row to carry the place name, got %q", lines[2])
		}
	})
	t.Run("no results prints a notice", func(t *testing.T) {
		buf := bytes.NewBuffer(nil)
		printPlaces(buf, nil)
		if !strings.Contains(buf.String(), "no places found") {
			t.Errorf("expected a notice, got %q", buf.String())
		}
	})
}

// SPDX-FileCopyrightText: The tweetkit/places Authors
//
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"github.com/tweetkit/places"
)

// printPlaces renders the search results as an aligned table. Column widths
// use terminal display width, not byte or rune counts, since place names are
// not ASCII-only.
func printPlaces(w io.Writer, results []places.Place) {
	if len(results) == 0 {
		fmt.Fprintln(w, "no places found")
		return
	}

	rows := make([][]string, 0, len(results)+1)
	rows = append(rows, []string{"ID", "NAME", "TYPE", "COUNTRY", "FULL NAME"})
	for _, place := range results {
		rows = append(rows, []string{
			place.ID,
			place.Name,
			place.PlaceType.String(),
			place.Country,
			place.FullName,
		})
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if width := runewidth.StringWidth(cell); width > widths[i] {
				widths[i] = width
			}
		}
	}

	for _, row := range rows {
		for i, cell := range row {
			if i == len(row)-1 {
				fmt.Fprintln(w, cell)
				continue
			}
			fmt.Fprint(w, runewidth.FillRight(cell, widths[i]), "  ")
		}
	}
}

// SPDX-FileCopyrightText: The tweetkit/places Authors
//
// SPDX-License-Identifier: MIT

package places

import "strconv"

// Accuracy is the radius of confidence around a coordinate when it is handed
// to a location search, measured in either meters or feet
type Accuracy struct {
	distance float64
	feet     bool
}

// Meters returns an Accuracy of the given number of meters
func Meters(distance float64) Accuracy {
	return Accuracy{distance: distance}
}

// Feet returns an Accuracy of the given number of feet
func Feet(distance float64) Accuracy {
	return Accuracy{distance: distance, feet: true}
}

// String formats the accuracy for the query-parameter form: meters as a bare
// decimal, feet as a decimal suffixed with "ft"
func (a Accuracy) String() string {
	s := strconv.FormatFloat(a.distance, 'f', -1, 64)
	if a.feet {
		s += "ft"
	}
	return s
}

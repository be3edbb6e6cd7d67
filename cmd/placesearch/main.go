// SPDX-FileCopyrightText: The tweetkit/places Authors
//
// SPDX-License-Identifier: MIT

// Package main implements the placesearch CLI.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/time/rate"

	"github.com/tweetkit/places"
	"github.com/tweetkit/places/auth"
	"github.com/tweetkit/places/internal/config"
	"github.com/tweetkit/places/internal/logger"
	"github.com/tweetkit/places/rest"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	confPath := flag.String("config", "", "path to the config file")
	reverse := flag.Bool("reverse", false, "reverse geocode the coordinate given with -lat/-lon")
	point := flag.Bool("point", false, "search for places around the coordinate given with -lat/-lon")
	lat := flag.Float64("lat", 0, "latitude for -reverse or -point")
	lon := flag.Float64("lon", 0, "longitude for -reverse or -point")
	query := flag.String("query", "", "search for places matching the given free-text query")
	ip := flag.String("ip", "", "search for places near the given IP address")
	accuracy := flag.String("accuracy", "", "search radius, e.g. 50 (meters) or 120ft")
	granularity := flag.String("granularity", "", "minimal place granularity (poi, neighborhood, city, admin, country)")
	maxResults := flag.Uint("max", 0, "maximum number of results to request")
	containedWithin := flag.String("contained-within", "", "restrict search results to the given place ID")
	urlOnly := flag.Bool("url-only", false, "print the request URL instead of executing it")
	showVersion := flag.Bool("version", false, "print version information and exit")

	attributes := make(map[string]string)
	flag.Func("attr", "attribute filter as key=value, may be repeated", func(value string) error {
		key, val, found := strings.Cut(value, "=")
		if !found || key == "" {
			return fmt.Errorf("invalid attribute %q, expected key=value", value)
		}
		attributes[key] = val
		return nil
	})
	flag.Parse()

	if *showVersion {
		fmt.Printf("placesearch %s (%s, %s)\n", version, commit, date)
		return
	}

	log := logger.New(slog.LevelError)
	conf, err := loadConfig(*confPath)
	if err != nil {
		log.Error("failed to load config", logger.Err(err))
		os.Exit(1)
	}
	log = logger.New(conf.LogLevel)

	if *urlOnly {
		requestURL, err := buildURL(*reverse, *point, *lat, *lon, *query, *ip, *accuracy,
			*granularity, *maxResults, *containedWithin, attributes)
		if err != nil {
			log.Error("failed to build request URL", logger.Err(err))
			os.Exit(1)
		}
		fmt.Println(requestURL)
		return
	}

	client := rest.New(
		rest.WithTimeout(conf.HTTP.Timeout),
		rest.WithRetryMax(conf.HTTP.RetryMax),
		rest.WithLimiter(rate.NewLimiter(rate.Limit(conf.RateLimit.RequestsPerSecond), conf.RateLimit.Burst)),
		rest.WithLogger(log.Logger),
	)
	token := auth.Bearer(conf.BearerToken)

	response, err := run(ctx, client, token, *reverse, *point, *lat, *lon, *query, *ip,
		*accuracy, *granularity, *maxResults, *containedWithin, attributes)
	if err != nil {
		log.Error("search failed", logger.Err(err))
		os.Exit(1)
	}

	printPlaces(os.Stdout, response.Data.Results)
	log.Debug("rate limit", "remaining", response.RateLimit.Remaining, "limit", response.RateLimit.Limit,
		"reset", response.RateLimit.Reset)
}

// run dispatches the configured query mode and executes it
func run(ctx context.Context, client *rest.Client, token auth.Token, reverse, point bool,
	lat, lon float64, query, ip, accuracy, granularity string, maxResults uint,
	containedWithin string, attributes map[string]string,
) (*rest.Response[places.SearchResult], error) {
	if reverse {
		builder, err := geocodeBuilder(lat, lon, accuracy, granularity, maxResults)
		if err != nil {
			return nil, err
		}
		return builder.Client(client).Call(ctx, token)
	}
	builder, err := searchBuilder(point, lat, lon, query, ip, accuracy, granularity,
		maxResults, containedWithin, attributes)
	if err != nil {
		return nil, err
	}
	return builder.Client(client).Call(ctx, token)
}

// buildURL formats the request URL for the configured query mode
func buildURL(reverse, point bool, lat, lon float64, query, ip, accuracy, granularity string,
	maxResults uint, containedWithin string, attributes map[string]string,
) (string, error) {
	if reverse {
		builder, err := geocodeBuilder(lat, lon, accuracy, granularity, maxResults)
		if err != nil {
			return "", err
		}
		return builder.URL(), nil
	}
	builder, err := searchBuilder(point, lat, lon, query, ip, accuracy, granularity,
		maxResults, containedWithin, attributes)
	if err != nil {
		return "", err
	}
	return builder.URL(), nil
}

func geocodeBuilder(lat, lon float64, accuracy, granularity string, maxResults uint) (places.GeocodeBuilder, error) {
	builder := places.ReverseGeocode(lat, lon)
	if accuracy != "" {
		acc, err := parseAccuracy(accuracy)
		if err != nil {
			return builder, err
		}
		builder = builder.Accuracy(acc)
	}
	if granularity != "" {
		placeType, err := places.ParsePlaceType(granularity)
		if err != nil {
			return builder, err
		}
		builder = builder.Granularity(placeType)
	}
	if maxResults > 0 {
		builder = builder.MaxResults(maxResults)
	}
	return builder, nil
}

func searchBuilder(point bool, lat, lon float64, query, ip, accuracy, granularity string,
	maxResults uint, containedWithin string, attributes map[string]string,
) (places.SearchBuilder, error) {
	var builder places.SearchBuilder
	switch {
	case point:
		builder = places.SearchPoint(lat, lon)
	case query != "":
		builder = places.SearchQuery(query)
	case ip != "":
		builder = places.SearchIP(ip)
	default:
		return builder, errors.New("no query mode selected, use -reverse, -point, -query or -ip")
	}
	if accuracy != "" {
		acc, err := parseAccuracy(accuracy)
		if err != nil {
			return builder, err
		}
		builder = builder.Accuracy(acc)
	}
	if granularity != "" {
		placeType, err := places.ParsePlaceType(granularity)
		if err != nil {
			return builder, err
		}
		builder = builder.Granularity(placeType)
	}
	if maxResults > 0 {
		builder = builder.MaxResults(maxResults)
	}
	if containedWithin != "" {
		builder = builder.ContainedWithin(containedWithin)
	}
	for key, value := range attributes {
		builder = builder.Attribute(key, value)
	}
	return builder, nil
}

// parseAccuracy reads a search radius flag: a bare decimal is meters, a
// decimal suffixed with "ft" is feet
func parseAccuracy(value string) (places.Accuracy, error) {
	feet := strings.HasSuffix(value, "ft")
	distance, err := strconv.ParseFloat(strings.TrimSuffix(value, "ft"), 64)
	if err != nil {
		return places.Accuracy{}, fmt.Errorf("invalid accuracy %q: %w", value, err)
	}
	if feet {
		return places.Feet(distance), nil
	}
	return places.Meters(distance), nil
}

// loadConfig reads the config from the given path, the default location, or
// falls back to defaults
func loadConfig(confPath string) (*config.Config, error) {
	if confPath != "" {
		return config.NewFromFile(filepath.Dir(confPath), filepath.Base(confPath))
	}
	if path, file := findConfigFile(); path != "" && file != "" {
		return config.NewFromFile(path, file)
	}
	return config.New()
}

func findConfigFile() (string, string) {
	homedir, err := os.UserHomeDir()
	if err != nil {
		return "", ""
	}
	exts := []string{"toml", "yaml", "yml", "json"}
	for _, ext := range exts {
		path := filepath.Join(homedir, ".config", "placesearch", "config."+ext)
		if _, err = os.Stat(path); err == nil {
			return filepath.Dir(path), filepath.Base(path)
		}
	}
	return "", ""
}

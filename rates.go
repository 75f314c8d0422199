package mortgage

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/mortgage/date"
	"go.uber.org/zap"
)

// FRED series of the weekly Freddie Mac Primary Mortgage Market Survey.
const (
	Series30Year = "MORTGAGE30US"
	Series15Year = "MORTGAGE15US"
)

// DefaultFREDURL is the FRED API root.
const DefaultFREDURL = "https://api.stlouisfed.org/fred"

// ErrNoObservation is returned when the feed has no published value.
var ErrNoObservation = errors.New("no observation")

// SeriesFor returns the 15-year series for terms up to 15 years, the 30-year
// series beyond.
func SeriesFor(t Term) string {
	if t <= Years(15) {
		return Series15Year
	}
	return Series30Year
}

// MarketRate is one published average rate.
type MarketRate struct {
	Series string
	On     date.Date
	Rate   Percent
}

// RateFeed reads the latest average mortgage rates from the FRED API.
type RateFeed struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
	Logger  *zap.Logger
}

// NewRateFeed returns a feed on the FRED API with a daily disk cache.
func NewRateFeed(apiKey string, logger *zap.Logger) *RateFeed {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RateFeed{
		BaseURL: DefaultFREDURL,
		APIKey:  apiKey,
		Client:  daily(logger),
		Logger:  logger,
	}
}

/*
	{
	    "realtime_start": "2025-10-17",
	    "observation_start": "1600-01-01",
	    "units": "lin",
	    "sort_order": "desc",
	    "count": 2850,
	    "limit": 1,
	    "observations": [
	        {"realtime_start": "2025-10-17", "realtime_end": "2025-10-17", "date": "2025-10-16", "value": "6.27"}
	    ]
	}
*/

// Latest returns the most recent observation of a series.
func (f *RateFeed) Latest(ctx context.Context, series string) (MarketRate, error) {
	if f.APIKey == "" {
		return MarketRate{}, fmt.Errorf("a FRED API key is required to fetch %s", series)
	}
	q := url.Values{}
	q.Set("series_id", series)
	q.Set("api_key", f.APIKey)
	q.Set("file_type", "json")
	q.Set("sort_order", "desc")
	q.Set("limit", "1")
	addr := strings.TrimSuffix(f.BaseURL, "/") + "/series/observations?" + q.Encode()

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	var jobj any
	if err := jwget(ctx, client, addr, &jobj); err != nil {
		return MarketRate{}, fmt.Errorf("error fetching %s: %w", series, err)
	}

	value, err := pathString(jobj, "$.observations[0].value")
	if err != nil {
		return MarketRate{}, fmt.Errorf("error parsing %s: %w", series, err)
	}
	on, err := pathString(jobj, "$.observations[0].date")
	if err != nil {
		return MarketRate{}, fmt.Errorf("error parsing %s: %w", series, err)
	}

	// FRED publishes "." for a missing value.
	if value == "." {
		return MarketRate{}, fmt.Errorf("%w for %s on %s", ErrNoObservation, series, on)
	}
	rate, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return MarketRate{}, fmt.Errorf("error parsing %s: invalid rate %q: %w", series, value, err)
	}
	day, err := date.Parse(on)
	if err != nil {
		return MarketRate{}, fmt.Errorf("error parsing %s: %w", series, err)
	}
	f.logger().Info("market rate", zap.String("series", series), zap.Stringer("on", day), zap.Float64("rate", rate))
	return MarketRate{Series: series, On: day, Rate: Percent(rate)}, nil
}

func (f *RateFeed) logger() *zap.Logger {
	if f.Logger == nil {
		return zap.NewNop()
	}
	return f.Logger
}

// pathString evaluates a JSONPath that must designate a single string.
func pathString(jobj any, path string) (string, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("%q: %w", path, err)
	}
	// because jsonpath is never clear about wheter it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok {
		if len(jlist) == 0 {
			return "", fmt.Errorf("%q: %w", path, ErrNoObservation)
		}
		jval = jlist[0]
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("%q: not a string %v", path, jval)
	}
	return s, nil
}

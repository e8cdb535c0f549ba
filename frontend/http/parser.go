package http

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/chihaya/pcgrand/pkg/pcg"
	"github.com/chihaya/pcgrand/pkg/seed"
)

// ErrSeedAndName is returned for a request that names its stream both by seed
// and by name.
var ErrSeedAndName = ClientError("provide either seed or name, not both")

// parseGenerator builds the generator for a request.
//
// A "seed" parameter seeds it directly, a "name" parameter is turned into a
// seed first. Without either the generator starts at the default state.
func parseGenerator(q url.Values, cfg pcg.Config) (*pcg.Generator, error) {
	g := pcg.NewWithConfig(cfg)

	seedStr, hasSeed := lookup(q, "seed")
	name, hasName := lookup(q, "name")

	switch {
	case hasSeed && hasName:
		return nil, ErrSeedAndName
	case hasSeed:
		s, err := strconv.ParseUint(seedStr, 0, 64)
		if err != nil {
			return nil, ClientError("invalid seed: " + seedStr)
		}
		g.Seed(s)
	case hasName:
		g.Seed(seed.FromString(name))
	}

	return g, nil
}

// parseCount parses the "n" parameter: the number of values to draw.
func parseCount(q url.Values, max int) (int, error) {
	s, ok := lookup(q, "n")
	if !ok {
		return 1, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > max {
		return 0, ClientError("n must be an integer in [1, " + strconv.Itoa(max) + "]")
	}
	return n, nil
}

// parseSize parses a non-negative integer parameter bounded by max.
func parseSize(q url.Values, key string, max int) (int, error) {
	s, ok := lookup(q, key)
	if !ok {
		return 0, ClientError("missing " + key)
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > max {
		return 0, ClientError(key + " must be an integer in [0, " + strconv.Itoa(max) + "]")
	}
	return n, nil
}

// optionalInt parses an optional int64 parameter.
func optionalInt(q url.Values, key string) (v int64, ok bool, err error) {
	s, ok := lookup(q, key)
	if !ok {
		return 0, false, nil
	}

	v, err = strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false, ClientError("invalid " + key + ": " + s)
	}
	return v, true, nil
}

// optionalFloat parses an optional finite float64 parameter.
func optionalFloat(q url.Values, key string) (v float64, ok bool, err error) {
	s, ok := lookup(q, key)
	if !ok {
		return 0, false, nil
	}

	v, err = strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false, ClientError("invalid " + key + ": " + s)
	}
	return v, true, nil
}

// parseFloats parses a comma separated list of floats.
func parseFloats(q url.Values, key string) ([]float64, error) {
	parts := parseStrings(q, key)
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, ClientError("invalid " + key + ": " + p)
		}
		out = append(out, v)
	}
	return out, nil
}

// parseStrings parses a comma separated list. A missing or empty parameter
// yields an empty list.
func parseStrings(q url.Values, key string) []string {
	s, ok := lookup(q, key)
	if !ok || s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}

func lookup(q url.Values, key string) (string, bool) {
	vs, ok := q[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

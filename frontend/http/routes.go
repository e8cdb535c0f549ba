package http

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/chihaya/pcgrand/pkg/pcg"
	"github.com/chihaya/pcgrand/pkg/random"
)

// asClientError turns the precondition errors of pcg into a ClientError.
// Other errors are passed through.
func asClientError(err error) error {
	switch {
	case errors.Is(err, pcg.ErrInvalidRange),
		errors.Is(err, pcg.ErrLengthMismatch),
		errors.Is(err, pcg.ErrEmptyInput),
		errors.Is(err, pcg.ErrInvalidWeight):
		return ClientError(err.Error())
	}
	return err
}

// prepare parses the parts every draw request shares.
func (f *Frontend) prepare(r *http.Request) (*pcg.Generator, int, error) {
	q := r.URL.Query()

	g, err := parseGenerator(q, f.Generator)
	if err != nil {
		return nil, 0, err
	}

	n, err := parseCount(q, f.MaxCount)
	if err != nil {
		return nil, 0, err
	}

	return g, n, nil
}

func (f *Frontend) handleUint32(r *http.Request, _ httprouter.Params) (int, *Result, error) {
	g, n, err := f.prepare(r)
	if err != nil {
		return http.StatusBadRequest, nil, err
	}

	values := make([]uint32, n)
	for i := range values {
		values[i] = g.Uint32()
	}

	return http.StatusOK, &Result{Values: values, Count: n}, nil
}

func (f *Frontend) handleInt(r *http.Request, _ httprouter.Params) (int, *Result, error) {
	g, n, err := f.prepare(r)
	if err != nil {
		return http.StatusBadRequest, nil, err
	}

	q := r.URL.Query()
	min, hasMin, err := optionalInt(q, "min")
	if err != nil {
		return http.StatusBadRequest, nil, err
	}
	max, hasMax, err := optionalInt(q, "max")
	if err != nil {
		return http.StatusBadRequest, nil, err
	}

	values := make([]int64, n)
	for i := range values {
		switch {
		case hasMin && hasMax:
			values[i], err = g.IntRange(min, max)
		case hasMin:
			values[i], err = g.Intn(min)
		case hasMax:
			values[i], err = g.Intn(max)
		default:
			values[i] = g.Int()
		}
		if err != nil {
			return http.StatusBadRequest, nil, asClientError(err)
		}
	}

	return http.StatusOK, &Result{Values: values, Count: n}, nil
}

func (f *Frontend) handleFloat(r *http.Request, _ httprouter.Params) (int, *Result, error) {
	g, n, err := f.prepare(r)
	if err != nil {
		return http.StatusBadRequest, nil, err
	}

	q := r.URL.Query()
	min, hasMin, err := optionalFloat(q, "min")
	if err != nil {
		return http.StatusBadRequest, nil, err
	}
	max, hasMax, err := optionalFloat(q, "max")
	if err != nil {
		return http.StatusBadRequest, nil, err
	}

	values := make([]float64, n)
	for i := range values {
		switch {
		case hasMin && hasMax:
			values[i], err = g.Float64Range(min, max)
		case hasMin:
			values[i], err = g.Float64n(min)
		case hasMax:
			values[i], err = g.Float64n(max)
		default:
			values[i] = g.Float64()
		}
		if err != nil {
			return http.StatusBadRequest, nil, asClientError(err)
		}
	}

	return http.StatusOK, &Result{Values: values, Count: n}, nil
}

func (f *Frontend) handlePerm(r *http.Request, _ httprouter.Params) (int, *Result, error) {
	g, _, err := f.prepare(r)
	if err != nil {
		return http.StatusBadRequest, nil, err
	}

	size, err := parseSize(r.URL.Query(), "size", f.MaxCount)
	if err != nil {
		return http.StatusBadRequest, nil, err
	}

	perm, err := g.Perm(size)
	if err != nil {
		return http.StatusBadRequest, nil, asClientError(err)
	}

	return http.StatusOK, &Result{Values: perm, Count: len(perm)}, nil
}

func (f *Frontend) handleShuffle(r *http.Request, _ httprouter.Params) (int, *Result, error) {
	g, _, err := f.prepare(r)
	if err != nil {
		return http.StatusBadRequest, nil, err
	}

	items := parseStrings(r.URL.Query(), "items")
	if len(items) > f.MaxCount {
		return http.StatusBadRequest, nil, ClientError("too many items")
	}

	perm := pcg.SamplePermutation(g, items)
	return http.StatusOK, &Result{Values: perm, Count: len(perm)}, nil
}

func (f *Frontend) handleChoice(r *http.Request, _ httprouter.Params) (int, *Result, error) {
	g, n, err := f.prepare(r)
	if err != nil {
		return http.StatusBadRequest, nil, err
	}

	q := r.URL.Query()
	weights, err := parseFloats(q, "weights")
	if err != nil {
		return http.StatusBadRequest, nil, err
	}

	if _, hasItems := lookup(q, "items"); !hasItems {
		indices := make([]int, n)
		for i := range indices {
			indices[i], err = g.WeightedIndex(weights)
			if err != nil {
				return http.StatusBadRequest, nil, asClientError(err)
			}
		}
		return http.StatusOK, &Result{Values: indices, Count: n}, nil
	}

	items := parseStrings(q, "items")
	chosen := make([]string, n)
	for i := range chosen {
		chosen[i], err = pcg.WeightedChoice(g, weights, items)
		if err != nil {
			return http.StatusBadRequest, nil, asClientError(err)
		}
	}
	return http.StatusOK, &Result{Values: chosen, Count: n}, nil
}

func (f *Frontend) handleString(r *http.Request, _ httprouter.Params) (int, *Result, error) {
	g, n, err := f.prepare(r)
	if err != nil {
		return http.StatusBadRequest, nil, err
	}

	q := r.URL.Query()
	length, err := parseSize(q, "length", f.MaxCount)
	if err != nil {
		return http.StatusBadRequest, nil, err
	}

	alphabet, ok := lookup(q, "alphabet")
	if !ok {
		alphabet = random.AlphaNumeric
	}
	if alphabet == "" {
		return http.StatusBadRequest, nil, ClientError("empty alphabet")
	}

	values := make([]string, n)
	for i := range values {
		values[i] = random.String(g, length, alphabet)
	}

	return http.StatusOK, &Result{Values: values, Count: n}, nil
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/chihaya/pcgrand/pkg/log"
)

// ClientError represents an error caused by the request. Its message is
// exposed to the client; any other error is reported as an internal error.
type ClientError string

// Error implements the error interface for ClientError.
func (c ClientError) Error() string { return string(c) }

// errRecovered is returned for handlers that panicked.
var errRecovered = errors.New("recovered from panic")

// errInternalServerError is the message sent for errors that are not a
// ClientError.
const errInternalServerError = "internal server error"

// ResponseFunc is the type of function that handles a request and returns an
// HTTP status code, a result to be embedded and an error.
type ResponseFunc func(*http.Request, httprouter.Params) (status int, result *Result, err error)

// Result is the payload of a successful response.
type Result struct {
	Values interface{} `json:"values"`
	Count  int         `json:"count"`
}

type response struct {
	Ok     bool    `json:"ok"`
	Error  string  `json:"error,omitempty"`
	Result *Result `json:"result,omitempty"`
}

func (f *Frontend) makeHandler(action string, inner ResponseFunc) httprouter.Handle {
	handler := logHandler(recoverHandler(inner))

	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		var start time.Time
		if f.EnableRequestTiming {
			start = time.Now()
		}

		status, result, err := handler(r, p)

		resp := response{}
		if err != nil {
			resp.Error = errInternalServerError
			if _, clientErr := err.(ClientError); clientErr {
				resp.Error = err.Error()
			} else {
				log.Error("http: internal error", log.Fields{"action": action}, log.Err(err))
			}
		} else {
			resp.Ok = true
			resp.Result = result
			if result != nil {
				recordValuesServed(action, result.Count)
			}
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			log.Error("http: unable to send response", log.Err(err))
		}

		if f.EnableRequestTiming {
			recordResponseDuration(action, err, time.Since(start))
		}
	}
}

func logHandler(inner ResponseFunc) ResponseFunc {
	return func(r *http.Request, p httprouter.Params) (int, *Result, error) {
		before := time.Now()

		status, result, err := inner(r, p)

		log.Debug("http: served request", log.Fields{
			"status":   status,
			"duration": time.Since(before).String(),
			"remote":   r.RemoteAddr,
			"method":   r.Method,
			"path":     r.URL.EscapedPath(),
			"query":    r.URL.RawQuery,
		})

		return status, result, err
	}
}

func recoverHandler(inner ResponseFunc) ResponseFunc {
	return func(r *http.Request, p httprouter.Params) (status int, result *Result, err error) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("http: recovered", log.Fields{"panic": rec})
				status = http.StatusInternalServerError
				result = nil
				err = errRecovered
			}
		}()

		status, result, err = inner(r, p)
		return
	}
}

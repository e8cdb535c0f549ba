// Package http implements a stateless HTTP frontend that serves deterministic
// draws from PCG generators.
//
// Every request builds its own generator from the seed or name it carries, so
// the same query always receives the same response.
package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/chihaya/pcgrand/pkg/log"
	"github.com/chihaya/pcgrand/pkg/pcg"
	"github.com/chihaya/pcgrand/pkg/stop"
)

// Config represents all of the configurable options for the HTTP frontend.
type Config struct {
	Addr                string        `yaml:"addr"`
	ReadTimeout         time.Duration `yaml:"read_timeout"`
	WriteTimeout        time.Duration `yaml:"write_timeout"`
	MaxCount            int           `yaml:"max_count"`
	EnableRequestTiming bool          `yaml:"enable_request_timing"`
	Generator           pcg.Config    `yaml:"generator"`
}

// LogFields renders the current config as a set of Logrus fields.
func (cfg Config) LogFields() log.Fields {
	return log.Fields{
		"addr":                cfg.Addr,
		"readTimeout":         cfg.ReadTimeout,
		"writeTimeout":        cfg.WriteTimeout,
		"maxCount":            cfg.MaxCount,
		"enableRequestTiming": cfg.EnableRequestTiming,
		"multiplier":          cfg.Generator.Multiplier,
		"increment":           cfg.Generator.Increment,
	}
}

// Default config constants.
const (
	defaultAddr         = "localhost:6880"
	defaultReadTimeout  = 2 * time.Second
	defaultWriteTimeout = 2 * time.Second
	defaultMaxCount     = 1000
)

// Validate sanitizes and validates the configuration.
//
// The returned Config is guaranteed to be valid; every substituted default is
// logged.
func (cfg Config) Validate() Config {
	validcfg := cfg

	if cfg.Addr == "" {
		validcfg.Addr = defaultAddr
		log.Warn("falling back to default configuration", log.Fields{
			"name":     "http.Addr",
			"provided": cfg.Addr,
			"default":  validcfg.Addr,
		})
	}

	if cfg.ReadTimeout <= 0 {
		validcfg.ReadTimeout = defaultReadTimeout
		log.Warn("falling back to default configuration", log.Fields{
			"name":     "http.ReadTimeout",
			"provided": cfg.ReadTimeout,
			"default":  validcfg.ReadTimeout,
		})
	}

	if cfg.WriteTimeout <= 0 {
		validcfg.WriteTimeout = defaultWriteTimeout
		log.Warn("falling back to default configuration", log.Fields{
			"name":     "http.WriteTimeout",
			"provided": cfg.WriteTimeout,
			"default":  validcfg.WriteTimeout,
		})
	}

	if cfg.MaxCount <= 0 {
		validcfg.MaxCount = defaultMaxCount
		log.Warn("falling back to default configuration", log.Fields{
			"name":     "http.MaxCount",
			"provided": cfg.MaxCount,
			"default":  validcfg.MaxCount,
		})
	}

	validcfg.Generator = cfg.Generator.Validate()

	return validcfg
}

// Frontend holds the state of the HTTP frontend.
type Frontend struct {
	srv      *http.Server
	listener net.Listener

	Config
}

// NewFrontend creates a new instance of an HTTP frontend that asynchronously
// serves requests.
func NewFrontend(provided Config) (*Frontend, error) {
	cfg := provided.Validate()

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return nil, err
	}

	f := &Frontend{Config: cfg, listener: ln}
	f.srv = &http.Server{
		Handler:      f.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		if err := f.srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed while serving http", log.Err(err))
		}
	}()

	log.Info("started serving HTTP", cfg)
	return f, nil
}

// ListenAddr returns the address the frontend is bound to.
func (f *Frontend) ListenAddr() net.Addr {
	return f.listener.Addr()
}

// Stop provides a thread-safe way to shutdown a currently running Frontend.
func (f *Frontend) Stop() stop.Result {
	c := make(stop.Channel)
	go func() {
		c.Done(f.srv.Shutdown(context.Background()))
	}()

	return c.Result()
}

// Handler returns the routes of the frontend.
//
// The zero Config is not valid; Handler expects a Frontend whose Config went
// through Validate.
func (f *Frontend) Handler() http.Handler {
	router := httprouter.New()
	router.GET("/u32", f.makeHandler("u32", f.handleUint32))
	router.GET("/int", f.makeHandler("int", f.handleInt))
	router.GET("/float", f.makeHandler("float", f.handleFloat))
	router.GET("/perm", f.makeHandler("perm", f.handlePerm))
	router.GET("/shuffle", f.makeHandler("shuffle", f.handleShuffle))
	router.GET("/choice", f.makeHandler("choice", f.handleChoice))
	router.GET("/string", f.makeHandler("string", f.handleString))
	return router
}

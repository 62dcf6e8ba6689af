package main

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func setupLogging() context.Context {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	// alter the caller() return to only include the last directory
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		parts := strings.Split(file, "/")
		if len(parts) > 1 {
			return strings.Join(parts[len(parts)-2:], "/") + ":" + strconv.Itoa(line)
		}
		return file + ":" + strconv.Itoa(line)
	}
	pgmPath := strings.Split(os.Args[0], `/`)
	logTag := "finboard"
	if len(pgmPath) > 1 {
		logTag = pgmPath[len(pgmPath)-1]
	}
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	log := log.With().Str("@tag", logTag).Caller().Logger()
	ctx := log.WithContext(context.Background())

	return ctx
}

func buildRouter(deps *Dependencies) http.Handler {
	router := mux.NewRouter()

	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(deps.config.StaticPath))))

	router.HandleFunc("/ping", pingHandler()).Methods("GET")
	router.Handle("/metrics", promhttp.Handler())

	router.HandleFunc("/", dashboardHandler(deps)).Methods("GET", "POST")

	// middleware chain
	chainedMux1 := withAddContext(router, deps) // deepest level, last to run
	chainedMux2 := withAddHeader(chainedMux1, deps.config.EchartsAssetsHost)
	chainedMux3 := withLogging(chainedMux2) // outer level, first to run

	return chainedMux3
}

func startHTTPServer(ctx context.Context, deps *Dependencies) {
	zerolog.Ctx(ctx).Info().Int("port", deps.config.HTTPPort).Msg("started serving requests")

	// starup or die
	server := &http.Server{
		Handler:      buildRouter(deps),
		Addr:         ":" + strconv.Itoa(deps.config.HTTPPort),
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
	}

	if err := server.ListenAndServe(); err != nil {
		zerolog.Ctx(ctx).Fatal().Err(err).Msg("ended abnormally")
	} else {
		zerolog.Ctx(ctx).Info().Msg("stopped serving requests")
	}
}

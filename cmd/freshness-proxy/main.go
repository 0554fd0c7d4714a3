package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"

	"github.com/ericselin/freshness"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	// CLI flags
	configFilenameFlag string
	portFlag           int
	probePortFlag      int
	originFlag         string
	hostFlag           string
	logFilenameFlag    string
	verbosityTraceFlag bool

	// this is set by goreleaser
	version string
)

func init() {
	flag.StringVar(&configFilenameFlag, "config", "", "Path to config file")
	flag.StringVar(&originFlag, "origin", "", "Origin URL to proxy to (overrides config)")
	flag.StringVar(&hostFlag, "host", "", "Hostname to use for origin requests")
	flag.IntVar(&portFlag, "port", 8080, "Port to listen on")
	flag.IntVar(&probePortFlag, "probe-port", 9090, "Port for health and metrics endpoints")
	flag.StringVar(&logFilenameFlag, "log-file", "", "Log file to use (in addition to stdout)")
	flag.BoolVar(&verbosityTraceFlag, "vv", false, "Verbosity: trace logging")

	if version == "" {
		version = "DEV"
	}
}

func main() {
	flag.Parse()

	// set log level
	logLevel := zerolog.DebugLevel
	if verbosityTraceFlag {
		logLevel = zerolog.TraceLevel
	}

	// set up log output to stdout
	// also output to logfile if specified
	logOutputs := make([]io.Writer, 0)
	logOutputs = append(logOutputs, zerolog.ConsoleWriter{Out: os.Stdout})
	if logFilenameFlag != "" {
		if logFileOutput, err := os.OpenFile(logFilenameFlag, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644); err != nil {
			log.Fatal().Err(err).Msg("Cannot open log file")
		} else {
			logOutputs = append(logOutputs, logFileOutput)
		}
	}
	multiWriter := zerolog.MultiLevelWriter(logOutputs...)
	log.Logger = log.Level(logLevel).Output(multiWriter).
		With().Str("version", version).Logger()

	origin := originFlag
	host := hostFlag
	port := portFlag

	if configFilenameFlag != "" {
		config, err := getConfig(configFilenameFlag)
		if err != nil {
			log.Fatal().Err(err).Msg("Cannot read config file")
		}
		if len(config.Origins) != 1 {
			log.Fatal().Msg("Need exactly one origin")
		}
		if config.Port > 0 {
			port = config.Port
		}
		if origin == "" {
			origin = config.Origins[0].Origin
		}
		if host == "" {
			host = config.Origins[0].Host
		}
	}

	if origin == "" {
		log.Fatal().Msg("Please specify origin")
	}

	originURL, err := url.Parse(origin)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not parse origin url")
	}

	proxy := httputil.NewSingleHostReverseProxy(originURL)
	if host != "" {
		director := proxy.Director
		proxy.Director = func(req *http.Request) {
			director(req)
			req.Host = host
		}
	}

	fresh := freshness.New(freshness.Config{Logger: &log.Logger})

	r := chi.NewRouter()
	r.Use(fresh.Middleware)
	r.Handle("/*", proxy)

	go serveProbes(probePortFlag)

	log.Info().Msgf("Proxying port %v to %s (with hostname '%s')", port, originURL.String(), host)
	if err := http.ListenAndServe(fmt.Sprintf(":%d", port), r); err != nil {
		panic(err)
	}
}

// serveProbes exposes liveness and metrics endpoints on their own port,
// away from the proxied path space.
func serveProbes(port int) {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("/metrics", promhttp.Handler())

	if err := http.ListenAndServe(fmt.Sprintf(":%d", port), mux); err != nil {
		log.Error().Err(err).Msg("Probe server stopped")
	}
}

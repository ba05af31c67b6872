package main

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"casino-server/internal/config"
	"casino-server/internal/mux"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var cli struct {
	Addr     string `short:"a" help:"Listen address (overrides config)"`
	Config   string `short:"c" help:"Path to YAML configuration file"`
	LogLevel string `short:"l" help:"Log level (overrides config)"`
}

func main() {
	kong.Parse(&cli,
		kong.Name("casino-server"),
		kong.Description("HTTP API for Texas Hold'em and blackjack"))

	if cli.Config != "" {
		_ = os.Setenv("CASINO_CONFIG_FILE", cli.Config)
	}

	setupLogger()

	addr := config.Instance().Addr
	if cli.Addr != "" {
		addr = cli.Addr
	}

	c := cors.New(cors.Options{
		AllowedOrigins: config.Instance().CORS.AllowedOrigins,
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      loggingHandler(c.Handler(mux.NewMux(Version))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithField("addr", srv.Addr).Info("listening")
	logrus.Fatal(srv.ListenAndServe())
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	lvl := config.Instance().Log.Level
	if cli.LogLevel != "" {
		lvl = cli.LogLevel
	}

	if lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(config.Instance().Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

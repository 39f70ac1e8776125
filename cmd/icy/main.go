package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/icy/internal/app"
	"github.com/MKhiriev/icy/internal/config"
	"github.com/MKhiriev/icy/internal/connector"
	"github.com/MKhiriev/icy/internal/logger"
	"github.com/MKhiriev/icy/models"
	"github.com/rs/zerolog"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// newConnectorFunc builds the connector the process connects through.
type newConnectorFunc func(log *logger.Logger) connector.Connector

func newEmbeddedConnector(log *logger.Logger) connector.Connector {
	return connector.NewEmbedded(app.ServerName, app.ServerParam, log)
}

func main() {
	os.Exit(run(context.Background(), os.Stdout, newEmbeddedConnector))
}

// run performs one connect and returns the process exit code. The fixed
// diagnostic is logged at fatal level on failure; the configured level is
// capped at fatal, so the entry is always written.
func run(ctx context.Context, w io.Writer, newConnector newConnectorFunc) int {
	fmt.Fprint(w, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, cfgErr := config.GetConfig()
	if cfgErr != nil {
		cfg = config.Defaults()
	}

	log := logger.New(w, "icy", cfg.Log.ZerologLevel())
	if cfgErr != nil {
		log.Warn().Err(cfgErr).Msg("invalid configs, using defaults")
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	if err := app.RunWith(ctx, newConnector(log), log); err != nil {
		log.WithLevel(zerolog.FatalLevel).Err(err).Msg(app.MsgEmbeddedConnection)
		return 1
	}

	return 0
}

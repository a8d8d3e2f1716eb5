package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/fretboard-keeper/internal/adapter"
	"github.com/MKhiriev/fretboard-keeper/internal/client"
	"github.com/MKhiriev/fretboard-keeper/internal/config"
	"github.com/MKhiriev/fretboard-keeper/internal/logger"
	"github.com/MKhiriev/fretboard-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `usage: fretboard-client [flags] <command> [args]

commands:
  login <username>   sign in and remember the session token
  verify             check that the remembered token is still valid
  export <file>      write all directories and states to file ("-" for stdout)
  import <file>      replace all server data with file ("-" for stdin)
  logout             forget the session token

flags:
`

func main() {
	os.Exit(run())
}

func run() int {
	fs := flag.NewFlagSet("fretboard-client", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "verbose logging")
	serverURL := fs.String("server", "", "API root URL, e.g. http://localhost:8000/api")
	tokenFile := fs.String("token-file", "", "session token file")
	version := fs.Bool("version", false, "print build information and exit")
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(os.Args[1:]); err != nil {
		return 2
	}

	if *version {
		fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return 0
	}

	log := logger.NewClientLogger("fretboard-client", os.Stderr, *verbose)

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		return 1
	}
	if *serverURL != "" {
		cfg.Client.ServerURL = *serverURL
	}
	if *tokenFile != "" {
		cfg.Client.TokenFile = *tokenFile
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Client, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating server adapter")
		return 1
	}

	app := client.NewApp(serverAdapter, client.NewFileTokenStore(cfg.Client.TokenFile), os.Stdin, os.Stdout, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, fs.Args()); err != nil {
		log.Error().Err(err).Msg("command failed")
		return 1
	}
	return 0
}

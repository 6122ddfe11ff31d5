package main

import (
	"context"
	"log"
	"os"

	"github.com/SandhraKrishnan10/ASCEND-Job-Application-Tracker-App/internal/buildinfo"
	"github.com/SandhraKrishnan10/ASCEND-Job-Application-Tracker-App/internal/cli"
	"github.com/SandhraKrishnan10/ASCEND-Job-Application-Tracker-App/internal/config"
	"github.com/SandhraKrishnan10/ASCEND-Job-Application-Tracker-App/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}

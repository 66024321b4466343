package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/lauremed/catalog/config"
	"github.com/lauremed/catalog/internal/app"
	"github.com/lauremed/catalog/internal/webserver"
)

var (
	conffile = flag.String("c", "lauremed.yml", "config file")
	showVer  = flag.Bool("v", false, "show version and exit")
)

var version = "dev"

func main() {
	flag.Parse()
	if *showVer {
		fmt.Println(version)
		return
	}

	cfg := config.LoadConfig(*conffile)

	application := app.NewApplication(cfg)
	if err := application.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}
	defer application.Release()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application.StartBackgroundJobs(ctx)

	server := webserver.NewWebServer(cfg, application.Storage())
	if err := server.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zap.L().Fatal("web server failed", zap.Error(err))
	}
}

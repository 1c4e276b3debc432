package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/aminegames/gamekiosk/config"
	"github.com/aminegames/gamekiosk/internal/adminapi"
	"github.com/aminegames/gamekiosk/internal/app"
	"github.com/aminegames/gamekiosk/internal/kioskapi"
	"github.com/aminegames/gamekiosk/internal/webserver"
)

var (
	h        = flag.Bool("h", false, "help usage")
	showVer  = flag.Bool("v", false, "show version")
	confFile = flag.String("c", "", "config file, yaml format")
)

var (
	BuildVersion string
	ReleaseDate  string
)

func printVersion() {
	fmt.Printf("gamekiosk %s release %s\n", BuildVersion, ReleaseDate)
}

func main() {
	flag.Parse()

	if *h {
		flag.Usage()
		os.Exit(0)
	}

	if *showVer {
		printVersion()
		os.Exit(0)
	}

	appConfig := config.LoadConfig(*confFile)

	application := app.NewApplication(appConfig)
	application.Init(appConfig)
	defer application.Release()

	ws := webserver.Init(application)
	kioskapi.InitRouter()
	adminapi.InitRouter()

	errc := make(chan error, 1)
	go func() {
		errc <- ws.Start()
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errc:
		zap.S().Errorf("web server stopped: %v", err)
	case sig := <-sigc:
		zap.S().Infof("received signal %s, shutting down", sig)
	}
}

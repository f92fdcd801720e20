package main

import (
	"context"
	"errors"
	"io/fs"
	netHttp "net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/m-zajac/ghprofileviewer/internal/adapter/github"
	"github.com/m-zajac/ghprofileviewer/internal/api/grpc"
	"github.com/m-zajac/ghprofileviewer/internal/api/http"
	"github.com/m-zajac/ghprofileviewer/internal/api/http/limiter"
	"github.com/m-zajac/ghprofileviewer/internal/app"
	"github.com/sirupsen/logrus"
)

func main() {
	l := logrus.New()
	l.Level = logrus.InfoLevel

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		l.Warnf("couldn't load .env file: %v", err)
	}

	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		l.Fatalf("couldn't parse config: %v", err)
	}
	level, err := logrus.ParseLevel(conf.LogLevel)
	if err != nil {
		l.Fatalf("invalid log level: %v", err)
	}
	l.Level = level

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpClient := &netHttp.Client{
		Timeout: 30 * time.Second,
	}
	githubClient := github.NewClient(httpClient, conf.GithubAPIAddress)

	orchestrator := app.NewOrchestrator(
		githubClient,
		conf.GithubTimeout,
		l.WithField("component", "orchestrator"),
	)
	viewers, err := app.NewViewers(
		orchestrator,
		conf.DefaultSubject,
		conf.ViewersCacheSize,
		l.WithField("component", "viewers"),
	)
	if err != nil {
		l.Fatalf("couldn't create viewers: %v", err)
	}
	defer viewers.CloseAll()

	// http and grpc apis share request rate budget
	apiLimiter := limiter.New(conf.APIRateLimit, conf.APIRateBurst)

	mux := http.NewMux(
		viewers,
		conf.RequestTimeout,
		limiter.Middleware(apiLimiter),
		conf.CORSAllowedOrigins,
		l.WithField("component", "mux"),
	)
	server := http.NewServer(
		conf.HTTPServerAddress,
		conf.HTTPProfileServerAddress,
		mux,
		l.WithField("component", "httpServer"),
	)

	grpcService := grpc.NewService(viewers, l.WithField("component", "grpcService"))
	grpcServer := grpc.NewServer(
		grpcService,
		conf.GRPCServerAddress,
		apiLimiter,
		l.WithField("component", "grpcServer"),
	)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		server.Run(ctx)
		wg.Done()
	}()
	wg.Add(1)
	go func() {
		if err := grpcServer.Run(ctx); err != nil {
			l.Errorf("couldn't run grpc server: %v", err)
			stop()
		}
		wg.Done()
	}()
	wg.Wait()
}

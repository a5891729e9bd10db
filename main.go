package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"go.opentelemetry.io/contrib/bridges/otelslog"

	"github.com/aarroyoc/scryer-http-lyncex/conformance"
	"github.com/aarroyoc/scryer-http-lyncex/filesystem"
	"github.com/aarroyoc/scryer-http-lyncex/http"
)

const name = "github.com/aarroyoc/scryer-http-lyncex"

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalln(err)
	}
}

func run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	otelShutdown, err := setupOTelSDK(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if shutdownErr := otelShutdown(context.Background()); shutdownErr != nil {
			log.Printf("telemetry shutdown: %v", shutdownErr)
		}
	}()

	logger := otelslog.NewLogger(name)

	addr := os.Getenv("LYNCEX_ADDR")
	if addr == "" {
		addr = "0.0.0.0:7890"
	}
	filePath := os.Getenv("LYNCEX_FILE")
	if filePath == "" {
		filePath = "img.jpg"
	}

	server := http.NewServer("lyncex")
	server.Router = conformance.NewRouter(filesystem.NewLocalFilesystem(), filePath)
	server.Router.Middleware = append(server.Router.Middleware,
		http.RecoverMiddleware(),
		http.RequestIDMiddleware(),
		http.LogMiddleware(logger),
		http.TraceMiddleware(),
		http.MetricsMiddleware(),
	)

	serverErrCh := make(chan error, 1)

	go func() {
		log.Printf("Listening and serving on: %s", addr)
		serverErrCh <- server.ListenAndServe(ctx, addr)
	}()

	select {
	case err := <-serverErrCh:
		return err
	case <-ctx.Done():
		stop()
	}

	return server.Shutdown(context.Background())
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/danmuck/telestamp/internal/config"
	"github.com/danmuck/telestamp/internal/inspect"
	"github.com/danmuck/telestamp/internal/observability"
	"github.com/gin-gonic/gin"
)

func main() {
	cfgPath := flag.String("config", "cmd/stampd/config.toml", "path to stampd.toml")
	envPath := flag.String("env", ".env", "optional dotenv file")
	flag.Parse()

	if err := run(*cfgPath, *envPath); err != nil {
		fmt.Fprintf(os.Stderr, "stampd: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgPath, envPath string) error {
	if err := config.LoadEnvFile(envPath); err != nil {
		return err
	}
	logger := observability.InitLogger("stampd")

	cfg, err := config.LoadStampdConfig(cfgPath)
	if err != nil {
		return err
	}
	gin.SetMode(gin.ReleaseMode)
	srv, err := inspect.NewServer(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	logger.Info().Str("name", cfg.Name).Str("format", cfg.DefaultFormat).Msg("stampd starting")
	return srv.Run(ctx)
}

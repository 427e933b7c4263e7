package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/SaiNageswarS/go-api-boot/dotenv"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-api-boot/server"
	"github.com/missshiy01-dotcom/smart-faq-generator/appconfig"
	"github.com/missshiy01-dotcom/smart-faq-generator/controller"
	"github.com/missshiy01-dotcom/smart-faq-generator/llm"
	"go.uber.org/zap"
)

func main() {
	dotenv.LoadEnv()

	boot, err := server.New().
		GRPCPort(":50051").
		HTTPPort(":8081").
		ProvideFunc(appconfig.ProvideAppConfig).
		ProvideFunc(llm.ProvideGeminiClient).
		AddRestController(controller.ProvideGenerateController).
		AddRestController(controller.ProvideExportController).
		AddRestController(controller.ProvideHealthController).
		AddRestController(controller.ProvideDocsController).
		Build()

	if err != nil {
		logger.Fatal("Dependency Injection Failed", zap.Error(err))
	}

	ctx := getCancellableContext()
	boot.Serve(ctx)
}

func getCancellableContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sig
		cancel()
	}()

	return ctx
}

package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/svfproducts/sales-insights-bot/infrastructure/integrator/anthropic"
	"github.com/svfproducts/sales-insights-bot/infrastructure/integrator/anthropic/anthropicclient"
	"github.com/svfproducts/sales-insights-bot/infrastructure/integrator/flourcloud"
	"github.com/svfproducts/sales-insights-bot/infrastructure/integrator/flourcloud/flourcloudclient"
	"github.com/svfproducts/sales-insights-bot/infrastructure/integrator/gmail"
	"github.com/svfproducts/sales-insights-bot/infrastructure/integrator/gmail/gmailclient"
	"github.com/svfproducts/sales-insights-bot/infrastructure/integrator/googlesheets"
	"github.com/svfproducts/sales-insights-bot/infrastructure/integrator/googlesheets/googlesheetsclient"
	"github.com/svfproducts/sales-insights-bot/infrastructure/integrator/shopify"
	"github.com/svfproducts/sales-insights-bot/infrastructure/integrator/shopify/shopifyclient"
	"github.com/svfproducts/sales-insights-bot/internal/api"
	"github.com/svfproducts/sales-insights-bot/internal/bot"
	"github.com/svfproducts/sales-insights-bot/internal/config"
	"github.com/svfproducts/sales-insights-bot/internal/scheduler"
	"github.com/svfproducts/sales-insights-bot/internal/usecases/answering"
	"github.com/svfproducts/sales-insights-bot/internal/usecases/insighting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	location, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		logrus.WithError(err).Fatalf("Fuso horário inválido: %s", cfg.App.Timezone)
	}

	shopifyClient := shopifyclient.NewClient(cfg)
	shopifyIntegrator := shopify.New(cfg, shopifyClient)

	flourCloudClient := flourcloudclient.NewClient(cfg)
	flourCloudIntegrator := flourcloud.New(cfg, flourCloudClient, location)

	anthropicClient := anthropicclient.New(cfg)
	intentClassifier := anthropic.NewService(cfg, anthropicClient)

	sheetsClient, err := googlesheetsclient.New(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar o cliente do Google Sheets")
	}
	sheetsIntegrator := googlesheets.New(cfg, sheetsClient, location)

	gmailClient := gmailclient.New(cfg)
	gmailIntegrator := gmail.New(cfg, gmailClient)

	insightService := insighting.NewService(cfg, shopifyIntegrator, flourCloudIntegrator)

	answerer := answering.NewService(
		cfg,
		intentClassifier,
		insightService,
		sheetsIntegrator,
		gmailIntegrator,
	)

	botService, err := bot.New(cfg, answerer)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar com a API do Telegram")
	}

	dailyReportService := scheduler.NewDailyReportService(
		cfg,
		insightService,
		sheetsIntegrator,
		botService, // Implementa ReportSender
		location,
	)

	if err := dailyReportService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do relatório diário")
	} else {
		logrus.Info("Agendador do relatório diário iniciado com sucesso")
	}

	server, err := api.New(cfg, dailyReportService)
	if err != nil {
		logrus.Fatal(err)
	}

	go func() {
		if err := server.Run(ctx); err != nil {
			logrus.Error(err)
		}
		cancel()
	}()

	if err := botService.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

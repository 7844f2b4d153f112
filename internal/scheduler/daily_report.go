package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/svfproducts/sales-insights-bot/infrastructure/integrator/googlesheets"
	"github.com/svfproducts/sales-insights-bot/internal/config"
	"github.com/svfproducts/sales-insights-bot/internal/domain"
	"github.com/svfproducts/sales-insights-bot/internal/render"
	"github.com/svfproducts/sales-insights-bot/internal/usecases/insighting"
	"github.com/svfproducts/sales-insights-bot/pkg/utils"
)

// ReportSender entrega o texto do relatório no chat configurado
type ReportSender interface {
	SendMessage(chatID int64, text string) error
}

// DailyReportConfig representa a configuração do agendador do relatório diário
type DailyReportConfig struct {
	Time        string
	ChatID      int64
	RetryPolicy RetryPolicy
}

// DailyReportService gerencia o agendamento e o envio do briefing matinal de
// vendas: ontem e mês-até-agora dos dois canais, mais o restaurante.
type DailyReportService struct {
	scheduler     *gocron.Scheduler
	config        DailyReportConfig
	appConfig     *config.Config
	insighter     insighting.Insighter
	sheetsService googlesheets.SheetsIntegrator
	sender        ReportSender
	location      *time.Location

	runMutex           sync.Mutex
	runRunning         bool
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time

	now func() time.Time
}

// NewDailyReportService cria uma nova instância do serviço de relatório diário
func NewDailyReportService(
	appConfig *config.Config,
	insighter insighting.Insighter,
	sheetsService googlesheets.SheetsIntegrator,
	sender ReportSender,
	location *time.Location,
) *DailyReportService {
	reportConfig := DailyReportConfig{
		Time:   appConfig.DailyReport.Time,
		ChatID: appConfig.Telegram.DailyReportChatID,
		RetryPolicy: RetryPolicy{
			MaxAttempts: appConfig.DailyReport.RetryAttempts,
			Backoff:     time.Duration(appConfig.DailyReport.BackoffSeconds) * time.Second,
		},
	}

	logrus.WithFields(logrus.Fields{
		"time":            reportConfig.Time,
		"chat_id":         reportConfig.ChatID,
		"retry_attempts":  reportConfig.RetryPolicy.MaxAttempts,
		"backoff_seconds": reportConfig.RetryPolicy.Backoff.Seconds(),
	}).Info("Configuração do relatório diário carregada")

	return &DailyReportService{
		scheduler:     gocron.NewScheduler(location),
		config:        reportConfig,
		appConfig:     appConfig,
		insighter:     insighter,
		sheetsService: sheetsService,
		sender:        sender,
		location:      location,
		now:           time.Now,
	}
}

// Start inicia o agendador. Sem chat configurado o relatório fica desligado.
func (s *DailyReportService) Start(ctx context.Context) error {
	if s.config.ChatID == 0 {
		logrus.Warn("DAILY_REPORT_CHAT_ID não configurado, relatório diário desabilitado")
		return nil
	}

	logrus.WithField("time", s.config.Time).Info("Iniciando agendador do relatório diário")

	_, err := s.scheduler.Every(1).Day().At(s.config.Time).Do(func() {
		s.runDailyReport(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar o relatório diário: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do relatório diário")
		s.scheduler.Stop()
	}()

	return nil
}

// runDailyReport busca as cinco fontes e envia o briefing. Fonte que esgotar
// as tentativas aparece como indisponível, as demais saem normalmente.
func (s *DailyReportService) runDailyReport(ctx context.Context) {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Info("Relatório diário já em andamento, ignorando")
		return
	}
	s.runRunning = true
	s.runMutex.Unlock()

	defer func() {
		s.runMutex.Lock()
		s.runRunning = false
		s.lastRunCompletedAt = time.Now()
		s.runMutex.Unlock()
	}()

	s.lastRunStartedAt = time.Now()

	runID, err := utils.GenerateID()
	if err != nil {
		runID = "unknown"
	}
	log := logrus.WithField("run_id", runID)
	log.Info("Iniciando o relatório diário")

	nowLocal := s.now().In(s.location)
	yesterday := nowLocal.AddDate(0, 0, -1)

	policy := s.config.RetryPolicy

	retailYesterday, _ := fetchWithRetry(ctx, policy, "retail_yesterday", func(ctx context.Context) (*domain.SalesSummary, error) {
		return s.insighter.RetailSales(ctx, domain.PeriodYesterday)
	})
	retailMonth, _ := fetchWithRetry(ctx, policy, "retail_month_to_date", func(ctx context.Context) (*domain.SalesSummary, error) {
		return s.insighter.RetailSales(ctx, domain.PeriodThisMonth)
	})
	onlineYesterday, _ := fetchWithRetry(ctx, policy, "online_yesterday", func(ctx context.Context) (*domain.SalesSummary, error) {
		return s.insighter.OnlineSales(ctx, domain.PeriodYesterday)
	})
	onlineMonth, _ := fetchWithRetry(ctx, policy, "online_month_to_date", func(ctx context.Context) (*domain.SalesSummary, error) {
		return s.insighter.OnlineSales(ctx, domain.PeriodThisMonth)
	})
	restaurant, _ := fetchWithRetry(ctx, policy, "restaurant", func(ctx context.Context) (*domain.RestaurantSales, error) {
		return s.sheetsService.RestaurantSales(ctx)
	})

	message := render.DailyDigest(render.DigestData{
		RetailYesterday: retailYesterday,
		OnlineYesterday: onlineYesterday,
		RetailMonth:     retailMonth,
		OnlineMonth:     onlineMonth,
		Restaurant:      restaurant,
		YesterdayLabel:  yesterday.Format("02 Jan 2006"),
		MonthLabel:      nowLocal.Format("January 2006"),
	})

	if err := s.sender.SendMessage(s.config.ChatID, message); err != nil {
		log.WithError(err).Error("Erro ao enviar o relatório diário")
		return
	}

	log.Info("Relatório diário enviado")
}

// TriggerManualSync dispara manualmente um envio do relatório diário
func (s *DailyReportService) TriggerManualSync() {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Info("Relatório diário já em andamento, ignorando solicitação manual")
		return
	}
	s.runMutex.Unlock()

	logrus.Info("Iniciando envio manual do relatório diário")
	go s.runDailyReport(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *DailyReportService) GetStatus() map[string]any {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	return map[string]any{
		"enabled":               s.config.ChatID != 0,
		"time":                  s.config.Time,
		"retry_attempts":        s.config.RetryPolicy.MaxAttempts,
		"backoff_seconds":       s.config.RetryPolicy.Backoff.Seconds(),
		"running":               s.runRunning,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
	}
}

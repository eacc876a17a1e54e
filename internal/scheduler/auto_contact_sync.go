package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-match-api/internal/config"
	"github.com/vfg2006/influencer-match-api/internal/usecases/outreach"
)

const defaultSyncTimeout = 30 * time.Minute

var ErrSyncAlreadyRunning = errors.New("auto contact sync already running")

// AutoContactSyncConfig representa a configuração do agendador de contato automático
type AutoContactSyncConfig struct {
	CronSchedule string
	Timeout      time.Duration
	SyncEnabled  bool
}

// AutoContactSyncService agenda o contato automático das campanhas ativas
type AutoContactSyncService struct {
	scheduler           *gocron.Scheduler
	config              AutoContactSyncConfig
	contactDriver       outreach.ContactDriver
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastContactedCount  int
	lastSyncError       string
	now                 func() time.Time
}

func NewAutoContactSyncService(contactDriver outreach.ContactDriver, appConfig *config.Config) *AutoContactSyncService {
	syncConfig := AutoContactSyncConfig{
		CronSchedule: appConfig.AutoContactSync.CronSchedule,
		Timeout:      appConfig.AutoContactSync.Timeout,
		SyncEnabled:  appConfig.AutoContactSync.Enabled,
	}
	if syncConfig.Timeout <= 0 {
		syncConfig.Timeout = defaultSyncTimeout
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"timeout":       syncConfig.Timeout.String(),
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de contato automático carregada")

	return &AutoContactSyncService{
		scheduler:     gocron.NewScheduler(time.Local),
		config:        syncConfig,
		contactDriver: contactDriver,
		now:           time.Now,
	}
}

// Start inicia o agendador e o encerra quando o contexto for cancelado
func (s *AutoContactSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Contato automático desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de contato automático")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.runSync(); err != nil && !errors.Is(err, ErrSyncAlreadyRunning) {
			logrus.WithError(err).Error("Erro no contato automático agendado")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar contato automático: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de contato automático")
		s.scheduler.Stop()
	}()

	return nil
}

// runSync executa o contato de todas as campanhas ativas, uma execução por vez
func (s *AutoContactSyncService) runSync() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Contato automático já em andamento, ignorando")
		return ErrSyncAlreadyRunning
	}
	s.syncRunning = true
	startTime := s.now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	logrus.Info("Iniciando contato automático das campanhas ativas")

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Timeout)
	defer cancel()

	contacted, err := s.contactDriver.RunAllActive(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastContactedCount = contacted
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
		return err
	}
	s.lastSyncCompletedAt = s.now()

	logrus.WithFields(logrus.Fields{
		"duration":  s.lastSyncCompletedAt.Sub(startTime).String(),
		"contacted": contacted,
	}).Info("Contato automático concluído")

	return nil
}

// TriggerManualSync dispara uma execução em segundo plano. Retorna ErrSyncAlreadyRunning
// quando já existe uma em andamento.
func (s *AutoContactSyncService) TriggerManualSync() error {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Contato automático já em andamento, ignorando solicitação manual")
		return ErrSyncAlreadyRunning
	}

	logrus.Info("Iniciando contato automático manual")
	go func() {
		if err := s.runSync(); err != nil && !errors.Is(err, ErrSyncAlreadyRunning) {
			logrus.WithError(err).Error("Erro no contato automático manual")
		}
	}()

	return nil
}

// GetStatus retorna o status atual do agendador
func (s *AutoContactSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_timeout":           s.config.Timeout.String(),
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_contacted_count":   s.lastContactedCount,
		"last_sync_error":        s.lastSyncError,
	}
}

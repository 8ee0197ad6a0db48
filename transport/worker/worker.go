package worker

import (
	"context"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"dueday/config"
	"dueday/infras/otel"
	"dueday/infras/timer"
	reminderService "dueday/internal/domains/reminder/service"
	"dueday/shared/constant"

	"github.com/rs/zerolog/log"
)

type State int32

const (
	StateIdle State = iota
	StateReady
	StateInGracePeriod
	StateInCleanupPeriod
	StateStopped
)

const (
	defaultInterval     = 15 * time.Minute
	defaultCheckTimeout = 30 * time.Second
)

// Worker is the long running process around the reminder scheduler. It restores
// reminders on start, runs a periodic due check and drains timers on shutdown.
type Worker struct {
	Config       *config.Config
	Scheduler    reminderService.Scheduler
	Timer        timer.Timer
	Interval     time.Duration
	CheckTimeout time.Duration

	otel  otel.Otel
	state atomic.Int32
}

func New(cfg *config.Config, scheduler reminderService.Scheduler, tm timer.Timer, otel otel.Otel) *Worker {
	interval := time.Duration(cfg.Reminder.CheckIntervalSeconds) * time.Second
	if interval <= 0 {
		interval = defaultInterval
	}

	checkTimeout := time.Duration(cfg.Reminder.CheckTimeoutSeconds) * time.Second
	if checkTimeout <= 0 {
		checkTimeout = defaultCheckTimeout
	}

	return &Worker{
		Config:       cfg,
		Scheduler:    scheduler,
		Timer:        tm,
		Interval:     interval,
		CheckTimeout: checkTimeout,
		otel:         otel,
	}
}

func (w *Worker) State() State {
	return State(w.state.Load())
}

func (w *Worker) setState(state State) {
	w.state.Store(int32(state))
}

// Run blocks until ctx is done or the process receives SIGINT/SIGTERM.
func (w *Worker) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	w.setState(StateReady)

	if w.Config.Reminder.RestoreOnStart {
		if _, err := w.Scheduler.Restore(ctx); err != nil {
			log.Error().Err(err).Msg("failed to restore reminders")
		}
	}

	log.Info().Dur("interval", w.Interval).Msg("Starting up reminder worker.")

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	w.check(ctx)

	for {
		select {
		case <-ctx.Done():
			w.shutdown()

			return nil
		case <-ticker.C:
			w.check(ctx)
		}
	}
}

func (w *Worker) check(ctx context.Context) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelWorkerScopeName, constant.OtelWorkerScopeName+".Check")
	defer scope.End()

	ctx, cancel := context.WithTimeout(ctx, w.CheckTimeout)
	defer cancel()

	sent, err := w.Scheduler.CheckDue(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("periodic due check failed")

		return
	}

	scope.SetAttribute("sent", sent)
}

func (w *Worker) shutdown() {
	defer w.setState(StateStopped)

	if w.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received shutdown signal. Shutting down now.")
		w.Timer.Stop()

		return
	}

	shutdownConfig := w.Config.Server.Shutdown

	log.Info().Msg("Received shutdown signal.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	w.setState(StateInGracePeriod)

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	w.setState(StateInCleanupPeriod)
	w.Timer.Stop()

	time.Sleep(time.Duration(shutdownConfig.CleanupPeriodSeconds) * time.Second)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

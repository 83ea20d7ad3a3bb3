package scheduler

import (
	"context"
	"fieldservice/config"
	"fieldservice/infras/otel"
	quoteService "fieldservice/internal/domains/quote/service"
	"fieldservice/shared/constant"
	"fieldservice/shared/timezone"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Scheduler runs the periodic maintenance jobs.
type Scheduler struct {
	config *config.Config
	quote  quoteService.Quote
	otel   otel.Otel
	cron   *cron.Cron
}

func New(cfg *config.Config, quote quoteService.Quote, otel otel.Otel) *Scheduler {
	logger := cronLogger{}

	return &Scheduler{
		config: cfg,
		quote:  quote,
		otel:   otel,
		cron: cron.New(
			cron.WithLocation(timezone.GetLocation()),
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
	}
}

// Start registers the jobs and starts the cron loop in its own goroutine.
// It does nothing when the scheduler is disabled.
func (s *Scheduler) Start() error {
	if !s.config.Scheduler.Enable {
		log.Info().Msg("Scheduler disabled.")

		return nil
	}

	expression := s.config.Scheduler.QuoteExpiryCron
	if _, err := s.cron.AddFunc(expression, s.ExpireQuotes); err != nil {
		return fmt.Errorf("failed to schedule quote expiry with %q: %w", expression, err)
	}

	s.cron.Start()

	log.Info().Str("quote_expiry", expression).Msg("Scheduler started.")

	return nil
}

// Stop prevents new runs and waits for a running job until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
		log.Info().Msg("Scheduler stopped.")
	case <-ctx.Done():
		log.Warn().Msg("Scheduler stop timed out with a job still running.")
	}
}

// Jobs returns the number of registered jobs.
func (s *Scheduler) Jobs() int {
	return len(s.cron.Entries())
}

// ExpireQuotes rejects pending quotes whose validity has ended.
func (s *Scheduler) ExpireQuotes() {
	ctx, scope := s.otel.NewScope(context.Background(), constant.OtelSchedulerScopeName, constant.OtelSchedulerScopeName+".ExpireQuotes")
	defer scope.End()

	ctx = context.WithValue(ctx, constant.ContextKeyUsername, constant.ContextSystem)

	expired, err := s.quote.ExpirePending(ctx)

	scope.SetAttribute("quotes.expired", expired)

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("expired", expired).Msg("quote expiry finished with errors")

		return
	}

	log.Info().Int("expired", expired).Msg("quote expiry finished")
}

// cronLogger routes cron's own logging through zerolog.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...any) {
	log.Debug().Fields(keysAndValues).Msg("cron: " + msg)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...any) {
	log.Error().Err(err).Fields(keysAndValues).Msg("cron: " + msg)
}

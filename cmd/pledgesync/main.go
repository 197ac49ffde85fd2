package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/jessevdk/go-flags"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/mxpv/pledgesync/pkg/cache"
	"github.com/mxpv/pledgesync/pkg/config"
	"github.com/mxpv/pledgesync/pkg/events"
	"github.com/mxpv/pledgesync/pkg/gateway"
	"github.com/mxpv/pledgesync/pkg/handler"
	"github.com/mxpv/pledgesync/pkg/model"
	"github.com/mxpv/pledgesync/pkg/pledge"
	"github.com/mxpv/pledgesync/pkg/queue"
	"github.com/mxpv/pledgesync/pkg/stats"
	"github.com/mxpv/pledgesync/pkg/storage"
)

type Opts struct {
	ConfigPath    string `long:"config" short:"c" default:"config.toml" env:"PLEDGESYNC_CONFIG_PATH"`
	WebhookSecret string `long:"webhook-secret" env:"STRIPE_WEBHOOK_SECRET"`
	APIKey        string `long:"stripe-key" env:"STRIPE_API_KEY"`
	Debug         bool   `long:"debug"`
}

type notifier interface {
	Notify(ctx context.Context, confirmation *model.Confirmation) error
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: time.RFC3339,
		FullTimestamp:   true,
	})

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	group, ctx := errgroup.WithContext(ctx)

	// Parse args
	opts := Opts{}
	_, err := flags.Parse(&opts)
	if err != nil {
		log.WithError(err).Fatal("failed to parse command line arguments")
	}

	if opts.Debug {
		log.SetLevel(log.DebugLevel)
	}

	log.WithFields(log.Fields{
		"version": version,
		"commit":  commit,
		"date":    date,
	}).Info("running pledgesync")

	// Load TOML file
	log.Debugf("loading configuration %q", opts.ConfigPath)
	cfg, err := config.LoadConfig(opts.ConfigPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration file")
	}

	cfg.Override(opts.WebhookSecret, opts.APIKey)
	cfg.Warn()

	// Create core services

	database, err := storage.NewPG(cfg.Database.URL, true)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}

	defer func() {
		if err := database.Close(); err != nil {
			log.WithError(err).Error("failed to close database")
		}
	}()

	if cfg.Database.Install {
		if err := database.Install(); err != nil {
			log.WithError(err).Fatal("failed to install database")
		}
	}

	var (
		reconcilerOpts []pledge.Option
		handlerOpts    = handler.Opts{
			WebhookSecret:      cfg.Stripe.WebhookSecret,
			SignatureTolerance: cfg.Stripe.Tolerance.Duration,
		}
	)

	if cfg.Redis.URL != "" {
		dedup, err := cache.NewRedisCache(cfg.Redis.URL, cfg.Redis.EventTTL.Duration)
		if err != nil {
			log.WithError(err).Fatal("failed to connect to redis")
		}
		defer dedup.Close()

		statistics, err := stats.NewRedisStats(cfg.Redis.URL)
		if err != nil {
			log.WithError(err).Fatal("failed to connect to redis")
		}
		defer statistics.Close()

		reconcilerOpts = append(reconcilerOpts, pledge.WithDeduplicator(dedup), pledge.WithStats(statistics))
		handlerOpts.Ranking = statistics
	} else {
		log.Warn("redis is not configured, event deduplication and stats are disabled")
	}

	if len(cfg.Kafka.Brokers) > 0 {
		publisher, err := events.NewKafka(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			log.WithError(err).Fatal("failed to create kafka publisher")
		}
		defer publisher.Close()

		reconcilerOpts = append(reconcilerOpts, pledge.WithPublisher(publisher))
	}

	var confirmations notifier = queue.LogSender{}

	if cfg.Queue.URL != "" {
		sess := session.Must(session.NewSession(&aws.Config{Region: aws.String(cfg.Queue.Region)}))
		sender := queue.New(context.Background(), sqs.New(sess), cfg.Queue.URL)

		// Flush pending confirmations after web server stopped accepting webhooks
		defer sender.Close()

		confirmations = sender
	} else {
		log.Info("queue is not configured, confirmations will be logged")
	}

	reconciler := pledge.New(database, confirmations, reconcilerOpts...)
	stripe := gateway.NewStripe(cfg.Stripe.APIKey)

	// Run funded campaigns sweeper
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	group.Go(func() error {
		defer func() {
			log.Info("shutting down cron")
			<-c.Stop().Done()
		}()

		sweeper := newSweeper(database)
		if _, err := c.AddFunc(cfg.Sweeper.Schedule, func() { sweeper.Sweep(ctx) }); err != nil {
			return err
		}

		log.Debugf("sweeping funded campaigns %s", cfg.Sweeper.Schedule)
		c.Start()

		<-ctx.Done()
		return ctx.Err()
	})

	// Run web server
	srv := NewServer(cfg, handler.New(database, reconciler, stripe, handlerOpts))

	group.Go(func() error {
		log.Infof("running listener at %s", srv.Addr)
		return srv.ListenAndServe()
	})

	group.Go(func() error {
		// Shutdown web server
		defer func() {
			log.Info("shutting down web server")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.WithError(err).Error("server shutdown failed")
			}
		}()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-stop:
			cancel()
			return nil
		}
	})

	if err := group.Wait(); err != nil && (err != context.Canceled && err != http.ErrServerClosed) {
		log.WithError(err).Error("wait error")
	}

	log.Info("gracefully stopped")
}

package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/config"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/presenter"
	"max.ks1230/expense-tracker/internal/model/reports"
	"max.ks1230/expense-tracker/internal/model/session"
	"max.ks1230/expense-tracker/internal/model/storage"
)

const (
	logEnvKey         = "LOG_ENV"
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 2 * time.Second
)

func main() {
	err := run()
	if err != nil {
		logger.Error("tracker stopped", zap.Error(err))
	}
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("cannot load .env", zap.Error(err))
	}
	if env, ok := os.LookupEnv(logEnvKey); ok {
		if err := logger.Configure(env); err != nil {
			return errors.Wrap(err, "init logger")
		}
	}

	conf, err := config.New()
	if err != nil {
		return errors.Wrap(err, "init config")
	}

	if conf.Metrics().Enabled() {
		srv := serveMetrics(conf.Metrics().Addr())
		defer shutdownMetrics(srv)
	}

	expenseStorage := storage.NewInMemStorage()
	generator := reports.NewGenerator(conf.App(), expenseStorage, reports.ClockFunc(time.Now))
	sess := session.New(os.Stdin, os.Stdout, conf.App(), expenseStorage,
		generator, presenter.New(conf.App()), time.Now)

	logger.Info("session started")
	if err = sess.Run(context.Background()); err != nil {
		return errors.Wrap(err, "run session")
	}
	logger.Info("session closed", zap.Int("expenses", expenseStorage.Len()))
	return nil
}

func serveMetrics(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		logger.Info("metrics listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to serve metrics", zap.Error(err))
		}
	}()
	return srv
}

func shutdownMetrics(srv *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("failed to stop metrics server", zap.Error(err))
	}
}

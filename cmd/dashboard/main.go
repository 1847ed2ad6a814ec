// Package main запускает HTTP-сервер дашборда магазина.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mmeshcher/dashboard-system/internal/config"
	"github.com/mmeshcher/dashboard-system/internal/handler"
	"github.com/mmeshcher/dashboard-system/internal/model"
	"github.com/mmeshcher/dashboard-system/internal/snapshot"
	"github.com/mmeshcher/dashboard-system/internal/store"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	sugar := logger.Sugar()

	cfg, err := config.Parse()
	if err != nil {
		sugar.Fatalw("configuration error", "error", err.Error())
	}

	repo := snapshot.NewFileRepository(cfg.StoreFile)

	opts := []store.Option{}
	if cfg.UnreadClamp {
		opts = append(opts, store.WithUnreadClamp())
	}

	if snap, loadErr := repo.Load(); loadErr == nil {
		opts = append(opts, store.WithState(snap))
	} else if !errors.Is(loadErr, snapshot.ErrNoSnapshot) {
		sugar.Warnw("snapshot load failed, starting with defaults", "error", loadErr.Error())
	}

	st := store.New(opts...)

	// Сохранение после каждой мутации. Ошибки записи не влияют на работу
	// хранилища: состояние в памяти остаётся авторитетным.
	st.Subscribe(func(snap model.Snapshot) {
		if saveErr := repo.Save(snap); saveErr != nil {
			sugar.Warnw("snapshot save failed", "error", saveErr.Error())
		}
	})

	h := handler.NewHandler(st, logger)
	r := h.SetupRouter()

	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// Запуск HTTP-сервера
	g.Go(func() error {
		sugar.Infow("starting dashboard server", "addr", cfg.RunAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown при отмене контекста (сигнал или ошибка в другой горутине)
	g.Go(func() error {
		<-ctx.Done()
		sugar.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}

		if err := repo.Save(st.Snapshot()); err != nil {
			sugar.Warnw("final snapshot save failed", "error", err.Error())
		}

		sugar.Info("server stopped gracefully")
		return nil
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalw("application terminated with error", "error", err)
	}
}

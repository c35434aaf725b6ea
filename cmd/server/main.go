// Package main runs the labstock inventory server. The desktop UI talks
// to it over REST and WebSocket on localhost.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labops/labstock/cmd/server/handlers"
	"github.com/labops/labstock/internal/backup"
	"github.com/labops/labstock/internal/config"
	"github.com/labops/labstock/internal/db"
	"github.com/labops/labstock/internal/export"
	"github.com/labops/labstock/internal/inventory"
	"github.com/labops/labstock/internal/logging"
	"github.com/labops/labstock/internal/models"
	"github.com/labops/labstock/internal/store"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	log := logging.Must(logging.New(cfg.Log.Level))
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	database, err := db.Open(cfg.Store.DataDir)
	if err != nil {
		return err
	}
	defer database.Close()

	migrator := db.NewMigrator(database.DB)
	if err := migrator.Initialize(); err != nil {
		return err
	}
	if err := migrator.Up(); err != nil {
		return err
	}

	// The snapshot is the source of truth at process start; a missing
	// snapshot seeds the demonstration collection.
	snapshots := db.NewSnapshotStore(database.DB)
	initial, err := snapshots.Bootstrap()
	if err != nil {
		return err
	}
	records := store.New(initial)
	log.Info("store loaded", zap.Int("records", len(initial)))

	svc := inventory.NewService(records, snapshots, export.NewFormatter(), logging.Named(log, "inventory"))

	hub := NewWSHub(logging.Named(log, "ws"))
	records.Subscribe(func(current []models.StockRecord) {
		hub.BroadcastStockUpdated(len(current))
	})

	scheduler := backup.NewScheduler(
		backup.Config{
			CronSchedule:   cfg.Backup.CronSchedule,
			Dir:            cfg.Backup.Dir,
			RetentionCount: cfg.Backup.RetentionCount,
		},
		func() (string, []byte, error) {
			result, err := svc.Export()
			if err != nil {
				return "", nil, err
			}
			return result.Filename, result.Data, nil
		},
		hub.BackupCompleted,
		logging.Named(log, "backup"),
	)
	if err := scheduler.Start(); err != nil {
		return err
	}
	defer scheduler.Stop()

	stock := handlers.NewStockHandler(svc)
	imports := handlers.NewImportHandler(svc, hub)
	exports := handlers.NewExportHandler(svc, hub)
	audit := handlers.NewAuditHandler(svc)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/stock", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			stock.List(w, r)
		case http.MethodPost:
			stock.Add(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/api/stock/remove", stock.Remove)
	mux.HandleFunc("/api/stock/duplicates", audit.Duplicates)
	mux.HandleFunc("/api/import", imports.Import)
	mux.HandleFunc("/api/export", exports.Export)
	mux.HandleFunc("/ws", hub.HandleWS)
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","service":"labstock"}`))
	})

	server := &http.Server{
		Addr:    "localhost:" + cfg.Server.Port,
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", server.Addr))
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}

package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/prizedraw/cliparse"
	"github.com/danielhkuo/prizedraw/db"
	"github.com/danielhkuo/prizedraw/roster"
	"github.com/danielhkuo/prizedraw/router"
	"github.com/danielhkuo/prizedraw/session"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	if cfg.InsecureSecret {
		slog.Warn("SESSION_SECRET is not set, using an insecure development fallback")
	}
	if cfg.AccessPIN == cliparse.DefaultPIN {
		slog.Warn("DRAWING_PIN is the well-known default, override it for any real event")
	}

	// Connect to the database
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// First-run bootstrap: import the initial roster when empty
	count, err := roster.MemberCount(dbConn)
	if err != nil {
		slog.Error("failed to check roster size", "error", err)
		os.Exit(1)
	}
	if count == 0 {
		if _, statErr := os.Stat(cfg.InitialRoster); statErr == nil {
			res, err := roster.ImportFile(dbConn, cfg.InitialRoster)
			if err != nil {
				// Non-fatal: the operator can upload a roster later
				slog.Warn("initial roster import failed", "error", err, "path", cfg.InitialRoster)
			} else {
				slog.Info("initial roster imported",
					"path", cfg.InitialRoster,
					"added", res.Added,
					"updated", res.Updated,
					"skipped", res.Skipped,
				)
			}
		} else {
			slog.Info("roster is empty and no initial roster file found", "path", cfg.InitialRoster)
		}
	}

	// Operator sessions with a periodic sweep of expired ones
	sessions := session.NewStore(session.DefaultTTL)
	go func() {
		for {
			time.Sleep(10 * time.Minute)
			if removed := sessions.CleanupExpired(); removed > 0 {
				slog.Info("cleaned up expired sessions", "removed", removed)
			}
		}
	}()

	// Create router
	mux := router.NewRouter(dbConn, cfg, sessions)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"panecalc/internal/calc"
	"panecalc/internal/config"
	"panecalc/internal/session"
	"panecalc/internal/trace"
	"panecalc/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "panecalc: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// stdout belongs to the screen; log only when asked to.
	log.SetOutput(io.Discard)
	if cfg.LogPath != "" {
		f, err := tea.LogToFile(cfg.LogPath, "panecalc")
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tp, err := trace.NewProvider(ctx, cfg.Trace)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := tp.Shutdown(sctx); err != nil {
			log.Printf("trace shutdown: %v", err)
		}
	}()

	sess, err := openSession(cfg.Backend)
	if err != nil {
		return err
	}
	defer sess.Close()

	w, h := sess.Screen().Size()
	log.Printf("backend %s, %dx%d, %d colours", cfg.Backend, w, h, sess.Screen().Colors())

	app := ui.NewApp(sess.Screen(), session.Theme(sess, cfg.Monochrome), ui.DefaultKeymap())
	if err := app.Start(calc.Layout{}); err != nil {
		return err
	}
	if err := sess.Run(ctx, app); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Printf("session: interrupted")
			return nil
		}
		log.Printf("session: %v", err)
		return err
	}
	return nil
}

func openSession(b config.Backend) (session.Session, error) {
	switch b {
	case config.BackendTcell:
		return session.NewTcell()
	default:
		return session.NewTea(os.Stdout), nil
	}
}

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shouni/gemini-photo-kit/internal/httpapi"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "HTTP API サーバーを起動する",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "待ち受けアドレス (既定: PHOTOKIT_LISTEN_ADDR)")
	serveCmd.Flags().Bool("gcs", false, "gs:// の画像指定を受け付ける (Application Default Credentials が必要)")
}

func runServe(cmd *cobra.Command, args []string) error {
	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = cfg.ListenAddr
	}
	useGCS, _ := cmd.Flags().GetBool("gcs")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, useGCS)
	if err != nil {
		return err
	}
	defer a.Close()

	handler := httpapi.NewHandler(a.gen, a.loader, cfg.MaxInputBytes*2)
	srv := httpapi.NewServer(addr, handler.Routes(), cfg.RequestTimeout)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP サーバーを起動しました", "addr", addr, "model", cfg.Model)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("HTTP サーバーを停止しています")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

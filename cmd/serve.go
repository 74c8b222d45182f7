package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kiesman99/imgsplit/internal/config"
	"github.com/kiesman99/imgsplit/internal/server"
	"github.com/kiesman99/imgsplit/internal/session"
	"github.com/kiesman99/imgsplit/internal/splitter"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start HTTP server for the image splitting API",
	Long: `Start an HTTP server that provides a REST API for image splitting.

The server offers a one-shot split endpoint returning a zip, and sessions
that hold an uploaded image so it can be split repeatedly and its slices
downloaded one by one.

Examples:
  # Start server on default port 8080
  imgsplit serve

  # Start server on custom port
  imgsplit serve --port 3000

  # Start server with custom bind address
  imgsplit serve --bind 0.0.0.0 --port 8080`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server configuration
	serveCmd.Flags().StringP("bind", "b", "localhost", "bind address")
	serveCmd.Flags().IntP("port", "p", 8080, "port to listen on")
	serveCmd.Flags().Duration("timeout", 30*time.Second, "request timeout")
	serveCmd.Flags().Int64("max-upload-bytes", 32<<20, "largest accepted upload")
	serveCmd.Flags().Duration("session-ttl", 30*time.Minute, "idle time before a session expires")

	// Bind flags to viper
	viper.BindPFlag("server.bind", serveCmd.Flags().Lookup("bind"))
	viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
	viper.BindPFlag("server.timeout", serveCmd.Flags().Lookup("timeout"))
	viper.BindPFlag("server.max-upload-bytes", serveCmd.Flags().Lookup("max-upload-bytes"))
	viper.BindPFlag("session.ttl", serveCmd.Flags().Lookup("session-ttl"))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	addr := cfg.Addr()

	store := session.NewStore(cfg.Session.TTL, cfg.Session.MaxSessions)
	done := make(chan struct{})
	defer close(done)
	go store.Run(sweepInterval(cfg.Session.TTL), done)

	// Create server implementation
	apiServer := server.NewServer(version, cfg, store)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      server.NewRouter(apiServer, cfg.Server.Timeout),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		fmt.Fprintf(cmd.ErrOrStderr(), "\nShutting down server...\n")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	fmt.Fprintf(cmd.ErrOrStderr(), "Starting imgsplit server on %s\n", addr)
	fmt.Fprintf(cmd.ErrOrStderr(), "Health check: http://%s%s/health\n", addr, server.APIPrefix)
	fmt.Fprintf(cmd.ErrOrStderr(), "Split endpoint: http://%s%s/split\n", addr, server.APIPrefix)
	fmt.Fprintf(cmd.ErrOrStderr(), "Accepting %v up to %d bytes, %d-%d slices\n",
		cfg.Accepted(), cfg.Server.MaxUploadBytes, splitter.MinCount, cfg.Split.MaxCount)

	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("server error: %v", err)
	}

	return nil
}

// sweepInterval returns how often expired sessions are purged
func sweepInterval(ttl time.Duration) time.Duration {
	interval := ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	return interval
}

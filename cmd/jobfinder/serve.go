package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-finder/internal/config"
	"github.com/jonathan/job-finder/internal/logger"
	"github.com/jonathan/job-finder/internal/server"
)

var (
	servePort      int
	serveUploadDir string
	serveResume    string
	serveMock      bool
	serveVerbose   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for running job searches and reading cached results.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveUploadDir, "upload-dir", "uploads", "Directory for uploaded resumes")
	serveCmd.Flags().StringVar(&serveResume, "cv", "", "Default resume used when a request carries no upload")
	serveCmd.Flags().BoolVar(&serveMock, "mock", false, "Use built-in mock jobs and employer data instead of external search APIs")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg := config.Config{
		Resume:  serveResume,
		Mock:    serveMock,
		Verbose: serveVerbose,
	}
	cfg.LoadEnv()
	if cmd.Flags().Changed("port") || cfg.Port == 0 {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(true, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	pipe, cleanup, err := buildPipeline(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	srv, err := server.New(server.Config{
		Port:          cfg.Port,
		UploadDir:     serveUploadDir,
		DefaultResume: cfg.Resume,
		Pipeline:      pipe,
		Logger:        log,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"ytbrief/config"
	"ytbrief/handlers"
	"ytbrief/logger"
	"ytbrief/middleware"
	"ytbrief/models"
	"ytbrief/services/summary"
	"ytbrief/services/transcript"
	"ytbrief/services/video"
	"ytbrief/validation"
)

var (
	languageFlag string
	lengthFlag   string
	apiKeyFlag   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ytbrief",
		Short: "Summarize YouTube videos from their transcripts",
		Long: `ytbrief fetches a YouTube video's caption transcript and generates a
summary in a chosen language and length using an LLM completion API.`,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server with the web form UI",
		RunE:  runServe,
	}

	summarizeCmd := &cobra.Command{
		Use:   "summarize <youtube-url>",
		Short: "Fetch transcript and summarize a YouTube video",
		Args:  cobra.ExactArgs(1),
		RunE:  runSummarize,
	}

	transcriptCmd := &cobra.Command{
		Use:   "transcript <youtube-url>",
		Short: "Fetch and display the transcript only",
		Args:  cobra.ExactArgs(1),
		RunE:  runTranscript,
	}

	rootCmd.PersistentFlags().StringVar(&languageFlag, "lang", models.DefaultLanguage, "Summary language tag (e.g. en, es, fr)")
	rootCmd.PersistentFlags().StringVar(&lengthFlag, "length", string(models.LengthMedium), "Summary length: short, medium or long")
	rootCmd.PersistentFlags().StringVar(&apiKeyFlag, "api-key", "", "Completion API key (default: from ANTHROPIC_API_KEY)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(transcriptCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildService(cfg *config.Config) video.Service {
	client := transcript.NewClient(transcript.ClientConfig{
		APIURL:  cfg.Transcript.APIURL,
		APIKey:  cfg.Transcript.APIKey,
		Timeout: cfg.Transcript.Timeout,
	})

	summaryConfig := summary.Config{
		Model:         cfg.Summary.Model,
		MaxTokens:     cfg.Summary.MaxTokens,
		Temperature:   cfg.Summary.Temperature,
		MaxInputChars: cfg.Summary.MaxInputChars,
	}

	return video.NewService(
		transcript.NewService(client),
		summary.NewService(summary.NewAnthropicCompleter(summaryConfig), summaryConfig),
		validation.NewValidator(),
		video.Config{Languages: cfg.Transcript.Languages},
	)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Init(cfg.LogDir, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	handler := handlers.New(buildService(cfg), cfg)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/summarize", handler.Summarize)
	mux.HandleFunc("/api/transcript", handler.Transcript)
	mux.HandleFunc("/api/export", handler.Export)
	mux.HandleFunc("/health", handler.HealthCheck)
	mux.Handle("/", http.FileServer(http.Dir(cfg.StaticDir)))

	middlewares := []func(http.Handler) http.Handler{
		middleware.Recovery(log),
		middleware.RequestID(),
		middleware.Logging(log),
		middleware.CORS(cfg.CORS),
	}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.BurstSize)
		middlewares = append(middlewares, limiter.Middleware)
	}

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      middleware.Chain(mux, middlewares...),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		log.WithField("port", cfg.ServerPort).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Server error")
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("Shutting down the server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

func runSummarize(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logrus.SetLevel(logrus.WarnLevel)

	apiKey := apiKeyFlag
	if apiKey == "" {
		apiKey = cfg.Summary.APIKey
	}

	opts := models.SummaryOptions{
		Language: models.ParseLanguage(languageFlag),
		Length:   models.ParseLength(lengthFlag),
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	defer cancel()

	brief, err := buildService(cfg).Brief(ctx, args[0], opts, apiKey)
	if err != nil {
		if brief != nil && brief.Transcript != nil {
			fmt.Fprintf(os.Stderr, "summarization failed: %v\n\n", err)
			fmt.Println(brief.Transcript.Text)
		}
		return err
	}

	fmt.Println(brief.Summary.Text)
	if brief.Summary.Truncated {
		fmt.Fprintln(os.Stderr, "note: the transcript was truncated to fit the model's input limit; the ending was not summarized")
	}
	return nil
}

func runTranscript(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logrus.SetLevel(logrus.WarnLevel)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	defer cancel()

	fetched, err := buildService(cfg).Transcript(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Println(fetched.Text)
	fmt.Fprintf(os.Stderr, "%d words, %d characters\n", fetched.WordCount, fetched.CharCount)
	return nil
}

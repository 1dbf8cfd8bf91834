package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/reviewlens/reviewlens/config"
	"github.com/reviewlens/reviewlens/pkg/auth"
	"github.com/reviewlens/reviewlens/pkg/llms"
	"github.com/reviewlens/reviewlens/pkg/models"
	"github.com/reviewlens/reviewlens/pkg/server"
	"github.com/reviewlens/reviewlens/pkg/warehouse"
)

// run is the entrypoint for the reviewlens server
func run() {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error configuring reviewlens: %s", err)
	}

	handleCLIOptions(cfg)

	log.Infof("Starting reviewlens server version %s", config.VersionString)

	config.SetLogLevel(cfg)
	appState := NewAppState(cfg)
	setupSignalHandler()

	srv := server.Create(appState)

	log.Infof("Listening on: %s", srv.Addr)
	err = srv.ListenAndServe()
	if err != nil {
		log.Fatal(err)
	}
}

// NewAppState creates an AppState struct from the config file / ENV and
// creates the LLM, embeddings, and warehouse clients
func NewAppState(cfg *config.Config) *models.AppState {
	ctx := context.Background()

	llmClient, err := llms.NewLLMClient(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}

	embeddingsClient, err := llms.NewEmbeddingsClient(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}

	return &models.AppState{
		LLM:              llmClient,
		EmbeddingsClient: embeddingsClient,
		Warehouse:        warehouse.NewBigQueryWarehouse(cfg),
		Config:           cfg,
	}
}

// handleCLIOptions handles CLI options that don't require the server to run
func handleCLIOptions(cfg *config.Config) {
	if showVersion {
		fmt.Println(config.VersionString)
		os.Exit(0)
	}
	if generateKey {
		fmt.Println(auth.GenerateJWT(cfg))
		os.Exit(0)
	}
	if dumpConfig {
		redacted := *cfg
		redacted.LLM.OpenAIAPIKey = "**redacted**"
		redacted.Embeddings.OpenAIAPIKey = "**redacted**"
		redacted.Auth.Secret = "**redacted**"
		out, err := json.MarshalIndent(redacted, "", "  ")
		if err != nil {
			log.Fatalf("Error dumping config: %s", err)
		}
		fmt.Println(string(out))
		os.Exit(0)
	}
}

// setupSignalHandler exits cleanly on termination
func setupSignalHandler() {
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signalCh
		log.Info("Shutting down")
		os.Exit(0)
	}()
}

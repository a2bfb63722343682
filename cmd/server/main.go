package main

import (
	"fmt"
	"log"
	"os"

	"github.com/areteselect/backend/config"
	httpDelivery "github.com/areteselect/backend/internal/delivery/http"
	"github.com/areteselect/backend/internal/domain"
	"github.com/areteselect/backend/internal/infrastructure/chat"
	"github.com/areteselect/backend/internal/infrastructure/gsheets"
	"github.com/areteselect/backend/internal/usecase"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; real env vars win
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded environment from .env")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Arete Case Library v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Spreadsheet: %s", cfg.Sheets.SpreadsheetID)

	// A broken credential must not kill startup: the search page reports
	// it with remediation steps, and /healthz stays alive.
	credJSON, err := gsheets.LoadCredential(cfg.Sheets.CredentialsFile)
	if err != nil {
		log.Printf("WARNING: service-account credential unavailable (%v) - spreadsheet reads will fail!", err)
	}

	source := gsheets.NewClient(cfg.Sheets.SpreadsheetID, credJSON)

	// The chat demo is optional; without an API key its endpoints answer 503
	var chatClient domain.ChatClient
	if cfg.Chat.APIKey != "" {
		chatClient = chat.NewClient(cfg.Chat.BaseURL, cfg.Chat.APIKey, cfg.Chat.Model)
		log.Printf("Chat configured: %s (model: %s)", cfg.Chat.BaseURL, cfg.Chat.Model)
	} else {
		log.Printf("Chat not configured (set ARETE_CHAT_API_KEY to enable)")
	}

	// Initialize usecase layer
	caseService := usecase.NewCaseService(source)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(caseService, chatClient, cfg.Debug.Secret)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}

package models

import (
	"github.com/reviewlens/reviewlens/config"
)

// AppState is a struct that holds the state of the application
// Use cmd.NewAppState to create a new instance
type AppState struct {
	LLM              LLM
	EmbeddingsClient EmbeddingsClient
	Warehouse        Warehouse
	Config           *config.Config
}

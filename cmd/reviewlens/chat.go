package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reviewlens/reviewlens/config"
	"github.com/reviewlens/reviewlens/pkg/models"
	"github.com/reviewlens/reviewlens/pkg/session"
)

var chatASIN string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat about a product's reviews on the command line",
	Run:   func(cmd *cobra.Command, args []string) { runChat() },
}

func runChat() {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error configuring reviewlens: %s", err)
	}
	config.SetLogLevel(cfg)

	ctx := context.Background()
	appState := NewAppState(cfg)

	s := session.NewSession(appState, chatASIN)
	fmt.Printf("Loading reviews for %s...\n", chatASIN)
	if err := s.Load(ctx); err != nil {
		if errors.Is(err, models.ErrNoReviewData) {
			fmt.Printf("No review data found for ASIN %s\n", chatASIN)
			os.Exit(1)
		}
		log.Fatalf("Error loading reviews: %s", err)
	}
	defer s.Close()

	fmt.Println("Ask a question about the product's reviews. Type \"exit\" to quit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		if question == "exit" || question == "quit" {
			break
		}

		answer, err := s.Ask(ctx, question)
		if err != nil {
			log.Errorf("Error answering question: %s", err)
			continue
		}
		fmt.Println(answer.Content)
	}

	if err := scanner.Err(); err != nil {
		log.Fatalf("Error reading input: %s", err)
	}
}

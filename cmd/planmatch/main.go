// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/planmatch"
	"github.com/poiesic/planmatch/ai"
	"github.com/poiesic/planmatch/core"
	"github.com/poiesic/planmatch/search"
	"github.com/poiesic/planmatch/session"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "planmatch",
		Usage: "Requirement-driven phone plan recommendation engine",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "seed",
				Usage:  "Load catalog items from a CSV file",
				Action: seedCommand,
				Flags: append(commonFlags(),
					&cli.StringFlag{
						Name:     "csv",
						Aliases:  []string{"f"},
						Usage:    "Path to catalog CSV file",
						Required: true,
					},
				),
			},
			{
				Name:   "reindex",
				Usage:  "Recompute embeddings for every catalog item",
				Action: reindexCommand,
				Flags:  commonFlags(),
			},
			{
				Name:   "providers",
				Usage:  "List the providers present in the catalog",
				Action: providersCommand,
				Flags:  commonFlags(),
			},
			{
				Name:   "search",
				Usage:  "Send a message to a recommendation session",
				Action: searchCommand,
				Flags: append(commonFlags(),
					&cli.StringFlag{
						Name:  "session",
						Usage: "Session identifier (a new session is created when omitted)",
					},
					&cli.StringFlag{
						Name:     "message",
						Aliases:  []string{"m"},
						Usage:    "User message to extract requirements from",
						Required: true,
					},
					&cli.IntFlag{
						Name:    "count",
						Aliases: []string{"k"},
						Usage:   "Number of plans to return",
						Value:   5,
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to BadgerDB database directory",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "embedding-host",
			Usage: "Embedding service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "embeddinggemma",
		},
		&cli.StringFlag{
			Name:  "chat-host",
			Usage: "Chat service host URL (defaults to embedding-host if not specified)",
		},
		&cli.StringFlag{
			Name:  "chat-model",
			Usage: "Chat model name for requirement extraction",
			Value: "qwen2.5:3b",
		},
	}
}

func openDatabase(c *cli.Context) (*planmatch.Database, error) {
	chatHost := c.String("chat-host")
	if chatHost == "" {
		chatHost = c.String("embedding-host")
	}

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithChatHost(chatHost),
		ai.WithChatModel(c.String("chat-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	db, err := planmatch.NewDatabase(c.String("db"), planmatch.WithAIConfig(aiConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func seedCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	pipeline, err := db.NewIngestionPipeline()
	if err != nil {
		return fmt.Errorf("failed to create ingestion pipeline: %w", err)
	}
	defer pipeline.Release()

	file, err := os.Open(c.String("csv"))
	if err != nil {
		return fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	stored, err := pipeline.IngestCSV(ctx, file)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Stored %d catalog items from %s\n", stored, c.String("csv"))
	return nil
}

func reindexCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	pipeline, err := db.NewIngestionPipeline()
	if err != nil {
		return fmt.Errorf("failed to create ingestion pipeline: %w", err)
	}
	defer pipeline.Release()

	count, err := pipeline.Reindex(ctx)
	if err != nil {
		return fmt.Errorf("reindex failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Reembedded %d catalog items\n", count)
	return nil
}

func providersCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	providers, err := db.CatalogRepository().Providers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list providers: %w", err)
	}

	for _, provider := range providers {
		fmt.Println(provider)
	}
	return nil
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	engine, err := db.NewEngine()
	if err != nil {
		return fmt.Errorf("failed to create search engine: %w", err)
	}
	defer engine.Close()

	manager, err := db.NewSessionManager(engine, session.WithResultCount(c.Int("count")))
	if err != nil {
		return fmt.Errorf("failed to create session manager: %w", err)
	}

	sessionID := c.String("session")
	if sessionID == "" {
		sessionID = manager.NewSession()
		fmt.Fprintf(os.Stderr, "Session: %s\n", sessionID)
	}

	turn, err := manager.HandleMessage(ctx, sessionID, c.String("message"))
	if err != nil {
		var noResults *search.NoResultsError
		if errors.As(err, &noResults) {
			fmt.Println("No matching plans.")
			for _, relaxed := range noResults.Attempts {
				if len(relaxed) > 0 {
					fmt.Printf("  tried without: %s\n", strings.Join(relaxed, ", "))
				}
			}
			return nil
		}
		return fmt.Errorf("search failed: %w", err)
	}

	printOutcome(turn.Outcome)
	if turn.Followup != "" {
		fmt.Printf("\nFollow-up: %s\n", turn.Followup)
	}
	return nil
}

func printOutcome(outcome *core.SearchOutcome) {
	if len(outcome.Plans) == 0 {
		fmt.Println("No matching plans.")
		return
	}

	for i, candidate := range outcome.Plans {
		item := candidate.Item
		fmt.Printf("%d. %s %s ($%.2f/mo, %.0f GB", i+1, item.Provider, item.Name, item.PromotionPrice, item.DataAmountGB)
		if len(item.Roaming) > 0 {
			fmt.Printf(", roaming: %s", strings.Join(item.Roaming, ", "))
		}
		fmt.Printf(") score=%.3f\n", candidate.Score)
	}

	if len(outcome.RelaxedFields) > 0 {
		fmt.Printf("\nRelaxed constraints: %s\n", strings.Join(outcome.RelaxedFields, ", "))
	}
	if outcome.Partial {
		fmt.Println("Fewer plans matched than requested.")
	}
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

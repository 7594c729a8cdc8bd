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


package planmatch

import (
	"log/slog"

	"github.com/poiesic/planmatch/ai"
	"github.com/poiesic/planmatch/ai/openai"
	"github.com/poiesic/planmatch/ingestion"
	"github.com/poiesic/planmatch/search"
	"github.com/poiesic/planmatch/session"
	"github.com/poiesic/planmatch/storage"
	"github.com/poiesic/planmatch/storage/badger"
)

// Database wires the storage backend, repositories, and AI provider together
// and hands out the higher-level components built on them.
type Database struct {
	backend         *badger.Backend
	catalogRepo     storage.CatalogRepository
	requirementRepo storage.RequirementRepository
	provider        ai.AIProvider
	logger          *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig *ai.Config
}

// WithAIConfig overrides the default AI service configuration.
func WithAIConfig(config *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	// Apply options
	options := &databaseOptions{
		aiConfig: ai.DefaultConfig(), // Default if not provided
	}
	for _, opt := range opts {
		opt(options)
	}
	// Open backend
	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	// Create catalog repository
	catalogRepo, err := badger.NewCatalogRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create requirement repository
	requirementRepo, err := badger.NewRequirementRepository(backend)
	if err != nil {
		catalogRepo.Close()
		backend.Close()
		return nil, err
	}

	// Create AI provider with configured settings
	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		requirementRepo.Close()
		catalogRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Database{
		backend:         backend,
		catalogRepo:     catalogRepo,
		requirementRepo: requirementRepo,
		provider:        provider,
		logger:          slog.Default(),
	}, nil
}

func (db *Database) Close() error {
	// Close AI provider first
	if err := db.provider.Close(); err != nil {
		db.logger.Error("error closing AI provider", "err", err)
	}

	// Close repositories
	if err := db.requirementRepo.Close(); err != nil {
		db.logger.Error("error closing requirement repository", "err", err)
		return err
	}
	if err := db.catalogRepo.Close(); err != nil {
		db.logger.Error("error closing catalog repository", "err", err)
		return err
	}

	// Close backend
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) CatalogRepository() storage.CatalogRepository {
	return db.catalogRepo
}

func (db *Database) RequirementRepository() storage.RequirementRepository {
	return db.requirementRepo
}

func (db *Database) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(db.catalogRepo, db.provider, opts...)
}

func (db *Database) NewEngine(opts ...search.Option) (*search.Engine, error) {
	return search.NewEngine(db.catalogRepo, db.provider, opts...)
}

func (db *Database) NewSessionManager(engine *search.Engine, opts ...session.Option) (*session.Manager, error) {
	return session.NewManager(db.requirementRepo, engine, db.provider, opts...)
}

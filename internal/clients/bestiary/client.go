// Package bestiary is the location for the dnd5e-api monster client
package bestiary

//go:generate mockgen -destination=mock/mock_client.go -package=bestiarymock github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/clients/bestiary Client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"
)

// Client defines the interface for the external bestiary source
type Client interface {
	// ListMonsterRefs returns key/name references for every monster in the source
	ListMonsterRefs(ctx context.Context) ([]*MonsterRef, error)

	// GetMonsterData fetches monster information from external source
	GetMonsterData(ctx context.Context, monsterKey string) (*MonsterData, error)

	// ListMonsterData returns full details for the given monster keys
	// Implementation should handle reference->details conversion internally
	ListMonsterData(ctx context.Context, monsterKeys []string) ([]*MonsterData, error)
}

// monsterSource is the slice of the dnd5e-api client surface this package uses
type monsterSource interface {
	ListMonsters() ([]*entities.ReferenceItem, error)
	GetMonster(key string) (*entities.Monster, error)
}

type client struct {
	dnd5eClient monsterSource
}

// Config contains configuration options for the bestiary client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	// Set defaults if not provided
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	return nil
}

// New creates a new bestiary client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Create HTTP client with timeout
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// Create the base D&D 5e API client
	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create D&D 5e API client: %w", err)
	}

	// Wrap with caching for better performance
	cachedClient := dnd5e.NewCachedClient(baseClient, cfg.CacheTTL)

	return &client{
		dnd5eClient: cachedClient,
	}, nil
}

func (c *client) ListMonsterRefs(_ context.Context) ([]*MonsterRef, error) {
	slog.Info("Calling D&D 5e API to list monsters")
	refs, err := c.dnd5eClient.ListMonsters()
	if err != nil {
		return nil, fmt.Errorf("failed to list monsters from D&D 5e API: %w", err)
	}
	slog.Info("Got monster references", "count", len(refs))

	monsterRefs := make([]*MonsterRef, len(refs))
	for i, ref := range refs {
		monsterRefs[i] = &MonsterRef{
			Key:  ref.Key,
			Name: ref.Name,
		}
	}
	return monsterRefs, nil
}

func (c *client) GetMonsterData(_ context.Context, monsterKey string) (*MonsterData, error) {
	// Get monster details from D&D 5e API
	monster, err := c.dnd5eClient.GetMonster(monsterKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get monster %s from D&D 5e API: %w", monsterKey, err)
	}

	// Convert to our internal format
	return convertMonsterToMonsterData(monster), nil
}

func (c *client) ListMonsterData(_ context.Context, monsterKeys []string) ([]*MonsterData, error) {
	// Concurrently load full details for each requested monster
	slog.Info("Loading full details for monsters concurrently", "count", len(monsterKeys))
	monsters := make([]*MonsterData, len(monsterKeys))
	errChan := make(chan error, len(monsterKeys))
	var wg sync.WaitGroup

	for i, monsterKey := range monsterKeys {
		wg.Add(1)
		go func(idx int, key string) {
			defer wg.Done()

			// Get full monster details (cached after first call)
			monster, err := c.dnd5eClient.GetMonster(key)
			if err != nil {
				slog.Error("Failed to get monster details", "monster", key, "error", err)
				errChan <- fmt.Errorf("failed to get monster %s: %w", key, err)
				return
			}

			monsters[idx] = convertMonsterToMonsterData(monster)
			slog.Debug("Loaded monster details", "monster", key)
		}(i, monsterKey)
	}

	wg.Wait()
	close(errChan)

	// Check for any errors
	for err := range errChan {
		if err != nil {
			return nil, err
		}
	}

	return monsters, nil
}

// convertMonsterToMonsterData converts a dnd5e-api monster entity to our internal MonsterData format
func convertMonsterToMonsterData(monster *entities.Monster) *MonsterData {
	if monster == nil {
		return nil
	}

	return &MonsterData{
		Key:          monster.Key,
		Name:         monster.Name,
		Strength:     monster.Strength,
		Dexterity:    monster.Dexterity,
		Constitution: monster.Constitution,
		Intelligence: monster.Intelligence,
		Wisdom:       monster.Wisdom,
		Charisma:     monster.Charisma,
	}
}

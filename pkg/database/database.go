package database

import (
	"context"
	"fmt"
	"log"

	"github.com/sannty/salescrm/ent"

	_ "github.com/lib/pq"
)

// Client wraps the ent client shared by every service.
type Client struct {
	Ent *ent.Client
}

// NewClient opens a postgres connection and brings the schema up to date.
func NewClient(databaseURL string) (*Client, error) {
	client, err := ent.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	log.Println("✅ Database connected and schema migrated")

	return &Client{Ent: client}, nil
}

// Close closes the database connection
func (c *Client) Close() error {
	return c.Ent.Close()
}

// Ping verifies the database is reachable. Used by the health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Ent.Organization.Query().Limit(1).Count(ctx)
	return err
}

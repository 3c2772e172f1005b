// Seeds the Neo4j database with the curated garden content. Keyword
// expansion, the blocks dataset, and filler are assembled at serve time, so
// only the hand-written nodes and links are persisted.
//
// Usage:
//
//	go run ./backend/scripts/seed [-wipe]
package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"digital-garden/backend/internal/content"
	"digital-garden/backend/internal/graph"
	"digital-garden/backend/pkg/config"
	"digital-garden/backend/pkg/logger"
)

func main() {
	wipe := flag.Bool("wipe", false, "delete all existing content before seeding")
	flag.Parse()

	if err := logger.Init("development"); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()
	log := logger.Get()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	ctx := context.Background()
	driver, err := neo4j.NewDriverWithContext(
		cfg.Neo4jURI,
		neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, ""),
	)
	if err != nil {
		log.Fatal("Failed to create Neo4j driver", zap.Error(err))
	}
	defer driver.Close(ctx)

	if err := driver.VerifyConnectivity(ctx); err != nil {
		log.Fatal("Failed to verify Neo4j connectivity", zap.Error(err))
	}

	if *wipe {
		session := driver.NewSession(ctx, neo4j.SessionConfig{})
		_, err := session.Run(ctx, "MATCH (n:Content) DETACH DELETE n", nil)
		session.Close(ctx)
		if err != nil {
			log.Fatal("Failed to wipe existing content", zap.Error(err))
		}
		log.Info("Wiped existing content")
	}

	repo := graph.NewRepository(driver)
	seed := content.DefaultConfig()

	for _, n := range seed.Nodes {
		if err := repo.UpsertNode(ctx, n); err != nil {
			log.Fatal("Failed to upsert node", zap.String("id", n.ID), zap.Error(err))
		}
	}
	log.Info("Seeded nodes", zap.Int("count", len(seed.Nodes)))

	for _, l := range seed.Links {
		if err := repo.CreateEdge(ctx, l.Source, l.Target); err != nil {
			log.Fatal("Failed to create edge",
				zap.String("source", l.Source),
				zap.String("target", l.Target),
				zap.Error(err),
			)
		}
	}
	log.Info("Seeded links", zap.Int("count", len(seed.Links)))

	log.Info("Seed complete")
}

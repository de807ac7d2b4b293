// Command seed populates the store with demo confessions for development.
package main

import (
	"flag"
	"log"

	"confide/internal/config"
	"confide/internal/database"
	"confide/internal/seed"
)

func main() {
	opts := seed.DefaultOptions()
	flag.IntVar(&opts.Posts, "posts", opts.Posts, "number of posts to create")
	flag.IntVar(&opts.MaxReactions, "max-reactions", opts.MaxReactions, "max reactions per post")
	flag.IntVar(&opts.MaxReplies, "max-replies", opts.MaxReplies, "max replies per post")
	flag.IntVar(&opts.MaxDays, "max-days", opts.MaxDays, "spread post timestamps over this many past days")
	flag.BoolVar(&opts.DryRun, "dry-run", false, "log what would be created without writing")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.NewFactory(db, opts).Run(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}

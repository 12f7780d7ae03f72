package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/devfolio/devfolio/backend/go-services/internal/config"
	"github.com/devfolio/devfolio/backend/go-services/internal/database"
	"github.com/devfolio/devfolio/backend/go-services/internal/users"
)

// adminctl seeds or rotates the admin-panel credential. There is no signup
// flow in the service itself; this is the only way accounts are created.
func main() {
	username := flag.String("username", "", "admin username to create or update")
	password := flag.String("password", "", "new password (omit to be prompted)")
	flag.Parse()

	if *username == "" {
		log.Fatal("usage: adminctl -username <name> [-password <password>]")
	}

	pw := *password
	if pw == "" {
		fmt.Fprintf(os.Stderr, "password for %s: ", *username)
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			log.Fatalf("cannot read password: %v", err)
		}
		pw = strings.TrimSpace(string(raw))
	}
	if pw == "" {
		log.Fatal("password must not be empty")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx := context.Background()
	client, err := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
	if err != nil {
		log.Fatalf("cannot connect to MongoDB: %v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	repo := users.NewMongoUserRepository(client.Database(cfg.MongoDB.Database).Collection("users"))
	svc := users.NewService(repo)

	u, err := svc.SetCredential(ctx, *username, pw)
	if err != nil {
		log.Fatalf("failed to set credential: %v", err)
	}
	log.Printf("credential set for %s (id=%s)", u.Username, u.ID)
}

// Command stubserver runs a local stand-in for the remote directory
// service so the CLI can be exercised without network access. Every
// seeded account logs in with the password "pistol".
package main

import (
	"crypto/rand"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/Zeldris69240/reqres-app/internal/logging"
	"github.com/Zeldris69240/reqres-app/internal/stubserver"
)

func main() {
	addr := flag.String("a", "127.0.0.1:8080", "address and port to listen on")
	flag.Parse()

	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.NewTextLogger(os.Stderr, slog.LevelInfo)
	repo := stubserver.NewUserRepo(stubserver.SeedUsers())
	tokens := stubserver.NewTokenIssuer(secret, 24*time.Hour)
	srv := stubserver.NewServer(repo, tokens, logger)

	log.Printf("directory stub listening on %s", *addr)
	if err := http.ListenAndServe(*addr, srv.Router()); err != nil {
		log.Fatalf("%v", err)
	}
}

package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/memfsd/memfsd/internal/infrastructure/config"
	"github.com/memfsd/memfsd/internal/server"
)

func main() {
	port := flag.String("port", "", "Server port (overrides PORT)")
	snapshotDir := flag.String("snapshots", "", "Snapshot directory (overrides SNAPSHOT_DIR)")
	flag.Parse()

	cfg := config.LoadOrDefault()
	if *port != "" {
		cfg.Server.Port = *port
	}
	if *snapshotDir != "" {
		cfg.Snapshot.Dir = *snapshotDir
	}

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := srv.Run(); err != nil {
			errChan <- err
		}
	}()

	select {
	case <-sigChan:
		log.Println("Shutting down gracefully...")
		if err := srv.Close(); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	case err := <-errChan:
		log.Fatalf("Server error: %v", err)
	}
}

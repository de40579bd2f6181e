package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/AryavP/AntBridge/internal/archive"
	"github.com/AryavP/AntBridge/internal/catalog"
	abnet "github.com/AryavP/AntBridge/internal/net"
)

func main() {
	port := flag.String("port", "7777", "TCP port to listen on")
	players := flag.Int("players", 2, "number of players to wait for")
	catalogFile := flag.String("catalog", "", "path to a YAML catalog file (built-in set when empty)")
	seed := flag.Int64("seed", 0, "RNG seed (0 for random)")
	archivePath := flag.String("archive", "", "path to the SQLite archive (archiving off when empty)")
	flag.Parse()

	cat := catalog.Default()
	if *catalogFile != "" {
		loaded, err := catalog.LoadFile(*catalogFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: load catalog: %v\n", err)
			os.Exit(1)
		}
		cat = loaded
	}

	srv := &abnet.Server{
		Port:    *port,
		Players: *players,
		Catalog: cat,
		Seed:    *seed,
	}
	if *archivePath != "" {
		store, err := archive.New(*archivePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: open archive: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
		srv.Archive = store
		log.Printf("archiving finished games to %s", *archivePath)
	}

	if err := srv.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

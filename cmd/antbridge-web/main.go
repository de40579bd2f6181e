package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/AryavP/AntBridge/internal/catalog"
	"github.com/AryavP/AntBridge/internal/web"
)

func main() {
	port := flag.Int("port", 8080, "HTTP port to listen on")
	catalogFile := flag.String("catalog", "", "path to a YAML catalog file (built-in set when empty)")
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

	srv := web.NewServer(cat)
	addr := fmt.Sprintf(":%d", *port)
	log.Printf("Ant Bridge web UI listening on http://localhost:%d", *port)
	if err := srv.ListenAndServe(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

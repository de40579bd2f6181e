package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	abnet "github.com/AryavP/AntBridge/internal/net"
)

func main() {
	addr := flag.String("addr", "localhost:7777", "game server address")
	name := flag.String("name", "", "player display name")
	flag.Parse()

	if err := abnet.Connect(context.Background(), *addr, *name); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"chosenoffset.com/saveaunty/internal/config"
	"chosenoffset.com/saveaunty/internal/feedback"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to read configuration: %v", err)
	}
	flag.StringVar(&cfg.ServerAddr, "addr", cfg.ServerAddr, "listen address")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "quote shuffle seed (0 = time based)")
	flag.Parse()

	server := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           feedback.NewRouter(feedback.NewQuoteProvider(cfg.Seed)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("Feedback service listening on %s", cfg.ServerAddr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}

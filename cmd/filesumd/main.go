package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ronelsolomon/filesummarize/internal/config"
	"github.com/ronelsolomon/filesummarize/internal/filesumd"
)

func main() {
	listen := flag.String("listen", filesumd.DefaultListen, "listen address (tcp)")
	configPath := flag.String("config", "", "path to a TOML config file")
	host := flag.String("host", "", "ollama server address (overrides config)")
	model := flag.String("model", "", "ollama model name (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *host != "" {
		cfg.Host = *host
	}
	if *model != "" {
		cfg.Model = *model
	}

	s := filesumd.NewServer(filesumd.Options{
		Listen:      *listen,
		Host:        cfg.Host,
		Model:       cfg.Model,
		MaxFileSize: cfg.MaxFileSize,
	})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		_ = s.Close()
	}()

	if err := s.Run(); err != nil {
		if errors.Is(err, syscall.EADDRINUSE) {
			_, _ = fmt.Fprintf(os.Stderr, "listen address in use: %s\nTry: -listen 127.0.0.1:7434\n", *listen)
		} else {
			_, _ = fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

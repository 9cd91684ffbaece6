package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"asteroids/game"
	"asteroids/remote"
	"asteroids/terminal"
)

func main() {
	mode := flag.String("mode", "terminal", "Front end: terminal or remote")
	addr := flag.String("addr", ":8080", "HTTP listen address (remote mode)")
	configPath := flag.String("config", "", "Path to a YAML config file")
	staticDir := flag.String("static", "", "Directory with a browser display client (remote mode)")
	logPath := flag.String("log", "", "Log file (terminal mode logs nowhere by default)")
	seed := flag.Int64("seed", 0, "Random seed, 0 picks one from the clock")
	flag.Parse()

	cfg := game.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = game.LoadConfig(*configPath); err != nil {
			log.Fatalf("load config: %v", err)
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var err error
	switch *mode {
	case "terminal":
		err = runTerminal(ctx, cfg, *logPath)
	case "remote":
		err = runRemote(ctx, cfg, *addr, *staticDir)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatalf("%v", err)
	}
}

func runTerminal(ctx context.Context, cfg game.Config, logPath string) error {
	// tcell owns the tty
	log.SetOutput(io.Discard)
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	scr, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := scr.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer scr.Fini()
	scr.HideCursor()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	screen := terminal.NewScreen(scr)
	g := game.NewGame(cfg, screen, screen)
	loop := game.NewLoop(g, time.Now())
	in := terminal.NewInput(scr, loop.Keys(), cancel)
	go in.Run(ctx)

	log.Printf("terminal game started (seed %d)", cfg.Seed)
	return loop.Run(ctx)
}

func runRemote(ctx context.Context, cfg game.Config, addr, staticDir string) error {
	g := game.NewGame(cfg, nil, nil)
	loop := game.NewLoop(g, time.Now())

	hub := remote.NewHub(loop, g.Bounds())
	display := remote.NewDisplay(hub)
	loop.Attach(display, display)
	go hub.Run(ctx)

	server := &http.Server{Addr: addr, Handler: remote.SetupRoutes(hub, staticDir)}
	go func() {
		log.Printf("Server starting on %s", addr)
		if staticDir != "" {
			log.Printf("Serving display client from %s", staticDir)
		}
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	if err := remote.WriteJoinCode(os.Stdout, joinURL(addr)); err != nil {
		log.Printf("join code: %v", err)
	}

	err := loop.Run(ctx)
	log.Println("Shutting down...")
	server.Close()
	return err
}

// joinURL guesses the LAN address a phone on the same network can reach
func joinURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + addr + "/"
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
		// UDP dial sends nothing; it only picks the outbound interface
		if conn, err := net.Dial("udp", "192.0.2.1:9"); err == nil {
			host = conn.LocalAddr().(*net.UDPAddr).IP.String()
			conn.Close()
		}
	}
	return "http://" + net.JoinHostPort(host, port) + "/"
}

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/recera/restyle/cmd/restyle/internal/config"
	"github.com/recera/restyle/internal/rulecache"
	"github.com/recera/restyle/internal/theme"
	"github.com/recera/restyle/pkg/stream"
)

type devServer struct {
	port      int
	host      string
	watcher   *fsnotify.Watcher
	stream    *stream.Server
	ruleCache *rulecache.Cache
	config    *config.Config
	themePath string
}

func newDevCommand() *cobra.Command {
	var port int
	var host string
	var cwd string

	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Start the style dev server",
		Long:  `Watches the styles directory and streams changed rules to connected clients.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cwd != "" {
				if err := os.Chdir(cwd); err != nil {
					return fmt.Errorf("failed to change directory to %s: %w", cwd, err)
				}
			}
			return runDev(host, port)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run the dev server on")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind the dev server to")
	cmd.Flags().StringVar(&cwd, "cwd", "", "Working directory of the app (defaults to current)")

	return cmd
}

func runDev(host string, port int) error {
	cfg, err := config.Load(".")
	if err != nil {
		log.Printf("⚠️  Failed to load %s: %v (using defaults)\n", config.FileName, err)
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// CLI takes precedence over config
	if port == 0 {
		port = cfg.Dev.Port
	}
	if host == "" {
		host = cfg.Dev.Host
	}

	server := &devServer{
		port:      port,
		host:      host,
		stream:    stream.NewServer(),
		ruleCache: rulecache.New(),
		config:    cfg,
		themePath: cfg.Theme,
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()
	server.watcher = watcher

	if err := server.setupWatcher(); err != nil {
		return fmt.Errorf("failed to setup watcher: %w", err)
	}

	// Warm the cache so the first change only broadcasts real deltas
	log.Println("🔍 Scanning stylesheets...")
	count := server.primeCache()
	log.Printf("  Found %d stylesheet(s)\n", count)

	go server.watchFiles()

	mux := http.NewServeMux()

	// WebSocket endpoint for style streaming
	mux.HandleFunc("/restyle/live", server.stream.HandleWebSocket)

	// Serve watched stylesheets for the initial page load
	mux.Handle("/styles/", http.StripPrefix("/styles/",
		http.FileServer(http.Dir(cfg.StylesDir))))

	addr := fmt.Sprintf("%s:%d", host, port)
	log.Printf("✨ Style dev server running at http://%s\n", addr)

	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("\n🛑 Shutting down dev server...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(ctx)
	}()

	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *devServer) setupWatcher() error {
	err := filepath.Walk(s.config.StylesDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() && strings.HasPrefix(info.Name(), ".") && path != s.config.StylesDir {
			return filepath.SkipDir
		}
		if info.IsDir() {
			return s.watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// The theme manifest may live outside the styles directory
	if s.themePath != "" {
		if err := s.watcher.Add(filepath.Dir(s.themePath)); err != nil {
			log.Printf("⚠️  Failed to watch theme %s: %v\n", s.themePath, err)
		}
	}

	return nil
}

// primeCache scans every stylesheet once without broadcasting.
func (s *devServer) primeCache() int {
	count := 0
	filepath.Walk(s.config.StylesDir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() || !isStylesheet(path) {
			return nil
		}
		if content, err := os.ReadFile(path); err == nil {
			s.ruleCache.Update(path, content)
			count++
		}
		return nil
	})
	return count
}

func (s *devServer) watchFiles() {
	debounce := time.NewTimer(0)
	<-debounce.C // drain initial timer

	var pendingEvents []fsnotify.Event
	var mu sync.Mutex

	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}

			if !s.isRelevantFile(event.Name) {
				continue
			}

			mu.Lock()
			pendingEvents = append(pendingEvents, event)
			mu.Unlock()

			debounce.Reset(100 * time.Millisecond)

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			log.Println("Watcher error:", err)

		case <-debounce.C:
			mu.Lock()
			events := pendingEvents
			pendingEvents = nil
			mu.Unlock()

			if len(events) > 0 {
				s.handleFileChanges(events)
			}
		}
	}
}

func (s *devServer) isRelevantFile(path string) bool {
	if s.themePath != "" && filepath.Clean(path) == filepath.Clean(s.themePath) {
		return true
	}
	return isStylesheet(path)
}

func isStylesheet(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".css"
}

func (s *devServer) handleFileChanges(events []fsnotify.Event) {
	seen := make(map[string]bool)
	themeChanged := false

	for _, event := range events {
		if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
			continue
		}
		path := filepath.Clean(event.Name)
		if s.themePath != "" && path == filepath.Clean(s.themePath) {
			themeChanged = true
			continue
		}
		seen[path] = true
	}

	for path := range seen {
		s.broadcastStylesheet(path)
	}

	if themeChanged {
		s.broadcastTheme()
	}
}

func (s *devServer) broadcastStylesheet(path string) {
	content, err := os.ReadFile(path)
	if err != nil {
		log.Printf("❌ Failed to read %s: %v\n", path, err)
		return
	}

	rules, changed := s.ruleCache.Update(path, content)
	if !changed {
		return
	}

	frames := make([]stream.Rule, 0, len(rules))
	for _, r := range rules {
		frames = append(frames, stream.Rule{
			Container:    s.config.Container,
			Selector:     r.Selector,
			Declarations: r.Declarations,
		})
	}

	log.Printf("🎨 %s changed, streaming %d rule(s) to %d client(s)\n",
		filepath.Base(path), len(frames), s.stream.ClientCount())
	s.stream.Broadcast(frames)
}

func (s *devServer) broadcastTheme() {
	th, err := theme.Load(s.themePath)
	if err != nil {
		log.Printf("❌ Failed to load theme: %v\n", err)
		return
	}

	rules := th.StreamRules()
	log.Printf("🎨 Theme changed, streaming %d rule(s) to %d client(s)\n",
		len(rules), s.stream.ClientCount())
	s.stream.Broadcast(rules)
}

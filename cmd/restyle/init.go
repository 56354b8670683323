package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/recera/restyle/cmd/restyle/internal/config"
	"github.com/recera/restyle/cmd/restyle/internal/ui"
)

func newInitCommand() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a restyle.json in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(interactive)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Configure interactively")

	return cmd
}

func runInit(interactive bool) error {
	if _, err := os.Stat(config.FileName); err == nil {
		return fmt.Errorf("%s already exists", config.FileName)
	}

	cfg := config.DefaultConfig()

	if interactive {
		model := ui.NewModel(ui.Defaults{
			StylesDir: cfg.StylesDir,
			Port:      cfg.Dev.Port,
		})

		finalModel, err := tea.NewProgram(model).Run()
		if err != nil {
			return fmt.Errorf("wizard failed: %w", err)
		}

		result := finalModel.(ui.Model).Result()
		if !result.Accepted {
			log.Println("🛑 Aborted, nothing written")
			return nil
		}

		cfg.StylesDir = result.StylesDir
		cfg.Theme = result.Theme
		cfg.Container = result.Container
		cfg.Dev.Port = result.Port
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(cfg, "."); err != nil {
		return fmt.Errorf("failed to write %s: %w", config.FileName, err)
	}

	if err := os.MkdirAll(cfg.StylesDir, 0755); err != nil {
		log.Printf("⚠️  Failed to create %s: %v\n", cfg.StylesDir, err)
	}

	log.Printf("✅ Wrote %s\n", filepath.Join(".", config.FileName))
	log.Println("✨ Run `restyle dev` to start streaming styles")
	return nil
}

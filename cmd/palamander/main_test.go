package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/san-kum/palamander/internal/config"
)

func testCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	addCreatureFlags(cmd)
	cmd.Flags().Float64Var(&duration, "time", 3, "")
	return cmd
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pal.yaml")
	cfg := config.DefaultConfig()
	cfg.Creature = "wyrm"
	cfg.Seed = 7
	cfg.Duration = 20
	cfg.Behavior.Linear = "cautious"
	if err := config.Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	configFile = path
	defer func() { configFile = "" }()

	cmd := testCommand()
	if err := cmd.Flags().Parse([]string{"--linear", "erratic"}); err != nil {
		t.Fatal(err)
	}
	got, err := loadConfig(cmd, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got.Creature != "wyrm" {
		t.Errorf("expected wyrm, got %s", got.Creature)
	}
	if got.Seed != 7 {
		t.Errorf("expected seed 7, got %d", got.Seed)
	}
	if got.Duration != 20 {
		t.Errorf("expected 20, got %v", got.Duration)
	}
	if got.Behavior.Linear != "erratic" {
		t.Errorf("expected erratic, got %s", got.Behavior.Linear)
	}
}

func TestLoadConfigArgs(t *testing.T) {
	cmd := testCommand()
	if err := cmd.Flags().Parse(nil); err != nil {
		t.Fatal(err)
	}
	got, err := loadConfig(cmd, []string{"serpent", "jelly", "pollywog"})
	if err != nil {
		t.Fatal(err)
	}
	if got.Creature != "serpent" {
		t.Errorf("expected serpent, got %s", got.Creature)
	}
	if len(got.Tank) != 2 {
		t.Errorf("expected 2 tank entries, got %d", len(got.Tank))
	}
	if got.Duration != 3 {
		t.Errorf("expected the command's default of 3, got %v", got.Duration)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	configFile = filepath.Join(t.TempDir(), "missing.yaml")
	defer func() { configFile = "" }()

	cmd := testCommand()
	cmd.Flags().Parse(nil)
	if _, err := loadConfig(cmd, nil); err == nil || os.IsNotExist(err) {
		t.Errorf("expected wrapped load error, got %v", err)
	}
}

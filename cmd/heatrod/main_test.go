package main

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestGIFRunConfigSelectsGIFConsumer(t *testing.T) {
	cmd := &cobra.Command{}
	addRunFlags(cmd)

	cfg, err := gifRunConfig(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output != "gif" {
		t.Errorf("expected output gif, got %q", cfg.Output)
	}
}

func TestBuildConfigOutputFlag(t *testing.T) {
	cmd := &cobra.Command{}
	addRunFlags(cmd)

	cfg, err := buildConfig(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output != "" {
		t.Errorf("expected empty output by default, got %q", cfg.Output)
	}

	if err := cmd.Flags().Set("out", "svg"); err != nil {
		t.Fatal(err)
	}
	cfg, err = buildConfig(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output != "svg" {
		t.Errorf("expected output svg from the flag, got %q", cfg.Output)
	}
}

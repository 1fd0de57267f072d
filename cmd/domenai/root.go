// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/domenai/src/domenai"
)

func newRootCmd() *cobra.Command {
	var configPath string
	cfg := &domenai.Config{}

	root := &cobra.Command{
		Use:   "domenai",
		Short: "Generate and clean .lt domain name lists",
		Long: `domenai is a toolkit for generating domain name candidates:
brute-force enumeration over a character alphabet, dictionary word
transformation, and Markov chain synthesis trained on a corpus. All
output passes the same DNS and .lt registry validation policy.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return nil
			}
			loaded, err := domenai.LoadConfig(configPath)
			if err != nil {
				return err
			}
			*cfg = *loaded
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML profile with generation defaults")

	root.AddCommand(
		newBruteCmd(cfg),
		newMarkovCmd(cfg),
		newWordlistCmd(cfg),
		newCleanupCmd(cfg),
	)

	return root
}

// outputPath builds the conventional assets/output path from a prefix
// and its parameters, e.g. brute_alphanumeric_2-4_with_lt.txt.
func outputPath(prefix string, params ...string) string {
	parts := append([]string{prefix}, params...)
	return filepath.Join("assets", "output", strings.Join(parts, "_")+".txt")
}

func printSummary(written int, path string) {
	fmt.Printf("Successfully generated %d domains -> %s\n", written, path)
}

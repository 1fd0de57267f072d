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

func newWordlistCmd(cfg *domenai.Config) *cobra.Command {
	var (
		input        string
		tld          string
		output       string
		estimateOnly bool
	)

	cmd := &cobra.Command{
		Use:   "wordlist",
		Short: "Transform dictionary words into domains",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("tld") && cfg.TLD != "" {
				tld = cfg.TLD
			}

			lines, err := domenai.ReadLines(input)
			if err != nil {
				return err
			}

			fmt.Printf("Estimated domains to generate: %d\n", domenai.EstimateLines(lines))
			if estimateOnly {
				return nil
			}

			transformer := domenai.NewWordTransformer(tld)
			domains, rejections := transformer.TransformLines(lines)

			if output == "" {
				stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
				output = outputPath("word_transform", stem, tld)
			}

			fmt.Printf("Generating domains to: %s\n", output)
			written, err := domenai.WriteBatches(output, domenai.SliceSequence(domains), 0)
			if err != nil {
				return err
			}
			if len(rejections) > 0 {
				fmt.Printf("Skipped %d words\n", len(rejections))
			}
			printSummary(written, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input file (one word per line)")
	cmd.Flags().StringVar(&tld, "tld", "lt", "top-level domain to append")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path")
	cmd.Flags().BoolVarP(&estimateOnly, "estimate-only", "e", false, "only estimate the count, do not generate")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/domenai/src/domenai"
)

func newBruteCmd(cfg *domenai.Config) *cobra.Command {
	var (
		charset      string
		minLen       int
		maxLen       int
		length       int
		hyphenMode   string
		tld          string
		output       string
		estimateOnly bool
	)

	cmd := &cobra.Command{
		Use:   "brute",
		Short: "Brute-force domain generation",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("length") {
				if cmd.Flags().Changed("min") || cmd.Flags().Changed("max") {
					return fmt.Errorf("cannot specify both --length and --min/--max")
				}
				minLen, maxLen = length, length
			}

			opts := cfg.BruteOptions()
			if cmd.Flags().Changed("charset") {
				opts = append(opts, domenai.WithCharset(domenai.Charset(charset)))
			}
			if cmd.Flags().Changed("min") || cmd.Flags().Changed("max") || cmd.Flags().Changed("length") {
				opts = append(opts, domenai.WithLengthRange(minLen, maxLen))
			}
			if cmd.Flags().Changed("hyphen-mode") {
				opts = append(opts, domenai.WithHyphenMode(domenai.HyphenMode(hyphenMode)))
			}
			if cmd.Flags().Changed("tld") {
				opts = append(opts, domenai.WithTLD(tld))
			}

			gen, err := domenai.NewBrute(opts...)
			if err != nil {
				return err
			}

			fmt.Printf("Estimated domains to generate: %s\n", gen.Estimate())
			if estimateOnly {
				return nil
			}

			if output == "" {
				output = outputPath("brute", charset,
					fmt.Sprintf("%d-%d", minLen, maxLen), hyphenMode, tld)
			}

			fmt.Printf("Generating domains to: %s\n", output)
			written, err := domenai.WriteBatches(output, gen.Sequence(), 0)
			if err != nil {
				return err
			}
			printSummary(written, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&charset, "charset", "c", "alphanumeric", "character set (numbers, letters, alphanumeric)")
	cmd.Flags().IntVarP(&minLen, "min", "m", 2, "minimum domain length")
	cmd.Flags().IntVarP(&maxLen, "max", "M", 4, "maximum domain length")
	cmd.Flags().IntVarP(&length, "length", "l", 0, "exact domain length (sets both min and max)")
	cmd.Flags().StringVar(&hyphenMode, "hyphen-mode", "with", "hyphen handling (with, without, only)")
	cmd.Flags().StringVar(&tld, "tld", "lt", "top-level domain to append")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path")
	cmd.Flags().BoolVarP(&estimateOnly, "estimate-only", "e", false, "only estimate the count, do not generate")

	return cmd
}

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

func newMarkovCmd(cfg *domenai.Config) *cobra.Command {
	var (
		input        string
		order        int
		minLen       int
		maxLen       int
		count        int
		minFrequency int
		tld          string
		output       string
	)

	cmd := &cobra.Command{
		Use:   "markov",
		Short: "Markov chain domain generation from a training corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cfg.MarkovOptions()
			if cmd.Flags().Changed("order") {
				opts = append(opts, domenai.WithOrder(order))
			}
			if cmd.Flags().Changed("min") || cmd.Flags().Changed("max") {
				opts = append(opts, domenai.WithMarkovLengthRange(minLen, maxLen))
			}
			if cmd.Flags().Changed("count") {
				opts = append(opts, domenai.WithCount(count))
			}
			if cmd.Flags().Changed("min-frequency") {
				opts = append(opts, domenai.WithMinFrequency(minFrequency))
			}
			if cmd.Flags().Changed("tld") {
				opts = append(opts, domenai.WithMarkovTLD(tld))
			}

			fmt.Printf("Training Markov model on %s...\n", input)
			model, err := domenai.NewMarkov(input, opts...)
			if err != nil {
				return err
			}

			fmt.Printf("Training complete: %d unique samples, %d states, %d start states\n",
				model.TrainingSize(), model.States(), model.StartStates())

			if output == "" {
				stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
				output = outputPath("markov", stem,
					fmt.Sprintf("o%d", model.Order()), tld)
			}

			fmt.Printf("Generating up to %d domains to: %s\n", model.Estimate(), output)
			written, err := domenai.WriteBatches(output, model.Generate(), 0)
			if err != nil {
				return err
			}
			if written < model.Estimate() {
				fmt.Printf("Attempt budget exhausted after %d unique domains\n", written)
			}
			printSummary(written, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "training corpus file (one word/domain per line)")
	cmd.Flags().IntVar(&order, "order", 3, "n-gram order")
	cmd.Flags().IntVarP(&minLen, "min", "m", 2, "minimum generated length")
	cmd.Flags().IntVarP(&maxLen, "max", "M", 8, "maximum generated length")
	cmd.Flags().IntVarP(&count, "count", "n", 10000, "number of domains to generate")
	cmd.Flags().IntVar(&minFrequency, "min-frequency", 2, "minimum n-gram frequency kept in the model")
	cmd.Flags().StringVar(&tld, "tld", "lt", "top-level domain to append")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/domenai/src/domenai"
)

func newCleanupCmd(cfg *domenai.Config) *cobra.Command {
	var (
		input           string
		output          string
		errorsPath      string
		errorsXLSX      string
		tld             string
		allowSubdomains bool
		allowOtherTLDs  bool
		removees        string
		removeOutput    string
	)

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Clean and normalize a domain list",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := domenai.ReadLines(input)
			if err != nil {
				return err
			}

			opts, err := cfg.ValidatorOptions()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("tld") {
				opts = append(opts, domenai.WithTargetTLD(tld))
			}
			if cmd.Flags().Changed("allow-subdomains") {
				opts = append(opts, domenai.WithAllowSubdomains(allowSubdomains))
			}
			if cmd.Flags().Changed("allow-other-tlds") {
				opts = append(opts, domenai.WithAllowOtherTLDs(allowOtherTLDs))
			}

			result := domenai.CleanLines(lines, domenai.NewValidator(opts...))

			stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
			if output == "" {
				output = filepath.Join("assets", "output", "cleanup_"+stem+".txt")
			}
			if errorsPath == "" {
				errorsPath = strings.TrimSuffix(output, filepath.Ext(output)) + ".errors.txt"
			}

			written, err := domenai.WriteBatches(output, domenai.SliceSequence(result.Domains), 0)
			if err != nil {
				return err
			}
			fmt.Printf("Cleaned %d unique domains to %s\n", written, output)
			fmt.Printf("Processed %d non-empty lines\n", result.Processed)

			if result.Skipped > 0 {
				ef, err := os.Create(errorsPath)
				if err != nil {
					return err
				}
				if err := domenai.WriteRejectionLog(ef, result.Rejections); err != nil {
					ef.Close()
					return err
				}
				if err := ef.Close(); err != nil {
					return err
				}
				fmt.Printf("Skipped %d lines; see %s for details\n", result.Skipped, errorsPath)
			}

			if errorsXLSX != "" {
				if err := domenai.WriteRejectionWorkbook(errorsXLSX, result.Rejections); err != nil {
					return err
				}
				fmt.Printf("Rejection workbook written to %s\n", errorsXLSX)
			}

			if removees != "" {
				removeLines, err := domenai.ReadLines(removees)
				if err != nil {
					return err
				}
				kept, removed := domenai.RemoveDomains(result.Domains, removeLines)

				if removeOutput == "" {
					removeStem := strings.TrimSuffix(filepath.Base(removees), filepath.Ext(removees))
					removeOutput = strings.TrimSuffix(output, filepath.Ext(output)) + "_minus_" + removeStem + ".txt"
				}
				if _, err := domenai.WriteBatches(removeOutput, domenai.SliceSequence(kept), 0); err != nil {
					return err
				}
				fmt.Printf("Removed %d domains using %s\n", removed, removees)
				fmt.Printf("Kept %d domains -> %s\n", len(kept), removeOutput)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input file (one domain per line)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path")
	cmd.Flags().StringVarP(&errorsPath, "errors", "e", "", "error log file path")
	cmd.Flags().StringVar(&errorsXLSX, "errors-xlsx", "", "optional rejection workbook (.xlsx) path")
	cmd.Flags().StringVar(&tld, "tld", "lt", "target TLD to enforce")
	cmd.Flags().BoolVar(&allowSubdomains, "allow-subdomains", false, "allow subdomains for non-governmental domains")
	cmd.Flags().BoolVar(&allowOtherTLDs, "allow-other-tlds", false, "accept any TLD instead of enforcing --tld only")
	cmd.Flags().StringVarP(&removees, "removees", "r", "", "optional file of domains to remove from the cleaned output")
	cmd.Flags().StringVar(&removeOutput, "remove-output", "", "output file path after removal")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

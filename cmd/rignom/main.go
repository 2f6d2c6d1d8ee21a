/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package main provides the rignom binary entry point: a command-line
// checker, parser and generator for rig node names.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"dirpx.dev/rignom/rigcore/model"
	"dirpx.dev/rignom/rigcore/model/name"
	"dirpx.dev/rignom/rigcore/model/suffix"
	"github.com/spf13/cobra"
)

const (
	Version = "0.1.0"
	appName = "rignom"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Rig nomenclature checker and generator",
		Long: `Rignom parses, validates and generates rig node names of the form

  {side}_{basename}{context}_{freeSpace}_{suffix}

such as "l_armPosition_ctl" or "c_root_grp". Suffixes resolve against a
versioned registry of node types and purposes.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(logLevel)
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(validateCmd())
	cmd.AddCommand(parseCmd())
	cmd.AddCommand(buildCmd())
	cmd.AddCommand(suffixesCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (suffix dataset %s)\n", appName, Version, suffix.DatasetVersion())
		},
	})

	return cmd
}

func configureLogging(logLevel string) {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

func validateCmd() *cobra.Command {
	var (
		class     string
		maxLength int
	)

	cmd := &cobra.Command{
		Use:   "validate [names...]",
		Short: "Check names against the nomenclature rules",
		Long: `Validate checks each name against the full rule set and prints every
violation, not just the first. Names come from the arguments, or from
stdin one per line when no arguments are given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			expectation, err := name.ParseClassExpectation(class)
			if err != nil {
				return err
			}

			checker := name.Checker{Class: expectation}
			if maxLength > 0 {
				checker.Limits = name.Limits{MaxNameLength: maxLength}
			}

			names := args
			if len(names) == 0 {
				names, err = readLines(cmd.InOrStdin())
				if err != nil {
					return err
				}
			}

			invalid := 0
			for _, n := range names {
				res := checker.Check(n)
				if res.IsValid() {
					fmt.Fprintf(cmd.OutOrStdout(), "ok\t%s\n", n)
					continue
				}
				invalid++
				for _, v := range res.Violations {
					fmt.Fprintf(cmd.OutOrStdout(), "fail\t%s\t%v\n", n, v)
				}
			}

			if invalid > 0 {
				return fmt.Errorf("%d of %d names invalid", invalid, len(names))
			}
			slog.Debug("all names valid", "count", len(names))
			return nil
		},
	}

	cmd.Flags().StringVar(&class, "class", "any", "Expected object class (any, dag, nondag)")
	cmd.Flags().IntVar(&maxLength, "max-length", 0, "Maximum name length (default 100)")

	return cmd
}

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <name>",
		Short: "Decompose a name into its fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := name.Parse(args[0])
			if err != nil {
				return err
			}

			data, err := model.ToJSON(&n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func buildCmd() *cobra.Command {
	var (
		side      string
		basename  string
		freeSpace string
		suffixArg string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate a name from structured fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedSide, err := name.ParseSide(side)
			if err != nil {
				return err
			}

			n := name.Name{
				Side:      parsedSide,
				Basename:  name.Basename(basename),
				FreeSpace: name.FreeSpace(freeSpace),
				Suffix:    suffix.Code(suffixArg),
			}

			built, err := n.Build()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), built)
			return nil
		},
	}

	cmd.Flags().StringVar(&side, "side", "u", "Side letter or word (l, r, c, u)")
	cmd.Flags().StringVar(&basename, "basename", "", "Basename block (required)")
	cmd.Flags().StringVar(&freeSpace, "free-space", "", "Optional free-space token")
	cmd.Flags().StringVar(&suffixArg, "suffix", "", "Suffix code (required)")
	_ = cmd.MarkFlagRequired("basename")
	_ = cmd.MarkFlagRequired("suffix")

	return cmd
}

func suffixesCmd() *cobra.Command {
	var showVersion bool

	cmd := &cobra.Command{
		Use:   "suffixes",
		Short: "List the suffix registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if showVersion {
				fmt.Fprintf(out, "dataset %s\n", suffix.DatasetVersion())
			}
			for _, e := range suffix.Default().Entries() {
				fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", e.Code, e.Category, e.Class, e.Kind)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showVersion, "version", false, "Print the dataset version first")

	return cmd
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

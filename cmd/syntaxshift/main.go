// Copyright (C) 2025 Dyne.org foundation
// designed, written and maintained by Denis Roio <jaromil@dyne.org>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"syntaxshift/internal/config"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var (
	cfgPath   string
	debugMode bool
	logFile   string
)

var rootCmd = &cobra.Command{
	Use:   "syntaxshift [-]",
	Short: "Cross-platform file and directory command interpreter",
	Long: `syntaxshift reads simple file and directory commands, checks them, and
runs the matching native command for the host operating system.
Pass "-" or pipe input on stdin to read commands without a terminal.`,
	Args:    cobra.MaximumNArgs(1),
	Version: Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		batch := !term.IsTerminal(int(os.Stdin.Fd()))
		if len(args) == 1 {
			if args[0] != "-" {
				return fmt.Errorf("unexpected argument %q", args[0])
			}
			batch = true
		}

		logger, closer, err := initLogger(debugMode, logFile)
		if err != nil {
			return err
		}
		if closer != nil {
			defer closer.Close()
		}
		logger.Info().Msg("syntaxshift starting")

		s, err := loadSession(afero.NewOsFs(), cfgPath, logger)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to start session")
			return err
		}

		if batch {
			err = runBatch(s, os.Stdin, cmd.OutOrStdout(), logger)
		} else {
			err = runInteractive(s, logger)
		}
		logger.Info().Msg("Session ended")
		return err
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config.yaml into the config directory.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		path, err := config.Initialize(afero.NewOsFs(), cfgPath)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "directory holding config.yaml")
	rootCmd.PersistentFlags().BoolVarP(&debugMode, "debug", "d", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "append logs to this file")
	rootCmd.AddCommand(initCmd)
}

func main() {
	cobra.CheckErr(rootCmd.Execute())
}

func initLogger(debug bool, logFilePath string) (zerolog.Logger, io.Closer, error) {
	// Set log level
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// Configure output
	var output io.Writer
	var closer io.Closer
	if logFilePath != "" {
		// Log to file only
		file, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
		closer = file
	} else {
		// No logging to console by default - use io.Discard
		output = io.Discard
	}

	// Create logger with timestamp
	return zerolog.New(output).With().Timestamp().Logger(), closer, nil
}

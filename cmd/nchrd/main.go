// Copyright (c) 2026 NCHRD
// NCHRD Console - training and placement administration console
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface for the NCHRD console using
// the Cobra library. It defines the root command, subcommands (like login,
// students, report), flags, and the main entry point for execution.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nchrd/console/internal/api"
	"github.com/nchrd/console/internal/config"
	"github.com/nchrd/console/internal/i18n"
	"github.com/nchrd/console/internal/logging"
	"github.com/nchrd/console/internal/session"
	"github.com/nchrd/console/internal/tui"
)

var version = "dev" // this will be set by the linker

var (
	cfgFile string
	cfg     config.Config
	sess    *session.Store
	client  api.Client
)

// main is the entry point of the application.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		// The error is already printed by Cobra on failure.
		os.Exit(1)
	}
}

// newRootCmd creates and configures a new root cobra command. This function
// is used to create the main application command as well as fresh instances
// for isolated testing.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nchrd",
		Short: "NCHRD console is a terminal client for the training administration backend.",
		Long: `NCHRD console manages students, training companies, evaluations,
training days, system users and attendance reports against the NCHRD
REST backend. Credentials are stored per user after a successful login.

Running without a subcommand will launch the interactive TUI.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			var explicit *string
			if cfgFile != "" {
				explicit = &cfgFile
			}
			cfg, err = config.LoadConfig(cmd, explicit)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			i18n.Init(cfg.Language)
			logging.SetDebug(cfg.Debug)

			path, err := session.DefaultPath()
			if err != nil {
				return err
			}
			sess, err = session.Open(path)
			if err != nil {
				return fmt.Errorf("opening session store: %w", err)
			}

			client, err = api.NewHTTP(cfg.API.BaseURL, sess)
			if err != nil {
				return fmt.Errorf("building API client: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(client, sess)
		},
	}

	cmd.AddCommand(newLoginCmd())
	cmd.AddCommand(newLogoutCmd())
	cmd.AddCommand(newPasswdCmd())
	cmd.AddCommand(newStudentsCmd())
	cmd.AddCommand(newCompaniesCmd())
	cmd.AddCommand(newEvaluationsCmd())
	cmd.AddCommand(newTrainingDaysCmd())
	cmd.AddCommand(newUsersCmd())
	cmd.AddCommand(newNotificationsCmd())
	cmd.AddCommand(newReportCmd())

	cmd.Version = version

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/nchrd/nchrd.yaml)")
	cmd.PersistentFlags().String("api.base_url", "", "base URL of the NCHRD API")
	cmd.PersistentFlags().String("language", "", `console language ("en", "ar")`)
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	return cmd
}

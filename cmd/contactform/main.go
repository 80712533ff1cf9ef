// Contactform is a terminal contact form for a personal portfolio backend.
//
// It collects a name, an email address and a message, checks them locally,
// and posts them as multipart form data to the backend's /send_email
// endpoint, showing the backend's answer as a success or error status.
//
// Usage:
//
//	contactform [command] [flags]
//
// Running without arguments opens the interactive form.
// See 'contactform --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/contactform/internal/config"
	"github.com/muurk/contactform/internal/logging"
	"github.com/muurk/contactform/internal/version"
)

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Global flags
var (
	configPath string
	endpoint   string
	logLevel   string
	logFile    string
)

// cfg is loaded before any command runs
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "contactform",
	Short: "Portfolio contact form",
	Long: `A terminal contact form for a portfolio backend.

Fill in your name, email and message and send them to the backend's
/send_email endpoint. Empty fields and malformed email addresses are
rejected before anything is sent.

If no command is specified, the interactive form opens.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Initialize(logLevel, logFile); err != nil {
			return err
		}

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if endpoint != "" {
			loaded.Endpoint.BaseURL = endpoint
		}
		cfg = loaded
		return nil
	},
	RunE: runForm,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: OS config dir)")
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "Backend base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); silent when empty")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file instead of stdout")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("contactform %s\n", version.Full())
	},
}

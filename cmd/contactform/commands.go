package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/muurk/contactform/internal/config"
	"github.com/muurk/contactform/internal/contact"
	"github.com/muurk/contactform/internal/logging"
	"github.com/muurk/contactform/internal/transport"
	"github.com/muurk/contactform/internal/tui"
	"github.com/muurk/contactform/internal/ui"
)

// Command flags
var (
	sendName     string
	sendEmail    string
	sendMessage  string
	checkTimeout time.Duration
	forceInit    bool
)

func init() {
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

// newClient builds a transport client from the loaded configuration
func newClient() *transport.Client {
	client := transport.NewClient(cfg.Endpoint.BaseURL)
	client.Path = cfg.Endpoint.Path
	client.SetFields(cfg.FieldNames())
	client.SetTimeout(cfg.Endpoint.Timeout)
	return client
}

// signalContext returns a context cancelled on Ctrl+C
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// checkFormLogging refuses console logging while the form owns the terminal
func checkFormLogging(logFile string) error {
	if logging.Enabled() && logFile == "" {
		return errors.New("logging is enabled but --log-file is not set; the interactive form needs the terminal, so logs must go to a file")
	}
	return nil
}

func runForm(cmd *cobra.Command, args []string) error {
	if err := checkFormLogging(logFile); err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	form := contact.NewForm(cfg.UI.SubmitLabel)
	if _, err := contact.Attach(form, form, newClient(), contact.WithHideDelay(cfg.UI.HideDelay)); err != nil {
		return err
	}

	return tui.Run(ctx, form)
}

// sendCmd submits the form without the interactive UI
var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a message without the interactive form",
	Long: `Send a contact message directly from the command line.

The same checks as the interactive form apply: all three fields are
required and the email must look like name@domain.tld. The backend's
answer is printed and the command exits non-zero unless the message
was accepted.`,
	Example: `  # Send a message
  contactform send --name Ana --email ana@example.com --message "Hola"

  # Send to a specific backend
  contactform send --endpoint https://portfolio.example.com \
    --name Ana --email ana@example.com --message "Hola"`,
	RunE: runSend,
}

func init() {
	sendCmd.Flags().StringVar(&sendName, "name", "", "Your name")
	sendCmd.Flags().StringVar(&sendEmail, "email", "", "Your email address")
	sendCmd.Flags().StringVar(&sendMessage, "message", "", "The message to send")
}

func runSend(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	form := contact.NewForm(cfg.UI.SubmitLabel)
	if _, err := contact.Attach(form, form, newClient(), contact.WithHideDelay(0)); err != nil {
		return err
	}

	form.Fill(contact.Submission{Name: sendName, Email: sendEmail, Message: sendMessage})
	form.Submit(ctx)

	status := form.Snapshot().Status
	ui.NewPrinter(cmd.OutOrStdout()).PrintStatus(status)

	if status.Kind != contact.KindSuccess {
		return errors.New("message was not sent")
	}
	return nil
}

// checkCmd verifies the backend is reachable
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the backend is reachable",
	Long: `Send a GET request to the configured backend origin and report
whether it answered. Nothing is submitted.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 10*time.Second, "How long to wait for the backend")
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	client := newClient()
	fmt.Fprintf(cmd.OutOrStdout(), "Checking %s ...\n", client.BaseURL)

	if err := client.Ping(ctx); err != nil {
		return fmt.Errorf("%s: %w", contact.GetShortErrorMessage(err), err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Backend reachable, submissions go to %s\n", ui.SuccessMarker, client.URL())
	return nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with the current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil && !forceInit {
			return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
		}
		if err := cfg.Save(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}

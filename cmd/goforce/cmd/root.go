// Package cmd implements the goforce command-line interface, a thin
// inspection tool over the client library.
package cmd

import (
	"encoding/json"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/goforce/goforce"
	"github.com/goforce/goforce/pkg/connection"
	zerologger "github.com/goforce/goforce/pkg/logger/zerolog"
)

var rootCmd = &cobra.Command{
	Use:   "goforce",
	Short: "Typed access to a Perforce server through the p4 client",
	Long: `goforce runs p4 commands in tagged-output mode and prints the decoded
results as JSON, one document per line.

Connection settings default to the standard P4PORT, P4USER and P4CLIENT
environment variables and can be overridden per invocation.`,
	SilenceUsage: true,
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringP("port", "p", "", "server address (default $P4PORT)")
	flags.StringP("user", "u", "", "username (default $P4USER)")
	flags.StringP("client", "c", "", "client workspace (default $P4CLIENT)")
	flags.Bool("json", false, "decode p4 output as line-delimited JSON instead of marshal")
	flags.BoolP("verbose", "v", false, "log executed commands")
}

// newP4 builds a client from the environment overlaid with the persistent
// flags of cmd.
func newP4(cmd *cobra.Command) (*goforce.P4, error) {
	config := connection.FromEnv()

	flags := cmd.Flags()
	if port, _ := flags.GetString("port"); port != "" {
		config.Port = port
	}
	if user, _ := flags.GetString("user"); user != "" {
		config.User = user
	}
	if client, _ := flags.GetString("client"); client != "" {
		config.Client = client
	}
	if jsonOut, _ := flags.GetBool("json"); jsonOut {
		config.Format = connection.FormatJSON
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if verbose, _ := flags.GetBool("verbose"); !verbose {
		logger = logger.Level(zerolog.InfoLevel)
	}
	config.Logger = zerologger.From(logger)

	return goforce.New(config)
}

// emit prints one result as a JSON document on standard output.
func emit(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

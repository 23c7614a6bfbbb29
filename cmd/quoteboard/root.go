package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	profile string
	envFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "quoteboard",
		Short:         "Submit and browse quotes from the quote storage service",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return loadEnvFile(opts.envFile)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.profile, "profile", "p", "",
		"config profile read from configs/<profile>.yaml (default $APP_ENVIRONMENT or local)")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env",
		"dotenv file loaded before configuration; missing files are ignored")

	cmd.AddCommand(
		newServeCmd(opts),
		newTUICmd(opts),
		newVersionCmd(),
	)

	return cmd
}

// resolveProfile is called after the env file is loaded so the file can
// set APP_ENVIRONMENT.
func (o *rootOptions) resolveProfile() string {
	if o.profile != "" {
		return o.profile
	}

	if env := os.Getenv("APP_ENVIRONMENT"); env != "" {
		return env
	}

	return "local"
}

// loadEnvFile exports the variables of path without overriding ones
// already set in the environment.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("loading env file %s: %w", path, err)
	}

	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "quoteboard %s (commit %s, built %s)\n", Version, Commit, BuildTime)
		},
	}
}

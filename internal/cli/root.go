// Package cli contains all definitions pertaining to the user-visible
// commands of the summit-token client. It provides the viper/cobra setup.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/egeuysall/summit-token/helpers/tracelog"
	"github.com/egeuysall/summit-token/internal/cli/cmd"
	"github.com/egeuysall/summit-token/internal/cli/config"
	"github.com/egeuysall/summit-token/internal/cli/settings"
	"github.com/egeuysall/summit-token/internal/cli/usercmd"
	"github.com/egeuysall/summit-token/internal/duration"
	"github.com/egeuysall/summit-token/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// dotEnvFile is looked up in the working directory
const dotEnvFile = ".env"

// NewSummitTokenCLI returns the main `summit-token` cli.
func NewSummitTokenCLI() *cobra.Command {
	rootCmd := cmd.NewTokenCmd(newTokenService)
	rootCmd.Version = version.Version
	rootCmd.SilenceErrors = true
	rootCmd.SetVersionTemplate("summit-token version {{.Version}}\n")

	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		return settings.LoadDotEnv(dotEnvFile)
	}

	pf := rootCmd.PersistentFlags()
	argToEnv := map[string]string{}

	settingsLocation, err := settings.DefaultLocation()
	if err != nil {
		settingsLocation = ""
	}
	pf.StringP("settings-file", "", settingsLocation, "set path of settings file")
	viper.BindPFlag("settings-file", pf.Lookup("settings-file"))
	argToEnv["settings-file"] = "SUMMIT_SETTINGS"

	tracelog.LoggerFlags(pf, argToEnv)
	duration.Flags(pf, argToEnv)

	pf.IntP("verbosity", "", 0, "Only print progress messages at or above this level (0 or 1, default 0)")
	viper.BindPFlag("verbosity", pf.Lookup("verbosity"))
	argToEnv["verbosity"] = "VERBOSITY"

	pf.BoolP("skip-ssl-verification", "", false, "Skip the verification of TLS certificates")
	viper.BindPFlag("skip-ssl-verification", pf.Lookup("skip-ssl-verification"))
	argToEnv["skip-ssl-verification"] = "SKIP_SSL_VERIFICATION"

	pf.BoolP("no-colors", "", false, "Suppress colorized output")
	viper.BindPFlag("no-colors", pf.Lookup("no-colors"))
	argToEnv["no-colors"] = "SUMMIT_NO_COLORS"

	pf.StringP("auth-url", "", "", "base URL of the auth service (default "+settings.DefaultAuthURL+")")
	viper.BindPFlag("auth-url", pf.Lookup("auth-url"))
	argToEnv["auth-url"] = "SUMMIT_AUTH_URL"

	pf.StringP("anon-key", "", "", "public API key of the auth service")
	viper.BindPFlag("anon-key", pf.Lookup("anon-key"))
	argToEnv["anon-key"] = "SUMMIT_ANON_KEY"

	pf.StringP("api-url", "", "", "base URL of the Summit API used in the sample command (default "+settings.DefaultAPIURL+")")
	viper.BindPFlag("api-url", pf.Lookup("api-url"))
	argToEnv["api-url"] = "SUMMIT_API_URL"

	config.AddEnvToUsage(rootCmd, argToEnv)

	return rootCmd
}

// Execute executes the root command.
// This is called by main.main(). It only needs to happen once.
func Execute() {
	os.Exit(Run(NewSummitTokenCLI(), os.Stdout))
}

// Run executes the command and returns the exit status. Errors reaching
// cobra are printed to out and exit 1, sign in failures are reported by the
// command itself.
func Run(rootCmd *cobra.Command, out io.Writer) int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(out, err)
		return 1
	}
	return 0
}

func newTokenService() (cmd.TokenService, error) {
	client, err := usercmd.New()
	if err != nil {
		return nil, err
	}
	return client, nil
}

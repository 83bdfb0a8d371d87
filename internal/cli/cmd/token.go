// Copyright © 2021 - 2023 SUSE LLC
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//     http://www.apache.org/licenses/LICENSE-2.0
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -header ../../../LICENSE_HEADER . TokenService
type TokenService interface {
	Token(ctx context.Context, email, password string, showClaims bool) string
}

// TokenServiceFactory creates the service once the flags are parsed,
// settings depend on them
type TokenServiceFactory func() (TokenService, error)

// UsageError is returned when the command is called with the wrong arguments
type UsageError struct {
	Use string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("Usage: %s\nExample: summit-token test@example.com mypassword", e.Use)
}

// NewTokenCmd returns the 'summit-token' command, signing in with email and password
func NewTokenCmd(newService TokenServiceFactory) *cobra.Command {
	tokenCmd := &cobra.Command{
		Use:   "summit-token <email> <password>",
		Short: "Get a JWT token for testing the Summit API",
		Long: `summit-token signs in to the Summit auth service with email and password and prints the access token, ready to be exported for API calls.
Use - as password to type it without echo.
Flags go before the email, everything after it is taken as is, so passwords may start with a dash. Put -- before an email starting with a dash.`,
		SilenceUsage: true,
		Args:         tokenArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newService()
			if err != nil {
				return err
			}

			service.Token(cmd.Context(), args[0], args[1], viper.GetBool("show-claims"))
			return nil
		},
	}

	// the password is never parsed as a flag
	tokenCmd.Flags().SetInterspersed(false)

	tokenCmd.Flags().Bool("show-claims", false, "print the claims of the access token")
	bindFlag(tokenCmd, "show-claims")

	return tokenCmd
}

// tokenArgs accepts exactly an email and a password, both non-empty
func tokenArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return &UsageError{Use: cmd.Use}
	}
	for _, arg := range args {
		if arg == "" {
			return &UsageError{Use: cmd.Use}
		}
	}
	return nil
}

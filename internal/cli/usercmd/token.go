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

package usercmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/egeuysall/summit-token/helpers/authtoken"
	authapi "github.com/egeuysall/summit-token/pkg/api/auth/v1/client"
	"github.com/egeuysall/summit-token/pkg/api/auth/v1/models"
	"github.com/pkg/errors"
)

// PasswordPrompt as password argument asks for the password on the terminal
const PasswordPrompt = "-"

// ProfileEndpoint is the endpoint of the local API used in the sample command
const ProfileEndpoint = "v1/profile"

const ruleWidth = 80

var commonIssues = []string{
	"Wrong email or password",
	"User email not confirmed",
	"Need to get the anon key from the Supabase dashboard",
}

// Token signs in with the email and password and reports the access token,
// ready to be exported. Every failure is reported on the UI and yields an
// empty token.
func (c *TokenClient) Token(ctx context.Context, email, password string, showClaims bool) string {
	log := c.Log.WithName("Token").WithValues("email", email)
	log.Info("start")
	defer log.Info("return")

	if password == PasswordPrompt {
		var err error
		password, err = c.askPassword()
		if err != nil {
			c.reportFailure(errors.Wrap(err, "error while asking for password"))
			return ""
		}
	}

	c.ui.Note().Compact().Msgf("Attempting to sign in to %s...", c.Settings.AuthURL)

	if c.Settings.AnonKey == "" {
		c.ui.Exclamation().Msg("No anon key configured, set SUMMIT_ANON_KEY or anon-key in the settings file")
	}

	if c.Settings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Settings.Timeout)
		defer cancel()
	}

	progress := c.ui.Progress("Signing in")
	response, err := c.API.SignInWithPassword(ctx, models.Credentials{
		Email:    email,
		Password: password,
	})
	progress.Stop()

	if err != nil {
		log.V(1).Info("sign in failed", "error", err.Error())
		c.reportFailure(err)
		return ""
	}

	c.reportToken(response, showClaims)

	return response.AccessToken
}

func (c *TokenClient) reportToken(response *models.AuthResponse, showClaims bool) {
	token := response.OAuth2Token(c.Now())
	rule := strings.Repeat("━", ruleWidth)

	c.ui.Success().Msg("Successfully authenticated!")

	c.ui.Normal().Msg("Your JWT Token:")
	c.ui.Raw(fmt.Sprintf("%s\n%s\n%s\n", rule, token.AccessToken, rule))

	details := c.ui.Normal().
		WithStringValue("User ID", response.UserID()).
		WithStringValue("Email", response.UserEmail())
	if !token.Expiry.IsZero() {
		details = details.WithStringValue("Expires", token.Expiry.Format(time.RFC1123))
	}
	details.Msg("")

	c.ui.Normal().Msg("Export as environment variable:")
	c.ui.Raw(fmt.Sprintf("export JWT_TOKEN='%s'\n", token.AccessToken))

	c.ui.Normal().Msg("Test with:")
	c.ui.Raw(fmt.Sprintf("curl %s/%s -H \"Authorization: %s $JWT_TOKEN\"\n",
		c.Settings.APIURL, ProfileEndpoint, token.Type()))

	if showClaims {
		c.reportClaims(token.AccessToken)
	}
}

func (c *TokenClient) reportClaims(token string) {
	claims, err := authtoken.Inspect(token)
	if err != nil {
		c.ui.Exclamation().Msgf("Cannot show the token claims: %s", err.Error())
		return
	}

	msg := c.ui.Normal().WithTable("CLAIM", "VALUE")
	for _, row := range claims.Rows() {
		msg = msg.WithTableRow(row...)
	}
	msg.Msg("Token claims:")
}

func (c *TokenClient) reportFailure(err error) {
	apiErr := &authapi.APIError{}
	missing := &authapi.MissingTokenError{}

	switch {
	case errors.As(err, &apiErr):
		c.ui.Problem().Msgf("Authentication failed! (HTTP %d)", apiErr.StatusCode)
		c.ui.Raw(fmt.Sprintf("\nError: %s\n", apiErr.Description()))

		c.ui.Normal().Msg("Common issues:")
		for _, issue := range commonIssues {
			c.ui.Raw(fmt.Sprintf("  - %s\n", issue))
		}

	case errors.As(err, &missing):
		c.ui.Problem().Msg("No access token in response")
		c.ui.Raw(indentJSON(missing.Body) + "\n")

	default:
		c.ui.Problem().Msgf("Error: %s", err.Error())
	}
}

func (c *TokenClient) askPassword() (string, error) {
	var password string

	msg := c.ui.Normal().Compact()
	for password == "" {
		msg.KeepLine().Msg("Password: ")

		bytesPassword, err := c.ReadPassword()
		if err != nil {
			return "", err
		}

		password = strings.TrimSpace(string(bytesPassword))
		msg = c.ui.Normal()
	}
	c.ui.Normal().Compact().Msg("")

	return password, nil
}

// indentJSON re-indents a JSON body, anything else is returned as is
func indentJSON(body []byte) string {
	var out bytes.Buffer
	if err := json.Indent(&out, body, "", "  "); err != nil {
		return string(body)
	}
	return out.String()
}

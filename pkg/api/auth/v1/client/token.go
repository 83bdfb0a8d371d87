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

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/egeuysall/summit-token/pkg/api/auth/v1/models"
	"github.com/pkg/errors"
)

const (
	// TokenEndpoint issues access tokens
	TokenEndpoint = "auth/v1/token"
	// PasswordGrant selects the email and password grant of the token endpoint
	PasswordGrant = "password"
)

// MissingTokenError is returned when a successful response carries no access token
type MissingTokenError struct {
	Body []byte
}

func (e *MissingTokenError) Error() string {
	return "no access token in response"
}

// SignInWithPassword exchanges email and password for an access token
func (c *Client) SignInWithPassword(ctx context.Context, credentials models.Credentials) (*models.AuthResponse, error) {
	log := c.log.WithName("SignInWithPassword").WithValues("email", credentials.Email)
	log.Info("start")
	defer log.Info("return")

	endpoint := fmt.Sprintf("%s?grant_type=%s", TokenEndpoint, PasswordGrant)

	body, err := c.Do(ctx, http.MethodPost, endpoint, credentials)
	if err != nil {
		return nil, err
	}

	response := &models.AuthResponse{}
	if err := json.Unmarshal(body, response); err != nil {
		return nil, errors.Wrap(err, "decoding JSON response")
	}

	if !response.HasAccessToken() {
		return nil, &MissingTokenError{Body: body}
	}

	return response, nil
}

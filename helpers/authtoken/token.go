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

// Package authtoken inspects the access tokens handed out by the auth service.
// Tokens are decoded without checking the signature, the signing secret never
// leaves the auth service.
package authtoken

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

// Claims are the claims carried by a password grant access token
type Claims struct {
	jwt.RegisteredClaims
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
	SessionID string `json:"session_id,omitempty"`
	AAL       string `json:"aal,omitempty"`
}

// Inspect decodes the claims of the token
func Inspect(token string) (*Claims, error) {
	claims := &Claims{}

	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		return nil, errors.Wrap(err, "decoding access token")
	}

	return claims, nil
}

// Rows returns the non-empty claims as KEY/VALUE pairs, in a stable order
func (c *Claims) Rows() [][]string {
	rows := [][]string{}
	add := func(key, value string) {
		if value != "" {
			rows = append(rows, []string{key, value})
		}
	}

	add("sub", c.Subject)
	add("email", c.Email)
	add("role", c.Role)
	add("aud", strings.Join(c.Audience, ","))
	add("iss", c.Issuer)
	add("session_id", c.SessionID)
	add("aal", c.AAL)
	add("iat", formatDate(c.IssuedAt))
	add("exp", formatDate(c.ExpiresAt))

	return rows
}

func formatDate(date *jwt.NumericDate) string {
	if date == nil {
		return ""
	}
	return date.UTC().Format(time.RFC3339)
}

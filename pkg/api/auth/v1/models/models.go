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

// Package models contains the types exchanged with the token endpoint of the auth service
package models

import (
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/oauth2"
)

// NotAvailable is shown in place of user details the auth service did not return
const NotAvailable = "N/A"

// Credentials are sent to the token endpoint for the password grant
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User is the subset of the auth user we report
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// AuthResponse is the response of a successful password grant
type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type,omitempty"`
	ExpiresIn    int64  `json:"expires_in,omitempty"`
	ExpiresAt    int64  `json:"expires_at,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
	User         *User  `json:"user,omitempty"`
}

// HasAccessToken returns true if the response carries a usable access token
func (r AuthResponse) HasAccessToken() bool {
	return r.AccessToken != ""
}

// UserID returns the id of the signed in user, or NotAvailable
func (r AuthResponse) UserID() string {
	if r.User == nil || r.User.ID == "" {
		return NotAvailable
	}
	return r.User.ID
}

// UserEmail returns the email of the signed in user, or NotAvailable
func (r AuthResponse) UserEmail() string {
	if r.User == nil || r.User.Email == "" {
		return NotAvailable
	}
	return r.User.Email
}

// OAuth2Token converts the response into an oauth2 token. The expiry prefers
// the absolute expires_at over expires_in, which is relative to now. It stays
// zero if the response carries neither.
func (r AuthResponse) OAuth2Token(now time.Time) *oauth2.Token {
	token := &oauth2.Token{
		AccessToken:  r.AccessToken,
		TokenType:    r.TokenType,
		RefreshToken: r.RefreshToken,
	}

	switch {
	case r.ExpiresAt > 0:
		token.Expiry = time.Unix(r.ExpiresAt, 0)
	case r.ExpiresIn > 0:
		token.Expiry = now.Add(time.Duration(r.ExpiresIn) * time.Second)
	}

	return token
}

// ErrorResponse is the error body of the auth service. Older deployments
// report `error` and `error_description`, newer ones `msg` and `error_code`.
type ErrorResponse struct {
	Error            string `json:"error,omitempty"`
	ErrorDescription string `json:"error_description,omitempty"`
	ErrorCode        string `json:"error_code,omitempty"`
	Code             string `json:"code,omitempty"`
	Msg              string `json:"msg,omitempty"`
}

// UnmarshalJSON accepts any JSON type for the fields, codes come as numbers
// or strings depending on the deployment. Only non-objects fail.
func (e *ErrorResponse) UnmarshalJSON(data []byte) error {
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*e = ErrorResponse{
		Error:            fieldString(fields["error"]),
		ErrorDescription: fieldString(fields["error_description"]),
		ErrorCode:        fieldString(fields["error_code"]),
		Code:             fieldString(fields["code"]),
		Msg:              fieldString(fields["msg"]),
	}
	return nil
}

// Description returns the human readable part of the error, if any
func (e ErrorResponse) Description() string {
	if e.ErrorDescription != "" {
		return e.ErrorDescription
	}
	return e.Msg
}

func fieldString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case map[string]any, []any:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	default:
		return fmt.Sprint(v)
	}
}

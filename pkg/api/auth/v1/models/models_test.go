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

package models_test

import (
	"encoding/json"
	"time"

	"github.com/egeuysall/summit-token/pkg/api/auth/v1/models"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("AuthResponse", func() {

	It("reports the user details", func() {
		var response models.AuthResponse
		err := json.Unmarshal([]byte(`{"access_token": "abc123", "user": {"id": "u1", "email": "a@b.com"}}`), &response)
		Expect(err).ToNot(HaveOccurred())

		Expect(response.HasAccessToken()).To(BeTrue())
		Expect(response.UserID()).To(Equal("u1"))
		Expect(response.UserEmail()).To(Equal("a@b.com"))
	})

	It("falls back to N/A for missing user details", func() {
		response := models.AuthResponse{AccessToken: "abc123"}
		Expect(response.UserID()).To(Equal(models.NotAvailable))
		Expect(response.UserEmail()).To(Equal(models.NotAvailable))

		response.User = &models.User{ID: "u1"}
		Expect(response.UserID()).To(Equal("u1"))
		Expect(response.UserEmail()).To(Equal(models.NotAvailable))
	})

	It("treats an empty access token as absent", func() {
		Expect(models.AuthResponse{}.HasAccessToken()).To(BeFalse())
	})

	Describe("OAuth2Token", func() {
		now := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)

		It("prefers expires_at", func() {
			token := models.AuthResponse{
				AccessToken: "abc123",
				TokenType:   "bearer",
				ExpiresIn:   3600,
				ExpiresAt:   now.Add(30 * time.Minute).Unix(),
			}.OAuth2Token(now)

			Expect(token.AccessToken).To(Equal("abc123"))
			Expect(token.Type()).To(Equal("Bearer"))
			Expect(token.Expiry).To(BeTemporally("==", now.Add(30*time.Minute)))
		})

		It("uses expires_in relative to now", func() {
			token := models.AuthResponse{AccessToken: "abc123", ExpiresIn: 3600}.OAuth2Token(now)
			Expect(token.Expiry).To(BeTemporally("==", now.Add(time.Hour)))
		})

		It("leaves the expiry unset otherwise", func() {
			token := models.AuthResponse{AccessToken: "abc123"}.OAuth2Token(now)
			Expect(token.Expiry.IsZero()).To(BeTrue())
			Expect(token.Type()).To(Equal("Bearer"))
		})
	})
})

var _ = Describe("ErrorResponse", func() {
	It("prefers error_description over msg", func() {
		e := models.ErrorResponse{ErrorDescription: "Invalid login credentials", Msg: "other"}
		Expect(e.Description()).To(Equal("Invalid login credentials"))
	})

	It("falls back to msg", func() {
		e := models.ErrorResponse{Msg: "Email not confirmed", ErrorCode: "email_not_confirmed"}
		Expect(e.Description()).To(Equal("Email not confirmed"))
	})

	It("decodes fields of any JSON type", func() {
		var e models.ErrorResponse
		err := json.Unmarshal([]byte(`{"error_description": "x", "error_code": 401, "code": 400, "msg": null}`), &e)
		Expect(err).ToNot(HaveOccurred())

		Expect(e.Description()).To(Equal("x"))
		Expect(e.ErrorCode).To(Equal("401"))
		Expect(e.Code).To(Equal("400"))
		Expect(e.Msg).To(BeEmpty())
	})

	It("fails to decode anything but an object", func() {
		var e models.ErrorResponse
		Expect(json.Unmarshal([]byte(`["Invalid login credentials"]`), &e)).ToNot(Succeed())
	})

	It("is empty without either", func() {
		Expect(models.ErrorResponse{Error: "invalid_grant"}.Description()).To(BeEmpty())
	})
})

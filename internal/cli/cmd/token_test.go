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

package cmd_test

import (
	"bytes"
	"context"
	"errors"

	"github.com/egeuysall/summit-token/internal/cli/cmd"
	"github.com/egeuysall/summit-token/internal/cli/cmd/cmdfakes"
	"github.com/spf13/cobra"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Command 'summit-token'", func() {

	var (
		mockTokenService *cmdfakes.FakeTokenService
		factoryCalls     int
		tokenCmd         func() *cobra.Command
	)

	BeforeEach(func() {
		mockTokenService = &cmdfakes.FakeTokenService{}
		factoryCalls = 0

		tokenCmd = func() *cobra.Command {
			return cmd.NewTokenCmd(func() (cmd.TokenService, error) {
				factoryCalls++
				return mockTokenService, nil
			})
		}
	})

	When("called with an email and a password", func() {

		It("will call the token service with the right values", func() {
			mockTokenService.TokenStub = func(_ context.Context, email, password string, showClaims bool) string {
				Expect(email).To(Equal("test@example.com"))
				Expect(password).To(Equal("mypassword"))
				Expect(showClaims).To(BeFalse())
				return "abc123"
			}

			args := []string{"test@example.com", "mypassword"}
			_, _, err := executeCmd(tokenCmd(), args, nil, nil)
			Expect(err).ToNot(HaveOccurred())

			Expect(factoryCalls).To(Equal(1))
			Expect(mockTokenService.TokenCallCount()).To(Equal(1))
		})

		It("will succeed even when no token was returned", func() {
			mockTokenService.TokenReturns("")

			args := []string{"test@example.com", "wrong"}
			_, _, err := executeCmd(tokenCmd(), args, nil, nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(mockTokenService.TokenCallCount()).To(Equal(1))
		})

		It("will ask for the claims with the flag", func() {
			args := []string{"--show-claims", "test@example.com", "mypassword"}
			_, _, err := executeCmd(tokenCmd(), args, nil, nil)
			Expect(err).ToNot(HaveOccurred())

			Expect(mockTokenService.TokenCallCount()).To(Equal(1))
			_, _, _, showClaims := mockTokenService.TokenArgsForCall(0)
			Expect(showClaims).To(BeTrue())
		})
	})

	DescribeTable("called with arguments looking like flags",
		func(args []string, email, password string, showClaims bool) {
			_, _, err := executeCmd(tokenCmd(), args, &bytes.Buffer{}, &bytes.Buffer{})
			Expect(err).ToNot(HaveOccurred())

			Expect(mockTokenService.TokenCallCount()).To(Equal(1))
			_, gotEmail, gotPassword, gotShowClaims := mockTokenService.TokenArgsForCall(0)
			Expect(gotEmail).To(Equal(email))
			Expect(gotPassword).To(Equal(password))
			Expect(gotShowClaims).To(Equal(showClaims))
		},
		Entry("a password with a dash", []string{"a@b.com", "-s3cret"}, "a@b.com", "-s3cret", false),
		Entry("a password with two dashes", []string{"a@b.com", "--s3cret"}, "a@b.com", "--s3cret", false),
		Entry("a password named like a flag", []string{"a@b.com", "--show-claims"}, "a@b.com", "--show-claims", false),
		Entry("a flag before the email", []string{"--show-claims", "a@b.com", "-s3cret"}, "a@b.com", "-s3cret", true),
		Entry("an email with a dash after --", []string{"--", "-a@b.com", "pw"}, "-a@b.com", "pw", false),
		Entry("the password prompt", []string{"a@b.com", "-"}, "a@b.com", "-", false),
	)

	DescribeTable("called with the wrong arguments",
		func(args []string) {
			output := &bytes.Buffer{}
			outputErr := &bytes.Buffer{}

			_, _, err := executeCmd(tokenCmd(), args, output, outputErr)
			Expect(err).To(HaveOccurred())

			usageErr := &cmd.UsageError{}
			Expect(errors.As(err, &usageErr)).To(BeTrue())
			Expect(err.Error()).To(Equal("Usage: summit-token <email> <password>\nExample: summit-token test@example.com mypassword"))

			Expect(factoryCalls).To(BeZero())
			Expect(mockTokenService.TokenCallCount()).To(BeZero())
		},
		Entry("no arguments", []string{}),
		Entry("only the email", []string{"test@example.com"}),
		Entry("too many arguments", []string{"test@example.com", "mypassword", "extra"}),
		Entry("an empty password", []string{"test@example.com", ""}),
		Entry("an empty email", []string{"", "mypassword"}),
	)

	When("the service cannot be created", func() {
		It("will return the error", func() {
			failingCmd := cmd.NewTokenCmd(func() (cmd.TokenService, error) {
				return nil, errors.New("error loading settings")
			})

			args := []string{"test@example.com", "mypassword"}
			_, _, err := executeCmd(failingCmd, args, &bytes.Buffer{}, &bytes.Buffer{})
			Expect(err).To(MatchError("error loading settings"))
		})
	})
})

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

package settings_test

import (
	"os"
	"path/filepath"
	"time"

	"github.com/egeuysall/summit-token/internal/cli/settings"
	"github.com/spf13/viper"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Settings", func() {

	var dir string

	setenv := func(key, value string) {
		old, had := os.LookupEnv(key)
		Expect(os.Setenv(key, value)).To(Succeed())
		DeferCleanup(func() {
			if had {
				os.Setenv(key, old)
			} else {
				os.Unsetenv(key)
			}
		})
	}

	setflag := func(key string, value any) {
		viper.Set(key, value)
		DeferCleanup(func() {
			viper.Set(key, nil)
		})
	}

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	When("no settings file exists", func() {
		It("uses the defaults", func() {
			cfg, err := settings.LoadFrom(filepath.Join(dir, "missing.yaml"))
			Expect(err).ToNot(HaveOccurred())

			Expect(cfg.AuthURL).To(Equal(settings.DefaultAuthURL))
			Expect(cfg.APIURL).To(Equal(settings.DefaultAPIURL))
			Expect(cfg.AnonKey).To(BeEmpty())
			Expect(cfg.Location).To(BeEmpty())
			Expect(cfg.Timeout).To(BeZero())
		})
	})

	When("a settings file exists", func() {
		var file string

		BeforeEach(func() {
			file = filepath.Join(dir, "settings.yaml")
			content := "auth-url: https://example.supabase.co/\nanon-key: file-key\napi-url: localhost:9090\n"
			Expect(os.WriteFile(file, []byte(content), 0600)).To(Succeed())
		})

		It("reads and normalizes its values", func() {
			cfg, err := settings.LoadFrom(file)
			Expect(err).ToNot(HaveOccurred())

			Expect(cfg.Location).To(Equal(file))
			Expect(cfg.AuthURL).To(Equal("https://example.supabase.co"))
			Expect(cfg.AnonKey).To(Equal("file-key"))
			Expect(cfg.APIURL).To(Equal("https://localhost:9090"))
		})

		It("lets the environment override the file", func() {
			setenv("SUPABASE_ANON_KEY", "env-key")
			setenv("SUMMIT_API_URL", "http://127.0.0.1:8080")

			cfg, err := settings.LoadFrom(file)
			Expect(err).ToNot(HaveOccurred())

			Expect(cfg.AnonKey).To(Equal("env-key"))
			Expect(cfg.APIURL).To(Equal("http://127.0.0.1:8080"))
		})

		It("lets the command line override everything", func() {
			setenv("SUMMIT_ANON_KEY", "env-key")
			setflag("anon-key", "flag-key")
			setflag("auth-url", "http://localhost:54321")
			setflag("timeout", 5*time.Second)

			cfg, err := settings.LoadFrom(file)
			Expect(err).ToNot(HaveOccurred())

			Expect(cfg.AnonKey).To(Equal("flag-key"))
			Expect(cfg.AuthURL).To(Equal("http://localhost:54321"))
			Expect(cfg.Timeout).To(Equal(5 * time.Second))
		})

		It("never shows the anon key in its string form", func() {
			cfg, err := settings.LoadFrom(file)
			Expect(err).ToNot(HaveOccurred())

			Expect(cfg.String()).ToNot(ContainSubstring("file-key"))
			Expect(cfg.String()).To(ContainSubstring("anon_key=(****)"))
		})
	})

	When("a URL has no scheme", func() {
		It("falls back to https for host and port", func() {
			setenv("SUMMIT_AUTH_URL", "127.0.0.1:54321")
			setenv("SUMMIT_API_URL", "localhost:8080/")

			cfg, err := settings.LoadFrom("")
			Expect(err).ToNot(HaveOccurred())

			Expect(cfg.AuthURL).To(Equal("https://127.0.0.1:54321"))
			Expect(cfg.APIURL).To(Equal("https://localhost:8080"))
		})

		It("keeps an explicit http scheme", func() {
			setenv("SUMMIT_AUTH_URL", "http://127.0.0.1:54321")

			cfg, err := settings.LoadFrom("")
			Expect(err).ToNot(HaveOccurred())
			Expect(cfg.AuthURL).To(Equal("http://127.0.0.1:54321"))
		})

		It("fails without a host", func() {
			setenv("SUMMIT_AUTH_URL", "unix:///var/run/auth.sock")

			_, err := settings.LoadFrom("")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("invalid auth-url"))
		})
	})

	When("the settings file is broken", func() {
		It("fails", func() {
			file := filepath.Join(dir, "settings.yaml")
			Expect(os.WriteFile(file, []byte("auth-url: [unclosed"), 0600)).To(Succeed())

			_, err := settings.LoadFrom(file)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("failed to read settings file"))
		})
	})

	Describe("LoadDotEnv", func() {
		It("ignores a missing file", func() {
			Expect(settings.LoadDotEnv(filepath.Join(dir, ".env"))).To(Succeed())
		})

		It("loads the variables without overriding the environment", func() {
			setenv("SUMMIT_AUTH_URL", "https://already.set")
			setenv("SUMMIT_ANON_KEY", "")
			Expect(os.Unsetenv("SUMMIT_ANON_KEY")).To(Succeed())

			file := filepath.Join(dir, ".env")
			content := "SUMMIT_AUTH_URL=https://from.dotenv\nSUMMIT_ANON_KEY=dotenv-key\n"
			Expect(os.WriteFile(file, []byte(content), 0600)).To(Succeed())

			Expect(settings.LoadDotEnv(file)).To(Succeed())

			Expect(os.Getenv("SUMMIT_AUTH_URL")).To(Equal("https://already.set"))
			Expect(os.Getenv("SUMMIT_ANON_KEY")).To(Equal("dotenv-key"))
		})
	})
})

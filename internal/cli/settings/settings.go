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

// Package settings resolves where and how summit-token talks to the auth service.
// Values come from the settings file, the environment (including a local .env
// file) and the command line, the latter winning.
package settings

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/fatih/color"
	"github.com/go-logr/logr"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/egeuysall/summit-token/helpers/mask"
	"github.com/egeuysall/summit-token/helpers/tracelog"
	"github.com/egeuysall/summit-token/internal/duration"
)

var (
	defaultSettingsFilePath = "summit/settings.yaml"
)

const (
	// DefaultAuthURL is the hosted auth project used when nothing else is configured
	DefaultAuthURL = "https://bkibkpjtdokwvksdivbw.supabase.co"
	// DefaultAPIURL is the local Summit API the printed sample command targets
	DefaultAPIURL = "http://localhost:8080"
)

// overridable keys, set through the command line flags of the same name
var flagKeys = []string{"auth-url", "anon-key", "api-url"}

// Settings represents the summit-token settings
type Settings struct {
	AuthURL string `mapstructure:"auth-url"` // Base URL of the hosted auth project
	AnonKey string `mapstructure:"anon-key"` // Public API key of the auth project
	APIURL  string `mapstructure:"api-url"`  // Local API used in the sample command
	Colors  bool   `mapstructure:"colors"`

	SkipSSLVerification bool          `mapstructure:"-"`
	Timeout             time.Duration `mapstructure:"-"`

	Location string `mapstructure:"-"` // Origin of data, file which was loaded

	log logr.Logger
}

// DefaultLocation returns the standard location for the settings file
func DefaultLocation() (string, error) {
	return xdg.ConfigFile(defaultSettingsFilePath)
}

// LoadDotEnv loads the variables of a .env file into the environment.
// Variables already present in the environment are kept. A missing file is not an error.
func LoadDotEnv(file string) error {
	exists, err := fileExists(file)
	if err != nil || !exists {
		return err
	}

	if err := godotenv.Load(file); err != nil {
		return errors.Wrapf(err, "failed to load env file '%s'", file)
	}
	return nil
}

// Load loads the settings from the default location
func Load() (*Settings, error) {
	return LoadFrom(location())
}

// LoadFrom loads the settings from a specific file
func LoadFrom(file string) (*Settings, error) {
	cfg := new(Settings)

	log := tracelog.NewLogger().WithName(fmt.Sprintf("Settings-%p", cfg)).V(3)
	log.Info("Loading", "from", file)

	v := viper.New()

	v.SetConfigType("yaml")
	v.SetConfigFile(file)
	v.SetEnvPrefix("SUMMIT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("auth-url", DefaultAuthURL)
	v.SetDefault("anon-key", "")
	v.SetDefault("api-url", DefaultAPIURL)
	v.SetDefault("colors", true)

	// the names used by the Supabase dashboard and the backend's .env
	if err := v.BindEnv("auth-url", "SUMMIT_AUTH_URL", "SUPABASE_PROJECT_URL"); err != nil {
		return nil, errors.Wrap(err, "failed to bind auth-url")
	}
	if err := v.BindEnv("anon-key", "SUMMIT_ANON_KEY", "SUPABASE_ANON_KEY"); err != nil {
		return nil, errors.Wrap(err, "failed to bind anon-key")
	}

	if file != "" {
		settingsExists, err := fileExists(file)
		if err != nil {
			return nil, errors.Wrapf(err, "filesystem error")
		}

		if settingsExists {
			cfg.Location = file
			if err := v.ReadInConfig(); err != nil {
				return nil, errors.Wrapf(err, "failed to read settings file '%s'", file)
			}
		}
	}
	v.AutomaticEnv()

	for _, key := range flagKeys {
		if value := viper.GetString(key); value != "" {
			v.Set(key, value)
		}
	}

	err := v.Unmarshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal settings file")
	}

	cfg.AuthURL, err = normalizeURL(cfg.AuthURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid auth-url")
	}
	cfg.APIURL, err = normalizeURL(cfg.APIURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid api-url")
	}

	cfg.SkipSSLVerification = viper.GetBool("skip-ssl-verification")
	cfg.Timeout = duration.Request()

	if !cfg.Colors || viper.GetBool("no-colors") {
		color.NoColor = true
	}

	cfg.log = log
	log.Info("Loaded", "value", cfg.String())
	return cfg, nil
}

// String generates a string representation of the settings (for debugging)
func (c *Settings) String() string {
	return fmt.Sprintf(
		"auth_url=(%s), anon_key=(%s), api_url=(%s), color=(%v), skip_ssl=(%v), timeout=(%s), @(%s)",
		c.AuthURL, mask.Value(c.AnonKey), c.APIURL, c.Colors, c.SkipSSLVerification, c.Timeout, c.Location)
}

// normalizeURL drops trailing slashes and falls back to https if the scheme is missing
func normalizeURL(address string) (string, error) {
	address = strings.TrimRight(strings.TrimSpace(address), "/")
	if address == "" {
		return "", errors.New("empty URL")
	}

	if !strings.Contains(address, "://") {
		address = fmt.Sprintf("https://%s", address)
	}

	parsedURL, err := url.Parse(address)
	if err != nil {
		return "", err
	}
	if parsedURL.Host == "" {
		return "", errors.Errorf("no host in URL '%s'", address)
	}

	return address, nil
}

func location() string {
	return viper.GetString("settings-file")
}

func fileExists(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return true, nil
	} else if os.IsNotExist(err) {
		return false, nil
	} else {
		return false, errors.Wrapf(err, "failed to stat file '%s'", path)
	}
}

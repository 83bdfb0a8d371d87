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

// Package client connects to the token endpoint of the hosted auth service
package client

import (
	"crypto/tls"
	"net/http"

	"github.com/egeuysall/summit-token/helpers/tracelog"
	"github.com/egeuysall/summit-token/internal/cli/settings"
	"github.com/go-logr/logr"
)

// Client provides functionality for talking to the auth service
type Client struct {
	log           logr.Logger
	Settings      *settings.Settings
	HttpClient *http.Client
}

// New returns a new auth service client
func New(cfg *settings.Settings) *Client {
	log := tracelog.NewLogger().WithName("AuthApiClient").V(3)

	httpClient := &http.Client{}
	if cfg.SkipSSLVerification {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true, // nolint:gosec // Controlled by user option
		}
		httpClient.Transport = transport
	}

	return &Client{
		log:        log,
		Settings:   cfg,
		HttpClient: httpClient,
	}
}

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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/egeuysall/summit-token/helpers/mask"
	"github.com/egeuysall/summit-token/internal/version"
	"github.com/egeuysall/summit-token/pkg/api/auth/v1/models"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
)

// APIKeyHeader carries the public key of the auth project
const APIKeyHeader = "apikey"

// APIError is returned when the auth service answers with an error status
type APIError struct {
	StatusCode int
	Err        *models.ErrorResponse // nil if the body was not a JSON error
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Description())
}

// Description returns the description reported by the auth service,
// falling back to the raw response body
func (e *APIError) Description() string {
	if e.Err != nil {
		if description := e.Err.Description(); description != "" {
			return description
		}
	}
	return e.Body
}

// Do sends the request and returns the body of a successful response.
// Responses with an error status are returned as *APIError.
func (c *Client) Do(ctx context.Context, method, endpoint string, requestBody any) ([]byte, error) {
	url := fmt.Sprintf("%s/%s", c.Settings.AuthURL, endpoint)

	c.log.V(1).Info("sending "+method+" request", "endpoint", endpoint, "url", url)

	var bodyBytes []byte
	if requestBody != nil {
		b, err := json.Marshal(requestBody)
		if err != nil {
			return nil, errors.Wrap(err, "encoding JSON requestBody")
		}
		bodyBytes = b
	}

	request, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, errors.Wrap(err, "building request")
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("User-Agent", "summit-token/"+version.Version)
	request.Header.Set(APIKeyHeader, c.Settings.AnonKey)

	reqLog := requestLogger(c.log, request, mask.JSON(bodyBytes, "password"))

	httpResponse, err := c.HttpClient.Do(request)
	if err != nil {
		return nil, errors.Wrap(err, "making the request")
	}
	reqLog.V(1).Info("request finished")

	// the server returned an error
	if httpResponse.StatusCode >= http.StatusBadRequest {
		return nil, handleError(c.log, httpResponse)
	}

	return handleResponse(c.log, httpResponse)
}

func handleError(logger logr.Logger, response *http.Response) error {
	defer response.Body.Close()

	bodyBytes, err := io.ReadAll(response.Body)

	if logger.V(5).Enabled() {
		logger = logger.WithValues("body", string(bodyBytes))
	}

	if err != nil {
		logger.V(1).Info("failed to read response body", "error", err.Error())
		return errors.Wrap(err, "reading response body")
	}

	apiError := &APIError{
		StatusCode: response.StatusCode,
		Body:       strings.TrimSpace(string(bodyBytes)),
	}

	var responseErr models.ErrorResponse
	if err := json.Unmarshal(bodyBytes, &responseErr); err != nil {
		logger.V(1).Info("error response is not JSON", "error", err.Error())
	} else {
		apiError.Err = &responseErr
	}

	logger.V(1).Info("response is not StatusOK: " + apiError.Error())

	return apiError
}

func handleResponse(logger logr.Logger, httpResponse *http.Response) ([]byte, error) {
	defer httpResponse.Body.Close()

	bodyBytes, err := io.ReadAll(httpResponse.Body)
	respLog := responseLogger(logger, httpResponse, mask.JSON(bodyBytes, "access_token", "refresh_token"))
	if err != nil {
		respLog.V(1).Info("failed to read response body", "error", err.Error())
		return nil, errors.Wrap(err, "reading response body")
	}

	respLog.V(1).Info("response received")

	return bodyBytes, nil
}

func requestLogger(log logr.Logger, request *http.Request, body string) logr.Logger {
	if log.V(5).Enabled() {
		log = log.WithValues(
			"method", request.Method,
			"uri", request.URL.String(),
			"body", body,
			"header", mask.Header(request.Header),
		)
	}
	return log
}

func responseLogger(log logr.Logger, response *http.Response, body string) logr.Logger {
	log = log.WithValues("status", response.StatusCode)

	if log.V(5).Enabled() {
		log = log.WithValues(
			"body", body,
			"header", response.Header,
		)
		if response.TLS != nil {
			log = log.WithValues("TLSServerName", response.TLS.ServerName)
		}
	}

	return log
}

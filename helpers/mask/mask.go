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

// Package mask hides secrets before they reach trace output.
package mask

import (
	"encoding/json"
	"net/http"
)

const masked = "****"

// sensitiveHeaders are masked by Header
var sensitiveHeaders = []string{"Apikey", "Authorization"}

// Value masks any non-empty value
func Value(value string) string {
	if value == "" {
		return ""
	}
	return masked
}

// Header returns a copy of the header where the credentials carrying entries are masked
func Header(header http.Header) http.Header {
	if header == nil {
		return nil
	}
	result := header.Clone()
	for _, key := range sensitiveHeaders {
		if values, ok := result[key]; ok {
			for i := range values {
				values[i] = Value(values[i])
			}
		}
	}
	return result
}

// JSON masks the named top level fields of a JSON object. Anything that is not
// a JSON object is returned unchanged.
func JSON(body []byte, fields ...string) string {
	var object map[string]any
	if err := json.Unmarshal(body, &object); err != nil {
		return string(body)
	}

	for _, field := range fields {
		if v, ok := object[field]; ok {
			if s, isString := v.(string); isString {
				object[field] = Value(s)
			} else {
				object[field] = masked
			}
		}
	}

	b, err := json.Marshal(object)
	if err != nil {
		return string(body)
	}
	return string(b)
}

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

// Package duration defines the timeouts used by summit-token.
package duration

import (
	"time"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Flags adds to viper flags
func Flags(pf *flag.FlagSet, argToEnv map[string]string) {
	pf.DurationP("timeout", "", 0, "Give up on the sign in request after this duration (0, the default, waits for the platform timeout)")
	viper.BindPFlag("timeout", pf.Lookup("timeout"))
	argToEnv["timeout"] = "SUMMIT_TIMEOUT"
}

// Request returns the duration to wait for the auth service to answer.
// Zero means no bound.
func Request() time.Duration {
	timeout := viper.GetDuration("timeout")
	if timeout < 0 {
		return 0
	}
	return timeout
}

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

package termui

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/kyokomi/emoji"
)

// SpinProgress is a spinner based progress
type SpinProgress struct {
	s *spinner.Spinner
}

const spinSet = 14
const spinTime = 100 * time.Millisecond

// NewSpinProgress creates a progress spinning on the given output, and starts it
func NewSpinProgress(output io.Writer, message string) *SpinProgress {
	s := &SpinProgress{
		s: spinner.New(spinner.CharSets[spinSet], spinTime, spinner.WithWriter(output)),
	}
	s.s.Suffix = suffix(message)
	s.s.Start()
	return s
}

func (p *SpinProgress) Start() {
	p.s.Start()
}

func (p *SpinProgress) Stop() {
	p.s.Stop()
}

func (p *SpinProgress) ChangeMessagef(message string, a ...interface{}) {
	p.ChangeMessage(fmt.Sprintf(message, a...))
}

func (p *SpinProgress) ChangeMessage(message string) {
	p.s.Lock()
	p.s.Suffix = suffix(message)
	p.s.Unlock()
}

func suffix(message string) string {
	return emoji.Sprint(" " + message + " :zzz:")
}

// silentProgress is used when nobody is watching the terminal
type silentProgress struct{}

func (silentProgress) Start()                                          {}
func (silentProgress) Stop()                                           {}
func (silentProgress) ChangeMessage(message string)                    {}
func (silentProgress) ChangeMessagef(message string, a ...interface{}) {}

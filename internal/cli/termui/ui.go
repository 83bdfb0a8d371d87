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
	"os"

	"github.com/fatih/color"
	"github.com/kyokomi/emoji"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
)

type msgType int

const (
	normal msgType = iota
	exclamation
	problem
	note
	success
)

// UI contains functionality for dealing with the user
// on the CLI
type UI struct {
	output    io.Writer
	verbosity int  // Verbosity level for user messages.
	terminal  bool // Output is an interactive terminal.
}

// Message represents a piece of information we want displayed to the user
type Message struct {
	ui           *UI // For access to requested verbosity.
	level        int
	msgType      msgType
	compact      bool
	keepline     bool
	values       []namedValue
	tableHeaders [][]string
	tableData    [][][]string
}

type namedValue struct {
	name  string
	value string
}

// Progress abstracts the operations for a progress meter and/or
// spinner used to indicate the cli waiting for some background
// operation to complete.
type Progress interface {
	Start()
	Stop()
	ChangeMessage(message string)
	ChangeMessagef(message string, a ...interface{})
}

// NewUI creates a new UI
func NewUI() *UI {
	return &UI{
		output:    colorable.NewColorableStdout(),
		verbosity: verbosity(),
		terminal:  isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
	}
}

func (u *UI) Raw(message string) {
	fmt.Fprintf(u.output, "%s", message)
}

// SetOutput redirects all messages. A nil output restores stdout.
func (u *UI) SetOutput(output io.Writer) {
	if output == nil {
		u.output = colorable.NewColorableStdout()
		u.terminal = isatty.IsTerminal(os.Stdout.Fd())
		return
	}
	u.output = output
	u.terminal = false
	if f, ok := output.(*os.File); ok {
		u.terminal = isatty.IsTerminal(f.Fd())
	}
}

// Progress creates, configures, and returns an active progress
// meter. It accepts a fixed message. Outside of a terminal the meter
// stays silent, so that redirected output only holds the report.
func (u *UI) Progress(message string) Progress {
	if !u.terminal || u.verbosity < 0 {
		return silentProgress{}
	}
	return NewSpinProgress(u.output, message)
}

// Normal returns a UIMessage that prints a normal message
func (u *UI) Normal() *Message {
	return u.newMessage(normal)
}

// Exclamation returns a UIMessage that prints an exclamation message
func (u *UI) Exclamation() *Message {
	return u.newMessage(exclamation)
}

// Note returns a UIMessage that prints a note message
func (u *UI) Note() *Message {
	return u.newMessage(note)
}

// Success returns a UIMessage that prints a success message
func (u *UI) Success() *Message {
	return u.newMessage(success)
}

// Problem returns a Message that prints a message that describes a problem
func (u *UI) Problem() *Message {
	return u.newMessage(problem)
}

func (u *UI) newMessage(t msgType) *Message {
	return &Message{
		ui:      u,
		msgType: t,
	}
}

// Msgf prints a formatted message on the CLI
func (u *Message) Msgf(message string, a ...interface{}) {
	u.Msg(fmt.Sprintf(message, a...))
}

// Msg prints a message on the CLI, resolving emoji as it goes
func (u *Message) Msg(message string) {
	// Ignore messages higher than the requested verbosity.
	if u.level > u.ui.verbosity {
		return
	}

	message = emoji.Sprint(message)

	// Print a newline before starting output, if not compact.
	if message != "" && !u.compact {
		fmt.Fprintln(u.ui.output)
	}

	if !u.keepline {
		message += "\n"
	}

	switch u.msgType {
	case normal:
	case exclamation:
		message = emoji.Sprintf(":warning: %s", message)
		message = color.YellowString(message)
	case note:
		message = emoji.Sprintf(":closed_lock_with_key: %s", message)
		message = color.BlueString(message)
	case success:
		message = emoji.Sprintf(":white_check_mark: %s", message)
		message = color.GreenString(message)
	case problem:
		message = emoji.Sprintf(":cross_mark: %s", message)
		message = color.RedString(message)
	}

	fmt.Fprintf(u.ui.output, "%s", message)

	for _, v := range u.values {
		fmt.Fprintf(u.ui.output, "%s: %s\n", emoji.Sprint(v.name), color.GreenString("%s", v.value))
	}

	for idx, headers := range u.tableHeaders {
		table := tablewriter.NewWriter(u.ui.output)
		table.SetHeader(headers)
		table.SetAutoWrapText(false)
		table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
		table.SetCenterSeparator("|")

		if idx < len(u.tableData) {
			table.AppendBulk(u.tableData[idx])
		}

		table.Render()
	}
}

// V incrementally modifies the message level.
func (u *Message) V(delta int) *Message {
	u.level += delta
	return u
}

// KeepLine disables the printing of a newline after a message output
func (u *Message) KeepLine() *Message {
	u.keepline = true
	return u
}

// Compact disables the printing of a newline before starting output
func (u *Message) Compact() *Message {
	u.compact = true
	return u
}

// WithStringValue adds a string value to be printed in the message
func (u *Message) WithStringValue(name string, value string) *Message {
	u.values = append(u.values, namedValue{name: name, value: value})
	return u
}

// verbosity returns the verbosity argument
func verbosity() int {
	return viper.GetInt("verbosity")
}

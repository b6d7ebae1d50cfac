// Copyright 2014 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/google/ltfountain/cmd/decode"
	"github.com/google/ltfountain/cmd/encode"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "ltfountain",
	Short: "Encode and decode files with a Luby Transform rateless erasure code",
	Long: `ltfountain splits a file into fixed-size source symbols, emits an
unbounded stream of XORed encoded packets, and reconstructs the original
file from any sufficient subset of those packets via belief-propagation
peeling.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(); it only needs to happen
// once.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing ltfountain: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.AddCommand(encode.NewEncodeCommand())
	RootCmd.AddCommand(decode.NewDecodeCommand())
}

// SPDX-License-Identifier: EPL-2.0

// Command txac encodes audio files into the TXAC text codec, decodes them
// back to WAV and plays them.
//
// Usage:
//
//	txac [flags] <command> [args]
//
// Commands:
//
//	encode  - convert an audio file to TXAC
//	decode  - convert a TXAC file to WAV
//	play    - play a TXAC file with keyboard seeking
//	info    - show header and amplitude statistics
//	config  - show or create the configuration file
package main

import (
	"fmt"
	"os"

	"github.com/ik5/txac/cmd/txac/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

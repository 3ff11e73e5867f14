// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/txac"
)

var infoCmd = &cobra.Command{
	Use:   "info <input> [sampleRate] [channels]",
	Short: "Show TXAC file details",
	Args:  cobra.RangeArgs(1, 3),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg, err := getConfig()
	if err != nil {
		return err
	}
	stream, pcm, err := loadStream(cmd, args[0], args[1:], cfg)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "File:        %s\n", args[0])
	if h := stream.Header; h != nil {
		fmt.Fprintf(w, "Header:      v%d, %.1f dB, %d symbols\n", h.Version, h.GainDB, h.Symbols)
	} else {
		fmt.Fprintf(w, "Header:      none (raw)\n")
	}
	fmt.Fprintf(w, "Format:      %d Hz, %d channel(s)\n", pcm.SampleRate, pcm.Channels)
	fmt.Fprintf(w, "Samples:     %d\n", len(pcm.Samples))
	fmt.Fprintf(w, "Duration:    %s\n", pcm.Duration().Round(time.Millisecond))

	st := stream.Stats
	fmt.Fprintf(w, "Tokens:      %d (%d literal, %d run, %d sniper, %d dropped)\n",
		st.Tokens, st.Literals, st.Runs, st.Snipers, st.Dropped)

	amp := txac.Analyze(pcm.Samples)
	fmt.Fprintf(w, "Peak:        %d (%.1f%%)\n", amp.Peak, amp.PeakPercent)
	fmt.Fprintf(w, "Mean:        %d (%.1f%%)\n", amp.Mean, amp.MeanPercent)
	if amp.NearClipping {
		fmt.Fprintf(w, "Warning:     output is near clipping\n")
	}
	return nil
}

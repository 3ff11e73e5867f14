// SPDX-License-Identifier: EPL-2.0

// Package playback plays a decoded TXAC stream in real time.
//
// A Cursor owns the decoded samples and a read position. The audio backend
// pulls normalized samples from it through a Streamer; pausing turns the
// output into silence and reaching the end loops back to the start.
// Position and pause state are atomics, so seeks from a control goroutine
// can race with the audio callback safely.
//
//	c := playback.NewCursor(stream.Samples, 44100, 1)
//	sink, err := playback.NewSpeakerSink(44100, 0)
//	if err != nil {
//		return err
//	}
//	defer sink.Close()
//
//	cmds := make(chan playback.Command)
//	go playback.KeyCommands(ctx, os.Stdin, cmds)
//	return playback.NewPlayer(c, sink).Run(ctx, cmds)
package playback

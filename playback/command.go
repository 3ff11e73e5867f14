// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"bufio"
	"context"
	"errors"
	"io"
)

// Command is a control request for a Player.
type Command int

const (
	TogglePause Command = iota + 1
	SeekForward
	SeekBackward
	Quit
)

func (c Command) String() string {
	switch c {
	case TogglePause:
		return "toggle-pause"
	case SeekForward:
		return "seek-forward"
	case SeekBackward:
		return "seek-backward"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// keyCommand maps a key press to a command.
func keyCommand(b byte) (Command, bool) {
	switch b {
	case ' ', 'p', 'P':
		return TogglePause, true
	case 'c', 'C', '.':
		return SeekForward, true
	case 'x', 'X', ',':
		return SeekBackward, true
	// ctrl-c and ctrl-d arrive as bytes in raw mode
	case 'q', 'Q', 0x03, 0x04:
		return Quit, true
	}
	return 0, false
}

// KeyCommands reads single key presses from r and sends the matching
// commands to out. It returns after sending Quit, at the end of r, or when
// ctx is done. Unknown keys are ignored.
func KeyCommands(ctx context.Context, r io.Reader, out chan<- Command) error {
	br := bufio.NewReader(r)
	for {
		b, err := br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		cmd, ok := keyCommand(b)
		if !ok {
			continue
		}
		select {
		case out <- cmd:
		case <-ctx.Done():
			return ctx.Err()
		}
		if cmd == Quit {
			return nil
		}
	}
}

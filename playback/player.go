// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// DefaultSeekStep is the jump applied by SeekForward and SeekBackward.
const DefaultSeekStep = 5 * time.Second

// DefaultStatusInterval is how often Run logs the playing position.
const DefaultStatusInterval = time.Second

// Player connects a Cursor to a Sink and applies control commands.
type Player struct {
	cursor       *Cursor
	sink         Sink
	step         time.Duration
	status       time.Duration
	bufferFrames int
	logger       *slog.Logger
}

// Option configures a Player.
type Option func(*Player)

// WithSeekStep sets the seek jump. Non-positive values are ignored.
func WithSeekStep(d time.Duration) Option {
	return func(p *Player) {
		if d > 0 {
			p.step = d
		}
	}
}

// WithStatusInterval sets how often the position is logged. Zero disables
// status logging.
func WithStatusInterval(d time.Duration) Option {
	return func(p *Player) {
		if d >= 0 {
			p.status = d
		}
	}
}

// WithBufferFrames sets the streamer scratch size.
func WithBufferFrames(n int) Option {
	return func(p *Player) { p.bufferFrames = n }
}

func WithLogger(l *slog.Logger) Option {
	return func(p *Player) {
		if l != nil {
			p.logger = l
		}
	}
}

func NewPlayer(c *Cursor, sink Sink, opts ...Option) *Player {
	p := &Player{
		cursor:       c,
		sink:         sink,
		step:         DefaultSeekStep,
		status:       DefaultStatusInterval,
		bufferFrames: DefaultBufferFrames,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Cursor returns the cursor driven by the player.
func (p *Player) Cursor() *Cursor { return p.cursor }

// Apply executes one command and reports whether it asks to stop.
func (p *Player) Apply(cmd Command) (quit bool) {
	switch cmd {
	case TogglePause:
		paused := p.cursor.TogglePause()
		p.logger.Info("playback", "paused", paused, "at", p.cursor.Elapsed().Round(time.Millisecond))
	case SeekForward:
		p.cursor.SeekRelative(p.step.Seconds())
		p.logger.Debug("seek", "to", p.cursor.Elapsed().Round(time.Millisecond))
	case SeekBackward:
		p.cursor.SeekRelative(-p.step.Seconds())
		p.logger.Debug("seek", "to", p.cursor.Elapsed().Round(time.Millisecond))
	case Quit:
		return true
	default:
		p.logger.Warn("ignoring unknown command", "command", int(cmd))
	}
	return false
}

// Run starts the sink and applies commands until Quit arrives, cmds is
// closed or ctx is done. It does not close the sink.
func (p *Player) Run(ctx context.Context, cmds <-chan Command) error {
	if err := p.sink.Play(NewStreamer(p.cursor, p.bufferFrames)); err != nil {
		return fmt.Errorf("starting playback: %w", err)
	}
	p.logger.Info("playing",
		"sample_rate", p.cursor.SampleRate(),
		"channels", p.cursor.Channels(),
		"samples", p.cursor.Len(),
		"duration", p.cursor.Duration().Round(time.Millisecond),
	)

	var tick <-chan time.Time
	if p.status > 0 {
		t := time.NewTicker(p.status)
		defer t.Stop()
		tick = t.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd, ok := <-cmds:
			if !ok || p.Apply(cmd) {
				return nil
			}
		case <-tick:
			p.logger.Info("position",
				"elapsed", p.cursor.Elapsed().Round(100*time.Millisecond),
				"duration", p.cursor.Duration().Round(100*time.Millisecond),
				"paused", p.cursor.Paused(),
			)
		}
	}
}

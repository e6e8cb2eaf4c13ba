package bridge

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// StreamEvent is one item of a streaming execution. Exactly one terminal
// event (Exit or Err) is delivered before the channel closes, except on
// cancellation, where the channel closes with no terminal event at all.
type StreamEvent struct {
	Line string // output line, valid when Exit is false and Err is nil
	Exit bool
	Code int
	Err  error
}

// Stream opens GET /stream?command=... and decodes the newline-delimited
// pseudo-protocol: "data:" lines carry output (remainder trimmed), an
// "exit:" line carries the integer exit code and ends the stream, and any
// other non-empty line passes through as raw output. Partial lines are
// buffered across chunk boundaries; a trailing fragment without a newline is
// flushed as output when the body ends, followed by an exit-0 event.
//
// Cancelling ctx aborts the read silently: no further events, no terminal
// event, channel closed. The caller owns clearing any running state.
func (c *Client) Stream(ctx context.Context, command string) (<-chan StreamEvent, error) {
	u := c.base + "/stream?command=" + url.QueryEscape(command)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("bridge stream: %w", err)
	}
	res, err := c.stream.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bridge stream: %w", err)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		res.Body.Close()
		return nil, fmt.Errorf("bridge stream error: %d", res.StatusCode)
	}

	ch := make(chan StreamEvent)
	go func() {
		defer close(ch)
		defer res.Body.Close()
		r := bufio.NewReader(res.Body)
		for {
			line, err := r.ReadString('\n')
			if line != "" {
				trimmed := strings.TrimRight(line, "\r\n")
				switch {
				case strings.HasPrefix(trimmed, "data:"):
					c.emit(ctx, ch, StreamEvent{Line: strings.TrimSpace(trimmed[5:])})
				case strings.HasPrefix(trimmed, "exit:"):
					code, _ := strconv.Atoi(strings.TrimSpace(trimmed[5:]))
					c.emit(ctx, ch, StreamEvent{Exit: true, Code: code})
					return
				case trimmed != "":
					c.emit(ctx, ch, StreamEvent{Line: trimmed})
				}
			}
			if err != nil {
				if ctx.Err() != nil {
					return // canceled: stop silently
				}
				if err == io.EOF {
					c.emit(ctx, ch, StreamEvent{Exit: true, Code: 0})
				} else {
					c.emit(ctx, ch, StreamEvent{Err: err})
				}
				return
			}
		}
	}()
	return ch, nil
}

// emit sends ev unless ctx is already canceled, so a cancelled stream never
// surfaces trailing events.
func (c *Client) emit(ctx context.Context, ch chan<- StreamEvent, ev StreamEvent) {
	if ctx.Err() != nil {
		return
	}
	select {
	case ch <- ev:
	case <-ctx.Done():
	}
}

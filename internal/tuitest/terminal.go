package tuitest

import (
	"bytes"
	"io"
)

// capabilityResponder answers the terminal capability queries Bubble Tea
// emits on startup (cursor position, foreground and background color).
// Without these replies the program can stall waiting on the PTY.
type capabilityResponder struct {
	w   io.Writer
	buf []byte
}

func newCapabilityResponder(w io.Writer) *capabilityResponder {
	return &capabilityResponder{w: w, buf: make([]byte, 0, 128)}
}

func (cr *capabilityResponder) Process(chunk []byte) {
	cr.buf = append(cr.buf, chunk...)
	for cr.scanOnce() {
	}
	// Keep a small tail so queries split across reads are still detected.
	if len(cr.buf) > 256 {
		cr.buf = cr.buf[len(cr.buf)-64:]
	}
}

var capabilityReplies = []struct {
	query []byte
	reply []byte
}{
	{[]byte("\x1b[6n"), []byte("\x1b[1;1R")},
	{[]byte("\x1b]10;?\x07"), []byte("\x1b]10;rgb:cccc/cccc/cccc\x07")},
	{[]byte("\x1b]10;?\x1b\\"), []byte("\x1b]10;rgb:cccc/cccc/cccc\x1b\\")},
	{[]byte("\x1b]11;?\x07"), []byte("\x1b]11;rgb:0000/0000/0000\x07")},
	{[]byte("\x1b]11;?\x1b\\"), []byte("\x1b]11;rgb:0000/0000/0000\x1b\\")},
}

func (cr *capabilityResponder) scanOnce() bool {
	for _, entry := range capabilityReplies {
		idx := bytes.Index(cr.buf, entry.query)
		if idx < 0 {
			continue
		}
		cr.buf = cr.buf[idx+len(entry.query):]
		_, _ = cr.w.Write(entry.reply)
		return true
	}
	return false
}

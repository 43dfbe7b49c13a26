// Package notify delivers short-lived user-facing messages (the console's toasts).
package notify

//go:generate mockgen -source=notifier.go -destination=../../../tests/mock/notify/notifier.go -package=notifymock

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
)

type Notifier interface {
	Success(msg string)
	Error(msg string)
}

type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Success(msg string) {
	n.write("✓", msg)
}

func (n *WriterNotifier) Error(msg string) {
	n.write("✗", msg)
}

func (n *WriterNotifier) write(mark, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, _ = fmt.Fprintf(n.w, "%s %s\n", mark, msg)
}

type SlogNotifier struct {
	logger *slog.Logger
}

func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{logger: logger}
}

func (n *SlogNotifier) Success(msg string) {
	n.logger.Info(msg, "notification", "success")
}

func (n *SlogNotifier) Error(msg string) {
	n.logger.Warn(msg, "notification", "error")
}

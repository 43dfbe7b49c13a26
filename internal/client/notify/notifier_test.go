//go:build unit

package notify_test

import (
	"bytes"
	"log/slog"
	"testing"

	"seva-console/internal/client/notify"

	"github.com/stretchr/testify/assert"
)

func TestWriterNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := notify.NewWriterNotifier(&buf)

	n.Success("Expense created successfully")
	n.Error("Server error. Please try again later.")

	assert.Equal(t, "✓ Expense created successfully\n✗ Server error. Please try again later.\n", buf.String())
}

func TestSlogNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := notify.NewSlogNotifier(slog.New(slog.NewTextHandler(&buf, nil)))

	n.Success("saved")
	n.Error("failed")

	out := buf.String()
	assert.Contains(t, out, "level=INFO msg=saved notification=success")
	assert.Contains(t, out, "level=WARN msg=failed notification=error")
}

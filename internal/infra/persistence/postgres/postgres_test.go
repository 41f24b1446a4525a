package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolMonitorSample(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	current := sql.DBStats{WaitCount: 10, WaitDuration: time.Second, MaxOpenConnections: 20}
	m := &poolMonitor{
		logger: logger,
		stats:  func() sql.DBStats { return current },
		prev:   sql.DBStats{WaitCount: 10, WaitDuration: time.Second},
	}

	m.sample(context.Background())
	assert.Empty(t, buf.String(), "no new waits, nothing logged")

	current = sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 10*time.Millisecond}
	m.sample(context.Background())
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "waits=2")
	assert.Contains(t, buf.String(), "avg_wait=5ms")

	buf.Reset()
	current = sql.DBStats{WaitCount: 13, WaitDuration: time.Second + 110*time.Millisecond}
	m.sample(context.Background())
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Equal(t, current, m.prev)
}

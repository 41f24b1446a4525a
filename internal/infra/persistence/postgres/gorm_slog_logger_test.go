package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"courier/config"
	deliverycontext "courier/internal/delivery/context"
	"courier/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGormLogger(buf *bytes.Buffer, debug bool) logger.Interface {
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg)
}

func sqlFn() (string, int64) { return "SELECT 1", 1 }

func TestGormLoggerTrace(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		elapsed time.Duration
		err     error
		want    string
	}{
		{name: "failure", err: errors.New("boom"), want: "GORM query failed"},
		{name: "not found is quiet outside debug", err: gorm.ErrRecordNotFound, want: ""},
		{name: "duplicate key in debug", debug: true, err: gorm.ErrDuplicatedKey, want: "GORM query rejected"},
		{name: "slow query", elapsed: time.Second, want: "GORM slow query"},
		{name: "fast query outside debug", want: ""},
		{name: "fast query in debug", debug: true, want: "GORM query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newTestGormLogger(&buf, tt.debug)

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), sqlFn, tt.err)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), `msg="`+tt.want+`"`)
			assert.Contains(t, buf.String(), `sql="SELECT 1"`)
		})
	}
}

func TestGormLoggerUsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newTestGormLogger(&base, false)
	reqLogger := slog.New(slog.NewTextHandler(&scoped, nil)).With(slog.String("request_id", "req-9"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), sqlFn, errors.New("boom"))

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "request_id=req-9")
}

func TestConstraintDetection(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.New(`ERROR: duplicate key value (SQLSTATE 23505)`)))
	assert.True(t, isForeignKeyConstraintViolation(errors.Wrap(gorm.ErrForeignKeyViolated, "delete driver")))
	assert.True(t, isCheckConstraintViolation(errors.New(`ERROR: new row violates check constraint (SQLSTATE 23514)`)))
	assert.False(t, isUniqueConstraintViolation(nil))
	assert.False(t, isCheckConstraintViolation(gorm.ErrDuplicatedKey))
}

package log

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type name string

func (n name) String() string { return string(n) }

func TestLevelFiltering(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core), LevelWarn)

	l.Debug("dropped")
	l.Info("dropped")
	l.Warn("kept")
	l.Error("kept too")
	assert.Equal(t, 2, logs.Len())

	l.SetLevel(LevelDebug)
	assert.Equal(t, LevelDebug, l.GetLevel())
	l.Debug("now kept")
	assert.Equal(t, 3, logs.Len())
}

func TestFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core), LevelDebug).With(String("run", "r1"))

	l.Info("step",
		Int("index", 2),
		Float64("magnitude", 1.5),
		Bool("degenerate", false),
		Uint64("digest", 42),
		Duration("took", time.Millisecond),
		Stringer("vector", name("(r=1, θ=0)")),
		Error(errors.New("boom")),
		Any("extra", []int{1}),
	)

	require.Equal(t, 1, logs.Len())
	ctx := logs.All()[0].ContextMap()
	assert.Equal(t, "r1", ctx["run"])
	assert.Equal(t, int64(2), ctx["index"])
	assert.Equal(t, 1.5, ctx["magnitude"])
	assert.Equal(t, false, ctx["degenerate"])
	assert.Equal(t, uint64(42), ctx["digest"])
	assert.Equal(t, "(r=1, θ=0)", ctx["vector"])
	assert.Equal(t, "boom", ctx["error"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelInfo, ParseLevel("nonsense"))
}

func TestProvide(t *testing.T) {
	assert.NotNil(t, Provide())

	NewNop().Info("discarded")
}

package logger

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  logrus.Level
	}{
		{name: "debug level", level: "debug", want: logrus.DebugLevel},
		{name: "warn level", level: "warn", want: logrus.WarnLevel},
		{name: "uppercase level", level: "ERROR", want: logrus.ErrorLevel},
		{name: "padded level", level: " info ", want: logrus.InfoLevel},
		{name: "invalid level defaults to info", level: "loud", want: logrus.InfoLevel},
		{name: "empty level defaults to info", level: "", want: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.level))
			assert.Equal(t, tt.want, New(tt.level, &bytes.Buffer{}).Level())
		})
	}
}

func TestEntryFields(t *testing.T) {
	var buf bytes.Buffer
	log := New("debug", &buf)

	log.Debug().
		Str("rule", "class-declaration").
		Int("candidates", 1).
		Bool("matched", true).
		Strs("names", []string{"a", "b"}).
		Dur("elapsed", 1500*time.Microsecond).
		Err(errors.New("boom")).
		Msg("matched trigger")

	out := buf.String()
	assert.Contains(t, out, "matched trigger")
	assert.Contains(t, out, "rule=class-declaration")
	assert.Contains(t, out, "candidates=1")
	assert.Contains(t, out, "matched=true")
	assert.Contains(t, out, `names="a, b"`)
	assert.Contains(t, out, "elapsed=1.5")
	assert.Contains(t, out, "error=boom")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn", &buf)

	log.Debug().Msg("hidden debug")
	log.Info().Msg("hidden info")
	log.Warn().Msg("visible warning")
	log.Error().Err(nil).Msg("visible error")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible warning")
	assert.Contains(t, out, "visible error")
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	root := New("info", &buf)
	child := root.With("catalog")

	child.Info().Msg("built actions")
	root.Info().Msg("root record")

	out := buf.String()
	assert.Contains(t, out, "component=catalog")
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("component=")))
}

func TestDiscard(t *testing.T) {
	log := Discard()
	assert.NotPanics(t, func() {
		log.Error().Str("k", "v").Msg("dropped")
	})
}

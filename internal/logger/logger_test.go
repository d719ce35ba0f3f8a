package logger

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureVerbose(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	defer SetVerbose(false)

	SetVerbose(false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestLevels_WhenVerbose(t *testing.T) {
	tests := []struct {
		name string
		log  func()
		want string
	}{
		{"debug", func() { Debug("scored %d investors", 8) }, "[DEBUG] scored 8 investors\n"},
		{"info", func() { Info("matches kept: %d", 3) }, "[INFO] matches kept: 3\n"},
		{"warn", func() { Warn("catalog reload failed") }, "[WARN] catalog reload failed\n"},
		{"section", func() { Section("Match Execution") }, "\n=== Match Execution ===\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureVerbose(t)
			tt.log()
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	buf := captureVerbose(t)
	SetVerbose(false)

	Debug("hidden")
	Info("hidden")
	Warn("hidden")
	Section("hidden")

	assert.Zero(t, buf.Len())
}

func TestConcurrentAccess(t *testing.T) {
	captureVerbose(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			SetVerbose(true)
			Debug("concurrent %d", i)
			IsVerbose()
		}()
	}
	wg.Wait()
}

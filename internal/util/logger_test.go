package util

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressLoggerReportsCompletion(t *testing.T) {
	var out bytes.Buffer
	pl := NewProgressLoggerTo(&out, 40, "verify: ", "", true)
	for i := 0; i < 40; i++ {
		pl.Log()
	}
	pl.Finalize()

	s := out.String()
	assert.True(t, strings.HasPrefix(s, "\rverify: 0%"), "got %q", s)
	assert.Contains(t, s, "verify: 50%")
	assert.Contains(t, s, "verify: 100%")
	assert.True(t, strings.HasSuffix(s, "s) \n"), "got %q", s)
	assert.Equal(t, uint64(40), pl.Logged())
}

func TestProgressLoggerDisabled(t *testing.T) {
	var out bytes.Buffer
	pl := NewProgressLoggerTo(&out, 10, "x", "", false)
	pl.Log()
	pl.Finalize()
	assert.Empty(t, out.String())
	assert.Equal(t, uint64(0), pl.Logged())
}

func TestProgressLoggerConcurrent(t *testing.T) {
	var out bytes.Buffer
	pl := NewProgressLoggerTo(&out, 800, "", "", true)

	var wg sync.WaitGroup
	wg.Add(8)
	for g := 0; g < 8; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				pl.Log()
			}
		}()
	}
	wg.Wait()
	pl.Finalize()
	assert.Equal(t, uint64(800), pl.Logged())
	assert.Contains(t, out.String(), "100%")
}

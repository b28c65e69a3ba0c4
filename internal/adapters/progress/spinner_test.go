package progress

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/trebuchet-org/tcfg/internal/usecase"
)

func TestSpinnerSink(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	sink := NewSpinnerSink(&buf)

	var wg sync.WaitGroup
	for i := 1; i <= 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sink.OnProgress(context.Background(), usecase.ProgressEvent{Stage: "probing", Current: i, Total: 8, Spinner: i < 8})
		}()
	}
	wg.Wait()
	sink.OnProgress(context.Background(), usecase.ProgressEvent{Stage: "probing", Current: 8, Total: 8})

	sink.Info("probing done")
	sink.Error("JOCT unreachable")

	assert.Contains(t, buf.String(), "probing done\n")
	assert.Contains(t, buf.String(), "JOCT unreachable\n")
}

func TestNopSink(t *testing.T) {
	sink := NewNopSink()
	sink.OnProgress(context.Background(), usecase.ProgressEvent{})
	sink.Info("ignored")
	sink.Error("ignored")
}

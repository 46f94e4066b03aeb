// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-fin-sync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingWorker counts runs and waits for cancellation.
type blockingWorker struct {
	runs atomic.Int32
}

func (b *blockingWorker) Run(ctx context.Context) error {
	b.runs.Add(1)
	<-ctx.Done()
	return nil
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &blockingWorker{}, &blockingWorker{}, &blockingWorker{}
	ws := NewWorkers(w1, w2)
	ws.Add(w3)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ws.Run(ctx) }()

	require.Eventually(t, func() bool {
		return w1.runs.Load() == 1 && w2.runs.Load() == 1 && w3.runs.Load() == 1
	}, time.Second, time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NoError(t, NewWorkers().Run(context.Background()))
	assert.NoError(t, (&Workers{}).Run(context.Background()))
}

func TestWorkers_Run_FailureCancelsOthers(t *testing.T) {
	boom := errors.New("boom")
	other := &blockingWorker{}

	err := NewWorkers(other, Func(func(context.Context) error { return boom })).Run(context.Background())

	assert.ErrorIs(t, err, boom)
}

func TestHandle_Stop(t *testing.T) {
	w := &blockingWorker{}
	h := Start(context.Background(), w)

	require.Eventually(t, func() bool { return w.runs.Load() == 1 }, time.Second, time.Millisecond)
	assert.NoError(t, h.Stop())
	assert.NoError(t, h.Stop())

	select {
	case <-h.Done():
	default:
		t.Fatal("worker still running after Stop")
	}

	var nilHandle *Handle
	assert.NoError(t, nilHandle.Stop())
}

func TestTicker_TicksAndRecovers(t *testing.T) {
	var ticks atomic.Int32
	tk := NewTicker("test", 5*time.Millisecond, func(context.Context) {
		if ticks.Add(1) == 1 {
			panic("first tick fails")
		}
	}, logger.Nop())

	h := Start(context.Background(), tk)
	require.Eventually(t, func() bool { return ticks.Load() >= 3 }, time.Second, time.Millisecond)
	assert.NoError(t, h.Stop())
}

func TestTicker_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tk := NewTicker("test", time.Hour, func(context.Context) { t.Fatal("must not tick") }, logger.Nop())
	assert.NoError(t, tk.Run(ctx))
}

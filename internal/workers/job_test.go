// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newCountingJob(interval time.Duration, immediate bool) (*tickerJob, *atomic.Int64) {
	calls := &atomic.Int64{}
	return &tickerJob{
		interval:  interval,
		immediate: immediate,
		tick:      func(context.Context) { calls.Add(1) },
	}, calls
}

func TestTickerJob_Start_Ticks(t *testing.T) {
	job, calls := newCountingJob(10*time.Millisecond, false)

	// Интервал 10ms, за 55ms должно быть несколько тиков
	job.Start(context.Background())
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, calls.Load(), int64(3))
}

func TestTickerJob_Immediate(t *testing.T) {
	job, calls := newCountingJob(time.Hour, true)

	job.Start(context.Background())
	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	job.Stop()
}

func TestTickerJob_Stop_StopsGoroutine(t *testing.T) {
	job, calls := newCountingJob(10*time.Millisecond, false)

	job.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	afterStop := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, afterStop, calls.Load(), "после Stop новых вызовов быть не должно")
}

func TestTickerJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job, _ := newCountingJob(time.Second, false)
	assert.NotPanics(t, func() { job.Stop() })
}

func TestTickerJob_ContextCancel(t *testing.T) {
	job, calls := newCountingJob(10*time.Millisecond, false)
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx)
	time.Sleep(25 * time.Millisecond)
	cancel()
	time.Sleep(15 * time.Millisecond)

	afterCancel := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, afterCancel, calls.Load())

	job.Stop()
}

func TestTickerJob_Restart(t *testing.T) {
	job, calls := newCountingJob(10*time.Millisecond, false)
	ctx := context.Background()

	job.Start(ctx)
	job.Start(ctx)
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	assert.Positive(t, calls.Load())
}

type orderWorker struct {
	id  int
	log *[]string
}

func (o *orderWorker) Start(context.Context) {
	*o.log = append(*o.log, "start", strconv.Itoa(o.id))
}

func (o *orderWorker) Stop() {
	*o.log = append(*o.log, "stop", strconv.Itoa(o.id))
}

func TestWorkers_StartStopOrder(t *testing.T) {
	var log []string
	ws := NewWorkers(&orderWorker{id: 1, log: &log}, &orderWorker{id: 2, log: &log})

	ws.Start(context.Background())
	ws.Stop()

	assert.Equal(t, []string{"start", "1", "start", "2", "stop", "2", "stop", "1"}, log)
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	assert.NotPanics(t, func() {
		ws.Start(context.Background())
		ws.Stop()
	})
}

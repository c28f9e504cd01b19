package metrics

import (
	"sync/atomic"
	"time"
)

// Collector tracks request and payroll-run counters without locks.
type Collector struct {
	totalRequests   uint64
	errorRequests   uint64
	payslipRuns     uint64
	payslipFailures uint64
	totalDurationMs uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

func (c *Collector) RecordPayslip(failed bool) {
	atomic.AddUint64(&c.payslipRuns, 1)
	if failed {
		atomic.AddUint64(&c.payslipFailures, 1)
	}
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	errs := atomic.LoadUint64(&c.errorRequests)
	runs := atomic.LoadUint64(&c.payslipRuns)
	failures := atomic.LoadUint64(&c.payslipFailures)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":       total,
		"errorsTotal":         errs,
		"payslipRunsTotal":    runs,
		"payslipFailureTotal": failures,
		"avgDurationMs":       avg,
	}
}

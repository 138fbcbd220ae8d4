package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrStopped     = errors.New("maintenance worker stopped")
	ErrCircuitOpen = errors.New("circuit breaker is open")
)

// Config contains configuration for the maintenance worker.
type Config struct {
	MaxConcurrency    int           `envconfig:"WORKER_MAX_CONCURRENCY" default:"4"`
	PruneInterval     time.Duration `envconfig:"WORKER_PRUNE_INTERVAL" default:"1m"`
	WarmInterval      time.Duration `envconfig:"WORKER_WARM_INTERVAL" default:"5m"`
	WarmChainIDs      []uint64      `envconfig:"WORKER_WARM_CHAIN_IDS"`
	RequestTimeout    time.Duration `envconfig:"WORKER_REQUEST_TIMEOUT" default:"30s"`
	CircuitBreakerMax int           `envconfig:"WORKER_CIRCUIT_BREAKER_MAX" default:"10"`
	CircuitCooldown   time.Duration `envconfig:"WORKER_CIRCUIT_COOLDOWN" default:"1m"`
}

func (c Config) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, &c,
		validation.Field(&c.MaxConcurrency, validation.Min(0)),
		validation.Field(&c.PruneInterval, validation.Min(time.Duration(0))),
		validation.Field(&c.WarmInterval, validation.Min(time.Duration(0))),
		validation.Field(&c.CircuitBreakerMax, validation.Min(0)),
		validation.Field(&c.CircuitCooldown, validation.Min(time.Duration(0))),
	)
}

// Pruner drops expired inventory state.
type Pruner interface {
	Prune() int
	Len() int
}

// Warmer refreshes the cached lookups of one chain.
type Warmer func(ctx context.Context, chainID uint64) error

type warmJob struct {
	chainID uint64
	result  chan error
}

// Metrics contains maintenance counters.
type Metrics struct {
	PrunedTotal        int64     `json:"pruned_total"`
	InventoryEntries   int       `json:"inventory_entries"`
	WarmSucceeded      int64     `json:"warm_succeeded"`
	WarmFailed         int64     `json:"warm_failed"`
	ActiveJobs         int64     `json:"active_jobs"`
	QueueSize          int       `json:"queue_size"`
	CircuitBreakerOpen bool      `json:"circuit_breaker_open"`
	LastPrune          time.Time `json:"last_prune"`
	LastUpdated        time.Time `json:"last_updated"`
}

// Worker prunes expired inventory state on a ticker and keeps the currency
// caches of the configured chains warm through a small pool of goroutines.
type Worker interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Warm(ctx context.Context, chainID uint64) error
	PruneNow() int
	GetMetrics() *Metrics
	IsHealthy() bool
}

type Maintenance struct {
	logger *slog.Logger
	pruner Pruner
	warmer Warmer
	config Config

	jobQueue chan *warmJob
	wg       sync.WaitGroup
	mu       sync.RWMutex
	started  bool
	stopped  bool

	failureCount    int64
	circuitOpen     bool
	circuitOpenTime time.Time

	metrics atomic.Value // holds *Metrics

	ctx    context.Context
	cancel context.CancelFunc
	now    func() time.Time
}

var _ Worker = (*Maintenance)(nil)

// NewMaintenance creates a maintenance worker. A nil warmer disables cache
// warming.
func NewMaintenance(logger *slog.Logger, pruner Pruner, warmer Warmer, config Config) *Maintenance {
	if config.MaxConcurrency <= 0 {
		config.MaxConcurrency = 4
	}
	if config.PruneInterval <= 0 {
		config.PruneInterval = time.Minute
	}
	if config.RequestTimeout <= 0 {
		config.RequestTimeout = 30 * time.Second
	}
	if config.CircuitBreakerMax <= 0 {
		config.CircuitBreakerMax = 10
	}
	if config.CircuitCooldown <= 0 {
		config.CircuitCooldown = time.Minute
	}

	ctx, cancel := context.WithCancel(context.Background())

	m := &Maintenance{
		logger:   logger,
		pruner:   pruner,
		warmer:   warmer,
		config:   config,
		jobQueue: make(chan *warmJob, config.MaxConcurrency*2),
		ctx:      ctx,
		cancel:   cancel,
		now:      time.Now,
	}
	m.metrics.Store(&Metrics{LastUpdated: m.now()})

	return m
}

func (m *Maintenance) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stopped {
		return ErrStopped
	}
	if m.started {
		return nil
	}
	m.started = true

	m.logger.InfoContext(ctx, "Starting maintenance worker",
		slog.Int("max_concurrency", m.config.MaxConcurrency),
		slog.Duration("prune_interval", m.config.PruneInterval),
	)

	if m.warmer != nil {
		for i := 0; i < m.config.MaxConcurrency; i++ {
			m.wg.Add(1)
			go m.workerLoop(i)
		}
		if m.config.WarmInterval > 0 && len(m.config.WarmChainIDs) > 0 {
			m.wg.Add(1)
			go m.warmLoop()
		}
	}

	m.wg.Add(1)
	go m.pruneLoop()

	return nil
}

// Stop cancels every loop and waits for them to return or for ctx to end.
func (m *Maintenance) Stop(ctx context.Context) error {
	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		return nil
	}
	m.stopped = true
	m.mu.Unlock()

	m.logger.InfoContext(ctx, "Stopping maintenance worker")
	m.cancel()

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		m.logger.InfoContext(ctx, "Maintenance worker stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for maintenance loops: %w", ctx.Err())
	}
}

// Warm queues a cache refresh for chainID and waits for its result.
func (m *Maintenance) Warm(ctx context.Context, chainID uint64) error {
	if m.warmer == nil {
		return nil
	}
	if m.isCircuitOpen() {
		return ErrCircuitOpen
	}

	job := &warmJob{chainID: chainID, result: make(chan error, 1)}

	select {
	case m.jobQueue <- job:
	case <-ctx.Done():
		return ctx.Err()
	case <-m.ctx.Done():
		return ErrStopped
	}

	select {
	case err := <-job.result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-m.ctx.Done():
		return ErrStopped
	}
}

// PruneNow runs one prune pass and returns the number of removed states.
func (m *Maintenance) PruneNow() int {
	removed := m.pruner.Prune()
	entries := m.pruner.Len()

	m.updateMetrics(func(mt *Metrics) {
		mt.PrunedTotal += int64(removed)
		mt.InventoryEntries = entries
		mt.LastPrune = m.now()
	})

	if removed > 0 {
		m.logger.Debug("Pruned inventory states", slog.Int("removed", removed), slog.Int("entries", entries))
	}
	return removed
}

func (m *Maintenance) GetMetrics() *Metrics {
	if mt, ok := m.metrics.Load().(*Metrics); ok {
		return mt
	}
	return &Metrics{}
}

func (m *Maintenance) IsHealthy() bool {
	m.mu.RLock()
	running := m.started && !m.stopped
	m.mu.RUnlock()

	return running && !m.isCircuitOpen()
}

func (m *Maintenance) pruneLoop() {
	defer m.wg.Done()

	ticker := time.NewTicker(m.config.PruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.PruneNow()
		case <-m.ctx.Done():
			return
		}
	}
}

func (m *Maintenance) warmLoop() {
	defer m.wg.Done()

	m.enqueueWarm()

	ticker := time.NewTicker(m.config.WarmInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.enqueueWarm()
		case <-m.ctx.Done():
			return
		}
	}
}

// enqueueWarm queues every configured chain without waiting for results.
func (m *Maintenance) enqueueWarm() {
	if m.isCircuitOpen() {
		m.logger.Warn("Skipping cache warm-up, circuit breaker is open")
		return
	}

	for _, chainID := range m.config.WarmChainIDs {
		select {
		case m.jobQueue <- &warmJob{chainID: chainID}:
		case <-m.ctx.Done():
			return
		}
	}
	m.updateMetrics(func(mt *Metrics) {
		mt.QueueSize = len(m.jobQueue)
	})
}

func (m *Maintenance) workerLoop(id int) {
	defer m.wg.Done()

	m.logger.Debug("Worker started", slog.Int("worker_id", id))

	for {
		select {
		case job := <-m.jobQueue:
			m.processJob(id, job)
		case <-m.ctx.Done():
			m.logger.Debug("Worker stopping - context cancelled", slog.Int("worker_id", id))
			return
		}
	}
}

func (m *Maintenance) processJob(id int, job *warmJob) {
	m.updateMetrics(func(mt *Metrics) {
		mt.ActiveJobs++
	})

	ctx, cancel := context.WithTimeout(m.ctx, m.config.RequestTimeout)
	err := m.warmer(ctx, job.chainID)
	cancel()

	if err != nil {
		m.logger.Error("Cache warm-up failed",
			slog.Int("worker_id", id),
			slog.Uint64("chain_id", job.chainID),
			slog.Any("error", err),
		)
		if atomic.AddInt64(&m.failureCount, 1) >= int64(m.config.CircuitBreakerMax) {
			m.openCircuitBreaker()
		}
	} else {
		atomic.StoreInt64(&m.failureCount, 0)
		m.closeCircuitBreaker()
	}

	m.updateMetrics(func(mt *Metrics) {
		mt.ActiveJobs--
		mt.QueueSize = len(m.jobQueue)
		if err != nil {
			mt.WarmFailed++
		} else {
			mt.WarmSucceeded++
		}
	})

	if job.result != nil {
		job.result <- err
	}
}

func (m *Maintenance) updateMetrics(updateFn func(*Metrics)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	updated := *m.GetMetrics()
	updateFn(&updated)
	updated.CircuitBreakerOpen = m.circuitOpenLocked()
	updated.LastUpdated = m.now()
	m.metrics.Store(&updated)
}

func (m *Maintenance) isCircuitOpen() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.circuitOpenLocked()
}

// circuitOpenLocked reports whether the breaker is open and still cooling
// down. Caller holds m.mu.
func (m *Maintenance) circuitOpenLocked() bool {
	return m.circuitOpen && m.now().Sub(m.circuitOpenTime) <= m.config.CircuitCooldown
}

// openCircuitBreaker opens the breaker, or re-arms it when the previous
// cooldown already ran out.
func (m *Maintenance) openCircuitBreaker() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.circuitOpenLocked() {
		m.circuitOpen = true
		m.circuitOpenTime = m.now()
		m.logger.Warn("Circuit breaker opened due to warm-up failures")
	}
}

func (m *Maintenance) closeCircuitBreaker() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.circuitOpen {
		m.circuitOpen = false
		m.logger.Info("Circuit breaker closed")
	}
}

package pagegate

import (
	"context"
	"sync"
	"sync/atomic"
)

// auditDispatcher decouples gate operations from the audit sink: Emit hands
// events to a buffered channel drained by a single goroutine, so a slow sink
// never stalls an authorization check.
type auditDispatcher struct {
	cfg       AuditConfig
	sink      AuditSink
	ch        chan AuditEvent
	done      chan struct{}
	wg        sync.WaitGroup
	dropped   atomic.Uint64
	closed    atomic.Bool
	closeOnce sync.Once
}

func newAuditDispatcher(cfg AuditConfig, sink AuditSink) *auditDispatcher {
	if !cfg.Enabled {
		return nil
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1
	}
	if sink == nil {
		sink = NoOpSink{}
	}

	d := &auditDispatcher{
		cfg:  cfg,
		sink: sink,
		ch:   make(chan AuditEvent, cfg.BufferSize),
		done: make(chan struct{}),
	}

	d.wg.Add(1)
	go d.run()

	return d
}

func (d *auditDispatcher) run() {
	defer d.wg.Done()

	for {
		select {
		case event := <-d.ch:
			d.sink.Emit(context.Background(), event)
		case <-d.done:
			// drain whatever was queued before Close
			for {
				select {
				case event := <-d.ch:
					d.sink.Emit(context.Background(), event)
				default:
					return
				}
			}
		}
	}
}

// Emit enqueues event. With DropIfFull it never blocks; otherwise it waits
// for buffer space, context cancellation, or dispatcher shutdown.
func (d *auditDispatcher) Emit(ctx context.Context, event AuditEvent) {
	if d == nil || d.closed.Load() {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if d.cfg.DropIfFull {
		select {
		case d.ch <- event:
		case <-d.done:
		default:
			d.dropped.Add(1)
		}
		return
	}

	select {
	case d.ch <- event:
	case <-ctx.Done():
	case <-d.done:
	}
}

// Close stops the dispatcher after draining queued events. Idempotent; Emit
// after Close is a no-op.
func (d *auditDispatcher) Close() {
	if d == nil {
		return
	}
	d.closeOnce.Do(func() {
		d.closed.Store(true)
		close(d.done)
		d.wg.Wait()
	})
}

// Dropped reports how many events were discarded because the buffer was full.
func (d *auditDispatcher) Dropped() uint64 {
	if d == nil {
		return 0
	}
	return d.dropped.Load()
}

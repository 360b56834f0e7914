package recorder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/matheus3301/chardetect/internal/bus"
	"github.com/matheus3301/chardetect/internal/detect"
	"github.com/matheus3301/chardetect/internal/share"
	"github.com/matheus3301/chardetect/internal/status"
	"github.com/matheus3301/chardetect/internal/store"
)

// Recorder persists analyses as samples and announces changes on the bus.
// Store failures move the daemon to DEGRADED; the next success or health
// probe brings it back to READY.
type Recorder struct {
	db      *store.DB
	bus     *bus.Bus
	machine *status.Machine
	logger  *zap.Logger
	cancel  context.CancelFunc
	done    chan struct{}
}

// New creates a recorder. machine and logger may be nil.
func New(db *store.DB, b *bus.Bus, machine *status.Machine, logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{
		db:      db,
		bus:     b,
		machine: machine,
		logger:  logger,
	}
}

// Save stores the analysis under id (idempotent on id). An empty id gets a
// new UUID. It returns the stored sample and whether it was new.
func (r *Recorder) Save(id string, a *detect.Analysis) (*store.Sample, bool, error) {
	if id == "" {
		id = uuid.NewString()
	}
	s := &store.Sample{
		ID:               id,
		Body:             a.Text,
		ShareToken:       share.Encode(a.Text),
		CharCount:        a.Len(),
		BlockCount:       len(a.Blocks),
		SubstitutedCount: a.Substitutions(),
	}
	for _, b := range a.Blocks {
		s.Blocks = append(s.Blocks, store.SampleBlock{
			BlockName:  b.Block.Name,
			CharCount:  b.Count,
			FirstIndex: b.First,
		})
	}

	created, err := r.db.UpsertSample(s)
	if err != nil {
		r.degrade(err)
		return nil, false, fmt.Errorf("save sample %s: %w", id, err)
	}
	r.recover("sample saved")

	r.bus.Publish(bus.Event{
		Kind:      bus.KindSampleSaved,
		Timestamp: time.Now(),
		Payload: bus.SampleRef{
			ID:         s.ID,
			CharCount:  s.CharCount,
			BlockCount: s.BlockCount,
		},
	})
	r.logger.Info("sample saved",
		zap.String("sample_id", s.ID),
		zap.Bool("created", created),
		zap.Int("chars", s.CharCount),
		zap.Int("blocks", s.BlockCount),
	)
	return s, created, nil
}

// Delete removes a sample. It reports whether the sample existed; a
// sample.deleted event is published only in that case.
func (r *Recorder) Delete(id string) (bool, error) {
	deleted, err := r.db.DeleteSample(id)
	if err != nil {
		r.degrade(err)
		return false, fmt.Errorf("delete sample %s: %w", id, err)
	}
	r.recover("sample deleted")
	if !deleted {
		return false, nil
	}

	r.bus.Publish(bus.Event{
		Kind:      bus.KindSampleDeleted,
		Timestamp: time.Now(),
		Payload:   bus.SampleRef{ID: id},
	})
	r.logger.Info("sample deleted", zap.String("sample_id", id))
	return true, nil
}

// Start probes the store every interval until ctx is done or Stop is
// called, keeping the daemon state in line with store health.
func (r *Recorder) Start(ctx context.Context, interval time.Duration) {
	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})

	go func() {
		defer close(r.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.Probe(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops the health probe and waits for it to exit.
func (r *Recorder) Stop() {
	if r.cancel != nil {
		r.cancel()
		<-r.done
	}
}

// Probe pings the store once and updates the daemon state.
func (r *Recorder) Probe(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		if ctx.Err() == nil {
			r.degrade(err)
		}
		return err
	}
	r.recover("store reachable")
	return nil
}

func (r *Recorder) degrade(cause error) {
	r.logger.Error("store failure", zap.Error(cause))
	if r.machine == nil {
		return
	}
	if err := r.machine.Ensure(status.Degraded, cause.Error()); err != nil {
		r.logger.Debug("state not changed", zap.Error(err))
	}
}

func (r *Recorder) recover(reason string) {
	if r.machine == nil || r.machine.Current() != status.Degraded {
		return
	}
	if err := r.machine.Transition(status.Ready, reason); err != nil {
		r.logger.Debug("state not changed", zap.Error(err))
		return
	}
	r.logger.Info("store recovered", zap.String("reason", reason))
}

package store

import (
	"context"
	"fmt"
	"sync/atomic"

	"ai-tutor/internal/domain"
	"ai-tutor/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Holder publishes the current Snapshot. Reloads build a new snapshot off to the side and
// swap it in atomically, so readers never observe a partially loaded dataset.
type Holder struct {
	source  domain.AttemptSource
	current atomic.Pointer[Snapshot]
	group   singleflight.Group
}

// NewHolder loads the initial snapshot from source. A load failure is returned as-is
// (DATA_LOAD_ERROR) and the process should not serve traffic.
func NewHolder(ctx context.Context, source domain.AttemptSource) (*Holder, error) {
	snap, err := Load(ctx, source)
	if err != nil {
		return nil, err
	}
	h := &Holder{source: source}
	h.current.Store(snap)
	return h, nil
}

// NewStaticHolder wraps an already built snapshot. Reload re-reads source when it is non-nil.
func NewStaticHolder(snap *Snapshot, source domain.AttemptSource) *Holder {
	h := &Holder{source: source}
	h.current.Store(snap)
	return h
}

// Current returns the snapshot in effect at the time of the call.
func (h *Holder) Current() *Snapshot {
	return h.current.Load()
}

// Reload loads a fresh snapshot and swaps it in. Concurrent callers share a single load.
// On failure the previous snapshot stays current.
func (h *Holder) Reload(ctx context.Context) (*Snapshot, error) {
	if h.source == nil {
		return nil, domain.NewInternalError("no attempt source configured for reload", nil)
	}

	// The load is shared; one caller cancelling must not fail the others.
	loadCtx := context.WithoutCancel(ctx)
	v, err, shared := h.group.Do("reload", func() (interface{}, error) {
		snap, err := Load(loadCtx, h.source)
		if err != nil {
			return nil, err
		}
		prev := h.current.Swap(snap)
		logger.Get().Info("Attempt snapshot reloaded",
			zap.String("source", snap.Source()),
			zap.String("previous_version", prev.Version()),
			zap.String("version", snap.Version()),
			zap.Int("attempts", snap.AttemptCount()),
			zap.Int("students", snap.StudentCount()),
			zap.Int("concepts", snap.ConceptCount()),
		)
		return snap, nil
	})
	if err != nil {
		logger.Get().Error("Attempt snapshot reload failed", zap.String("source", h.source.Name()), zap.Error(err))
		return nil, err
	}

	snap, ok := v.(*Snapshot)
	if !ok {
		return nil, fmt.Errorf("unexpected type from singleflight.Do for reload: %T", v)
	}
	if shared {
		logger.Get().Debug("Reload result shared with concurrent caller", zap.String("version", snap.Version()))
	}
	return snap, nil
}

package engine

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// captureLoop polls the pasteboard on the configured cadence until the
// context is cancelled. Change detection happens here rather than in the
// pasteboard backend so the engine stays portable across backends that have
// no native change notification.
func (e *Engine) captureLoop(ctx context.Context) {
	defer e.wg.Done()

	ticker := time.NewTicker(e.cfg.PollingInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.captureTick()
		}
	}
}

// captureTick processes at most one capture: image content takes priority
// over text when both are present and changed. Last-seen state is updated
// as soon as a different snapshot is observed, even when the resulting
// insert is suppressed downstream, so the same raw pasteboard state is
// never reprocessed on later ticks.
func (e *Engine) captureTick() {
	snap, err := e.source.ReadSnapshot()
	if err != nil {
		// An inaccessible pasteboard means "nothing to capture" for this
		// tick; the next tick retries naturally.
		e.logger.Debug("pasteboard read failed, skipping tick", zap.Error(err))
		return
	}
	if snap.Empty() {
		return
	}

	if len(snap.Image) > 0 {
		e.mu.Lock()
		changed := !e.lastSeen.sameImage(snap.Image)
		if changed {
			e.lastSeen.markImage(snap.Image)
		}
		e.mu.Unlock()

		if changed {
			e.InsertImage(snap.Image)
			return
		}
	}

	if snap.Text != "" {
		e.mu.Lock()
		changed := !e.lastSeen.sameText(snap.Text)
		if changed {
			e.lastSeen.markText(snap.Text)
		}
		e.mu.Unlock()

		if changed {
			e.InsertText(snap.Text)
		}
	}
}

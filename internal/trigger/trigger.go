// Package trigger turns config file writes into wake attempts: editing
// or touching the watched file sends one magic packet to the target it
// describes. This makes a wake triggerable from cron jobs, scripts, or
// anything else that can write a file.
package trigger

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/wol-labs/lanwake/internal/cliconfig"
	"github.com/wol-labs/lanwake/internal/wol"
)

// Watcher monitors a single config file and sends a magic packet on
// each write, debounced so editors that write in several steps produce
// one send.
type Watcher struct {
	configPath string
	debounce   time.Duration
	log        zerolog.Logger

	// send is swapped out in tests.
	send func(mac, broadcastIP, port string) error

	mu    sync.Mutex
	timer *time.Timer
}

// New creates a watcher for configPath. A non-positive debounce falls
// back to 100ms.
func New(configPath string, debounce time.Duration, log zerolog.Logger) *Watcher {
	if debounce <= 0 {
		debounce = 100 * time.Millisecond
	}
	return &Watcher{
		configPath: configPath,
		debounce:   debounce,
		log:        log,
		send:       wol.SendMagicPacket,
	}
}

// Run watches the config file until ctx is cancelled. The parent
// directory is watched rather than the file itself so the common
// rename-into-place editor save still produces events.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(w.configPath)); err != nil {
		return err
	}

	w.log.Info().Str("config", w.configPath).Dur("debounce", w.debounce).Msg("watching for wake triggers")

	for {
		select {
		case <-ctx.Done():
			w.stopTimer()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != filepath.Base(w.configPath) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.scheduleWake()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Error().Err(err).Msg("watch error")
		}
	}
}

func (w *Watcher) scheduleWake() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.wake)
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
}

// wake reloads the target from the config file and sends one packet.
// Any failure is logged and the watcher keeps running; a broken edit
// must not take the agent down.
func (w *Watcher) wake() {
	cfg := cliconfig.DefaultConfig()

	fc, err := cliconfig.LoadFileConfig(w.configPath)
	if err != nil {
		w.log.Error().Err(err).Msg("reload config")
		return
	}
	if err := cliconfig.ApplyFileConfig(&cfg, fc, nil); err != nil {
		w.log.Error().Err(err).Msg("apply config")
		return
	}
	if err := cfg.Validate(); err != nil {
		w.log.Error().Err(err).Msg("invalid target, not sending")
		return
	}

	if err := w.send(cfg.MACAddress, cfg.BroadcastIP, cfg.Port); err != nil {
		w.log.Error().Err(err).Msg("send magic packet")
		return
	}
	w.log.Info().
		Str("mac", cfg.MACAddress).
		Str("broadcast", cfg.BroadcastIP).
		Str("port", cfg.Port).
		Msg("magic packet sent")
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package clip delivers resolved secrets to the user: either printed on an
// output stream or placed on the OS clipboard with a guarded, timed restore
// of the previous contents.
//
// The restore guard: when the timer fires, the prior contents are written
// back only if the clipboard still holds exactly the delivered value. If
// the user copied something else in the meantime, the clipboard is left
// untouched. At most one restore task is pending per user at any time —
// arming a new task cancels the previous one, in-process through the
// cancel handle and across invocations through the pid file.
package clip

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/go-vault-clip/internal/logger"
)

// DefaultTimeout is applied when the broker is constructed with a
// non-positive timeout.
const DefaultTimeout = 30 * time.Second

// Broker writes delivered values to the clipboard and schedules the
// guarded restore of prior contents.
type Broker struct {
	clipboard Clipboard
	timeout   time.Duration
	pidFile   string
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewBroker constructs a [Broker]. pidFile tags the process owning the
// pending restore so a later invocation can preempt it; an empty pidFile
// disables cross-invocation preemption (used in tests).
func NewBroker(cb Clipboard, timeout time.Duration, pidFile string, log *logger.Logger) *Broker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Broker{clipboard: cb, timeout: timeout, pidFile: pidFile, logger: log}
}

// Deliver hands value to the user. In print mode it writes value to out
// and returns without touching the clipboard. Otherwise it captures the
// clipboard's current contents, writes value, and arms a single deferred
// restore task; any previously armed task — in this process or a prior
// invocation — is cancelled first. Deliver does not block on the restore;
// call [Broker.Wait] to keep the process alive until it has run.
func (b *Broker) Deliver(value string, print bool, out io.Writer) error {
	if print {
		if _, err := fmt.Fprintln(out, value); err != nil {
			return fmt.Errorf("print value: %w", err)
		}
		return nil
	}

	b.preemptPrevious()

	prior, err := b.clipboard.Read()
	if err != nil {
		// An unreadable clipboard (e.g. empty selection) restores to empty.
		b.logger.Debug().Err(err).Msg("could not capture prior clipboard contents")
		prior = ""
	}

	if err = b.clipboard.Write(value); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}

	b.armRestore(value, prior)
	return nil
}

// armRestore stops any pending in-process restore and schedules a new one.
// The value guard makes a stale task that fires after replacement a no-op:
// it restores only if the clipboard still holds the exact bytes it
// delivered.
func (b *Broker) armRestore(value, prior string) {
	b.Stop()

	b.mu.Lock()
	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel
	b.wg.Add(1)
	b.mu.Unlock()

	go func() {
		defer b.wg.Done()
		defer b.clearPidFile()

		t := time.NewTimer(b.timeout)
		defer t.Stop()

		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}

		current, err := b.clipboard.Read()
		if err != nil {
			b.logger.Warn().Err(err).Msg("read clipboard at restore time")
			return
		}
		if current != value {
			b.logger.Debug().Msg("clipboard changed since delivery, leaving it untouched")
			return
		}
		if err = b.clipboard.Write(prior); err != nil {
			b.logger.Warn().Err(err).Msg("restore prior clipboard contents")
		}
	}()
}

// Stop cancels the pending restore task, if any, without restoring. It
// blocks until the task goroutine has exited. Safe to call when nothing is
// armed.
func (b *Broker) Stop() {
	b.mu.Lock()
	cancel := b.cancel
	b.cancel = nil
	b.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	b.wg.Wait()
}

// Wait blocks until the armed restore task has finished (fired or been
// cancelled). Returns immediately when nothing is armed.
func (b *Broker) Wait() {
	b.wg.Wait()
}

// preemptPrevious cancels the pending restore of an earlier invocation by
// signalling the process recorded in the pid file, then claims the file
// for this process. Best-effort: a stale or unreadable pid file is simply
// overwritten.
func (b *Broker) preemptPrevious() {
	if b.pidFile == "" {
		return
	}

	if raw, err := os.ReadFile(b.pidFile); err == nil {
		if pid, err := strconv.Atoi(strings.TrimSpace(string(raw))); err == nil && pid > 0 && pid != os.Getpid() {
			if proc, err := os.FindProcess(pid); err == nil {
				if err = proc.Signal(syscall.SIGTERM); err == nil {
					b.logger.Debug().Int("pid", pid).Msg("preempted pending clipboard restore")
				}
			}
		}
	}

	if err := os.WriteFile(b.pidFile, []byte(strconv.Itoa(os.Getpid())), 0o600); err != nil {
		b.logger.Warn().Err(err).Msg("write clipboard pid file")
	}
}

// clearPidFile removes the pid file if this process still owns it.
func (b *Broker) clearPidFile() {
	if b.pidFile == "" {
		return
	}

	raw, err := os.ReadFile(b.pidFile)
	if err != nil {
		return
	}
	if strings.TrimSpace(string(raw)) == strconv.Itoa(os.Getpid()) {
		_ = os.Remove(b.pidFile)
	}
}

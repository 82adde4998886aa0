package clip

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-clip/internal/logger"
)

// fakeClipboard is an in-memory Clipboard for broker tests.
type fakeClipboard struct {
	mu     sync.Mutex
	value  string
	writes int
}

func (f *fakeClipboard) Read() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value, nil
}

func (f *fakeClipboard) Write(value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.value = value
	f.writes++
	return nil
}

func (f *fakeClipboard) set(value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.value = value
}

func (f *fakeClipboard) current() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

func TestBroker_PrintModeSkipsClipboard(t *testing.T) {
	cb := &fakeClipboard{value: "untouched"}
	broker := NewBroker(cb, 20*time.Millisecond, "", logger.Nop())

	var out bytes.Buffer
	require.NoError(t, broker.Deliver("s3cret", true, &out))

	assert.Equal(t, "s3cret\n", out.String())
	assert.Equal(t, "untouched", cb.current())
	assert.Zero(t, cb.writes)

	// Nothing armed, Wait must not block.
	broker.Wait()
}

func TestBroker_DeliverThenRestore(t *testing.T) {
	cb := &fakeClipboard{value: "grocery list"}
	broker := NewBroker(cb, 20*time.Millisecond, "", logger.Nop())

	require.NoError(t, broker.Deliver("s3cret", false, nil))
	assert.Equal(t, "s3cret", cb.current())

	broker.Wait()
	assert.Equal(t, "grocery list", cb.current())
}

func TestBroker_RestoreGuardSkipsChangedClipboard(t *testing.T) {
	cb := &fakeClipboard{value: "grocery list"}
	broker := NewBroker(cb, 20*time.Millisecond, "", logger.Nop())

	require.NoError(t, broker.Deliver("s3cret", false, nil))

	// The user copies something else before the timer fires.
	cb.set("user copied this")

	broker.Wait()
	assert.Equal(t, "user copied this", cb.current())
}

func TestBroker_SecondDeliverCancelsFirstRestore(t *testing.T) {
	cb := &fakeClipboard{value: "original"}
	broker := NewBroker(cb, 30*time.Millisecond, "", logger.Nop())

	require.NoError(t, broker.Deliver("first", false, nil))
	require.NoError(t, broker.Deliver("second", false, nil))

	broker.Wait()

	// Only the second restore fires, putting back what it captured at its
	// own delivery time. The first task never restores "original".
	assert.Equal(t, "first", cb.current())
}

func TestBroker_StopCancelsWithoutRestoring(t *testing.T) {
	cb := &fakeClipboard{value: "original"}
	broker := NewBroker(cb, 50*time.Millisecond, "", logger.Nop())

	require.NoError(t, broker.Deliver("s3cret", false, nil))
	broker.Stop()

	assert.Equal(t, "s3cret", cb.current())

	// Give a cancelled timer a chance to misfire; it must not.
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, "s3cret", cb.current())
}

func TestBroker_PidFileLifecycle(t *testing.T) {
	cb := &fakeClipboard{}
	pidFile := filepath.Join(t.TempDir(), "clip.pid")
	broker := NewBroker(cb, 20*time.Millisecond, pidFile, logger.Nop())

	require.NoError(t, broker.Deliver("s3cret", false, nil))

	raw, err := os.ReadFile(pidFile)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), string(raw))

	broker.Wait()

	// The restore task cleans up its own pid file.
	_, err = os.Stat(pidFile)
	assert.True(t, os.IsNotExist(err))
}

func TestBroker_StalePidFileIsOverwritten(t *testing.T) {
	cb := &fakeClipboard{}
	pidFile := filepath.Join(t.TempDir(), "clip.pid")
	require.NoError(t, os.WriteFile(pidFile, []byte("not a pid"), 0o600))

	broker := NewBroker(cb, 20*time.Millisecond, pidFile, logger.Nop())
	require.NoError(t, broker.Deliver("s3cret", false, nil))

	raw, err := os.ReadFile(pidFile)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), string(raw))

	broker.Stop()
}

func TestBroker_DefaultTimeoutApplied(t *testing.T) {
	broker := NewBroker(&fakeClipboard{}, 0, "", logger.Nop())
	assert.Equal(t, DefaultTimeout, broker.timeout)
}

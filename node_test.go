package dirtree

import (
	"testing"
	"time"
)

const (
	minDelay        = 9 * time.Millisecond
	maxTestDuration = time.Second
)

// testRun runs test under a timeout, panicking if it doesn't complete
// in time, so a hung goroutine in a concurrency test doesn't block
// forever.
func testRun(t *testing.T, name string, test func(*testing.T)) {
	t.Run(name, func(t *testing.T) {
		done := make(chan struct{})
		timeout := time.After(maxTestDuration)
		go func() {
			select {
			case <-done:
			case <-timeout:
				panic("test did not complete: " + t.Name())
			}
		}()

		test(t)
		close(done)
	})
}

func TestReaderLockAllowsConcurrentReaders(t *testing.T) {
	testRun(t, "concurrent readers", func(t *testing.T) {
		n := newNode(nil, "x")
		n.lockReader()
		n.lockReader()
		n.unlockReader()
		n.unlockReader()
	})
}

func TestWriterLockExcludesReaders(t *testing.T) {
	testRun(t, "writer excludes readers", func(t *testing.T) {
		n := newNode(nil, "x")
		n.lockWriter()

		acquired := make(chan struct{})
		go func() {
			n.lockReader()
			close(acquired)
			n.unlockReader()
		}()

		select {
		case <-acquired:
			t.Fatal("reader acquired while writer held the lock")
		case <-time.After(minDelay):
		}

		n.unlockWriter()
		<-acquired
	})
}

func TestWriterPreference(t *testing.T) {
	testRun(t, "writer preference", func(t *testing.T) {
		n := newNode(nil, "x")
		n.lockReader()

		writerAcquired := make(chan struct{})
		go func() {
			n.lockWriter()
			close(writerAcquired)
			n.unlockWriter()
		}()
		time.Sleep(minDelay) // let the writer start waiting

		laterReaderAcquired := make(chan struct{})
		go func() {
			n.lockReader()
			close(laterReaderAcquired)
			n.unlockReader()
		}()

		select {
		case <-laterReaderAcquired:
			t.Fatal("reader queued behind a waiting writer was allowed to cut in")
		case <-time.After(minDelay):
		}

		n.unlockReader()
		<-writerAcquired
		<-laterReaderAcquired
	})
}

func TestSubtreeQuiescence(t *testing.T) {
	testRun(t, "quiescence", func(t *testing.T) {
		n := newNode(nil, "x")
		n.enterSubtree()

		quiescent := make(chan struct{})
		go func() {
			n.waitQuiescent()
			close(quiescent)
		}()

		select {
		case <-quiescent:
			t.Fatal("waitQuiescent returned while a reference was still held")
		case <-time.After(minDelay):
		}

		n.leaveSubtree()
		<-quiescent
	})
}

func TestSubtreeQuiescenceImmediateWhenEmpty(t *testing.T) {
	testRun(t, "already quiescent", func(t *testing.T) {
		n := newNode(nil, "x")
		n.waitQuiescent()
	})
}

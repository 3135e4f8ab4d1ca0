package sysinfo

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazy_InitOnce(t *testing.T) {
	var runs atomic.Int32
	l := NewLazy(func() (string, bool) {
		runs.Add(1)
		return "value", true
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, ok := l.Get()
			assert.True(t, ok)
			assert.Equal(t, "value", v)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), runs.Load())
}

func TestLazy_FailureStored(t *testing.T) {
	runs := 0
	l := NewLazy(func() (int, bool) {
		runs++
		return 0, false
	})
	for i := 0; i < 3; i++ {
		_, ok := l.Get()
		assert.False(t, ok)
	}
	assert.Equal(t, 1, runs)
}

func TestLazy_PanicStoredAsAbsent(t *testing.T) {
	runs := 0
	l := NewLazy(func() (map[string]string, bool) {
		runs++
		panic("boom")
	})
	assert.NotPanics(t, func() {
		v, ok := l.Get()
		assert.False(t, ok)
		assert.Nil(t, v)
	})
	_, ok := l.Get()
	assert.False(t, ok)
	assert.Equal(t, 1, runs)
}

func TestLazy_NilInit(t *testing.T) {
	_, ok := NewLazy[string](nil).Get()
	assert.False(t, ok)
}

func TestLazy_ReadsAfterInitSkipTheLock(t *testing.T) {
	l := NewLazy(func() (string, bool) { return "value", true })
	_, ok := l.Get()
	require.True(t, ok)

	// A filled cell must answer even while the init lock is held.
	l.mu.Lock()
	defer l.mu.Unlock()

	got := make(chan string, 1)
	go func() {
		v, _ := l.Get()
		got <- v
	}()
	select {
	case v := <-got:
		assert.Equal(t, "value", v)
	case <-time.After(2 * time.Second):
		t.Fatal("Get blocked on the init lock after the cell was filled")
	}
}

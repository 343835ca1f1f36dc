package cache

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestGroup_Do(t *testing.T) {
	var g Group
	var counter int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		go func() {
			defer wg.Done()
			<-start
			val, err, _ := g.Do("schema-key", func() (any, error) {
				atomic.AddInt32(&counter, 1)
				time.Sleep(20 * time.Millisecond)
				return "schema", nil
			})
			if err != nil {
				t.Errorf("do failed: %v", err)
			}
			if val != "schema" {
				t.Errorf("unexpected value %v", val)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&counter); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
}

func TestGroup_DistinctKeysRunIndependently(t *testing.T) {
	var g Group
	var counter int32

	for _, key := range []string{"a", "b"} {
		if _, err, shared := g.Do(key, func() (any, error) {
			atomic.AddInt32(&counter, 1)
			return nil, nil
		}); err != nil || shared {
			t.Fatalf("do %q: err=%v shared=%v", key, err, shared)
		}
	}

	if counter != 2 {
		t.Fatalf("expected both calls to run, got %d", counter)
	}
}

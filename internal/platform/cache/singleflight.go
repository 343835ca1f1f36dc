package cache

import "sync"

// Group collapses concurrent loads for the same key into one call, so a
// cache miss under load hits the backing store once. The zero value is
// ready to use.
type Group struct {
	mu    sync.Mutex
	calls map[string]*flight
}

type flight struct {
	wg  sync.WaitGroup
	val any
	err error
}

// Do runs fn for key, or waits for an in-flight call with the same key and
// returns its result. The boolean reports whether the result was shared.
func (g *Group) Do(key string, fn func() (any, error)) (any, error, bool) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*flight)
	}

	if f, ok := g.calls[key]; ok {
		g.mu.Unlock()
		f.wg.Wait()
		return f.val, f.err, true
	}

	f := &flight{}
	f.wg.Add(1)
	g.calls[key] = f
	g.mu.Unlock()

	f.val, f.err = fn()
	f.wg.Done()

	g.mu.Lock()
	delete(g.calls, key)
	g.mu.Unlock()

	return f.val, f.err, false
}

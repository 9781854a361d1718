package control

/*
Responsibilities

- Hold a process-wide, package-level registry of running crawls keyed
  by seed URL, per spec's Control Plane design note: callers who keep
  the *Handle returned by engine.New never need the registry at all;
  it exists for callers (an admin endpoint, a signal handler) who only
  have the seed string.
*/

import "sync"

var registry sync.Map // seed URL -> *Handle

// Register installs h under its seed URL, replacing any prior handle
// registered for the same seed (a previous crawl against that seed
// must already be Terminated, or the caller is racing itself).
func Register(h *Handle) {
	registry.Store(h.Seed(), h)
}

// Unregister removes the handle for seed, if any. Engines call this
// once Terminated so the registry does not retain handles for crawls
// long finished.
func Unregister(seed string) {
	registry.Delete(seed)
}

// Lookup returns the handle registered for seed, if any.
func Lookup(seed string) (*Handle, bool) {
	v, ok := registry.Load(seed)
	if !ok {
		return nil, false
	}
	return v.(*Handle), true
}

// Pause signals the crawl registered under seed to pause. Reports
// whether a handle was found; the signal itself is idempotent and
// asynchronous.
func Pause(seed string) bool {
	h, ok := Lookup(seed)
	if !ok {
		return false
	}
	h.Pause()
	return true
}

// Resume signals the crawl registered under seed to resume.
func Resume(seed string) bool {
	h, ok := Lookup(seed)
	if !ok {
		return false
	}
	h.Resume()
	return true
}

// Shutdown signals the crawl registered under seed to terminate.
// Already-published pages remain delivered to subscribers; only
// in-flight and future fetches are cancelled.
func Shutdown(seed string) bool {
	h, ok := Lookup(seed)
	if !ok {
		return false
	}
	h.Shutdown()
	return true
}

package service

import (
	"context"
	"sync"
)

type taskHandle struct {
	cancel context.CancelFunc
}

// taskRegistry maps reminder keys to cancellable in-flight delivery tasks.
// It is process-local state with process lifetime; durable state lives in
// the store, so the registry starts empty on every boot.
type taskRegistry struct {
	mu    sync.Mutex
	tasks map[string]*taskHandle
}

func newTaskRegistry() *taskRegistry {
	return &taskRegistry{
		tasks: make(map[string]*taskHandle),
	}
}

// register cancels any existing task for the key and installs a new one.
// The returned release func must be called when the task finishes; it only
// removes the entry if it still belongs to this task.
func (r *taskRegistry) register(key string) (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	handle := &taskHandle{cancel: cancel}

	r.mu.Lock()
	if old, ok := r.tasks[key]; ok {
		old.cancel()
	}
	r.tasks[key] = handle
	r.mu.Unlock()

	release := func() {
		r.mu.Lock()
		if r.tasks[key] == handle {
			delete(r.tasks, key)
		}
		r.mu.Unlock()
		cancel()
	}

	return ctx, release
}

func (r *taskRegistry) cancel(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if handle, ok := r.tasks[key]; ok {
		handle.cancel()
		delete(r.tasks, key)
	}
}

func (r *taskRegistry) active(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.tasks[key]
	return ok
}

func (r *taskRegistry) cancelAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, handle := range r.tasks {
		handle.cancel()
		delete(r.tasks, key)
	}
}

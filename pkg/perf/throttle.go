package perf

import (
	"sync"
	"time"
)

// Throttler executa fn imediatamente na primeira chamada de cada janela (borda inicial).
// Chamadas dentro da janela agendam uma única execução de recuperação para o tempo restante,
// sempre com o argumento mais recente.
type Throttler[T any] struct {
	mu       sync.Mutex
	wait     time.Duration
	fn       func(T)
	lastExec time.Time
	timer    *time.Timer
}

// Throttle cria um Throttler para fn.
func Throttle[T any](fn func(T), wait time.Duration) *Throttler[T] {
	return &Throttler[T]{fn: fn, wait: wait}
}

// Call executa ou agenda fn(v).
func (t *Throttler[T]) Call(v T) {
	t.mu.Lock()
	now := time.Now()
	elapsed := now.Sub(t.lastExec)

	if t.lastExec.IsZero() || elapsed > t.wait {
		if t.timer != nil {
			t.timer.Stop()
			t.timer = nil
		}
		t.lastExec = now
		t.mu.Unlock()
		t.fn(v)
		return
	}

	if t.timer != nil {
		t.timer.Stop()
	}
	remaining := t.wait - elapsed
	if remaining < 0 {
		remaining = 0
	}
	t.timer = time.AfterFunc(remaining, func() {
		t.mu.Lock()
		t.lastExec = time.Now()
		t.timer = nil
		t.mu.Unlock()
		t.fn(v)
	})
	t.mu.Unlock()
}

// Stop descarta a execução de recuperação pendente.
func (t *Throttler[T]) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

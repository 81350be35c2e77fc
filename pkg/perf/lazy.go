package perf

import (
	"context"
	"sync"
)

// Lazy devolve um valor provisório até que o carregamento em segundo plano termine com sucesso.
// Se o carregamento falhar, o valor provisório permanece.
type Lazy[T any] struct {
	mu     sync.RWMutex
	value  T
	loaded bool
	err    error

	load  func(ctx context.Context) (T, error)
	start sync.Once
	done  chan struct{}
}

// NewLazy cria um Lazy com o valor provisório placeholder.
func NewLazy[T any](placeholder T, load func(ctx context.Context) (T, error)) *Lazy[T] {
	return &Lazy[T]{value: placeholder, load: load, done: make(chan struct{})}
}

// Start dispara o carregamento uma única vez, em goroutine própria.
func (l *Lazy[T]) Start(ctx context.Context) {
	l.start.Do(func() {
		go func() {
			defer close(l.done)
			v, err := l.load(ctx)
			l.mu.Lock()
			defer l.mu.Unlock()
			if err != nil {
				l.err = err
				return
			}
			l.value = v
			l.loaded = true
		}()
	})
}

// Get devolve o valor atual e se ele já é o definitivo.
func (l *Lazy[T]) Get() (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.value, l.loaded
}

// Wait inicia o carregamento (se necessário) e bloqueia até o fim ou o cancelamento de ctx.
func (l *Lazy[T]) Wait(ctx context.Context) (T, error) {
	l.Start(ctx)
	select {
	case <-l.done:
	case <-ctx.Done():
		v, _ := l.Get()
		return v, ctx.Err()
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.value, l.err
}

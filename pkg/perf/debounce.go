// Package perf reúne utilitários genéricos de desempenho: debounce, throttle, retry com
// intervalo fixo, valor carregado de forma preguiçosa, filtro de listas e estado de formulário.
package perf

import (
	"sync"
	"time"
)

// Debouncer adia a execução de fn até que wait passe sem novas chamadas.
// Apenas a borda final é executada, com o argumento da última chamada.
type Debouncer[T any] struct {
	mu    sync.Mutex
	wait  time.Duration
	fn    func(T)
	timer *time.Timer
}

// Debounce cria um Debouncer para fn.
func Debounce[T any](fn func(T), wait time.Duration) *Debouncer[T] {
	return &Debouncer[T]{fn: fn, wait: wait}
}

// Call reinicia a janela de espera com o valor v.
func (d *Debouncer[T]) Call(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.wait, func() { d.fn(v) })
}

// Cancel descarta a execução pendente, se houver.
func (d *Debouncer[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

package perf

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Valores padrão de Retry.
const (
	DefaultRetryCount = 3
	DefaultRetryDelay = time.Second
)

// RetryOptions configura Retry.
type RetryOptions struct {
	// Count é o total de tentativas (não apenas as repetições). Zero usa DefaultRetryCount.
	Count int
	// Delay é o intervalo fixo entre tentativas, sem crescimento. Zero usa DefaultRetryDelay.
	Delay time.Duration
	// OnRetry, se definido, é chamado após cada falha que ainda terá nova tentativa.
	OnRetry func(err error, next time.Duration)
}

// Retry executa op até Count vezes com intervalo fixo. Quando as tentativas se esgotam,
// devolve o último erro. O cancelamento de ctx interrompe a espera e devolve ctx.Err().
func Retry[T any](ctx context.Context, opts RetryOptions, op func(ctx context.Context) (T, error)) (T, error) {
	if opts.Count <= 0 {
		opts.Count = DefaultRetryCount
	}
	if opts.Delay <= 0 {
		opts.Delay = DefaultRetryDelay
	}

	var b backoff.BackOff = backoff.NewConstantBackOff(opts.Delay)
	b = backoff.WithMaxRetries(b, uint64(opts.Count-1))
	b = backoff.WithContext(b, ctx)

	notify := opts.OnRetry
	if notify == nil {
		notify = func(error, time.Duration) {}
	}
	return backoff.RetryNotifyWithData(func() (T, error) { return op(ctx) }, b, notify)
}

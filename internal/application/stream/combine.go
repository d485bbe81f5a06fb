package stream

import "context"

// CombineLatest3 emits combine(a, b, c) once every input has produced a value and
// again whenever any input emits, using the latest value of the others.
//
// Like Watch, the output holds only the latest unread result. It is closed when
// ctx is done or when all inputs are closed. A non-nil release runs after the
// output is closed, so a caller can cancel the context feeding the inputs.
func CombineLatest3[A, B, C, R any](
	ctx context.Context,
	as <-chan A,
	bs <-chan B,
	cs <-chan C,
	combine func(A, B, C) R,
	release func(),
) <-chan R {
	out := make(chan R, 1)

	go func() {
		defer func() {
			close(out)
			if release != nil {
				release()
			}
		}()

		var (
			a                A
			b                B
			c                C
			hasA, hasB, hasC bool
		)

		for as != nil || bs != nil || cs != nil {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-as:
				if !ok {
					as = nil
					continue
				}
				a, hasA = v, true
			case v, ok := <-bs:
				if !ok {
					bs = nil
					continue
				}
				b, hasB = v, true
			case v, ok := <-cs:
				if !ok {
					cs = nil
					continue
				}
				c, hasC = v, true
			}

			if hasA && hasB && hasC {
				replace(out, combine(a, b, c))
			}
		}
	}()

	return out
}

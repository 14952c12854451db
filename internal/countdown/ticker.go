package countdown

import "time"

// Ticker invokes fn once per interval until stopped. Start launches the
// goroutine; Stop waits for it to exit and is safe to call more than once.
type Ticker struct {
	interval time.Duration
	fn       func(now time.Time)

	stop chan struct{}
	done chan struct{}
}

func NewTicker(interval time.Duration, fn func(now time.Time)) *Ticker {
	return &Ticker{
		interval: interval,
		fn:       fn,
	}
}

func (t *Ticker) Start() {
	if t.stop != nil {
		return
	}
	t.stop = make(chan struct{})
	t.done = make(chan struct{})

	go func() {
		defer close(t.done)

		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()

		for {
			select {
			case now := <-ticker.C:
				t.fn(now)
			case <-t.stop:
				return
			}
		}
	}()
}

func (t *Ticker) Stop() {
	if t.stop == nil {
		return
	}
	select {
	case <-t.stop:
	default:
		close(t.stop)
	}
	<-t.done
}

package timekeeper

import "time"

// Ticker is the periodic trigger that drives a running countdown.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory creates a Ticker firing every interval.
type TickerFactory func(interval time.Duration) Ticker

type clockTicker struct {
	ticker *time.Ticker
}

// NewClockTicker returns a Ticker backed by time.Ticker.
func NewClockTicker(interval time.Duration) Ticker {
	return clockTicker{ticker: time.NewTicker(interval)}
}

func (t clockTicker) C() <-chan time.Time {
	return t.ticker.C
}

func (t clockTicker) Stop() {
	t.ticker.Stop()
}

// startTickerLocked acquires a fresh ticker, releasing any previous one.
func (keeper *TimeKeeper) startTickerLocked() {
	keeper.stopTickerLocked()
	if keeper.closed {
		return
	}

	keeper.generation++
	ticker := keeper.options.NewTicker(keeper.options.TickInterval)
	stopCh := make(chan struct{})
	keeper.ticker = ticker
	keeper.stopCh = stopCh

	go keeper.run(ticker, stopCh, keeper.generation)
}

func (keeper *TimeKeeper) stopTickerLocked() {
	if keeper.ticker == nil {
		return
	}
	keeper.ticker.Stop()
	close(keeper.stopCh)
	keeper.ticker = nil
	keeper.stopCh = nil
}

func (keeper *TimeKeeper) run(ticker Ticker, stopCh <-chan struct{}, generation uint64) {
	for {
		select {
		case <-stopCh:
			return
		case tickTime := <-ticker.C():
			keeper.tickFrom(generation, tickTime)
		}
	}
}

// tickFrom ignores ticks from a ticker that has already been released.
func (keeper *TimeKeeper) tickFrom(generation uint64, tickTime time.Time) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if generation != keeper.generation || keeper.ticker == nil || !keeper.running {
		return
	}
	keeper.tickLocked(tickTime)
}

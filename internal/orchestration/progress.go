package orchestration

import "sync"

// ProgressAggregator averages progress across several reducers. It is
// safe for concurrent use.
type ProgressAggregator struct {
	mu     sync.Mutex
	values []float64
}

// NewProgressAggregator returns an aggregator for numReducers reducers, or
// nil if numReducers <= 0.
func NewProgressAggregator(numReducers int) *ProgressAggregator {
	if numReducers <= 0 {
		return nil
	}
	return &ProgressAggregator{values: make([]float64, numReducers)}
}

// AggregatedProgress is the result of applying one update.
type AggregatedProgress struct {
	ReducerIndex    int
	Value           float64
	AverageProgress float64
}

// Update records update and returns the new average. Out-of-range indices
// are ignored and values are clamped to [0, 1].
func (a *ProgressAggregator) Update(update ProgressUpdate) AggregatedProgress {
	a.mu.Lock()
	defer a.mu.Unlock()
	if update.ReducerIndex >= 0 && update.ReducerIndex < len(a.values) {
		a.values[update.ReducerIndex] = clamp01(update.Value)
	}
	return AggregatedProgress{
		ReducerIndex:    update.ReducerIndex,
		Value:           update.Value,
		AverageProgress: a.averageLocked(),
	}
}

// CalculateAverage returns the current average without updating.
func (a *ProgressAggregator) CalculateAverage() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.averageLocked()
}

// NumReducers returns the number of tracked reducers.
func (a *ProgressAggregator) NumReducers() int { return len(a.values) }

// IsMultiReducer reports whether more than one reducer is tracked.
func (a *ProgressAggregator) IsMultiReducer() bool { return len(a.values) > 1 }

func (a *ProgressAggregator) averageLocked() float64 {
	var total float64
	for _, v := range a.values {
		total += v
	}
	return total / float64(len(a.values))
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// DrainChannel discards every update until the channel is closed.
func DrainChannel(progressChan <-chan ProgressUpdate) {
	for range progressChan {
	}
}

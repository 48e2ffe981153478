package retry

import (
	"math"
	"time"
)

// Strategy computes the delay before a retry. The attempt index is 0-based:
// Delay(0) is the wait before the first retry.
type Strategy interface {
	Delay(attempt int) time.Duration
}

// Constant returns a strategy with a fixed delay for every attempt.
func Constant(delay time.Duration) Strategy {
	return constantStrategy{delay: delay}
}

// Linear returns a strategy whose delay grows linearly: base × (attempt + 1).
func Linear(base time.Duration) Strategy {
	return linearStrategy{base: base}
}

// Exponential returns a strategy whose delay doubles per attempt: base × 2ⁿ.
func Exponential(base time.Duration) Strategy {
	return exponentialStrategy{base: base}
}

// Custom returns a strategy backed by an arbitrary attempt→delay function.
func Custom(fn func(attempt int) time.Duration) Strategy {
	return customStrategy{fn: fn}
}

type constantStrategy struct {
	delay time.Duration
}

func (s constantStrategy) Delay(int) time.Duration {
	return clamp(s.delay)
}

type linearStrategy struct {
	base time.Duration
}

func (s linearStrategy) Delay(attempt int) time.Duration {
	return clamp(s.base * time.Duration(attempt+1))
}

type exponentialStrategy struct {
	base time.Duration
}

func (s exponentialStrategy) Delay(attempt int) time.Duration {
	return clamp(time.Duration(float64(s.base) * math.Pow(2, float64(attempt))))
}

type customStrategy struct {
	fn func(int) time.Duration
}

func (s customStrategy) Delay(attempt int) time.Duration {
	if s.fn == nil {
		return 0
	}
	return clamp(s.fn(attempt))
}

// clamp ensures delays are never negative.
func clamp(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}

package srs

import (
	"math"
	"time"

	"github.com/peanuts/anki-api/internal/domain"
)

// nextInterval computes the new interval in days for a successful review,
// using the repetition count and ease factor as they were BEFORE this
// review was applied. Ease factor changes take effect starting with the
// next review, not the current one.
//
// The progression is the classic SM-2 ramp:
//   - first success after a reset: FirstInterval (1 day)
//   - second consecutive success: SecondInterval (6 days)
//   - afterwards: round(interval × easeFactor), half away from zero
//
// math.Round rounds half away from zero, which on these always-positive
// products is the same as round-half-up.
func nextInterval(repetitions, interval int, easeFactor float64, params Params) int {
	switch {
	case repetitions == 0:
		return params.FirstInterval
	case repetitions == 1:
		return params.SecondInterval
	default:
		return int(math.Round(float64(interval) * easeFactor))
	}
}

// nextEaseFactor adjusts the ease factor for the given quality rating.
//
// The adjustment is 0.1 − (5−q)·(0.08 + (5−q)·0.02), which by quality is:
// q=5 → +0.10, q=4 → 0.00, q=3 → −0.14, q=2 → −0.32, q=1 → −0.54,
// q=0 → −0.80. The result never drops below the configured floor.
func nextEaseFactor(easeFactor float64, quality int, params Params) float64 {
	q := float64(quality)
	newEF := easeFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	if newEF < params.MinEaseFactor {
		newEF = params.MinEaseFactor
	}
	return newEF
}

// apply produces the schedule that results from reviewing a card with the
// given quality at the given moment. The input schedule is not modified.
//
// Order matters: the new interval is computed from the pre-review ease
// factor, then the ease factor is updated (always, pass or fail), then the
// next review date is set to now plus the new interval in days.
func apply(schedule domain.ReviewSchedule, quality int, now time.Time, params Params) domain.ReviewSchedule {
	next := schedule

	if quality < PassThreshold {
		// Failure resets the card to the relearning state.
		next.Repetitions = 0
		next.Interval = params.FirstInterval
	} else {
		next.Interval = nextInterval(schedule.Repetitions, schedule.Interval, schedule.EaseFactor, params)
		next.Repetitions = schedule.Repetitions + 1
	}

	// The ease factor is adjusted on every review, including a failure of
	// a card that is already in the relearning state.
	next.EaseFactor = nextEaseFactor(schedule.EaseFactor, quality, params)

	next.NextReviewAt = now.AddDate(0, 0, next.Interval)

	return next
}

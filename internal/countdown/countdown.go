// Package countdown computes time remaining until the event and classifies
// the event phase. The calculator is stateless; recomputation is driven by a
// Ticker owned by whoever displays it.
package countdown

import "time"

type Remaining struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// Until decomposes the time left before target into whole days, hours,
// minutes, and seconds (integer truncation, no rounding). A target at or
// before now yields all zeros.
func Until(target, now time.Time) Remaining {
	diff := target.Sub(now)
	if diff <= 0 {
		return Remaining{}
	}

	const day = 24 * time.Hour

	return Remaining{
		Days:    int(diff / day),
		Hours:   int((diff % day) / time.Hour),
		Minutes: int((diff % time.Hour) / time.Minute),
		Seconds: int((diff % time.Minute) / time.Second),
	}
}

type Phase string

const (
	PhaseUpcoming Phase = "upcoming"
	PhaseLive     Phase = "live"
	PhaseEnded    Phase = "ended"
)

// PhaseOf distinguishes "counting down" from "happening now" and "over";
// Until alone collapses a passed target into all zeros.
func PhaseOf(start, end, now time.Time) Phase {
	switch {
	case now.Before(start):
		return PhaseUpcoming
	case now.Before(end):
		return PhaseLive
	default:
		return PhaseEnded
	}
}

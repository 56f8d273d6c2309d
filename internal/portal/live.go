package portal

import "time"

// LiveState is the broadcast window state of a video at a given instant.
// It is recomputed from the stored window on every evaluation, nothing is
// persisted.
type LiveState int

const (
	// LiveNone means the video is not a live broadcast.
	LiveNone LiveState = iota
	// LiveScheduled means the window has not opened yet.
	LiveScheduled
	// LiveActive means now is inside the window.
	LiveActive
	// LiveExpired means the window has closed.
	LiveExpired
)

func (s LiveState) String() string {
	switch s {
	case LiveScheduled:
		return "scheduled"
	case LiveActive:
		return "active"
	case LiveExpired:
		return "expired"
	}
	return "none"
}

// LiveStateAt evaluates the broadcast window against now.
func (v *Video) LiveStateAt(now time.Time) LiveState {
	if !v.IsLive || v.LiveStartDate == nil || v.LiveEndDate == nil {
		return LiveNone
	}

	switch {
	case now.Before(*v.LiveStartDate):
		return LiveScheduled
	case now.After(*v.LiveEndDate):
		return LiveExpired
	}
	return LiveActive
}

// selectLatest picks the video for the home hero slot: the most recently
// started active broadcast wins over plain recency; without an active
// broadcast the chronologically most recent video is used.
func selectLatest(active []Video, latest *Video, now time.Time) *Video {
	var pick *Video
	for i := range active {
		v := &active[i]
		if v.LiveStateAt(now) != LiveActive {
			continue
		}
		if pick == nil || v.LiveStartDate.After(*pick.LiveStartDate) {
			pick = v
		}
	}

	if pick != nil {
		return pick
	}
	return latest
}

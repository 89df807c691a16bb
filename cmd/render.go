package main

import "focustimer/internal/core/timekeeper"

// renderLatest redraws on every event from the latest state rather than the
// event payload, so a dropped event is repaired by the next one.
func renderLatest(events <-chan timekeeper.Event, latest func() timekeeper.Snapshot, do func(func()), render func(timekeeper.Snapshot)) {
	for range events {
		do(func() {
			render(latest())
		})
	}
}

package monitor

import "math"

// ComputeRates returns a copy of current with BytesPerSec filled in from the
// total-byte delta against baseline over intervalSeconds.
//
// Hosts missing from baseline (new hosts, or every host right after a reset
// cleared it) keep the cold-start rate of 0. A total that went backwards
// means the device reset or wrapped its counter; the rate is clamped to 0
// rather than reported negative.
func ComputeRates(baseline, current *Snapshot, intervalSeconds float64) *Snapshot {
	records := current.Records()

	for i := range records {
		records[i].BytesPerSec = 0
		if intervalSeconds <= 0 {
			continue
		}
		prev, ok := baseline.Get(records[i].IP)
		if !ok {
			continue
		}
		delta := records[i].TotalBytes - prev.TotalBytes
		if delta < 0 {
			continue
		}
		records[i].BytesPerSec = round2(float64(delta) / intervalSeconds)
	}

	out := NewSnapshot(records...)
	if current != nil {
		out.CapturedAt = current.CapturedAt
	}
	return out
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Package monitor implements the live per-host traffic dashboard.
//
// A Poller drives one Session through a fixed cycle:
//
//  1. reset the device counters if the user asked for it
//  2. refetch the MAC to hostname Directory if asked (always on the first cycle)
//  3. fetch a Snapshot of traffic counters
//  4. ComputeRates against the previous Snapshot
//  5. hand the result to the Dashboard, which renders and reads one key
//  6. keep the raw Snapshot as the next baseline
//  7. sleep for the poll interval
//
// Everything runs on one goroutine. Reset confirmation and unit entry block
// the loop until the user answers.
//
// # Key Components
//
//	Poller    - the loop above, against any Device
//	Dashboard - rendering plus key handling, against any Surface
//	KeyMap    - single key bindings built on bubbles/key
//	Snapshot  - one poll's HostRecords in device order
//
// # Rates
//
// A host's rate is the growth of its total byte counter since the previous
// poll divided by the poll interval, rounded to two decimals. Hosts without
// a previous sample, and counters that went backwards, report 0.
package monitor

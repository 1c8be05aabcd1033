package monitor

import (
	"strings"
	"time"
)

// HostRecord contains the traffic counters the device reports for one LAN host.
// All counters are cumulative since the last reset except the Current* fields,
// which cover the device's own sampling interval.
type HostRecord struct {
	IP             string  `json:"ip" yaml:"ip"`
	MAC            string  `json:"mac" yaml:"mac"`
	TotalPackets   int64   `json:"total_packets" yaml:"total_packets"`
	TotalBytes     int64   `json:"total_bytes" yaml:"total_bytes"`
	CurrentPackets int64   `json:"current_packets" yaml:"current_packets"`
	CurrentBytes   int64   `json:"current_bytes" yaml:"current_bytes"`
	CurrentICMP    int64   `json:"current_icmp" yaml:"current_icmp"`
	CurrentUDP     int64   `json:"current_udp" yaml:"current_udp"`
	CurrentSYN     int64   `json:"current_syn" yaml:"current_syn"`
	MaxICMP        int64   `json:"max_icmp" yaml:"max_icmp"`
	MaxUDP         int64   `json:"max_udp" yaml:"max_udp"`
	MaxSYN         int64   `json:"max_syn" yaml:"max_syn"`
	BytesPerSec    float64 `json:"bytes_per_sec" yaml:"bytes_per_sec"`
}

// Snapshot is one poll's set of host records, keyed by IP.
// Records keep the order the device reported them in so that sorting
// can break ties stably. A Snapshot is never modified after creation;
// a nil *Snapshot behaves as an empty one.
type Snapshot struct {
	order []string
	hosts map[string]HostRecord

	// CapturedAt is when the device answered.
	CapturedAt time.Time
}

// NewSnapshot builds a snapshot from records in order.
// A record whose IP repeats replaces the earlier one but keeps its position.
func NewSnapshot(records ...HostRecord) *Snapshot {
	s := &Snapshot{
		order: make([]string, 0, len(records)),
		hosts: make(map[string]HostRecord, len(records)),
	}
	for _, r := range records {
		if _, seen := s.hosts[r.IP]; !seen {
			s.order = append(s.order, r.IP)
		}
		s.hosts[r.IP] = r
	}
	return s
}

// Len returns the number of hosts in the snapshot.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Get returns the record for ip.
func (s *Snapshot) Get(ip string) (HostRecord, bool) {
	if s == nil {
		return HostRecord{}, false
	}
	r, ok := s.hosts[ip]
	return r, ok
}

// Records returns a copy of all records in device order.
func (s *Snapshot) Records() []HostRecord {
	if s == nil {
		return nil
	}
	out := make([]HostRecord, 0, len(s.order))
	for _, ip := range s.order {
		out = append(out, s.hosts[ip])
	}
	return out
}

// IPs returns the host addresses in device order.
func (s *Snapshot) IPs() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// NotReadyHostname is the placeholder the device reports for every host
// while its LAN table is still being populated.
const NotReadyHostname = "Unknown"

// Directory maps MAC addresses to display hostnames.
type Directory map[string]string

// Name returns the hostname for mac. The hostname table and the stats
// table don't always agree on letter case, so a case-insensitive match
// is tried when there is no exact one.
func (d Directory) Name(mac string) (string, bool) {
	if name, ok := d[mac]; ok {
		return name, true
	}
	for k, name := range d {
		if strings.EqualFold(k, mac) {
			return name, true
		}
	}
	return "", false
}

// NotReady reports whether any entry still carries the device's placeholder.
func (d Directory) NotReady() bool {
	for _, name := range d {
		if name == NotReadyHostname {
			return true
		}
	}
	return false
}

package modem

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rileyhilliard/sherry/internal/monitor"
)

// splitLines yields the key/value pairs of a response in order. Lines
// without "=" are dropped; the value is everything after the first "=".
func splitLines(raw []byte, fn func(key, value string)) {
	for _, line := range strings.Split(string(raw), "\n") {
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		fn(strings.TrimSpace(key), strings.TrimSpace(value))
	}
}

// DecodeHostnames parses the LAN host table into a MAC to hostname
// directory. Lines before the first MACAddress are ignored and a MAC
// without a hostName maps to "".
func DecodeHostnames(raw []byte) monitor.Directory {
	dir := monitor.Directory{}
	current := ""

	splitLines(raw, func(key, value string) {
		switch key {
		case KeyHostMAC:
			current = value
			if _, ok := dir[current]; !ok {
				dir[current] = ""
			}
		case KeyHostName:
			if current != "" {
				dir[current] = value
			}
		}
	})

	return dir
}

// DecodeStats parses the traffic statistics table. Each ipAddress line
// opens a record; a repeated address merges into the record it opened
// earlier. Fields with values that don't parse as integers are skipped, as
// are unknown keys and anything before the first valid ipAddress.
func DecodeStats(raw []byte) *monitor.Snapshot {
	var records []monitor.HostRecord
	index := map[string]int{}
	current := -1

	splitLines(raw, func(key, value string) {
		if key == KeyStatIP {
			ip, err := DecimalToIP(value)
			if err != nil {
				current = -1
				return
			}
			i, ok := index[ip]
			if !ok {
				i = len(records)
				index[ip] = i
				records = append(records, monitor.HostRecord{IP: ip})
			}
			current = i
			return
		}
		if current < 0 {
			return
		}
		setField(&records[current], key, value)
	})

	return monitor.NewSnapshot(records...)
}

// setField assigns one decoded value to r.
func setField(r *monitor.HostRecord, key, value string) {
	if key == KeyStatMAC {
		r.MAC = value
		return
	}

	var dst *int64
	switch key {
	case KeyTotalPackets:
		dst = &r.TotalPackets
	case KeyTotalBytes:
		dst = &r.TotalBytes
	case KeyCurrentPackets:
		dst = &r.CurrentPackets
	case KeyCurrentBytes:
		dst = &r.CurrentBytes
	case KeyCurrentICMP:
		dst = &r.CurrentICMP
	case KeyCurrentUDP:
		dst = &r.CurrentUDP
	case KeyCurrentSYN:
		dst = &r.CurrentSYN
	case KeyMaxICMP:
		dst = &r.MaxICMP
	case KeyMaxUDP:
		dst = &r.MaxUDP
	case KeyMaxSYN:
		dst = &r.MaxSYN
	default:
		return
	}

	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return
	}
	*dst = n
}

// DecimalToIP converts the router's 32-bit decimal address (network byte
// order) into dotted quad notation.
func DecimalToIP(value string) (string, error) {
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return "", fmt.Errorf("invalid address %q: %w", value, err)
	}
	return fmt.Sprintf("%d.%d.%d.%d", byte(n>>24), byte(n>>16), byte(n>>8), byte(n)), nil
}

package modem

// Request is one of the router's fixed control requests. The bodies are
// vendor defined and take no parameters.
type Request struct {
	Name string
	Path string
	Body string
}

// HostnamesRequest asks for the LAN host table (MAC to hostname).
func HostnamesRequest() Request {
	return Request{
		Name: "hostnames",
		Path: "cgi?5",
		Body: "[LAN_HOST_ENTRY#0,0,0,0,0,0#0,0,0,0,0,0]0,0\r\n",
	}
}

// StatsRequest asks for the per-host traffic statistics table.
func StatsRequest() Request {
	return Request{
		Name: "stats",
		Path: "cgi?1&5",
		Body: "[STAT_CFG#0,0,0,0,0,0#0,0,0,0,0,0]0,0\r\n[STAT_ENTRY#0,0,0,0,0,0#0,0,0,0,0,0]1,0\r\n",
	}
}

// ResetRequest zeroes the router's traffic statistics.
func ResetRequest() Request {
	return Request{
		Name: "reset",
		Path: "cgi?2",
		Body: "[STAT_CFG#0,0,0,0,0,0#0,0,0,0,0,0]0,1\r\naction=1\r\n",
	}
}

// Response keys. A sentinel key starts a new record group; every key that
// follows belongs to that group until the next sentinel.
const (
	// Hostname table
	KeyHostMAC  = "MACAddress" // sentinel
	KeyHostName = "hostName"

	// Stats table
	KeyStatIP         = "ipAddress" // sentinel, decimal uint32
	KeyStatMAC        = "macAddress"
	KeyTotalPackets   = "totalPkts"
	KeyTotalBytes     = "totalBytes"
	KeyCurrentPackets = "currPkts"
	KeyCurrentBytes   = "currBytes"
	KeyCurrentICMP    = "currIcmp"
	KeyCurrentUDP     = "currUdp"
	KeyCurrentSYN     = "currSyn"
	KeyMaxICMP        = "currIcmpMax"
	KeyMaxUDP         = "currUdpMax"
	KeyMaxSYN         = "currSynMax"
)

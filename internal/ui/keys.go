package ui

// decodeKeys splits raw terminal input into key names. Printable ASCII maps
// to itself, ctrl+c to "ctrl+c", and escape sequences (arrows, function
// keys) are dropped.
func decodeKeys(buf []byte) []string {
	var keys []string
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		switch {
		case b == 0x03:
			keys = append(keys, "ctrl+c")
		case b == 0x1b:
			// CSI and SS3 sequences end at the first byte in 0x40..0x7e.
			if i+1 < len(buf) && (buf[i+1] == '[' || buf[i+1] == 'O') {
				i += 2
				for i < len(buf) && (buf[i] < 0x40 || buf[i] > 0x7e) {
					i++
				}
			}
		case b >= 0x20 && b < 0x7f:
			keys = append(keys, string(rune(b)))
		}
	}
	return keys
}

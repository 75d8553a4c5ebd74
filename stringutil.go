package bindata

// String padding/trimming helpers. spec.md §1 calls these an external
// collaborator; they are small enough, and specific enough to this
// engine's exact truncate/pad/trim contract (§4.F family 4), that no
// pack dependency does anything more useful here than plain Go slicing.

// padString normalizes b to exactly length bytes: truncates from the end
// if too long, pads with padByte at the front or back if too short.
func padString(b []byte, length int, padByte byte, padFront bool) []byte {
	if len(b) >= length {
		return b[:length]
	}
	pad := make([]byte, length-len(b))
	for i := range pad {
		pad[i] = padByte
	}
	if padFront {
		return append(pad, b...)
	}
	return append(append([]byte{}, b...), pad...)
}

// trimPadding strips trailing padByte bytes, used only on read — spec.md
// §4.F: "never on write."
func trimPadding(b []byte, padByte byte) []byte {
	end := len(b)
	for end > 0 && b[end-1] == padByte {
		end--
	}
	return b[:end]
}

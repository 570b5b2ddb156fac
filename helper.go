package vietqr

const hexTableUpper = "0123456789ABCDEF"

// encodeHex16 writes v as 4 uppercase hex digits.
func encodeHex16(v uint16) string {
	var dst [4]byte
	dst[0] = hexTableUpper[v>>12&0x0f]
	dst[1] = hexTableUpper[v>>8&0x0f]
	dst[2] = hexTableUpper[v>>4&0x0f]
	dst[3] = hexTableUpper[v&0x0f]
	return string(dst[:])
}

func isASCIIDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

package conv

const hexDigits = "0123456789ABCDEF"

// AppendHex32 appends "0x" and n as eight zero-padded uppercase hex digits,
// the form register values are logged in.
func AppendHex32(dst []byte, n uint32) []byte {
	dst = append(dst, '0', 'x')
	for shift := 28; shift >= 0; shift -= 4 {
		dst = append(dst, hexDigits[(n>>uint(shift))&0xF])
	}
	return dst
}

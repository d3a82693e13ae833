package enc

// AppendEncode appends the encoding of data to buffer and returns the extended buffer. The buffer
// is only reallocated if its capacity is too small.
func AppendEncode(e Encoder, buffer, data []byte) ([]byte, error) {
	bl := len(buffer)
	buffer = grow(buffer, e.EncodedLen(len(data)))
	n, err := e.Encode(buffer[bl:], data)
	if err != nil {
		return nil, err
	}
	return buffer[:bl+n], nil
}

// AppendDecode appends the decoded form of encoded to buffer and returns the extended buffer.
func AppendDecode(e Encoder, buffer, encoded []byte) ([]byte, error) {
	bl := len(buffer)
	buffer = grow(buffer, e.DecodedLen(len(encoded)))
	n, err := e.Decode(buffer[bl:], encoded)
	if err != nil {
		return nil, err
	}
	return buffer[:bl+n], nil
}

// EncodeToString returns the encoding of data.
func EncodeToString(e Encoder, data []byte) (string, error) {
	res, err := AppendEncode(e, nil, data)
	if err != nil {
		return "", err
	}
	return string(res), nil
}

// DecodeString returns the bytes represented by the string s.
func DecodeString(e Encoder, s string) ([]byte, error) {
	return AppendDecode(e, nil, []byte(s))
}

// grow expands the used range of buffer by n bytes.
func grow(buffer []byte, n int) []byte {
	bl := len(buffer)
	bc := bl + n
	if cap(buffer) < bc { // Reallocate the buffer if needed.
		nb := make([]byte, bl, bc)
		copy(nb, buffer)
		buffer = nb
	}
	return buffer[:bc] // Expand the used range.
}

package enc

// Base32 and Base64 share the same shape: a group of rawLen bytes is loaded into a register
// and cut into groupLen symbols of width bits, most significant first.

// groupBytes returns how many bytes a group with the given number of symbols carries. A count is
// only valid if its leftover bits are shorter than one symbol, otherwise the encoder would never
// have emitted the last symbol.
func groupBytes(symbols int, width uint) (int, bool) {
	bits := uint(symbols) * width
	if symbols <= 0 || bits%8 >= width {
		return 0, false
	}
	return int(bits / 8), true
}

// encodedGroupLen returns the exact number of characters produced for n bytes.
func encodedGroupLen(n, rawLen, groupLen int, width uint, padded bool) int {
	if padded {
		return (n + rawLen - 1) / rawLen * groupLen
	}
	return (n*8 + int(width) - 1) / int(width)
}

func encodeGroups(dst, src []byte, a *alphabet, rawLen, groupLen int, width uint, padded bool) int {
	total := uint(rawLen) * 8
	mask := uint64(1)<<width - 1

	di := 0
	for si := 0; si < len(src); si += rawLen {
		rem := len(src) - si
		if rem > rawLen {
			rem = rawLen
		}

		// Short final groups are zero-filled
		var reg uint64
		for k := 0; k < rawLen; k++ {
			reg <<= 8
			if k < rem {
				reg |= uint64(src[si+k])
			}
		}

		symbols := (rem*8 + int(width) - 1) / int(width)
		for c := 0; c < groupLen; c++ {
			if c < symbols {
				dst[di] = a.encode[(reg>>(total-width*uint(c+1)))&mask]
				di++
			} else if padded {
				dst[di] = padChar
				di++
			}
		}
	}
	return di
}

func decodeGroups(codec string, dst, src []byte, a *alphabet, rawLen, groupLen int, width uint, padded bool) (int, error) {
	if len(src) == 0 {
		return 0, emptyInput(codec)
	}
	if padded && len(src)%groupLen != 0 {
		return 0, malformed(codec, len(src), "must be a multiple of %d", groupLen)
	}

	total := uint(rawLen) * 8
	di := 0
	padding := false
	for si := 0; si < len(src); si += groupLen {
		final := si+groupLen >= len(src)

		var reg uint64
		symbols := 0
		for j := 0; j < groupLen; j++ {
			reg <<= width
			p := si + j
			if p >= len(src) {
				// Unpadded input, the rest of the group is implied padding
				continue
			}
			c := src[p]
			if c == padChar {
				if !final {
					return di, corrupt(codec, src, p, "misplaced padding")
				}
				padding = true
				continue
			}
			if padding {
				return di, corrupt(codec, src, p, "data after padding")
			}
			v := a.decode[c]
			if v == invalid {
				return di, corrupt(codec, src, p, "")
			}
			reg |= uint64(v)
			symbols++
		}

		n, ok := groupBytes(symbols, width)
		if !ok {
			return di, malformed(codec, len(src), "final group holds %d symbols", symbols)
		}
		if di+n > len(dst) {
			return di, shortBuffer(codec, dst, len(src)*int(width)/8)
		}
		for k := 0; k < n; k++ {
			dst[di] = byte(reg >> (total - 8*uint(k+1)))
			di++
		}
	}
	return di, nil
}

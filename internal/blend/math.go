package blend

// div255 divides x by 255 exactly without using division.
//
// Formula: ((x + 1) + ((x + 1) >> 8)) >> 8
//
// This is Alvy Ray Smith's formula; it equals x / 255 for every x in
// [0, 255*255].
func div255(x uint16) uint16 {
	t := x + 1
	return (t + (t >> 8)) >> 8
}

// mulDiv255 returns a*b/255, rounded down.
func mulDiv255(a, b byte) byte {
	return byte(div255(uint16(a) * uint16(b)))
}

// lerp255 returns src*a + dst*(1-a) for a in 0-255, rounded down.
// a == 255 yields src and a == 0 yields dst exactly.
func lerp255(dst, src, a byte) byte {
	return byte(div255(uint16(src)*uint16(a) + uint16(dst)*uint16(255-a)))
}

package sharecodec

// rs1024Gen is the fixed ten-element generator table for the RS1024
// checksum, a 30-bit cyclic redundancy check over the 10-bit word
// alphabet. Values are fixed by the SLIP-39 standard and must be
// reproduced bit-exactly for interoperability.
var rs1024Gen = [10]uint32{
	0xe0e040, 0x1c1c080, 0x3838100, 0x7070200, 0xe0e0009,
	0x1c0c2412, 0x38086c24, 0x3090fc48, 0x21b1f890, 0x3f3f120,
}

// rs1024Polymod runs the RS1024 recurrence over values, returning the
// final 30-bit checksum register.
func rs1024Polymod(values []uint32) uint32 {
	chk := uint32(1)
	for _, v := range values {
		b := chk >> 20
		chk = ((chk & 0xFFFFF) << 10) ^ v
		for i := 0; i < 10; i++ {
			if (b>>i)&1 != 0 {
				chk ^= rs1024Gen[i]
			}
		}
	}
	return chk
}

// customizationValues renders a customization string ("shamir" or
// "shamir_extendable") as one 10-bit lane value per byte: the
// customization string is prepended as lane entries, not concatenated to
// the raw byte stream.
func customizationValues(customization string) []uint32 {
	values := make([]uint32, len(customization))
	for i := 0; i < len(customization); i++ {
		values[i] = uint32(customization[i])
	}
	return values
}

// rs1024VerifyChecksum reports whether wordIndices, prefixed by
// customization's lane values, reduces to a checksum residue of 1.
func rs1024VerifyChecksum(customization string, wordIndices []uint32) bool {
	values := append(customizationValues(customization), wordIndices...)
	return rs1024Polymod(values) == 1
}

// rs1024CreateChecksum returns the three 10-bit checksum limbs (most
// significant limb first) to append to wordIndices so that the full
// sequence, prefixed by customization, verifies.
func rs1024CreateChecksum(customization string, wordIndices []uint32) [3]uint32 {
	values := append(customizationValues(customization), wordIndices...)
	values = append(values, 0, 0, 0)
	polymod := rs1024Polymod(values) ^ 1

	var checksum [3]uint32
	for i := 0; i < 3; i++ {
		checksum[i] = (polymod >> uint(10*(2-i))) & 0x3FF
	}
	return checksum
}

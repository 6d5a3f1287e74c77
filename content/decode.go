package content

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// decodeTable maps every byte to its 6-bit value, or -1 when the byte is not
// part of the alphabet.
var decodeTable = func() [256]int8 {
	var table [256]int8
	for i := range table {
		table[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		table[alphabet[i]] = int8(i)
	}
	return table
}()

// DecodeEmbedded turns the compact text form of a page back into bytes.
//
// Symbols are consumed left to right, six bits each. A byte is emitted as soon
// as eight or more bits are pending. The first byte outside the alphabet
// (padding included) ends decoding and whatever was produced so far is
// returned; malformed input is never an error.
func DecodeEmbedded(encoded string) []byte {
	out := make([]byte, 0, len(encoded)*3/4)

	var acc uint32
	pending := -8 // bits pending minus eight
	for i := 0; i < len(encoded); i++ {
		v := decodeTable[encoded[i]]
		if v < 0 {
			break
		}

		acc = acc<<6 | uint32(v)
		pending += 6
		if pending >= 0 {
			out = append(out, byte(acc>>pending))
			pending -= 8
		}
	}

	return out
}

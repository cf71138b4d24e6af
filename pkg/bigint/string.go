package bigint

import (
	"strconv"
	"strings"
)

// Decimal digits are handled in base-10^9 blocks, the largest power of ten
// fitting in a uint32.
const (
	decDigits = 9
	decBase   = 1_000_000_000
)

func isSeparator(c byte) bool {
	return c == ',' || c == '\'' || c == ' '
}

// FromString parses a decimal integer. An optional leading '+' or '-' sets
// the sign, and comma, apostrophe, and space separators are ignored
// anywhere. Any other non-digit character is a *ParseError; so is an input
// with no digits.
func FromString(s string) (*Int, error) {
	neg := false
	seenSign := false
	digits := make([]byte, 0, len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isSeparator(c):
		case (c == '+' || c == '-') && !seenSign && len(digits) == 0:
			seenSign = true
			neg = c == '-'
		case c >= '0' && c <= '9':
			digits = append(digits, c)
		default:
			return nil, &ParseError{Input: s, Offset: i, Err: errInvalidDigit}
		}
	}
	if len(digits) == 0 {
		return nil, &ParseError{Input: s, Offset: len(s), Err: errEmptyInput}
	}

	// Fold base-10^9 blocks most-significant first: acc = acc*10^9 + block.
	z := []uint32{0}
	head := len(digits) % decDigits
	if head > 0 {
		z = mulAddWord(z, decBase, parseBlock(digits[:head]))
	}
	for i := head; i < len(digits); i += decDigits {
		z = mulAddWord(z, decBase, parseBlock(digits[i:i+decDigits]))
	}
	return makeInt(z, neg), nil
}

// parseBlock converts at most 9 decimal digit bytes to a uint32.
func parseBlock(digits []byte) uint32 {
	var v uint32
	for _, c := range digits {
		v = v*10 + uint32(c-'0')
	}
	return v
}

// MustParse is FromString for known-good literals; it panics on error.
func MustParse(s string) *Int {
	z, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return z
}

// decMulAdd folds one base-2^32 limb into a little-endian base-10^9 block
// vector: z = z*2^32 + limb.
func decMulAdd(z []uint32, limb uint32) []uint32 {
	carry := uint64(limb)
	for i := range z {
		t := uint64(z[i])<<32 + carry
		z[i] = uint32(t % decBase)
		carry = t / decBase
	}
	for carry > 0 {
		z = append(z, uint32(carry%decBase))
		carry /= decBase
	}
	return z
}

// String renders x in decimal: a '-' prefix for negatives, "0" for zero,
// otherwise the canonical representation with no leading zeros.
func (x *Int) String() string {
	if x.IsZero() {
		return "0"
	}

	// ceil(bits * log10(2) / 9) + 1 blocks always suffice.
	nblocks := x.BitLen()*30103/(100000*decDigits) + 2
	blocks := make([]uint32, 0, nblocks)
	for i := len(x.limbs) - 1; i >= 0; i-- {
		blocks = decMulAdd(blocks, x.limbs[i])
	}

	var sb strings.Builder
	if x.neg {
		sb.WriteByte('-')
	}
	top := len(blocks) - 1
	sb.WriteString(strconv.FormatUint(uint64(blocks[top]), 10))
	for i := top - 1; i >= 0; i-- {
		block := strconv.FormatUint(uint64(blocks[i]), 10)
		for pad := decDigits - len(block); pad > 0; pad-- {
			sb.WriteByte('0')
		}
		sb.WriteString(block)
	}
	return sb.String()
}

package utils

// CheckAdditionOverflow checks if the addition of two signed integers results in an overflow.
func CheckAdditionOverflow[T int64 | int32 | int16 | int8 | byte](a, b, sum T) bool {
	return ((T(a) > 0) && (T(b) > 0) && (sum < 0)) || ((T(a) < 0) && (T(b) < 0) && (sum > 0))
}

// CheckSubtractionOverflow checks if the subtraction of two signed integers results in an overflow.
func CheckSubtractionOverflow[T int64 | int32 | int16 | int8 | byte](a, b, diff T) bool {
	return ((T(a) < 0) && (T(b) > 0) && (diff > 0)) || ((T(a) > 0) && (T(b) < 0) && (diff < 0))
}

// CheckAddOverflowW is the width-generic form of CheckAdditionOverflow: the
// M65832 ALU works in masked uint32s at a width (8/16/32) picked at runtime
// by the M/X/W flags, so overflow has to be read off the width's own sign
// bit instead of Go's native int8/16/32/64 overflow.
func CheckAddOverflowW(a, b, sum uint32, width int) bool {
	signBit := uint32(1) << uint(width-1)
	return ((a^sum)&(b^sum))&signBit != 0
}

// CheckSubOverflowW is the width-generic form of CheckSubtractionOverflow.
func CheckSubOverflowW(a, b, diff uint32, width int) bool {
	signBit := uint32(1) << uint(width-1)
	return ((a^b)&(a^diff))&signBit != 0
}

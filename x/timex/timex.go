package timex

import "time"

// PeriodFromHz returns a nanosecond period for a requested frequency.
// freqHz==0 is coerced to 1 to avoid division by zero.
func PeriodFromHz(freqHz uint32) uint64 {
	if freqHz == 0 {
		freqHz = 1
	}
	return uint64(1_000_000_000 / uint64(freqHz))
}

// FrameTime is the wire time of one asynchronous frame of bits at baud.
func FrameTime(baud uint32, bits uint8) time.Duration {
	return time.Duration(PeriodFromHz(baud) * uint64(bits))
}

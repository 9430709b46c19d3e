package sqz

import "errors"

// Status mirrors the five-member result enum the codec's reference
// implementation returns from every entry point, kept here as a Stringer so
// callers that want to branch on the exact outcome (rather than just
// errors.Is against one of the sentinels below) still can.
type Status int

const (
	Ok Status = iota
	OutOfMemory
	InvalidParameter
	BufferTooSmall
	DataCorrupted
)

func (s Status) String() string {
	switch s {
	case Ok:
		return "ok"
	case OutOfMemory:
		return "out of memory"
	case InvalidParameter:
		return "invalid parameter"
	case BufferTooSmall:
		return "buffer too small"
	case DataCorrupted:
		return "data corrupted"
	default:
		return "unknown status"
	}
}

// These sentinel errors are the errors.Is-compatible form of the four
// non-Ok statuses; Encode and Decode return one of them (wrapped with
// fmt.Errorf context where useful) rather than a bare Status, so that
// ordinary Go error-handling idioms work alongside Status.
var (
	// ErrOutOfMemory is returned when a descriptor's total coefficient count
	// (width*height*planes) exceeds maxAllocationSamples, so the allocation
	// is rejected before it is attempted, rather than letting make panic.
	ErrOutOfMemory = errors.New("sqz: out of memory")

	// ErrInvalidParameter is returned when a Descriptor fails validation on
	// encode: a dimension, colour mode, scan order, or level count outside
	// the supported range. Decode also returns it when the source does not
	// begin with a complete header carrying the magic byte.
	ErrInvalidParameter = errors.New("sqz: invalid parameter")

	// ErrBufferTooSmall is returned when the destination buffer cannot hold
	// the result. On Decode, the required length is returned alongside the
	// error so the caller can retry with a correctly sized buffer.
	ErrBufferTooSmall = errors.New("sqz: buffer too small")

	// ErrDataCorrupted is returned when a decoded header carries field
	// values the encoder would never have produced (a width or height
	// outside the supported range). It is never returned for a bitstream that merely runs out
	// partway through bitplane coding; that case decodes to a lossier but
	// valid image instead of failing.
	ErrDataCorrupted = errors.New("sqz: data corrupted")
)

package sqz

// maxAllocationSamples bounds the total coefficient count (width * height *
// num_planes) a descriptor may request. It exists so a pathological
// Descriptor is rejected with ErrOutOfMemory before newContext attempts the
// make() calls that would otherwise size it, rather than letting the Go
// runtime's own out-of-memory handling (a panic, not an error) decide.
const maxAllocationSamples = 1 << 28

// validateEncode checks a caller-supplied descriptor and fills NumPlanes and
// a size-clamped DWTLevels, the way encoding needs it.
func validateEncode(d *Descriptor) error {
	if err := validateShape(d); err != nil {
		return err
	}
	if max := maxLevelsForDimensions(d.Width, d.Height); d.DWTLevels > max {
		d.DWTLevels = max
	}
	d.NumPlanes = numPlanesFor(d.ColorMode)
	if err := checkAllocationSize(d); err != nil {
		return err
	}
	return nil
}

// validateDecode checks a descriptor recovered from a bitstream header. A
// value outside range here means the stream is corrupt, not that the caller
// made a mistake, and a DWTLevels too large for the image's size is clamped
// rather than rejected, since an encoder from a wider build than this one
// could legitimately have used more levels on a larger image than this
// decoder otherwise expects.
func validateDecode(d *Descriptor) error {
	if err := validateShape(d); err != nil {
		return ErrDataCorrupted
	}
	if max := maxLevelsForDimensions(d.Width, d.Height); d.DWTLevels > max {
		d.DWTLevels = max
	}
	d.NumPlanes = numPlanesFor(d.ColorMode)
	if err := checkAllocationSize(d); err != nil {
		return err
	}
	return nil
}

func checkAllocationSize(d *Descriptor) error {
	if d.Width*d.Height*d.NumPlanes > maxAllocationSamples {
		return ErrOutOfMemory
	}
	return nil
}

func validateShape(d *Descriptor) error {
	if d.Width < MinDimension || d.Width > MaxDimension ||
		d.Height < MinDimension || d.Height > MaxDimension ||
		d.ColorMode < Grayscale || d.ColorMode >= colorModeCount ||
		d.ScanOrder < Raster || d.ScanOrder > Hilbert ||
		d.DWTLevels <= 0 || d.DWTLevels > MaxDWTLevels {
		return ErrInvalidParameter
	}
	return nil
}

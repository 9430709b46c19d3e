package sqz

// Options carries the sqz-specific encode parameters passed through
// codec.EncodeParams.Options: everything a Descriptor needs beyond the
// image's own width, height, and component count.
type Options struct {
	ColorMode   ColorMode
	DWTLevels   int
	ScanOrder   ScanOrder
	Subsampling bool
	// Budget caps the encoded size in bytes. Zero means
	// width*height*components bytes; a stream that needs more than that is
	// truncated to it.
	Budget int
}

// Validate implements codec.Options.
func (o Options) Validate() error {
	if o.ColorMode < Grayscale || o.ColorMode >= colorModeCount {
		return ErrInvalidParameter
	}
	if o.ScanOrder < Raster || o.ScanOrder > Hilbert {
		return ErrInvalidParameter
	}
	if o.DWTLevels < 0 || o.DWTLevels > MaxDWTLevels {
		return ErrInvalidParameter
	}
	if o.Budget < 0 {
		return ErrInvalidParameter
	}
	return nil
}

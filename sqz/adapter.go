package sqz

import (
	"fmt"

	"github.com/cocosip/sqz/codec"
)

// uid is the bitstream's own identifier, standing in for a registry-assigned
// UID the way the header's magic byte already uniquely tags the format.
const uid = "1.2.826.0.1.3680043.sqz.A5"

// adapter satisfies codec.Codec, letting sqz be discovered through the
// shared registry by name ("sqz") or by uid the same way other codecs in
// this module's lineage are discovered by their DICOM transfer syntax UID.
type adapter struct{}

func init() {
	codec.Register(adapter{})
}

func (adapter) Name() string { return "sqz" }
func (adapter) UID() string  { return uid }

func (adapter) Encode(params codec.EncodeParams) ([]byte, error) {
	opts, _ := params.Options.(Options)
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("sqz: encode: %w", err)
	}
	levels := opts.DWTLevels
	if levels == 0 {
		levels = MaxDWTLevels
	}
	descriptor := Descriptor{
		Width:       params.Width,
		Height:      params.Height,
		ColorMode:   opts.ColorMode,
		DWTLevels:   levels,
		ScanOrder:   opts.ScanOrder,
		Subsampling: opts.Subsampling,
	}

	size := opts.Budget
	if size == 0 {
		size = params.Width * params.Height * params.Components
	}
	dest := make([]byte, size)
	n, err := Encode(params.PixelData, dest, descriptor)
	if err != nil {
		return nil, fmt.Errorf("sqz: encode: %w", err)
	}
	return dest[:n], nil
}

func (adapter) Decode(data []byte) (*codec.DecodeResult, error) {
	descriptor, length, err := Decode(data, nil)
	if err == nil {
		return nil, fmt.Errorf("sqz: decode: unexpected success probing required size")
	}
	if err != ErrBufferTooSmall {
		return nil, fmt.Errorf("sqz: decode: %w", err)
	}

	dest := make([]byte, length)
	descriptor, _, err = Decode(data, dest)
	if err != nil {
		return nil, fmt.Errorf("sqz: decode: %w", err)
	}

	return &codec.DecodeResult{
		PixelData:  dest,
		Width:      descriptor.Width,
		Height:     descriptor.Height,
		Components: descriptor.NumPlanes,
		BitDepth:   8,
	}, nil
}

package mineengine

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
)

// decoder is a tiny cursor over an in-memory byte slice shared by the
// current and legacy decoders, so both can report ErrDecodeFailure
// uniformly on a short read instead of panicking on a slice bound.
type decoder struct {
	data []byte
	pos  int
}

func newDecoder(data []byte) *decoder {
	return &decoder{data: data}
}

func (d *decoder) need(n int) error {
	if d.pos+n > len(d.data) {
		return errors.Wrap(ErrDecodeFailure, "unexpected end of stream")
	}
	return nil
}

func (d *decoder) atEnd() bool { return d.pos == len(d.data) }

func (d *decoder) expectHeader(version byte) error {
	if err := d.need(len(magic) + 1); err != nil {
		return err
	}
	if string(d.data[d.pos:d.pos+len(magic)]) != magic {
		return errors.Wrap(ErrDecodeFailure, "bad magic")
	}
	d.pos += len(magic)
	got := d.data[d.pos]
	d.pos++
	if got != version {
		return errors.Wrapf(ErrDecodeFailure, "expected version %d, got %d", version, got)
	}
	return nil
}

func (d *decoder) readByte() (byte, error) {
	if err := d.need(1); err != nil {
		return 0, err
	}
	b := d.data[d.pos]
	d.pos++
	return b, nil
}

func (d *decoder) readBool() (bool, error) {
	b, err := d.readByte()
	return b != 0, err
}

func (d *decoder) readInt32() (int32, error) {
	if err := d.need(4); err != nil {
		return 0, err
	}
	v := int32(binary.LittleEndian.Uint32(d.data[d.pos:]))
	d.pos += 4
	return v, nil
}

func (d *decoder) readUint32() (uint32, error) {
	if err := d.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(d.data[d.pos:])
	d.pos += 4
	return v, nil
}

func (d *decoder) readInt64() (int64, error) {
	if err := d.need(8); err != nil {
		return 0, err
	}
	v := int64(binary.LittleEndian.Uint64(d.data[d.pos:]))
	d.pos += 8
	return v, nil
}

func (d *decoder) readFloat32() (float32, error) {
	if err := d.need(4); err != nil {
		return 0, err
	}
	v := math.Float32frombits(binary.LittleEndian.Uint32(d.data[d.pos:]))
	d.pos += 4
	return v, nil
}

func (d *decoder) readChunks() (*board, error) {
	count, err := d.readUint32()
	if err != nil {
		return nil, err
	}
	b := newBoard()
	for i := uint32(0); i < count; i++ {
		x, err := d.readInt32()
		if err != nil {
			return nil, err
		}
		y, err := d.readInt32()
		if err != nil {
			return nil, err
		}
		if err := d.need(chunkSize * chunkSize); err != nil {
			return nil, err
		}
		var ch chunk
		copy(ch[:], d.data[d.pos:d.pos+chunkSize*chunkSize])
		d.pos += chunkSize * chunkSize
		b.chunks[chunkCoord{X: x, Y: y}] = &ch
	}
	return b, nil
}

func (d *decoder) readRiskCache() (*riskCache, error) {
	count, err := d.readUint32()
	if err != nil {
		return nil, err
	}
	rc := newRiskCache()
	for i := uint32(0); i < count; i++ {
		x, err := d.readInt32()
		if err != nil {
			return nil, err
		}
		y, err := d.readInt32()
		if err != nil {
			return nil, err
		}
		r, err := d.readFloat32()
		if err != nil {
			return nil, err
		}
		rc.insert(Coord{X: x, Y: y}, clamp01(r))
	}
	return rc, nil
}

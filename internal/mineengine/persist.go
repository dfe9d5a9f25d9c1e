package mineengine

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"time"

	"github.com/pkg/errors"
)

// magic tags every stream this package writes, current or legacy.
// currentVersion is the only version Save ever emits; legacyVersion is
// the one prior format Load still knows how to fall back to.
const (
	magic          = "MORC"
	currentVersion = byte(2)
	legacyVersion  = byte(1)
)

// Save serializes the entire Field at the current version: density,
// judge, solvability, size, reveal count, elapsed time, every
// allocated chunk, and the risk cache.
func (f *Field) Save(w io.Writer) error {
	var buf bytes.Buffer
	buf.WriteString(magic)
	buf.WriteByte(currentVersion)

	writeFloat32(&buf, f.density)
	buf.WriteByte(byte(f.judge))
	writeBool(&buf, f.solvable)

	writeBool(&buf, f.size != nil)
	if f.size != nil {
		writeInt32(&buf, f.size.Width)
		writeInt32(&buf, f.size.Height)
	}

	writeUint32(&buf, uint32(f.cellsRevealed))
	writeInt64(&buf, int64(f.timeElapsed))

	writeChunks(&buf, f.chunks)
	writeRiskCache(&buf, f.riskCache)

	_, err := w.Write(buf.Bytes())
	return errors.Wrap(err, "mineengine: write field")
}

// Load decodes a Field previously written by Save. It first tries the
// current format; on any failure it rewinds to the start of the data
// and attempts the legacy format instead.
// Only if both attempts fail does Load return ErrDecodeFailure.
func Load(r io.Reader, opts *Options) (*Field, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "mineengine: read field")
	}

	if f, err := decodeCurrent(data, opts); err == nil {
		return f, nil
	}
	if f, err := decodeLegacy(data, opts); err == nil {
		return f, nil
	}
	return nil, errors.Wrap(ErrDecodeFailure, "neither current nor legacy format matched")
}

func decodeCurrent(data []byte, opts *Options) (*Field, error) {
	dec := newDecoder(data)
	if err := dec.expectHeader(currentVersion); err != nil {
		return nil, err
	}

	density, err := dec.readFloat32()
	if err != nil {
		return nil, err
	}
	judgeByte, err := dec.readByte()
	if err != nil {
		return nil, err
	}
	solvable, err := dec.readBool()
	if err != nil {
		return nil, err
	}

	hasSize, err := dec.readBool()
	if err != nil {
		return nil, err
	}
	var size *Size
	if hasSize {
		width, err := dec.readInt32()
		if err != nil {
			return nil, err
		}
		height, err := dec.readInt32()
		if err != nil {
			return nil, err
		}
		size = &Size{Width: width, Height: height}
	}

	cellsRevealed, err := dec.readUint32()
	if err != nil {
		return nil, err
	}
	timeElapsed, err := dec.readInt64()
	if err != nil {
		return nil, err
	}

	chunks, err := dec.readChunks()
	if err != nil {
		return nil, err
	}
	cache, err := dec.readRiskCache()
	if err != nil {
		return nil, err
	}
	if !dec.atEnd() {
		return nil, errors.Wrap(ErrDecodeFailure, "trailing bytes after current-format field")
	}

	f := &Field{
		chunks:        chunks,
		riskCache:     cache,
		density:       density,
		judge:         Judge(judgeByte),
		solvable:      solvable,
		size:          size,
		cellsRevealed: int(cellsRevealed),
		timeElapsed:   time.Duration(timeElapsed),
		rng:           newRNG(opts.resolveSeed()),
	}
	return f, nil
}

func writeFloat32(buf *bytes.Buffer, v float32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
	buf.Write(b[:])
}

func writeInt32(buf *bytes.Buffer, v int32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(v))
	buf.Write(b[:])
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func writeInt64(buf *bytes.Buffer, v int64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(v))
	buf.Write(b[:])
}

func writeBool(buf *bytes.Buffer, v bool) {
	if v {
		buf.WriteByte(1)
	} else {
		buf.WriteByte(0)
	}
}

func writeChunks(buf *bytes.Buffer, b *board) {
	writeUint32(buf, uint32(len(b.chunks)))
	for cc, ch := range b.chunks {
		writeInt32(buf, cc.X)
		writeInt32(buf, cc.Y)
		buf.Write(ch[:])
	}
}

func writeRiskCache(buf *bytes.Buffer, rc *riskCache) {
	writeUint32(buf, uint32(len(rc.byCoord)))
	for c, r := range rc.byCoord {
		writeInt32(buf, c.X)
		writeInt32(buf, c.Y)
		writeFloat32(buf, r)
	}
}

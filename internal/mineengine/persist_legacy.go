package mineengine

import "github.com/pkg/errors"

// decodeLegacy reads the one prior on-disk format Load still falls
// back to. The legacy stream shares the current format's magic,
// chunk table, and coord->probability cache table, but predates
// solvability, finite size, and elapsed-time tracking, and collapsed
// KaboomGlobal/KaboomLocal into a single `Kaboom` variant. Loading
// performs this conversion:
//   - maps legacy Judge value 5 (`Kaboom`) onto KaboomGlobal;
//   - leaves size unset (an unbounded board);
//   - recomputes cells_revealed by walking the decoded chunks rather
//     than trusting a stored count that never existed;
//   - starts time_elapsed at zero.
//
// solvable has no legacy bit at all; it defaults to true, the most
// permissive reading consistent with a pre-solvability engine that
// never refused to preserve solvability because the concept did not
// yet exist.
func decodeLegacy(data []byte, opts *Options) (*Field, error) {
	dec := newDecoder(data)
	if err := dec.expectHeader(legacyVersion); err != nil {
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
	if judgeByte > byte(legacyMaxJudge) {
		return nil, errors.Wrapf(ErrDecodeFailure, "unknown legacy judge %d", judgeByte)
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
		return nil, errors.Wrap(ErrDecodeFailure, "trailing bytes after legacy-format field")
	}

	f := &Field{
		chunks:        chunks,
		riskCache:     cache,
		density:       density,
		judge:         legacyJudge(judgeByte),
		solvable:      true,
		size:          nil,
		cellsRevealed: chunks.countRevealed(),
		timeElapsed:   0,
		rng:           newRNG(opts.resolveSeed()),
	}
	return f, nil
}

// legacyMaxJudge is the highest Judge byte the legacy format can
// express: Random, Strict, Kind, Local, Global, Kaboom.
const legacyMaxJudge = 5

// legacyJudge maps a legacy Judge byte onto the current Judge enum.
// Values 0-4 are numerically identical (Random..Global); 5 (`Kaboom`)
// maps onto KaboomGlobal, since the legacy engine had no notion of a
// locally-scoped Kaboom policy.
func legacyJudge(b byte) Judge {
	if b == legacyMaxJudge {
		return KaboomGlobal
	}
	return Judge(b)
}

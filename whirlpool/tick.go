package whirlpool

import (
	"fmt"
)

// TickArrayIndex addresses a single tick record as (array, offset)
// coordinates within the global tick space partitioned into arrays of
// TickArraySize initializable ticks.
type TickArrayIndex struct {
	ArrayIndex  int32
	OffsetIndex int32
	TickSpacing uint16
}

// NewTickArrayIndex validates raw coordinates.
func NewTickArrayIndex(arrayIndex, offsetIndex int32, tickSpacing uint16) (TickArrayIndex, error) {
	if offsetIndex < 0 || offsetIndex >= TickArraySize {
		return TickArrayIndex{}, fmt.Errorf("tick array offset %d outside [0, %d)", offsetIndex, TickArraySize)
	}
	if tickSpacing == 0 {
		return TickArrayIndex{}, fmt.Errorf("tick spacing must be positive")
	}
	return TickArrayIndex{ArrayIndex: arrayIndex, OffsetIndex: offsetIndex, TickSpacing: tickSpacing}, nil
}

// TickArrayIndexFromTick converts a global tick index into array
// coordinates. Ticks between initializable ticks map to the coordinate at or
// below them.
func TickArrayIndexFromTick(tick int32, tickSpacing uint16) TickArrayIndex {
	ts := int32(tickSpacing)
	arrayIndex := floorDiv(floorDiv(tick, ts), TickArraySize)
	offsetIndex := floorDiv(tick%(ts*TickArraySize), ts)
	if offsetIndex < 0 {
		offsetIndex += TickArraySize
	}
	return TickArrayIndex{ArrayIndex: arrayIndex, OffsetIndex: offsetIndex, TickSpacing: tickSpacing}
}

// ToTickIndex is the inverse of TickArrayIndexFromTick for initializable
// coordinates.
func (t TickArrayIndex) ToTickIndex() int32 {
	ts := int32(t.TickSpacing)
	return t.ArrayIndex*TickArraySize*ts + t.OffsetIndex*ts
}

// ToNextInitializableTickIndex steps one spacing unit toward positive ticks.
func (t TickArrayIndex) ToNextInitializableTickIndex() TickArrayIndex {
	return TickArrayIndexFromTick(t.ToTickIndex()+int32(t.TickSpacing), t.TickSpacing)
}

// ToPrevInitializableTickIndex steps one spacing unit toward negative ticks.
func (t TickArrayIndex) ToPrevInitializableTickIndex() TickArrayIndex {
	return TickArrayIndexFromTick(t.ToTickIndex()-int32(t.TickSpacing), t.TickSpacing)
}

// TickArrayStartTickIndex returns the start tick of the array containing the
// given tick.
func TickArrayStartTickIndex(tick int32, tickSpacing uint16) int32 {
	return TickArrayIndexFromTick(tick, tickSpacing).ArrayIndex * TickArraySize * int32(tickSpacing)
}

func floorDiv(a, b int32) int32 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

package whirlpool

import (
	"fmt"

	solana "github.com/gagliardetto/solana-go"
)

// TickArraySequence walks the initialized ticks of a fixed window of tick
// arrays in swap direction order. Arrays after the first uninitialized entry
// are dropped so the window never spans a gap.
type TickArraySequence struct {
	sequence        []TickArray
	tickSpacing     uint16
	aToB            bool
	touchedArrays   []bool
	startArrayIndex int32
}

// NewTickArraySequence builds a sequence from arrays already ordered in swap
// direction. Trailing arrays past the first missing account are ignored.
func NewTickArraySequence(tickArrays []TickArray, tickSpacing uint16, aToB bool) (*TickArraySequence, error) {
	var sequence []TickArray
	for _, ta := range tickArrays {
		if ta.Data == nil {
			break
		}
		sequence = append(sequence, ta)
	}
	if len(sequence) == 0 {
		return nil, fmt.Errorf("%w: no initialized tick arrays", ErrTickArraySequenceInvalid)
	}
	return &TickArraySequence{
		sequence:        sequence,
		tickSpacing:     tickSpacing,
		aToB:            aToB,
		touchedArrays:   make([]bool, len(sequence)),
		startArrayIndex: TickArrayIndexFromTick(sequence[0].Data.StartTickIndex, tickSpacing).ArrayIndex,
	}, nil
}

// IsValidTickArray0 reports whether the first array in the sequence covers
// the pool's current tick for this swap direction.
func (s *TickArraySequence) IsValidTickArray0(tickCurrentIndex int32) bool {
	shift := int32(0)
	if !s.aToB {
		shift = int32(s.tickSpacing)
	}
	return s.checkArrayContainsTickIndex(0, tickCurrentIndex+shift)
}

func (s *TickArraySequence) checkArrayContainsTickIndex(sequenceIndex int, tickIndex int32) bool {
	if sequenceIndex >= len(s.sequence) {
		return false
	}
	return s.checkIfIndexIsInTickArrayRange(s.sequence[sequenceIndex].Data.StartTickIndex, tickIndex)
}

func (s *TickArraySequence) checkIfIndexIsInTickArrayRange(startTick, tickIndex int32) bool {
	upperBound := startTick + int32(s.tickSpacing)*TickArraySize
	return tickIndex >= startTick && tickIndex < upperBound
}

// GetTick returns the tick record for an initializable tick index inside the
// sequence window and records the owning array as touched.
func (s *TickArraySequence) GetTick(tickIndex int32) (*Tick, error) {
	targetTaIndex := TickArrayIndexFromTick(tickIndex, s.tickSpacing)

	var localArrayIndex int
	if s.aToB {
		localArrayIndex = int(s.startArrayIndex - targetTaIndex.ArrayIndex)
	} else {
		localArrayIndex = int(targetTaIndex.ArrayIndex - s.startArrayIndex)
	}
	if localArrayIndex < 0 || localArrayIndex >= len(s.sequence) {
		return nil, fmt.Errorf("%w: tick index %d not in sequence window", ErrTickArrayIndexNotInitialized, tickIndex)
	}

	ta := s.sequence[localArrayIndex].Data
	if !s.checkIfIndexIsInTickArrayRange(ta.StartTickIndex, tickIndex) {
		return nil, fmt.Errorf("%w: tick array at index %d does not cover tick %d",
			ErrTickArraySequenceInvalid, localArrayIndex, tickIndex)
	}

	s.touchedArrays[localArrayIndex] = true
	return &ta.Ticks[targetTaIndex.OffsetIndex], nil
}

// FindNextInitializedTickIndex finds the next initialized tick at or past
// currIndex in swap direction. When the window is exhausted it returns the
// last initializable tick the window can quote against and a nil tick.
func (s *TickArraySequence) FindNextInitializedTickIndex(currIndex int32) (int32, *Tick, error) {
	searchIndex := currIndex
	if !s.aToB {
		searchIndex = currIndex + int32(s.tickSpacing)
	}

	currTaIndex := TickArrayIndexFromTick(searchIndex, s.tickSpacing)
	if li := s.localIndexOf(currTaIndex.ArrayIndex); li < 0 || li >= len(s.sequence) {
		return 0, nil, fmt.Errorf("%w: traversal out of bounds at tick index %d",
			ErrTickArraySequenceInvalid, currTaIndex.ToTickIndex())
	}

	for s.localIndexOf(currTaIndex.ArrayIndex) < len(s.sequence) {
		tick, err := s.GetTick(currTaIndex.ToTickIndex())
		if err != nil {
			return 0, nil, err
		}
		if tick.Initialized {
			return currTaIndex.ToTickIndex(), tick, nil
		}
		if s.aToB {
			if currTaIndex.ToTickIndex() == MinTickIndex {
				break
			}
			currTaIndex = currTaIndex.ToPrevInitializableTickIndex()
		} else {
			if currTaIndex.ToTickIndex() == MaxTickIndex {
				break
			}
			currTaIndex = currTaIndex.ToNextInitializableTickIndex()
		}
	}

	var lastIndex int32
	if s.aToB {
		lastIndex = currTaIndex.ToTickIndex() + int32(s.tickSpacing)
	} else {
		lastIndex = currTaIndex.ToTickIndex() - 1
	}
	if lastIndex < MinTickIndex {
		lastIndex = MinTickIndex
	} else if lastIndex > MaxTickIndex {
		lastIndex = MaxTickIndex
	}
	return lastIndex, nil, nil
}

func (s *TickArraySequence) localIndexOf(arrayIndex int32) int {
	if s.aToB {
		return int(s.startArrayIndex - arrayIndex)
	}
	return int(arrayIndex - s.startArrayIndex)
}

// GetNumOfTouchedArrays counts the arrays a swap read ticks from.
func (s *TickArraySequence) GetNumOfTouchedArrays() int {
	n := 0
	for _, touched := range s.touchedArrays {
		if touched {
			n++
		}
	}
	return n
}

// GetTouchedArrays returns the addresses of touched arrays in traversal
// order, padded by repeating the last entry up to minArraySize.
func (s *TickArraySequence) GetTouchedArrays(minArraySize int) []solana.PublicKey {
	var result []solana.PublicKey
	for i, touched := range s.touchedArrays {
		if touched {
			result = append(result, s.sequence[i].Address)
		}
	}
	if len(result) == 0 {
		return result
	}
	for len(result) < minArraySize {
		result = append(result, result[len(result)-1])
	}
	return result
}

package whirlpool

import (
	"strconv"

	solana "github.com/gagliardetto/solana-go"
)

// DeriveTickArrayAddress derives the PDA of the tick array starting at
// startTickIndex. The start index seed is its decimal ASCII rendering.
func DeriveTickArrayAddress(programID, whirlpool solana.PublicKey, startTickIndex int32) (solana.PublicKey, error) {
	seeds := [][]byte{
		[]byte("tick_array"),
		whirlpool.Bytes(),
		[]byte(strconv.FormatInt(int64(startTickIndex), 10)),
	}
	address, _, err := solana.FindProgramAddress(seeds, programID)
	return address, err
}

// DeriveOracleAddress derives the PDA of the pool's oracle account.
func DeriveOracleAddress(programID, whirlpool solana.PublicKey) (solana.PublicKey, error) {
	seeds := [][]byte{
		[]byte("oracle"),
		whirlpool.Bytes(),
	}
	address, _, err := solana.FindProgramAddress(seeds, programID)
	return address, err
}

// SwapTickArrayAddresses derives the three tick array PDAs a swap starting at
// the pool's current tick may traverse in the given direction.
func SwapTickArrayAddresses(programID, whirlpool solana.PublicKey, tickCurrentIndex int32, tickSpacing uint16, aToB bool) ([]solana.PublicKey, error) {
	shift := int32(0)
	if !aToB {
		shift = int32(tickSpacing)
	}
	arraySpan := int32(tickSpacing) * TickArraySize

	startTick := TickArrayStartTickIndex(tickCurrentIndex+shift, tickSpacing)
	addresses := make([]solana.PublicKey, 0, MaxSwapTickArrays)
	for i := int32(0); i < MaxSwapTickArrays; i++ {
		offset := i * arraySpan
		if aToB {
			offset = -offset
		}
		address, err := DeriveTickArrayAddress(programID, whirlpool, startTick+offset)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, address)
	}
	return addresses, nil
}

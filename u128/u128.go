package u128

import (
	"errors"
	"fmt"
	"math/big"

	binary "github.com/gagliardetto/binary"
)

type Uint128 binary.Uint128

func (u *Uint128) Scan(s fmt.ScanState, ch rune) error {
	i := new(big.Int)
	if err := i.Scan(s, ch); err != nil {
		return err
	} else if i.Sign() < 0 {
		return errors.New("value cannot be negative")
	} else if i.BitLen() > 128 {
		return errors.New("value overflows Uint128")
	}
	u.Lo = i.Uint64()
	u.Hi = i.Rsh(i, 64).Uint64()
	return nil
}

// GenUint128FromString builds a u128 field value, for pool liquidity and
// sqrt prices in fixtures.
func GenUint128FromString(num string) binary.Uint128 {
	u128 := binary.NewUint128LittleEndian()
	if _, err := fmt.Sscan(num, (*Uint128)(u128)); err != nil {
		panic(err)
	}
	return *u128
}

type Int128 binary.Int128

func (u *Int128) Scan(s fmt.ScanState, ch rune) error {
	i := new(big.Int)
	if err := i.Scan(s, ch); err != nil {
		return err
	}
	if i.Sign() < 0 {
		i.Add(i, new(big.Int).Lsh(big.NewInt(1), 128))
		if i.Sign() < 0 {
			return errors.New("value underflows Int128")
		}
	} else if i.BitLen() > 127 {
		return errors.New("value overflows Int128")
	}
	u.Lo = i.Uint64()
	u.Hi = i.Rsh(i, 64).Uint64()
	return nil
}

// GenInt128FromString builds an i128 field value, for tick net liquidity in
// fixtures.
func GenInt128FromString(num string) binary.Int128 {
	var i128 Int128
	if _, err := fmt.Sscan(num, &i128); err != nil {
		panic(err)
	}
	return binary.Int128(i128)
}

package whirlpool

import (
	"fmt"

	bin "github.com/gagliardetto/binary"
	solana "github.com/gagliardetto/solana-go"
)

const accountDiscriminatorLen = 8

// WhirlpoolRewardInfo mirrors the on-chain reward slot layout.
type WhirlpoolRewardInfo struct {
	Mint                  solana.PublicKey
	Vault                 solana.PublicKey
	Authority             solana.PublicKey
	EmissionsPerSecondX64 bin.Uint128
	GrowthGlobalX64       bin.Uint128
}

// Whirlpool is the decoded pool account state.
type Whirlpool struct {
	WhirlpoolsConfig solana.PublicKey
	WhirlpoolBump    [1]uint8

	TickSpacing     uint16
	TickSpacingSeed [2]uint8

	FeeRate         uint16
	ProtocolFeeRate uint16

	Liquidity        bin.Uint128
	SqrtPrice        bin.Uint128
	TickCurrentIndex int32

	ProtocolFeeOwedA uint64
	ProtocolFeeOwedB uint64

	TokenMintA       solana.PublicKey
	TokenVaultA      solana.PublicKey
	FeeGrowthGlobalA bin.Uint128

	TokenMintB       solana.PublicKey
	TokenVaultB      solana.PublicKey
	FeeGrowthGlobalB bin.Uint128

	RewardLastUpdatedTimestamp uint64
	RewardInfos                [3]WhirlpoolRewardInfo
}

// Decode parses a raw whirlpool account, skipping the anchor discriminator.
func (w *Whirlpool) Decode(data []byte) error {
	if len(data) < accountDiscriminatorLen {
		return fmt.Errorf("whirlpool account data too short: %d bytes", len(data))
	}
	return bin.NewBinDecoder(data[accountDiscriminatorLen:]).Decode(w)
}

// Tick is one initializable tick record inside a tick array account.
type Tick struct {
	Initialized          bool
	LiquidityNet         bin.Int128
	LiquidityGross       bin.Uint128
	FeeGrowthOutsideA    bin.Uint128
	FeeGrowthOutsideB    bin.Uint128
	RewardGrowthsOutside [3]bin.Uint128
}

// TickArrayData is the decoded tick array account state.
type TickArrayData struct {
	StartTickIndex int32
	Ticks          [TickArraySize]Tick
	Whirlpool      solana.PublicKey
}

// Decode parses a raw tick array account, skipping the anchor discriminator.
func (t *TickArrayData) Decode(data []byte) error {
	if len(data) < accountDiscriminatorLen {
		return fmt.Errorf("tick array account data too short: %d bytes", len(data))
	}
	return bin.NewBinDecoder(data[accountDiscriminatorLen:]).Decode(t)
}

// TickArray pairs a tick array account address with its decoded state. Data
// is nil for an address that is not initialized on chain.
type TickArray struct {
	Address solana.PublicKey
	Data    *TickArrayData
}

package whirlpool

import (
	"testing"

	solana "github.com/gagliardetto/solana-go"
)

var testWhirlpoolAddress = solana.MustPublicKeyFromBase58("HJPjoWUrhoZzkNfRpHuieeFk9WcZWjwy6PBjZ81ngndJ")

func TestDeriveTickArrayAddress(t *testing.T) {
	tests := []struct {
		startTickIndex int32
		want           string
	}{
		{0, "JCpxMSDRDPBMqjoX7LkhMwro2y6r85Q8E6p5zNdBZyWa"},
		{-5632, "9K1HWrGKZKfjTnKfF621BmEQdai4FcUz9tsoF41jwz5B"},
		{39424, "3LMFYB2rdS7MYKSgYyg3cXknXvuhMnFPNyWLNye4Znvf"},
	}
	for _, tt := range tests {
		got, err := DeriveTickArrayAddress(ProgramID, testWhirlpoolAddress, tt.startTickIndex)
		if err != nil {
			t.Fatal(err)
		}
		if got.String() != tt.want {
			t.Fatalf("tick array PDA for start %d = %s, want %s", tt.startTickIndex, got, tt.want)
		}
	}
}

func TestDeriveOracleAddress(t *testing.T) {
	got, err := DeriveOracleAddress(ProgramID, testWhirlpoolAddress)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "4GkRbcYg1VKsZropgai4dMf2Nj2PkXNLf43knFpavrSi" {
		t.Fatalf("oracle PDA = %s", got)
	}
}

func TestSwapTickArrayAddresses(t *testing.T) {
	down, err := SwapTickArrayAddresses(ProgramID, testWhirlpoolAddress, 100, 64, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(down) != MaxSwapTickArrays {
		t.Fatalf("got %d addresses, want %d", len(down), MaxSwapTickArrays)
	}
	// Start ticks 0, -5632, -11264 in traversal order.
	first, err := DeriveTickArrayAddress(ProgramID, testWhirlpoolAddress, 0)
	if err != nil {
		t.Fatal(err)
	}
	second, err := DeriveTickArrayAddress(ProgramID, testWhirlpoolAddress, -5632)
	if err != nil {
		t.Fatal(err)
	}
	if !down[0].Equals(first) || !down[1].Equals(second) {
		t.Fatal("a to b addresses must step toward lower start ticks")
	}

	up, err := SwapTickArrayAddresses(ProgramID, testWhirlpoolAddress, 100, 64, false)
	if err != nil {
		t.Fatal(err)
	}
	if !up[0].Equals(first) {
		t.Fatal("b to a traversal must start at the array holding the shifted current tick")
	}
	third, err := DeriveTickArrayAddress(ProgramID, testWhirlpoolAddress, 11264)
	if err != nil {
		t.Fatal(err)
	}
	if !up[2].Equals(third) {
		t.Fatal("b to a addresses must step toward higher start ticks")
	}
}

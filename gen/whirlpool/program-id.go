package whirlpool

import solanago "github.com/gagliardetto/solana-go"

// ProgramID is the Whirlpool program address.
var ProgramID = solanago.MustPublicKeyFromBase58("whirLbMiicVdio4qvUfM5KAg6Ct8VwpYzGff3uctyCc")

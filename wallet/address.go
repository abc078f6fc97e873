package wallet

import "strings"

// AddressType tags the script type an address pays to. The signer dispatches
// on this tag once per input; each variant has its own sighash and
// witness/scriptSig rules.
type AddressType int

const (
	// P2PKH is a legacy pay-to-pubkey-hash address (1..., m..., n...).
	P2PKH AddressType = iota

	// P2WPKH is a native segwit v0 pubkey-hash address (bc1q..., tb1q...).
	P2WPKH

	// NestedP2WPKH is a P2WPKH program wrapped in P2SH (3..., 2...).
	NestedP2WPKH

	// P2TR is a taproot address (bc1p..., tb1p...).
	P2TR
)

// String returns the conventional lowercase name of the script type.
func (t AddressType) String() string {
	switch t {
	case P2WPKH:
		return "p2wpkh"
	case NestedP2WPKH:
		return "p2sh-p2wpkh"
	case P2TR:
		return "p2tr"
	default:
		return "p2pkh"
	}
}

// ClassifyAddress maps an address string to its script type by textual
// prefix alone. It is total: every string yields exactly one type, and
// anything unrecognized is treated as legacy P2PKH. No checksum or network
// validation happens here; a wrong address fails later, when the
// SigningConfig cross-checks it against the key.
func ClassifyAddress(addr string) AddressType {
	switch {
	case strings.HasPrefix(addr, "bc1q"), strings.HasPrefix(addr, "tb1q"):
		return P2WPKH
	case strings.HasPrefix(addr, "bc1p"), strings.HasPrefix(addr, "tb1p"):
		return P2TR
	case strings.HasPrefix(addr, "3"), strings.HasPrefix(addr, "2"):
		return NestedP2WPKH
	default:
		return P2PKH
	}
}

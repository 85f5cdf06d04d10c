package dpfgroup

import (
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// CommitToShare computes share*G on the secp256k1 curve, letting two parties
// exchange a commitment to their evaluation share before either reveals it
// to CombineResults. CombineResults never requires the commitment; this is
// auxiliary machinery for callers that want to detect a misbehaving party
// before combining.
func CommitToShare(share *big.Int) (*secp256k1.PublicKey, error) {
	if share == nil {
		return nil, fmt.Errorf("%w: share must not be nil", ErrInvalidParameter)
	}

	var scalar secp256k1.ModNScalar
	overflow := scalar.SetByteSlice(share.Bytes())
	if overflow {
		return nil, fmt.Errorf("%w: share overflows the scalar field", ErrInvalidParameter)
	}

	var commitment secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&scalar, &commitment)
	commitment.ToAffine()

	x, y := commitment.X, commitment.Y
	return secp256k1.NewPublicKey(&x, &y), nil
}

// CombineCommitments adds two share commitments via curve point addition,
// so a verifier can check a combined commitment against CommitToShare of
// the reconstructed value without ever learning the individual shares.
func CombineCommitments(c0, c1 *secp256k1.PublicKey) *secp256k1.PublicKey {
	var p0, p1, sum secp256k1.JacobianPoint
	c0.AsJacobian(&p0)
	c1.AsJacobian(&p1)
	secp256k1.AddNonConst(&p0, &p1, &sum)
	sum.ToAffine()

	x, y := sum.X, sum.Y
	return secp256k1.NewPublicKey(&x, &y)
}

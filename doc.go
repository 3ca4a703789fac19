// Package fcmp implements the elliptic-curve primitives behind full-chain
// membership proofs over ed25519: scalar and point arithmetic, domain
// separated hash-to-scalar and hash-to-point, Pedersen commitments, the
// process-wide proving parameters and the proof generate/verify entry points.
//
// Scalars and points travel as fixed 32-byte encodings (canonical scalars,
// compressed Edwards-Y points), matching the C ABI exported by cmd/libfcmp.
// Every decoding rejects malformed input instead of reducing or coercing it.
//
// Quick start
//
//	if err := fcmp.Init(); err != nil {
//	    log.Fatalf("fcmp init: %v", err)
//	}
//	defer fcmp.Cleanup()
//
//	blinding, _ := fcmp.RandomScalar()
//	defer blinding.Zeroize()
//	c, err := fcmp.PedersenCommit(fcmp.ScalarFromUint64(42), blinding)
//
// Proofs produced by Prove bind a tree root to blinded commitments of the
// branch layers. They are a stand-in for a zero-knowledge membership
// argument and must not be treated as one.
package fcmp

package fcmp

const (
	HASH_TO_POINT_DOMAIN_TAG = "WATTx_hash_to_point_v1"
	PEDERSEN_H_DOMAIN_TAG    = "WATTx_Pedersen_H_v1"
	PROOF_DOMAIN_TAG         = "WATTx_FCMP_Proof_v1"
	LAYER_GENERATORS_LABEL   = "WATTx_FCMP_Layer_G"

	Version = "0.1.0"

	ScalarSize       = 32
	PointSize        = 32
	OutputTupleSize  = PointSize * 3
	InputElementSize = 64
	InputSize        = InputElementSize * 4

	ElementsPerOutput   = 6
	LeafBranchWidth     = 38 // outputs per leaf chunk
	InternalBranchWidth = 38
	LeafLayerWidth      = ElementsPerOutput * LeafBranchWidth
	MaxDepth            = 32
	MaxLayerElements    = 4096

	// HashToPointAttempts bounds the rejection sampling loop; the counter is a single byte.
	HashToPointAttempts = 256
)

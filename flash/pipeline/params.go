package pipeline

// Shape3 is an (M, N, K) extent, used for both tile and cluster shapes.
type Shape3 struct {
	M, N, K int
}

// FwdParams carries every parameter a forward mainloop is instantiated with.
// A generation that aliases to an older implementation forwards all of these
// unchanged; only the generation tag differs.
type FwdParams struct {
	Stages   int
	Cluster  Shape3
	Tile     Shape3
	HeadDimV int

	IsCausal      bool
	IsLocal       bool
	HasSoftcap    bool
	Varlen        bool
	PagedKVNonTMA bool
	AppendKV      bool
	HasQv         bool

	// Register-staging and overlap flags resolved by the tile resolver.
	MmaPVInRegs    bool
	IntraWGOverlap bool

	PackGQA   bool
	Split     bool
	VColMajor bool

	NumWarpGroups int
	AtomLayoutMdQ int
}

// BwdParams carries every parameter a backward mainloop is instantiated with.
type BwdParams struct {
	TF32    bool
	Tile    Shape3
	Cluster Shape3

	IsCausal   bool
	IsLocal    bool
	HasSoftcap bool
	Varlen     bool

	// Deterministic forces serialized dQ accumulation so repeated runs
	// produce bit-identical gradients.
	Deterministic bool
	GQAPack       bool
	Split         bool

	NumWarpGroups  int
	AtomLayoutMSdP int
	AtomLayoutNdKV int
	AtomLayoutMdQ  int

	SdPSwapAB bool
	DKVSwapAB bool
	DQSwapAB  bool
}

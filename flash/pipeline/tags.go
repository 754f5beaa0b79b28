package pipeline

// SM90 and SM120 are hardware generation tags. They are phantom type
// parameters on the mainloop types: selection happens entirely at compile
// time by naming a tagged type, never by branching at runtime. A generation
// without a mainloop type under its own name has no entry here to fall back
// to dynamically; referencing a missing one fails the build.
type (
	SM90  struct{}
	SM120 struct{}
)

// ArchTag constrains the generation tag parameter of a mainloop type.
type ArchTag interface {
	SM90 | SM120
}

// SM120 trait constants. SM120 kernels are TN-layout only and default to
// 128x128x128 tiles with no clustering; TMA, mbarrier synchronization, and
// warp specialization are all available on the part.
const (
	MinCudaArchSM120 = 1200

	TraitTileMSM120    = 128
	TraitTileNSM120    = 128
	TraitTileKSM120    = 128
	TraitClusterMSM120 = 1
	TraitClusterNSM120 = 1
	TraitClusterKSM120 = 1

	TNOnlySM120             = true
	UseTmaSM120             = true
	UseMbarrierSM120        = true
	UseWarpSpecializedSM120 = true
)

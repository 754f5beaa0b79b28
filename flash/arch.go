package flash

// Arch identifies an accelerator generation. The value selects which tile
// resolver family applies and which shared-memory ceiling the hardware
// imposes on a single thread block.
type Arch int

const (
	SM80 Arch = iota
	SM86
	SM89
	SM90
	SM120
)

// Shared-memory ceilings in bytes per thread block, supplied by the hardware
// description. Consumer parts (SM86/SM89/SM120) carve out noticeably less
// shared memory than their datacenter siblings.
const (
	smemLimitSM80     = 166912
	smemLimitSM90     = 232448
	smemLimitConsumer = 101376
)

func (a Arch) String() string {
	switch a {
	case SM80:
		return "sm80"
	case SM86:
		return "sm86"
	case SM89:
		return "sm89"
	case SM90:
		return "sm90"
	case SM120:
		return "sm120"
	}
	return "unknown"
}

// SharedMemLimit returns the per-block shared-memory budget in bytes for the
// generation. These constants are consumed as-is; the resolver never derives
// them.
func (a Arch) SharedMemLimit() int {
	switch a {
	case SM80:
		return smemLimitSM80
	case SM90:
		return smemLimitSM90
	default:
		return smemLimitConsumer
	}
}

// IsConsumer reports whether the generation is a consumer part with the
// reduced shared-memory carve-out (SM86, SM89, SM120).
func (a Arch) IsConsumer() bool {
	return a == SM86 || a == SM89 || a == SM120
}

// IsHopperClass reports whether the generation uses the warp-specialized
// resolver family (SM90 and later) rather than the warp/stage model of SM8x.
func (a Arch) IsHopperClass() bool {
	return a == SM90 || a == SM120
}

// Older returns the nearest prior generation with a dedicated mainloop
// implementation. Generations without one inherit behavior from this
// generation (see flash/pipeline).
func (a Arch) Older() Arch {
	switch a {
	case SM120:
		return SM90
	case SM90:
		return SM80
	case SM89:
		return SM86
	case SM86:
		return SM80
	}
	return SM80
}

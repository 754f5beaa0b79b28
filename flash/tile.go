// Copyright 2025 flash-attention Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package flash resolves tile shapes and pipeline-structural flags for the
// attention kernel family. Resolution is purely functional: a Problem value
// maps to the same tile configuration on every call, with no allocation and
// no shared state, so it is safe from any number of goroutines.
//
// The resolvers model the shared-memory budget of the target generation; they
// never acquire it. Actual MMA execution, async copies, and synchronization
// belong to the mainloop implementations selected in flash/pipeline.
package flash

// Problem describes one attention problem shape plus the execution modifiers
// that affect tile selection. All fields default to the plain dense
// non-causal case.
type Problem struct {
	HeadDim  int
	HeadDimV int
	DType    DType

	Causal bool
	Local  bool

	// PagedKVNonTMA is set when the KV cache is paged and the pages are not
	// contiguous enough for bulk async copies, which reduces tile reuse and
	// raises register pressure.
	PagedKVNonTMA  bool
	VarlenAndSplit bool
	Softcap        bool
	AppendKV       bool
	VColMajor      bool

	Arch Arch
}

// TileSM90 is the forward tile configuration for the SM90/SM120 resolver
// family: block shape plus the two pipeline-structural flags baked into the
// bucket tables.
type TileSM90 struct {
	BlockM int
	BlockN int

	// MmaPVInRegs stages the P operand of the PV matmul through registers
	// instead of shared memory.
	MmaPVInRegs bool

	// IntraWGOverlap enables softmax/GEMM overlap within a warp group.
	IntraWGOverlap bool
}

// TileSM8x is the forward tile configuration for the SM8x resolver family,
// which trades occupancy against pipeline depth through explicit warp and
// stage counts.
type TileSM8x struct {
	BlockM    int
	BlockN    int
	NumWarps  int
	NumStages int

	// QInRegs keeps the query tile resident in registers across the inner
	// loop; only enabled for shapes proven safe under the selected warp
	// count.
	QInRegs bool
}

func (t TileSM90) Shape() (blockM, blockN int) { return t.BlockM, t.BlockN }

func (t TileSM8x) Shape() (blockM, blockN int) { return t.BlockM, t.BlockN }

// SmemBytes reports the modeled shared-memory footprint of the tile for the
// given problem.
func (t TileSM90) SmemBytes(p Problem) int {
	return SmemEstimateBytes(t.BlockM, t.BlockN, p.HeadDim, p.HeadDimV, p.DType.Size())
}

func (t TileSM8x) SmemBytes(p Problem) int {
	return SmemEstimateBytes(t.BlockM, t.BlockN, p.HeadDim, p.HeadDimV, p.DType.Size())
}

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

// Package pipeline maps a hardware generation tag and a problem's feature
// flags to the concrete mainloop implementation to instantiate, for both
// compute directions. Generations without a dedicated implementation alias
// the nearest older generation's type with full parameter forwarding, so the
// surface stays generic while the backing execution strategy is shared.
package pipeline

import (
	"github.com/ivandobskygithub/flash-attention/flash"
)

// MainloopFwdSM90 is the warp-specialized forward mainloop descriptor. The
// element, accumulator, and generation tag are type parameters so distinct
// instantiations are distinct types; the remaining parameters are frozen into
// the value at construction and never mutated afterwards.
//
// The descriptor only configures the mainloop: tile staging, overlap, and
// register residency decisions. The MMA/TMA execution it parameterizes lives
// with the kernels themselves.
type MainloopFwdSM90[E Element, A Accum, T ArchTag] struct {
	params FwdParams
}

// MainloopFwdSM120 reuses the SM90 forward implementation under the SM120
// tag until a dedicated SM120 mainloop is authored. Behavior is inherited
// exactly; only performance characteristics differ.
type MainloopFwdSM120[E Element, A Accum] = MainloopFwdSM90[E, A, SM120]

// NewMainloopFwdSM90 freezes the forward parameters into a mainloop
// descriptor. Called once per distinct instantiation.
func NewMainloopFwdSM90[E Element, A Accum, T ArchTag](p FwdParams) MainloopFwdSM90[E, A, T] {
	return MainloopFwdSM90[E, A, T]{params: p}
}

// Params returns the full forwarded parameter set.
func (m MainloopFwdSM90[E, A, T]) Params() FwdParams { return m.params }

// Arch returns the generation the mainloop is instantiated for. An aliased
// generation reports its own tag, not the implementation it inherits from.
func (m MainloopFwdSM90[E, A, T]) Arch() flash.Arch {
	var tag T
	switch any(tag).(type) {
	case SM120:
		return flash.SM120
	default:
		return flash.SM90
	}
}

// TileShape returns the (M, N, K) tile extent of the mainloop.
func (m MainloopFwdSM90[E, A, T]) TileShape() Shape3 { return m.params.Tile }

// SharedMemBytes reports the modeled shared-memory footprint of one mainloop
// iteration for the instantiated element width.
func (m MainloopFwdSM90[E, A, T]) SharedMemBytes() int {
	return flash.SmemEstimateBytes(m.params.Tile.M, m.params.Tile.N,
		m.params.Tile.K, m.params.HeadDimV, ElementSize[E]())
}

// ForwardFor bridges a resolved SM90-family tile configuration into a fully
// populated forward parameter set for the problem. GQA head packing and the
// extra Qv operand are launch-side decisions rather than tile-resolution
// inputs, so they are passed alongside the problem.
func ForwardFor(p flash.Problem, packGQA, hasQv bool) FwdParams {
	t := flash.ForwardTileSM90(p)
	// Floor-clamped tiles can come back narrower than one warp group.
	numWarpGroups := t.BlockM / 64
	if numWarpGroups < 1 {
		numWarpGroups = 1
	}
	return FwdParams{
		Stages:         2,
		Cluster:        Shape3{1, 1, 1},
		Tile:           Shape3{t.BlockM, t.BlockN, p.HeadDim},
		HeadDimV:       p.HeadDimV,
		IsCausal:       p.Causal,
		IsLocal:        p.Local,
		HasSoftcap:     p.Softcap,
		Varlen:         p.VarlenAndSplit,
		PagedKVNonTMA:  p.PagedKVNonTMA,
		AppendKV:       p.AppendKV,
		HasQv:          hasQv,
		MmaPVInRegs:    t.MmaPVInRegs,
		IntraWGOverlap: t.IntraWGOverlap,
		PackGQA:        packGQA,
		Split:          p.VarlenAndSplit,
		VColMajor:      p.VColMajor,
		NumWarpGroups:  numWarpGroups,
		AtomLayoutMdQ:  1,
	}
}

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

package pipeline

import (
	"github.com/ivandobskygithub/flash-attention/flash"
)

// MainloopBwdSM90 is the warp-specialized backward mainloop descriptor.
type MainloopBwdSM90[E Element, A Accum, T ArchTag] struct {
	params BwdParams
}

// MainloopBwdSM120 reuses the SM90 backward implementation under the SM120
// tag, forwarding every parameter unchanged.
type MainloopBwdSM120[E Element, A Accum] = MainloopBwdSM90[E, A, SM120]

// NewMainloopBwdSM90 freezes the backward parameters into a mainloop
// descriptor.
func NewMainloopBwdSM90[E Element, A Accum, T ArchTag](p BwdParams) MainloopBwdSM90[E, A, T] {
	return MainloopBwdSM90[E, A, T]{params: p}
}

// Params returns the full forwarded parameter set.
func (m MainloopBwdSM90[E, A, T]) Params() BwdParams { return m.params }

// Arch returns the generation the mainloop is instantiated for.
func (m MainloopBwdSM90[E, A, T]) Arch() flash.Arch {
	var tag T
	switch any(tag).(type) {
	case SM120:
		return flash.SM120
	default:
		return flash.SM90
	}
}

// TileShape returns the (M, N, K) tile extent of the mainloop.
func (m MainloopBwdSM90[E, A, T]) TileShape() Shape3 { return m.params.Tile }

// SharedMemBytes reports the modeled shared-memory footprint of one backward
// iteration for the instantiated element width. The backward pass keeps K
// and V tiles of the head dimension resident on both operand sides.
func (m MainloopBwdSM90[E, A, T]) SharedMemBytes() int {
	return flash.SmemEstimateBytes(m.params.Tile.M, m.params.Tile.N,
		m.params.Tile.K, m.params.Tile.K, ElementSize[E]())
}

// BackwardFor bridges a problem into a fully populated backward parameter
// set. The backward tile is fixed at 128x128 over the head dimension; the
// atom layouts follow the warp-group split the forward resolver chose.
func BackwardFor(p flash.Problem, deterministic bool) BwdParams {
	return BwdParams{
		TF32:           p.DType == flash.FP32,
		Tile:           Shape3{128, 128, p.HeadDim},
		Cluster:        Shape3{1, 1, 1},
		IsCausal:       p.Causal,
		IsLocal:        p.Local,
		HasSoftcap:     p.Softcap,
		Varlen:         p.VarlenAndSplit,
		Deterministic:  deterministic,
		Split:          p.VarlenAndSplit,
		NumWarpGroups:  2,
		AtomLayoutMSdP: 1,
		AtomLayoutNdKV: 2,
		AtomLayoutMdQ:  1,
		SdPSwapAB:      true,
		DKVSwapAB:      false,
		DQSwapAB:       false,
	}
}

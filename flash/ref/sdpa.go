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

// Package ref provides a scalar host-side reference for the attention
// computation the device mainloops perform. It exists to validate resolved
// configurations (masking modes, wide-value shapes, soft-capping) against a
// straightforward oracle; it is not an execution path.
package ref

import "math"

// Mask selects which score entries participate in the softmax.
type Mask struct {
	// Causal keeps only keys at or before the query position, aligned to the
	// bottom-right of the score matrix when kvLen != seqLen.
	Causal bool

	// WindowLeft/WindowRight bound the local attention window around the
	// (aligned) query position. Negative means unbounded on that side.
	WindowLeft  int
	WindowRight int
}

// SDPA computes single-head scaled dot-product attention:
//
//	output = softmax(Q@K^T * scale) @ V
//
//   - q:      [seqLen, headDim] (row-major)
//   - k:      [kvLen, headDim]
//   - v:      [kvLen, headDimV]
//   - output: [seqLen, headDimV]
//   - scale:  typically 1/sqrt(headDim)
//
// headDimV may differ from headDim; the wide-value shapes the tile resolver
// special-cases (256, 512) go through the same path.
func SDPA(q, k, v, output []float32, seqLen, kvLen, headDim, headDimV int, scale float32) {
	SDPAMasked(q, k, v, output, seqLen, kvLen, headDim, headDimV, scale, Mask{WindowLeft: -1, WindowRight: -1}, 0)
}

// SDPACausal computes single-head causal attention.
func SDPACausal(q, k, v, output []float32, seqLen, kvLen, headDim, headDimV int, scale float32) {
	SDPAMasked(q, k, v, output, seqLen, kvLen, headDim, headDimV, scale, Mask{Causal: true, WindowLeft: -1, WindowRight: -1}, 0)
}

// SDPAMasked computes single-head attention under an explicit mask with
// optional soft-capping. softcap <= 0 disables capping; otherwise each score
// s becomes softcap * tanh(s / softcap) before masking and softmax, matching
// the device-side order of operations.
//
// Rows whose mask excludes every key produce a zero output row.
func SDPAMasked(q, k, v, output []float32, seqLen, kvLen, headDim, headDimV int,
	scale float32, mask Mask, softcap float32) {
	if seqLen == 0 || kvLen == 0 || headDim == 0 || headDimV == 0 {
		return
	}

	scores := make([]float32, kvLen)
	// Bottom-right alignment: the last query row sees the last key.
	offset := kvLen - seqLen

	for i := range seqLen {
		qRow := q[i*headDim : (i+1)*headDim]
		pos := i + offset

		lo, hi := 0, kvLen-1
		if mask.Causal && pos < hi {
			hi = pos
		}
		if mask.WindowLeft >= 0 && pos-mask.WindowLeft > lo {
			lo = pos - mask.WindowLeft
		}
		if mask.WindowRight >= 0 && pos+mask.WindowRight < hi {
			hi = pos + mask.WindowRight
		}

		oRow := output[i*headDimV : (i+1)*headDimV]
		for d := range oRow {
			oRow[d] = 0
		}
		if lo > hi || lo >= kvLen || hi < 0 {
			continue
		}

		rowMax := float32(math.Inf(-1))
		for j := lo; j <= hi; j++ {
			kRow := k[j*headDim : (j+1)*headDim]
			var s float32
			for d := range headDim {
				s += qRow[d] * kRow[d]
			}
			s *= scale
			if softcap > 0 {
				s = softcap * float32(math.Tanh(float64(s/softcap)))
			}
			scores[j] = s
			if s > rowMax {
				rowMax = s
			}
		}

		var sum float32
		for j := lo; j <= hi; j++ {
			e := float32(math.Exp(float64(scores[j] - rowMax)))
			scores[j] = e
			sum += e
		}
		if sum == 0 {
			continue
		}
		inv := 1 / sum

		for j := lo; j <= hi; j++ {
			w := scores[j] * inv
			vRow := v[j*headDimV : (j+1)*headDimV]
			for d := range headDimV {
				oRow[d] += w * vRow[d]
			}
		}
	}
}

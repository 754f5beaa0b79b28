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

package flash

// ForwardTileSM90 resolves the forward tile for the SM90/SM120 family.
// Dispatch is on element width first, then on the head-dim bucket. The base
// shapes encode tuned throughput/occupancy tradeoffs; every half-width bucket
// is then passed through EnforceSmemLimit against the consumer-part ceiling
// so the same tables serve parts without the larger datacenter shared-memory
// carve-out. The wider-element tables were sized for that ceiling up front
// and are returned unclamped.
func ForwardTileSM90(p Problem) TileSM90 {
	headDim, headDimV := p.HeadDim, p.HeadDimV
	elemSize := p.DType.Size()

	if elemSize == 2 {
		switch {
		case headDim <= 64:
			if headDimV == 512 {
				// Keep the tile narrow: very wide values blow past the
				// consumer budget with anything larger.
				blockM, blockN := EnforceSmemLimit(64, 64, headDim, headDimV, elemSize, smemLimitConsumer)
				return TileSM90{blockM, blockN, false, false}
			}
			if headDimV == 256 {
				blockM, blockN := EnforceSmemLimit(64, 80, headDim, headDimV, elemSize, smemLimitConsumer)
				return TileSM90{blockM, blockN, true, true}
			}
			// Causal/local masking and non-contiguous paged KV reduce
			// effective reuse, so narrow the wide 192-row tile to 128
			// columns in those modes.
			narrowN := p.Causal || p.Local || p.PagedKVNonTMA
			baseN := 192
			if narrowN {
				baseN = 128
			}
			blockM, blockN := EnforceSmemLimit(192, baseN, headDim, headDimV, elemSize, smemLimitConsumer)
			return TileSM90{blockM, blockN, narrowN, true}

		case headDim <= 96:
			// Large value dims inflate the footprint even at modest head
			// sizes; bias toward smaller tiles for dv >= 256.
			baseN := 144
			if headDimV >= 256 {
				baseN = 96
			} else if p.Local || p.PagedKVNonTMA {
				baseN = 128
			}
			baseM := 192
			if baseN == 96 {
				baseM = 128
			}
			blockM, blockN := EnforceSmemLimit(baseM, baseN, headDim, headDimV, elemSize, smemLimitConsumer)
			return TileSM90{blockM, blockN, false, true}

		case headDim <= 128:
			// Prefer a BlockM=64 path that stays under the ~100KB consumer
			// cap while keeping BlockN as large as possible for throughput.
			baseN := 96
			if p.PagedKVNonTMA || p.Local || headDimV > 128 {
				baseN = 80
			}
			blockM, blockN := EnforceSmemLimit(64, baseN, headDim, headDimV, elemSize, smemLimitConsumer)
			return TileSM90{blockM, blockN, true, true}

		case headDim <= 192:
			baseN := 80
			if p.PagedKVNonTMA || p.Local || headDim > 160 {
				baseN = 64
			}
			blockM, blockN := EnforceSmemLimit(64, baseN, headDim, headDimV, elemSize, smemLimitConsumer)
			return TileSM90{blockM, blockN, true, true}

		default:
			// Above 192 the footprint grows quickly with BlockM, so stay on
			// 64xN tiles and favor narrower BlockN when values are wide.
			baseN := 64
			if p.PagedKVNonTMA || p.Local || headDim > 256 {
				baseN = 48
			}
			blockM, blockN := EnforceSmemLimit(64, baseN, headDim, headDimV, elemSize, smemLimitConsumer)
			return TileSM90{blockM, blockN, true, true}
		}
	}

	// Wider elements: static per-bucket table, pre-validated against the
	// budget.
	switch {
	case headDim <= 64:
		return TileSM90{192, 160, true, true}
	case headDim <= 96:
		return TileSM90{192, 128, true, true}
	case headDim <= 128:
		blockN := 224
		if p.PagedKVNonTMA {
			blockN = 160
		} else if p.VColMajor || (p.Softcap && p.Local) {
			blockN = 192
		}
		return TileSM90{128, blockN, true, true}
	case headDim <= 192:
		blockN := 160
		if (p.PagedKVNonTMA || p.Softcap) && p.Local {
			blockN = 128
		}
		return TileSM90{128, blockN, true, true}
	default:
		blockN := 128
		if p.Local {
			blockN = 64
		}
		// Paged KV uses more registers, so overlap is disabled there.
		return TileSM90{128, blockN, true, !p.PagedKVNonTMA}
	}
}

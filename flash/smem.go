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

// SmemEstimateBytes returns a closed-form upper bound on the shared memory a
// (blockM, blockN) tile pair occupies, covering the simultaneously resident
// Q/K/V tiles and accumulators. Value dimensions 256+ already drive the
// footprint high, so that regime (and the large combined head/value case)
// drops to a single buffer; everything else double-buffers to overlap copies
// with compute.
//
// The bound is monotonic in all four shape parameters, which the clamping
// logic below depends on. Downstream mainloop instantiation depends on these
// exact clamping decisions, so the formula is a frozen contract rather than a
// precise hardware model.
func SmemEstimateBytes(blockM, blockN, headDim, headDimV, elemSize int) int {
	buffering := 2
	if headDimV >= 256 || headDim+headDimV >= 512 {
		buffering = 1
	}
	return buffering * (blockM + blockN) * (headDim + headDimV) * elemSize
}

// ClampBlockN returns blockN unchanged when the tile pair fits within limit.
// Otherwise it solves the estimate for the largest blockN that fits with
// blockM held fixed, keeping the width aligned to 16 to satisfy MMA tile
// constraints and never dropping below the 16-unit floor.
func ClampBlockN(blockM, blockN, headDim, headDimV, elemSize, limit int) int {
	if SmemEstimateBytes(blockM, blockN, headDim, headDimV, elemSize) <= limit {
		return blockN
	}
	denom := 2 * elemSize * (headDim + headDimV)
	maxBlockN := blockN
	if denom > 0 {
		maxBlockN = limit/denom - blockM
	}
	if maxBlockN < 16 {
		maxBlockN = 16
	}
	maxBlockN = maxBlockN / 16 * 16
	if maxBlockN <= 0 {
		return 16
	}
	return maxBlockN
}

// EnforceSmemLimit fits a tile pair under limit with a three-stage fallback,
// each stage applied only when the prior one still exceeds the budget:
//
//  1. clamp blockN with blockM held fixed;
//  2. if blockM > 64, reduce it to 64 and re-clamp blockN;
//  3. solve for the largest feasible blockM directly, then re-clamp blockN
//     against it.
//
// Shrinking blockN first preserves query-tile parallelism; shrinking blockM
// is the last resort since it cuts work-per-launch more severely. When no
// pair above the 16-unit floor fits, the floor configuration is returned
// rather than failing.
func EnforceSmemLimit(blockM, blockN, headDim, headDimV, elemSize, limit int) (int, int) {
	adjustedBlockN := ClampBlockN(blockM, blockN, headDim, headDimV, elemSize, limit)
	usage := SmemEstimateBytes(blockM, adjustedBlockN, headDim, headDimV, elemSize)
	if usage > limit && blockM > 64 {
		blockM = 64
		adjustedBlockN = ClampBlockN(blockM, adjustedBlockN, headDim, headDimV, elemSize, limit)
		usage = SmemEstimateBytes(blockM, adjustedBlockN, headDim, headDimV, elemSize)
	}
	if usage > limit {
		denom := 2 * elemSize * (headDim + headDimV)
		maxBlockM := blockM
		if denom > 0 {
			maxBlockM = limit/denom - adjustedBlockN
		}
		if maxBlockM < 16 {
			maxBlockM = 16
		}
		maxBlockM = maxBlockM / 16 * 16
		if maxBlockM <= 0 {
			maxBlockM = 16
		}
		blockM = maxBlockM
		adjustedBlockN = ClampBlockN(blockM, adjustedBlockN, headDim, headDimV, elemSize, limit)
	}
	return blockM, adjustedBlockN
}

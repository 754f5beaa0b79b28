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

import "testing"

func TestSmemEstimateBytes(t *testing.T) {
	tests := []struct {
		name                                    string
		blockM, blockN, headDim, headDimV, elem int
		want                                    int
	}{
		// Double-buffered regime.
		{"hdim128 square", 128, 128, 128, 128, 2, 2 * 256 * 256 * 2},
		{"hdim64 wide tile", 192, 192, 64, 64, 2, 2 * 384 * 128 * 2},
		// Value dim 256+ forces single buffering.
		{"hdimv 256", 64, 80, 64, 256, 2, 1 * 144 * 320 * 2},
		{"hdimv 512", 64, 64, 64, 512, 2, 1 * 128 * 576 * 2},
		// Combined head+value at 512 also forces single buffering.
		{"combined 512", 64, 64, 256, 256, 2, 1 * 128 * 512 * 2},
		// Just under the combined threshold stays double-buffered.
		{"combined 511", 64, 64, 256, 255, 2, 2 * 128 * 511 * 2},
		{"fp32", 128, 128, 64, 64, 4, 2 * 256 * 128 * 4},
	}
	for _, tt := range tests {
		got := SmemEstimateBytes(tt.blockM, tt.blockN, tt.headDim, tt.headDimV, tt.elem)
		if got != tt.want {
			t.Errorf("%s: SmemEstimateBytes = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestSmemEstimateWideValueExceedsConsumerCeiling(t *testing.T) {
	// 64x64 at hdim 64 / hdimv 512 single-buffers to 147456 bytes, which is
	// still above the consumer ceiling and must trigger clamping downstream.
	got := SmemEstimateBytes(64, 64, 64, 512, 2)
	if got != 147456 {
		t.Fatalf("SmemEstimateBytes(64, 64, 64, 512, 2) = %d, want 147456", got)
	}
	if got <= smemLimitConsumer {
		t.Errorf("estimate %d unexpectedly within consumer limit %d", got, smemLimitConsumer)
	}
}

func TestClampBlockNUnchangedWhenFits(t *testing.T) {
	got := ClampBlockN(128, 64, 64, 64, 2, smemLimitConsumer)
	if got != 64 {
		t.Errorf("ClampBlockN = %d, want 64 (unchanged)", got)
	}
}

func TestClampBlockNFloorsWhenSolutionNegative(t *testing.T) {
	// 2*(128+96)*(128+128)*2 = 229376 over a 101376 limit; the solved
	// max_n = 101376/(2*2*256) - 128 is negative, so the floor applies.
	got := ClampBlockN(128, 96, 128, 128, 2, 101376)
	if got != 16 {
		t.Errorf("ClampBlockN = %d, want 16", got)
	}
}

func TestClampBlockNRoundsDownToMultipleOf16(t *testing.T) {
	// Solved max_n = 101376/1024 - 64 = 35, which rounds down to 32.
	got := ClampBlockN(64, 96, 128, 128, 2, smemLimitConsumer)
	if got != 32 {
		t.Errorf("ClampBlockN = %d, want 32", got)
	}
}

func TestClampBlockNMonotonicInHeadDimV(t *testing.T) {
	prev := 1 << 20
	for _, hdv := range []int{64, 96, 128, 160, 192, 256, 512} {
		got := ClampBlockN(64, 192, 64, hdv, 2, smemLimitConsumer)
		if got > prev {
			t.Errorf("hdimv=%d: blockN grew from %d to %d", hdv, prev, got)
		}
		if got%16 != 0 || got < 16 {
			t.Errorf("hdimv=%d: blockN=%d violates granularity", hdv, got)
		}
		prev = got
	}
}

func TestEnforceSmemLimitWideValue(t *testing.T) {
	blockM, blockN := EnforceSmemLimit(64, 64, 64, 512, 2, 101376)
	if blockN >= 64 {
		t.Errorf("blockN = %d, want below 64", blockN)
	}
	if blockN%16 != 0 {
		t.Errorf("blockN = %d, want multiple of 16", blockN)
	}
	if got := SmemEstimateBytes(blockM, blockN, 64, 512, 2); got > 101376 {
		t.Errorf("enforced usage %d exceeds limit", got)
	}
}

func TestEnforceSmemLimitPrefersBlockNClamp(t *testing.T) {
	// At hdim 48 a blockN clamp alone brings 192x192 under budget, so blockM
	// must stay at 192 rather than being downgraded to 64.
	blockM, blockN := EnforceSmemLimit(192, 192, 48, 48, 2, smemLimitConsumer)
	if blockM != 192 {
		t.Errorf("blockM = %d, want 192 (blockN clamp suffices)", blockM)
	}
	if blockN != 64 {
		t.Errorf("blockN = %d, want 64", blockN)
	}
}

func TestEnforceSmemLimitReducesBlockMSecond(t *testing.T) {
	// At hdim 64 even blockN=16 leaves 192 rows over budget, so stage two
	// drops blockM to 64.
	blockM, blockN := EnforceSmemLimit(192, 192, 64, 64, 2, smemLimitConsumer)
	if blockM != 64 {
		t.Errorf("blockM = %d, want 64", blockM)
	}
	if blockN != 16 {
		t.Errorf("blockN = %d, want 16", blockN)
	}
}

func TestEnforceSmemLimitReturnsFloorWhenInfeasible(t *testing.T) {
	blockM, blockN := EnforceSmemLimit(128, 128, 256, 256, 2, 1024)
	if blockM != 16 || blockN != 16 {
		t.Errorf("EnforceSmemLimit = (%d, %d), want floor (16, 16)", blockM, blockN)
	}
}

func TestEnforceSmemLimitSweep(t *testing.T) {
	headDims := []int{64, 96, 128, 160, 192, 256, 320}
	valueDims := []int{64, 96, 128, 160, 192, 256, 512}
	blocks := []int{64, 128, 192}

	for _, hd := range headDims {
		for _, hdv := range valueDims {
			for _, m := range blocks {
				for _, n := range blocks {
					blockM, blockN := EnforceSmemLimit(m, n, hd, hdv, 2, smemLimitConsumer)
					if blockM < 16 || blockN < 16 {
						t.Fatalf("(%d,%d,hd=%d,hdv=%d): result (%d,%d) below floor",
							m, n, hd, hdv, blockM, blockN)
					}
					if blockN%16 != 0 {
						t.Errorf("(%d,%d,hd=%d,hdv=%d): blockN=%d not 16-aligned",
							m, n, hd, hdv, blockN)
					}
					usage := SmemEstimateBytes(blockM, blockN, hd, hdv, 2)
					if usage > smemLimitConsumer && blockM != 16 && blockN != 16 {
						t.Errorf("(%d,%d,hd=%d,hdv=%d): usage %d over limit without floor",
							m, n, hd, hdv, usage)
					}
				}
			}
		}
	}
}

func TestEnforceSmemLimitDeterministic(t *testing.T) {
	m1, n1 := EnforceSmemLimit(192, 144, 96, 96, 2, smemLimitConsumer)
	m2, n2 := EnforceSmemLimit(192, 144, 96, 96, 2, smemLimitConsumer)
	if m1 != m2 || n1 != n2 {
		t.Errorf("repeated calls differ: (%d,%d) vs (%d,%d)", m1, n1, m2, n2)
	}
}

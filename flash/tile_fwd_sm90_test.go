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

func TestForwardTileSM90HalfBuckets(t *testing.T) {
	tests := []struct {
		name string
		p    Problem
		want TileSM90
	}{
		{
			// Small head dims fit the wide 192-row tile untouched.
			"hdim32 dense",
			Problem{HeadDim: 32, HeadDimV: 32, DType: FP16},
			TileSM90{192, 192, false, true},
		},
		{
			// Causal narrows the base tile to 128 columns, which then fits.
			"hdim32 causal",
			Problem{HeadDim: 32, HeadDimV: 32, DType: FP16, Causal: true},
			TileSM90{192, 128, true, true},
		},
		{
			// hdimv=256 single-buffers, so 64x80 fits as-is.
			"hdim64 hdimv256",
			Problem{HeadDim: 64, HeadDimV: 256, DType: FP16},
			TileSM90{64, 80, true, true},
		},
		{
			// hdimv=512 clamps hard and runs without overlap.
			"hdim64 hdimv512",
			Problem{HeadDim: 64, HeadDimV: 512, DType: FP16},
			TileSM90{64, 16, false, false},
		},
		{
			// 64x96 base exceeds the ceiling at hdim 128; clamps to 32.
			"hdim128 dense",
			Problem{HeadDim: 128, HeadDimV: 128, DType: FP16},
			TileSM90{64, 32, true, true},
		},
	}
	for _, tt := range tests {
		got := ForwardTileSM90(tt.p)
		if got != tt.want {
			t.Errorf("%s: ForwardTileSM90 = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestForwardTileSM90WiderElementTable(t *testing.T) {
	tests := []struct {
		name string
		p    Problem
		want TileSM90
	}{
		{"hdim64", Problem{HeadDim: 64, HeadDimV: 64, DType: FP32}, TileSM90{192, 160, true, true}},
		{"hdim96", Problem{HeadDim: 96, HeadDimV: 96, DType: FP32}, TileSM90{192, 128, true, true}},
		{"hdim128 dense", Problem{HeadDim: 128, HeadDimV: 128, DType: FP32}, TileSM90{128, 224, true, true}},
		{"hdim128 paged", Problem{HeadDim: 128, HeadDimV: 128, DType: FP32, PagedKVNonTMA: true}, TileSM90{128, 160, true, true}},
		{"hdim128 v colmajor", Problem{HeadDim: 128, HeadDimV: 128, DType: FP32, VColMajor: true}, TileSM90{128, 192, true, true}},
		{"hdim128 softcap local", Problem{HeadDim: 128, HeadDimV: 128, DType: FP32, Softcap: true, Local: true}, TileSM90{128, 192, true, true}},
		{"hdim160 dense", Problem{HeadDim: 160, HeadDimV: 160, DType: FP32}, TileSM90{128, 160, true, true}},
		{"hdim160 softcap local", Problem{HeadDim: 160, HeadDimV: 160, DType: FP32, Softcap: true, Local: true}, TileSM90{128, 128, true, true}},
		{"hdim256 dense", Problem{HeadDim: 256, HeadDimV: 256, DType: FP32}, TileSM90{128, 128, true, true}},
		{"hdim256 local", Problem{HeadDim: 256, HeadDimV: 256, DType: FP32, Local: true}, TileSM90{128, 64, true, true}},
		// Paged KV uses more registers in the top bucket, so overlap is off.
		{"hdim256 paged", Problem{HeadDim: 256, HeadDimV: 256, DType: FP32, PagedKVNonTMA: true}, TileSM90{128, 128, true, false}},
	}
	for _, tt := range tests {
		got := ForwardTileSM90(tt.p)
		if got != tt.want {
			t.Errorf("%s: ForwardTileSM90 = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestForwardTileSM90BudgetSweep(t *testing.T) {
	headDims := []int{64, 96, 128, 160, 192, 256, 320}
	valueDims := []int{64, 96, 128, 160, 192, 256, 512}
	bools := []bool{false, true}

	for _, hd := range headDims {
		for _, hdv := range valueDims {
			for _, causal := range bools {
				for _, local := range bools {
					for _, paged := range bools {
						p := Problem{
							HeadDim: hd, HeadDimV: hdv, DType: FP16,
							Causal: causal, Local: local, PagedKVNonTMA: paged,
						}
						got := ForwardTileSM90(p)
						if got.BlockM < 16 || got.BlockN < 16 {
							t.Fatalf("%+v: tile %+v below floor", p, got)
						}
						if got.BlockN%16 != 0 {
							t.Errorf("%+v: blockN=%d not 16-aligned", p, got.BlockN)
						}
						usage := got.SmemBytes(p)
						if usage > smemLimitConsumer && got.BlockM != 16 && got.BlockN != 16 {
							t.Errorf("%+v: tile %+v usage %d over consumer limit", p, got, usage)
						}
					}
				}
			}
		}
	}
}

func TestForwardTileSM90Deterministic(t *testing.T) {
	p := Problem{HeadDim: 96, HeadDimV: 96, DType: FP16, Local: true}
	first := ForwardTileSM90(p)
	for range 8 {
		if got := ForwardTileSM90(p); got != first {
			t.Fatalf("resolution not deterministic: %+v vs %+v", got, first)
		}
	}
}

func TestForwardTileSM90FallbackOrdering(t *testing.T) {
	// A shape needing only a blockN clamp must keep its 192-row tile.
	got := ForwardTileSM90(Problem{HeadDim: 48, HeadDimV: 48, DType: FP16})
	if got.BlockM != 192 {
		t.Errorf("blockM = %d, want 192 (blockN clamp suffices)", got.BlockM)
	}
	if got.BlockN != 64 {
		t.Errorf("blockN = %d, want 64", got.BlockN)
	}
}

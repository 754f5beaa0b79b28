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

// ForwardTileSM8x resolves the forward tile for the SM8x family. The entries
// are pre-validated against the smaller SM8x shared-memory budgets, so no
// clamping runs here; the table trades occupancy against pipeline depth
// through warp and stage counts instead. SM86/SM89 get their own rows where
// the reduced shared-memory carve-out changes the answer.
func ForwardTileSM8x(p Problem) TileSM8x {
	sm86or89 := p.Arch.IsConsumer()

	if p.DType.Size() != 2 {
		// Placeholder pending dedicated fp32 tuning.
		return TileSM8x{128, 64, 8, 2, false}
	}

	switch {
	case p.HeadDim <= 64:
		blockN := 112
		if p.VarlenAndSplit {
			blockN = 80
		} else if p.Local {
			blockN = 96
		}
		return TileSM8x{128, blockN, 4, 1, false}

	case p.HeadDim <= 96:
		blockN := 64
		if p.VarlenAndSplit || p.Local {
			blockN = 48
		}
		return TileSM8x{128, blockN, 4, 1, false}

	case p.HeadDim <= 128:
		use8Warps := sm86or89 || p.VarlenAndSplit
		var blockN int
		switch {
		case !use8Warps:
			blockN = 64
			if p.Local {
				blockN = 48
			}
		case p.VarlenAndSplit:
			blockN = 112
			if p.Local {
				blockN = 96
			}
		default:
			blockN = 128
			if p.Local {
				blockN = 96
			}
		}
		numWarps := 4
		if use8Warps {
			numWarps = 8
		}
		return TileSM8x{128, blockN, numWarps, 1, use8Warps}

	case p.HeadDim <= 192:
		blockN64 := p.AppendKV || p.Local || p.VarlenAndSplit || p.PagedKVNonTMA
		blockN := 96
		if blockN64 {
			blockN = 64
		}
		numStages := 2
		if sm86or89 {
			numStages = 1
		}
		return TileSM8x{128, blockN, 8, numStages, !blockN64}

	default:
		var blockN int
		if sm86or89 {
			switch {
			case p.AppendKV:
				blockN = 32
			case p.VarlenAndSplit || p.Local:
				blockN = 48
			default:
				blockN = 64
			}
		} else {
			switch {
			case p.AppendKV:
				blockN = 48
			case p.VarlenAndSplit || p.Local:
				blockN = 64
			default:
				blockN = 96
			}
		}
		return TileSM8x{128, blockN, 8, 1, sm86or89 && !p.AppendKV}
	}
}

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

// Package main provides a diagnostic tool to print resolved tile
// configurations per hardware generation, plus the host CPU features of the
// machine running the reference validation.
package main

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/ivandobskygithub/flash-attention/flash"
)

var sweepHeadDims = [...]int{64, 96, 128, 160, 192, 256, 320}

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	printArchTable()
	fmt.Println()
	printForwardSweepSM90()
	fmt.Println()
	printForwardSweepSM8x()
	fmt.Println()

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features()
	case "amd64":
		printAMD64Features()
	}
}

func printArchTable() {
	fmt.Println("=== hardware generations ===")
	for _, a := range []flash.Arch{flash.SM80, flash.SM86, flash.SM89, flash.SM90, flash.SM120} {
		family := "sm8x"
		if a.IsHopperClass() {
			family = "sm90"
		}
		fmt.Printf("  %-6s family=%s smem=%6d bytes  consumer=%-5v fallback=%s\n",
			a, family, a.SharedMemLimit(), a.IsConsumer(), a.Older())
	}
}

func printForwardSweepSM90() {
	fmt.Println("=== forward tiles, sm90 family (fp16, dense) ===")
	for _, hd := range sweepHeadDims {
		p := flash.Problem{HeadDim: hd, HeadDimV: hd, DType: flash.FP16, Arch: flash.SM90}
		t := flash.ForwardTileSM90(p)
		fmt.Printf("  hdim=%-4d %3dx%-3d mma_pv_rs=%-5v overlap=%-5v smem=%d\n",
			hd, t.BlockM, t.BlockN, t.MmaPVInRegs, t.IntraWGOverlap, t.SmemBytes(p))
	}
}

func printForwardSweepSM8x() {
	fmt.Println("=== forward tiles, sm8x family (fp16, dense) ===")
	for _, arch := range []flash.Arch{flash.SM80, flash.SM86} {
		for _, hd := range sweepHeadDims {
			p := flash.Problem{HeadDim: hd, HeadDimV: hd, DType: flash.FP16, Arch: arch}
			t := flash.ForwardTileSM8x(p)
			fmt.Printf("  %s hdim=%-4d %3dx%-3d warps=%d stages=%d q_in_regs=%v\n",
				arch, hd, t.BlockM, t.BlockN, t.NumWarps, t.NumStages, t.QInRegs)
		}
	}
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("  HasASIMD:    %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasFP:       %v (Floating point)\n", cpu.ARM64.HasFP)
	fmt.Printf("  HasFPHP:     %v (FP16 scalar, ARMv8.2-A)\n", cpu.ARM64.HasFPHP)
	fmt.Printf("  HasASIMDHP:  %v (FP16 NEON, ARMv8.2-A)\n", cpu.ARM64.HasASIMDHP)
	fmt.Printf("  HasSVE:      %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasAVX:     %v\n", cpu.X86.HasAVX)
	fmt.Printf("  HasAVX2:    %v\n", cpu.X86.HasAVX2)
	fmt.Printf("  HasAVX512F: %v\n", cpu.X86.HasAVX512F)
	fmt.Printf("  HasFMA:     %v\n", cpu.X86.HasFMA)
	fmt.Printf("  HasSSE2:    %v\n", cpu.X86.HasSSE2)
}

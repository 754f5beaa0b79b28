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

package main

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ivandobskygithub/flash-attention/flash"
)

// shapePair is one (headDim, headDimV) entry of the supported grid. The
// square shapes cover the common models; the uneven pairs cover the
// wide-value and DeepSeek-style shapes the resolver special-cases.
type shapePair struct {
	headDim  int
	headDimV int
}

var gridShapes = []shapePair{
	{64, 64},
	{96, 96},
	{128, 128},
	{192, 192},
	{256, 256},
	{64, 256},
	{64, 512},
	{192, 128},
}

var gridDTypes = []flash.DType{flash.FP16, flash.FP32}

var titler = cases.Title(language.English)

// instName builds the registration name for a grid entry, e.g.
// "fwd_hdim64_512_fp16_causal_sm90".
func instName(p flash.Problem) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "fwd_hdim%d", p.HeadDim)
	if p.HeadDimV != p.HeadDim {
		fmt.Fprintf(&sb, "_%d", p.HeadDimV)
	}
	fmt.Fprintf(&sb, "_%s", p.DType)
	if p.Causal {
		sb.WriteString("_causal")
	}
	fmt.Fprintf(&sb, "_%s", p.Arch)
	return sb.String()
}

// gridFor expands the shape grid for one element type, plain and causal.
func gridFor(d flash.DType) []flash.Problem {
	var out []flash.Problem
	for _, s := range gridShapes {
		for _, causal := range []bool{false, true} {
			out = append(out, flash.Problem{
				HeadDim:  s.headDim,
				HeadDimV: s.headDimV,
				DType:    d,
				Causal:   causal,
				Arch:     flash.SM90,
			})
		}
	}
	return out
}

// gridVarName returns the generated variable name for one element type's
// grid, e.g. "forwardGridFp16".
func gridVarName(d flash.DType) string {
	return "forwardGrid" + titler.String(d.String())
}

// dtypeIdent returns the Go constant name for an element type.
func dtypeIdent(d flash.DType) string {
	return strings.ToUpper(d.String())
}

func renderProblem(p flash.Problem) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Problem{HeadDim: %d, HeadDimV: %d, DType: %s", p.HeadDim, p.HeadDimV, dtypeIdent(p.DType))
	if p.Causal {
		sb.WriteString(", Causal: true")
	}
	sb.WriteString(", Arch: SM90}")
	return sb.String()
}

// render emits the zinstantiations.go source.
func render() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("// Code generated by tilegen. DO NOT EDIT.\n\n")
	buf.WriteString("package flash\n\n")
	buf.WriteString("import \"slices\"\n\n")

	var varNames []string
	for _, d := range gridDTypes {
		name := gridVarName(d)
		varNames = append(varNames, name)
		fmt.Fprintf(&buf, "var %s = []Instantiation{\n", name)
		for _, p := range gridFor(d) {
			fmt.Fprintf(&buf, "\t{Name: %q, Problem: %s},\n", instName(p), renderProblem(p))
		}
		buf.WriteString("}\n\n")
	}

	buf.WriteString("// ForwardInstantiationsSM90 is the supported forward shape grid.\n")
	fmt.Fprintf(&buf, "var ForwardInstantiationsSM90 = slices.Concat(%s)\n", strings.Join(varNames, ", "))

	return format.Source(buf.Bytes())
}

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

// tilegen emits the checked-in instantiation grid for the forward attention
// kernels. Run it through go generate from the flash package:
//
//	go generate ./flash
//
// Every grid entry is resolved through the tile resolver so that shapes which
// collapse to the 16-unit floor under the consumer shared-memory ceiling are
// surfaced at generation time rather than at kernel instantiation.
package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ivandobskygithub/flash-attention/flash"
)

func main() {
	output := flag.String("output", "zinstantiations.go", "output file, relative to the flash package")
	dryRun := flag.Bool("dry-run", false, "print the generated source instead of writing it")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	var entries int
	for _, d := range gridDTypes {
		for _, p := range gridFor(d) {
			entries++
			t := flash.ForwardTileSM90(p)
			if t.BlockM <= 16 || t.BlockN <= 16 {
				log.WithFields(logrus.Fields{
					"name":    instName(p),
					"block_m": t.BlockM,
					"block_n": t.BlockN,
					"smem":    t.SmemBytes(p),
				}).Warn("tile floor-clamped under consumer smem ceiling")
			}
		}
	}

	src, err := render()
	if err != nil {
		log.WithError(err).Fatal("rendering instantiation grid")
	}

	if *dryRun {
		os.Stdout.Write(src)
		return
	}
	if err := os.WriteFile(*output, src, 0o644); err != nil {
		log.WithError(err).Fatal("writing instantiation grid")
	}
	log.WithFields(logrus.Fields{"entries": entries, "output": *output}).Info("instantiation grid written")
}

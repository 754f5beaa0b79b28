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
	"fmt"

	"github.com/ivandobskygithub/flash-attention/flash"
)

// Mainloop is the generation-independent descriptor surface the launch side
// consumes once a mainloop has been selected.
type Mainloop interface {
	Arch() flash.Arch
	TileShape() Shape3
	SharedMemBytes() int
}

// SelectForward instantiates the forward mainloop registered for the
// generation. Generations with a registered alias resolve through the SM90
// implementation; any other generation is a configuration error, the runtime
// analogue of instantiating an unregistered tag failing the build.
func SelectForward[E Element, A Accum](arch flash.Arch, p FwdParams) (Mainloop, error) {
	switch arch {
	case flash.SM90:
		return NewMainloopFwdSM90[E, A, SM90](p), nil
	case flash.SM120:
		return NewMainloopFwdSM90[E, A, SM120](p), nil
	}
	return nil, fmt.Errorf("pipeline: no forward mainloop registered for %s", arch)
}

// SelectBackward is the backward-direction counterpart of SelectForward.
func SelectBackward[E Element, A Accum](arch flash.Arch, p BwdParams) (Mainloop, error) {
	switch arch {
	case flash.SM90:
		return NewMainloopBwdSM90[E, A, SM90](p), nil
	case flash.SM120:
		return NewMainloopBwdSM90[E, A, SM120](p), nil
	}
	return nil, fmt.Errorf("pipeline: no backward mainloop registered for %s", arch)
}

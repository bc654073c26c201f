// SPDX-License-Identifier: EPL-2.0

package gray2snd

import (
	"github.com/csm/gray2snd/audio"
	"github.com/csm/gray2snd/formats/aiff"
	"github.com/csm/gray2snd/formats/au"
	"github.com/csm/gray2snd/formats/raw"
	"github.com/csm/gray2snd/formats/wav"
)

// DefaultRegistry returns a registry holding every container this module
// can write.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register(audio.FormatWAV, wav.Encoder{})
	reg.Register(audio.FormatAIFF, aiff.Encoder{})
	reg.Register(audio.FormatAU, au.Encoder{})
	reg.Register(audio.FormatRAW, raw.Encoder{})
	return reg
}

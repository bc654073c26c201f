// SPDX-License-Identifier: EPL-2.0

package gray2snd_test

import (
	"context"
	"fmt"

	"github.com/csm/gray2snd"
	"github.com/csm/gray2snd/internal/audiotest"
	"github.com/csm/gray2snd/pixmap"
)

// ExampleRenderTo renders a two-column image into memory.
func ExampleRenderTo() {
	grid, err := pixmap.New(2, 3, []uint8{
		255, 0,
		0, 128,
		0, 0,
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	opts := gray2snd.DefaultOptions()
	opts.Width, opts.Height = grid.Width, grid.Height
	opts.Duration = 441

	sink := audiotest.NewMemorySink()
	if err := gray2snd.RenderTo(context.Background(), sink, grid, opts); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%d columns, %d samples\n", len(sink.Buffers), len(sink.Samples))
	// Output: 2 columns, 882 samples
}

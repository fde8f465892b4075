// SPDX-License-Identifier: MIT
package codec_test

import (
	"fmt"

	"github.com/katalvlaran/svdimg/codec"
	"github.com/katalvlaran/svdimg/quant"
	"github.com/katalvlaran/svdimg/raster"
)

// ExampleEncode compresses a flat mid-grey image and inspects the header.
func ExampleEncode() {
	img, _ := raster.New(17, 5)
	for i := range img.Planes[0] {
		img.Planes[0][i] = 0.5
	}

	data, st, err := codec.Encode(img, codec.WithQuant(quant.Params{12, 10, 10}))
	if err != nil {
		fmt.Println(err)
		return
	}
	h, _ := codec.PeekHeader(data)
	fmt.Printf("%dx%d quant=%v header=%d bits ranks=%d\n", h.Width, h.Height, h.Quant, st.HeaderBits, st.Ranks)

	out, _ := codec.Decode(data)
	fmt.Printf("pixel (0,0): Y=%.3f Cb=%.3f Cr=%.3f\n", out.Planes[0][0], out.Planes[1][0], out.Planes[2][0])
	// Output:
	// 17x5 quant=[12 10 10] header=35 bits ranks=5
	// pixel (0,0): Y=0.500 Cb=0.000 Cr=0.000
}

// ExampleDecode_preview reconstructs only the strongest rank.
func ExampleDecode_preview() {
	img, _ := raster.New(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Planes[0][y*4+x] = 0.5 + 0.1*float64(x) // rank one after centering
		}
	}
	data, _, _ := codec.Encode(img)
	out, _ := codec.Decode(data, codec.WithMaxRank(1))
	fmt.Printf("%.2f %.2f %.2f %.2f\n", out.Planes[0][0], out.Planes[0][1], out.Planes[0][2], out.Planes[0][3])
	// Output:
	// 0.50 0.60 0.70 0.80
}

// Package svdimg is a lossy image codec built on the truncated singular
// value decomposition.
//
// Each of the three luma-chroma planes of an image is factorized as
// A ≈ U·diag(S)·Vᵀ, the factors are quantized with a per-channel power of two
// and written with a self-delimiting variable-length integer code, rank by
// rank, so any stream prefix ending on a rank boundary is a usable low-rank
// image.
//
// Under the hood, everything is organized in small packages, leaves first:
//
//	bitstream/   MSB-first bit writer/reader with a capacity bound (icza/bitio)
//	vli/         Exp-Golomb unsigned and signed integer codes
//	matrix/      row-major Dense matrix, Mul, diagonal row/column scaling
//	quant/       power-of-two quantizer and int64 Block matrix
//	factor/      float and quantized factor triples, economy rank
//	svd/         thin SVD oracle (gonum)
//	reconstruct/ U·diag(S)·Vᵀ with S folded into the smaller factor
//	codec/       header, rank-interleaved layout, Encode/Decode, options
//	colorspace/  RGB ↔ Y/Cb/Cr (BT.601 full range)
//	raster/      planar image buffer, PPM/PNG/JPEG I/O
//
// Commands:
//
//	cmd/svdenc   image → stream
//	cmd/svddec   stream → image (progressive and preview modes)
//
// Quick start:
//
//	img, _ := raster.Load("in.ppm")
//	ycc, _ := colorspace.ToYCbCr(img)
//	data, stats, err := codec.Encode(ycc, codec.WithQuant(quant.Params{12, 10, 10}))
//	...
//	out, err := codec.Decode(data)
//	rgb, _ := colorspace.ToRGB(out)
//	_ = raster.Store("out.png", rgb)
package svdimg

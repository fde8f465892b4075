// SPDX-License-Identifier: MIT
package codec_test

import (
	"testing"

	"github.com/katalvlaran/svdimg/codec"
)

func BenchmarkEncode64(b *testing.B) {
	img := smoothImage(b, 64, 64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := codec.Encode(img); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecode64(b *testing.B) {
	data, _, err := codec.Encode(smoothImage(b, 64, 64))
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := codec.Decode(data); err != nil {
			b.Fatal(err)
		}
	}
}

package model

import (
	"fmt"
	"testing"

	"github.com/sheikhrachel/toroidal-gol/utils"
)

func BenchmarkExampleTick(b *testing.B) {
	u := Example()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range 9 {
			u.Tick()
		}
	}
}

func BenchmarkTick(b *testing.B) {
	for _, size := range []int{64, 128, 512} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			u := Random(size, size, utils.NewRNG(1))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				u.Tick()
			}
		})
	}
}

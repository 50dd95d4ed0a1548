package caterpillar_test

import (
	"testing"

	"github.com/katalvlaran/transmission/builder"
	"github.com/katalvlaran/transmission/caterpillar"
	"github.com/katalvlaran/transmission/status"
)

func benchmarkReconstruct(b *testing.B, n int) {
	tr, err := builder.Build(builder.RandomCaterpillar(n), builder.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	seq, err := status.Sequence(tr)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := caterpillar.Reconstruct(seq); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReconstruct100(b *testing.B)  { benchmarkReconstruct(b, 100) }
func BenchmarkReconstruct1000(b *testing.B) { benchmarkReconstruct(b, 1000) }

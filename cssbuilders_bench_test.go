//go:build bench

package pdfreport

import (
	"context"
	"testing"
)

// BenchmarkBuildPageCSS benchmarks @page rule generation.
func BenchmarkBuildPageCSS(b *testing.B) {
	page := DefaultPageSettings()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = buildPageCSS(page)
	}
}

// BenchmarkHTMLBuild benchmarks the HTML rendition of a small report.
func BenchmarkHTMLBuild(b *testing.B) {
	hb := newHTMLBuilder("")
	doc := sampleDocument()
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := hb.Build(ctx, doc); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkNativeRender benchmarks in-process PDF layout.
func BenchmarkNativeRender(b *testing.B) {
	for _, tc := range []struct {
		name string
		doc  *Document
	}{
		{"sample", sampleDocument()},
		{"long", longDocument(200)},
	} {
		b.Run(tc.name, func(b *testing.B) {
			nb := newNativeBackend()
			ctx := context.Background()
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := nb.Render(ctx, tc.doc); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/ipierette/catbytes-portfolio/core/domain"
)

// benchPage is a full page of organic results, the size the search service caches
func benchPage(b *testing.B) []byte {
	hits := make([]domain.SearchHit, 12)
	for i := range hits {
		hits[i] = domain.SearchHit{
			Title:   fmt.Sprintf("Gato %d para adoção", i),
			Snippet: "Gato castrado, vacinado e muito dócil procura um lar responsável.",
			Link:    fmt.Sprintf("https://ampara.org.br/gato-%d", i),
			Source:  "ampara.org.br",
		}
	}
	data, err := json.Marshal(hits)
	if err != nil {
		b.Fatal(err)
	}
	return data
}

func BenchmarkMemoryCache_GetPageParallel(b *testing.B) {
	cache := NewMemoryCache()
	ctx := context.Background()
	data := benchPage(b)
	for i := 0; i < 64; i++ {
		_ = cache.Set(ctx, fmt.Sprintf("search:serp:q%d", i), data, time.Hour)
	}

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_, _ = cache.Get(ctx, fmt.Sprintf("search:serp:q%d", i%64))
			i++
		}
	})
}

func BenchmarkMemoryCache_SetPage(b *testing.B) {
	cache := NewMemoryCache()
	ctx := context.Background()
	data := benchPage(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cache.Set(ctx, fmt.Sprintf("search:serp:q%d", i%256), data, time.Hour)
	}
}

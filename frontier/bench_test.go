package frontier_test

import (
	"runtime"
	"sync"
	"testing"

	"github.com/katalvlaran/pargraph/frontier"
)

// BenchmarkFrontier_Publish compares per-vertex claims against buffered bulk
// publication under contention.
func BenchmarkFrontier_Publish(b *testing.B) {
	const perWorker = 4096
	workers := runtime.GOMAXPROCS(0)
	f := frontier.New(workers * perWorker)

	b.Run("ClaimSlot", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			f.Clear()
			var wg sync.WaitGroup
			wg.Add(workers)
			for w := 0; w < workers; w++ {
				go func() {
					defer wg.Done()
					for j := 0; j < perWorker; j++ {
						f.Set(f.ClaimSlot(), 1)
					}
				}()
			}
			wg.Wait()
		}
	})

	b.Run("Buffer", func(b *testing.B) {
		b.ReportAllocs()
		bufs := make([]frontier.Buffer, workers)
		for i := 0; i < b.N; i++ {
			f.Clear()
			var wg sync.WaitGroup
			wg.Add(workers)
			for w := 0; w < workers; w++ {
				go func(buf *frontier.Buffer) {
					defer wg.Done()
					for j := 0; j < perWorker; j++ {
						buf.Append(1)
					}
					buf.Flush(f)
				}(&bufs[w])
			}
			wg.Wait()
		}
	})
}

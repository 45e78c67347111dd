package terrain

import (
	"context"
	"runtime"
	"sync"

	"github.com/erikmannerfelt/xdem-data/internal/dem"
	"golang.org/x/sync/semaphore"
)

var sem = semaphore.NewWeighted(int64(runtime.NumCPU()))

// eachRow runs fn for every row of the raster. Rows are processed
// concurrently, bounded by the number of CPUs; fn must only write cells of
// its own row.
func eachRow(raster dem.EsriASCIIRaster, fn func(r uint)) {
	wg := sync.WaitGroup{}

	for r := uint(0); r < raster.Nrows; r++ {
		wg.Add(1)
		go func(r uint) {
			defer wg.Done()

			sem.Acquire(context.Background(), 1)
			defer sem.Release(1)

			fn(r)
		}(r)
	}

	wg.Wait()
}

package parallel

import (
	"runtime"
	"sync"
)

// numBlocksFor computes how many blocks a range of the given length is
// split into. When blockSize is 0 the range is split once per available
// CPU; otherwise it is split so that no block is smaller than blockSize.
func numBlocksFor(length, blockSize int) int {
	if blockSize > 0 {
		if n := length / blockSize; n > 1 {
			return n
		}
		return 1
	}
	if n := runtime.NumCPU(); n > 1 {
		return n
	}
	return 1
}

// blockBounds returns the [begin,end) bounds assigned to block iblock out
// of numBlocks total blocks covering [0,length). Blocks absorb the
// remainder one index at a time so that sizes differ by at most one.
func blockBounds(length, numBlocks, iblock int) (begin, end int) {
	begin = 0
	for i := 0; i < iblock; i++ {
		restLen := length - begin
		restBlocks := numBlocks - i
		bs := restLen / restBlocks
		if bs*restBlocks < restLen {
			bs++
		}
		begin += bs
	}
	restLen := length - begin
	restBlocks := numBlocks - iblock
	bs := restLen / restBlocks
	if bs*restBlocks < restLen {
		bs++
	}
	return begin, begin + bs
}

// For calls fn(i) once for every i in [0,length), distributing the
// indices across goroutines in contiguous blocks. If blockSize is 0 the
// range is divided once per CPU; otherwise it is divided so that each
// goroutine processes a block of at least blockSize indices. For blocks
// until every goroutine has finished.
//
// fn must not mutate state shared across indices without its own
// synchronization; For guarantees disjoint index ranges per goroutine,
// nothing more.
func For(length, blockSize int, fn func(i int)) {
	if length <= 0 {
		return
	}

	numBlocks := numBlocksFor(length, blockSize)
	var wg sync.WaitGroup
	wg.Add(numBlocks)
	for iblock := 0; iblock < numBlocks; iblock++ {
		begin, end := blockBounds(length, numBlocks, iblock)
		go func(begin, end int) {
			defer wg.Done()
			for i := begin; i < end; i++ {
				fn(i)
			}
		}(begin, end)
	}
	wg.Wait()
}

// ForErr behaves like For, except fn may fail. Every block runs to
// completion regardless of errors reported by other blocks; ForErr
// returns the first error encountered, in block order, or nil if none
// occurred.
func ForErr(length, blockSize int, fn func(i int) error) error {
	if length <= 0 {
		return nil
	}

	numBlocks := numBlocksFor(length, blockSize)
	errs := make([]error, numBlocks)
	var wg sync.WaitGroup
	wg.Add(numBlocks)
	for iblock := 0; iblock < numBlocks; iblock++ {
		begin, end := blockBounds(length, numBlocks, iblock)
		go func(iblock, begin, end int) {
			defer wg.Done()
			for i := begin; i < end; i++ {
				if err := fn(i); err != nil {
					errs[iblock] = err
					return
				}
			}
		}(iblock, begin, end)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

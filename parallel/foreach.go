// Package parallel contains the bounded ForEach loop and the order-independent Hasher.
package parallel

import "sync"

// ForEach calls body for every integer from 0 to length-1 with at most limit goroutines.
// With limit <= 1 the calls run on the caller's goroutine, in order, and stop at the first error.
// Otherwise every index runs and the error of the lowest failing index is returned.
func ForEach(length, limit int, body func(i int) error) error {
	if length <= 0 {
		return nil
	}
	if limit <= 1 {
		for i := 0; i < length; i++ {
			if err := body(i); err != nil {
				return err
			}
		}
		return nil
	}

	errs := make([]error, length)
	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup
	wg.Add(length)

	for i := 0; i < length; i++ {
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			errs[i] = body(i)
		}(i)
	}

	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

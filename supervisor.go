package main

// runSupervised runs work while spin animates, and guarantees the animation
// is cancelled the moment work settles, whether it returned normally or with
// an error. The spinner's own cleanup erases its line; Stop is awaited so no
// goroutine outlives the call. Work's error is returned unchanged.
func runSupervised(work func() error, spin *spinner) error {
	spin.Start()
	defer spin.Stop()
	return work()
}

package main

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// collectWithProgress drains the stream, advancing a progress bar once per
// compressed file, and returns the output paths in the order they were
// produced. It blocks until the stream is exhausted or fails; the bar's
// total is taken from the stream before the first pull.
func collectWithProgress(stream *CompressionStream, label string, w io.Writer) ([]string, error) {
	bar := progressbar.NewOptions(stream.Total(),
		progressbar.OptionSetDescription(label),
		progressbar.OptionSetWriter(w),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	paths := make([]string, 0, stream.Total())
	for {
		path, ok, err := stream.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		paths = append(paths, path)
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	return paths, nil
}

package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Files smaller than this are copied to the output directory as-is;
// Ghostscript gains nothing on PDFs that are already this small.
const fileSizeLowerLimit = 1 << 20 // 1 MiB

// invokeFunc compresses a single input file into outDir and returns the
// path of the produced file. The default implementation shells out to
// Ghostscript; tests substitute a fake.
type invokeFunc func(inPath, outDir, binary string) (string, error)

// listPDFs returns the eligible input files in srcdir: regular files with a
// .pdf extension (case-insensitive), in the stable lexical order os.ReadDir
// guarantees.
func listPDFs(srcdir string) ([]string, error) {
	entries, err := os.ReadDir(srcdir)
	if err != nil {
		return nil, fmt.Errorf("error reading source directory %s: %w", srcdir, err)
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		paths = append(paths, filepath.Join(srcdir, entry.Name()))
	}
	return paths, nil
}

// compressPDF runs the Ghostscript binary on a single file and returns the
// output path. Small files are copied instead of compressed.
func compressPDF(inPath, outDir, binary string) (string, error) {
	outPath := filepath.Join(outDir, filepath.Base(inPath))

	info, err := os.Stat(inPath)
	if err != nil {
		return "", fmt.Errorf("error accessing file %s: %w", inPath, err)
	}
	if info.Size() < fileSizeLowerLimit {
		if err := copyFile(inPath, outPath); err != nil {
			return "", err
		}
		return outPath, nil
	}

	cmd := exec.Command(binary,
		"-sDEVICE=pdfwrite",
		"-dCompatibilityLevel=1.4",
		"-dPDFSETTINGS=/ebook",
		"-dNOPAUSE",
		"-dQUIET",
		"-dBATCH",
		"-sOutputFile="+outPath,
		inPath,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("%s failed on %s: %w: %s", binary, inPath, err, strings.TrimSpace(string(out)))
	}
	return outPath, nil
}

func copyFile(inPath, outPath string) error {
	inFile, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("copy failed, could not open input file: %w", err)
	}
	defer inFile.Close()
	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("copy failed, could not create output file: %w", err)
	}
	defer outFile.Close()
	if _, err := io.Copy(outFile, inFile); err != nil {
		return fmt.Errorf("copy failed for %s: %w", inPath, err)
	}
	return nil
}

// CompressionStream is a single-pass pull stream over the compression batch.
// The directory is scanned eagerly so the total is known up front, but each
// file is compressed only when pulled via Next. A stream is not restartable:
// once Next reports done (or an error), it stays done.
type CompressionStream struct {
	job    CompressionJob
	inputs []string
	pos    int
	failed bool
	invoke invokeFunc
}

// newCompressionStream scans the job's source directory and returns a stream
// ready to compress the discovered files one pull at a time.
func newCompressionStream(job CompressionJob) (*CompressionStream, error) {
	inputs, err := listPDFs(job.SrcDir)
	if err != nil {
		return nil, err
	}
	return &CompressionStream{
		job:    job,
		inputs: inputs,
		invoke: compressPDF,
	}, nil
}

// Total reports the number of eligible files the scan discovered.
func (s *CompressionStream) Total() int {
	return len(s.inputs)
}

// Next compresses the next input file and returns the output path. ok is
// false once the stream is exhausted. A compression failure terminates the
// stream; the remaining files are not attempted.
func (s *CompressionStream) Next() (path string, ok bool, err error) {
	if s.failed || s.pos >= len(s.inputs) {
		return "", false, nil
	}
	in := s.inputs[s.pos]
	s.pos++
	out, err := s.invoke(in, s.job.OutDir, s.job.Ghostscript)
	if err != nil {
		s.failed = true
		return "", false, err
	}
	return out, true, nil
}

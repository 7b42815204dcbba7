package main

// CompressionJob describes one batch run of the compressor: where to find the
// input PDFs, where the compressed files go, and which binary to invoke.
// Immutable once built from the parsed flags.
type CompressionJob struct {
	SrcDir      string
	OutDir      string
	Ghostscript string // name of the Ghostscript binary, e.g. "gs"
}

// EmailJob holds everything needed for one send: the resolved SMTP account
// settings and the files to attach. Read-only during the send.
type EmailJob struct {
	User        string
	Password    string
	Receiver    string
	SMTPServer  string
	SMTPPort    int
	Attachments []string
}

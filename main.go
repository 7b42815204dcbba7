package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const outDirIsFileMessage = `The specified output directory (%s) is a file!
Please specify a path to either an existing directory, or to where you wish to create one.`

// statusCallback receives every user-facing status or error message.
// The default implementation writes to stdout.
type statusCallback func(string)

func printStatus(msg string) {
	fmt.Println(msg)
}

// options holds the flag values for one run.
type options struct {
	srcDir       string
	outDir       string
	ghostscript  string
	email        bool
	configStatus bool
	clean        bool
}

var opts options

// version is the application version, set via ldflags.
var version string = "dev"

var rootCmd = &cobra.Command{
	Use:   "pdfebc",
	Short: "Compress PDF files with Ghostscript.",
	Long: `pdfebc compresses the PDF files in a source directory with Ghostscript,
collects the results in an output directory, and can e-mail them to a
preconfigured receiver.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		if code := run(opts, printStatus); code != 0 {
			os.Exit(code)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().StringVarP(&opts.srcDir, "srcdir", "s", "", "Directory containing the PDF files to compress")
	rootCmd.Flags().StringVarP(&opts.outDir, "outdir", "o", "", "Directory to put the compressed files in")
	rootCmd.Flags().StringVarP(&opts.ghostscript, "ghostscript", "g", "gs", "Name of the Ghostscript binary")
	rootCmd.Flags().BoolVarP(&opts.email, "email", "e", false, "Send the compressed files to the preconfigured e-mail receiver")
	rootCmd.Flags().BoolVar(&opts.configStatus, "configstatus", false, "Print configuration diagnostics and exit")
	rootCmd.Flags().BoolVarP(&opts.clean, "clean", "c", false, "Remove the output directory after the other steps have finished")
}

// initConfig reads the configuration file and environment variables. A
// missing file is fine (sending e-mail just won't work); a malformed one is
// fatal after printing diagnostics.
func initConfig() {
	setConfigDefaults()

	home, err := os.UserHomeDir()
	cobra.CheckErr(err)
	viper.AddConfigPath(filepath.Join(home, ".config", "pdfebc"))
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.SetEnvPrefix("PDFEBC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
			diagnoseConfig(printStatus)
			os.Exit(1)
		}
	}
}

// run is the orchestrator: each step is gated on the previous one and the
// return value is the process exit code.
func run(opts options, cb statusCallback) int {
	if opts.configStatus {
		diagnoseConfig(cb)
		return 0
	}

	// Required only here so that --configstatus works on its own.
	if opts.srcDir == "" || opts.outDir == "" {
		cb("The --srcdir and --outdir flags are required (see --help).")
		return 1
	}

	if info, err := os.Stat(opts.outDir); err == nil && !info.IsDir() {
		cb(fmt.Sprintf(outDirIsFileMessage, opts.outDir))
		return 1
	}
	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory %s: %v\n", opts.outDir, err)
		return 1
	}

	job := CompressionJob{SrcDir: opts.srcDir, OutDir: opts.outDir, Ghostscript: opts.ghostscript}
	stream, err := newCompressionStream(job)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	label := fmt.Sprintf("Compressing %d files ...", stream.Total())
	paths, err := collectWithProgress(stream, label, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error compressing files: %v\n", err)
		return 1
	}

	if opts.email {
		if !validConfigExists() {
			fmt.Fprintln(os.Stderr, "Warning: the e-mail configuration is incomplete, sending will likely fail.")
		}
		emailJob := newEmailJob(paths)
		cb(sendStatusMessage(emailJob))
		spin := newSpinner("Sending files ...")
		if err := runSupervised(func() error { return sendFilesFn(emailJob) }, spin); err != nil {
			reportSendError(err, cb)
		}
	}

	if opts.clean {
		cb(fmt.Sprintf("Cleaning up %s ...", opts.outDir))
		if err := os.RemoveAll(opts.outDir); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not remove output directory %s: %v\n", opts.outDir, err)
		}
	}
	return 0
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

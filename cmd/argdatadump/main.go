// Command argdatadump decodes an argdata buffer from a file or stdin and
// prints the decoded value tree.
package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nuxinl/go-argdata"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		filename string
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "argdatadump",
		Short: "Decode and print an argdata buffer",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(verbose)
			data, err := readInput(filename, log)
			if err != nil {
				return err
			}
			log.WithField("bytes", len(data)).Debug("decoded input")
			cmd.Println(argdata.Dump(argdata.FromBytes(data)))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&filename, "file", "f", "", "path to an encoded argdata buffer (default: stdin)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log decode tracing to stderr")

	return cmd
}

func newLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.Out = os.Stderr
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func readInput(filename string, log *logrus.Logger) ([]byte, error) {
	if filename == "" {
		log.Debug("reading from stdin")
		data, err := io.ReadAll(os.Stdin)
		return data, errors.Wrap(err, "argdatadump: reading stdin")
	}

	log.WithField("path", filename).Debug("opening file")
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "argdatadump: opening %s", filename)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	return data, errors.Wrapf(err, "argdatadump: reading %s", filename)
}

package main

import (
	"bytes"
	"io"
	"os"

	"github.com/ansel1/merry"
	"github.com/dustin/go-humanize"
	"github.com/lomik/zapwriter"
	"github.com/natefinch/atomic"
	"go.uber.org/zap"

	"github.com/microflex/microflex/cmd/microflex/config"
	"github.com/microflex/microflex/expr/types"
	"github.com/microflex/microflex/pkg/numeric"
	"github.com/microflex/microflex/pkg/plate"
)

var errUsage = merry.New("invalid usage")

// readInput returns the contents of path, or of stdin when path is "-".
func readInput(path string, stdin io.Reader) ([]byte, error) {
	var b []byte
	var err error
	if path == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, merry.Wrap(err).WithValue("input", path)
	}
	zapwriter.Logger("input").Debug("read input",
		zap.String("input", path),
		zap.String("size", humanize.Bytes(uint64(len(b)))),
	)
	return b, nil
}

func readStack[T any](d numeric.Domain[T], path string, stdin io.Reader) (*plate.Stack[T], error) {
	b, err := readInput(path, stdin)
	if err != nil {
		return nil, err
	}
	s, err := types.ParseStack(d, b)
	if err != nil {
		return nil, merry.Wrap(err).WithValue("input", path)
	}
	return s, nil
}

func marshalRecords(records []types.Record) []byte {
	if config.Config.Format == "csv" {
		return types.MarshalCSV(records)
	}
	return append(types.MarshalJSON(records), '\n')
}

func marshalStack[T any](d numeric.Domain[T], s *plate.Stack[T]) []byte {
	if config.Config.Format == "csv" {
		return types.MarshalPlateCSV(d, s.Plates()...)
	}
	return append(types.MarshalStackJSON(d, s), '\n')
}

// writeOutput writes b to w, or replaces the file at path atomically when
// path is set.
func writeOutput(w io.Writer, path string, b []byte) error {
	if path == "" {
		_, err := w.Write(b)
		return err
	}
	if err := atomic.WriteFile(path, bytes.NewReader(b)); err != nil {
		return merry.Wrap(err).WithValue("output", path)
	}
	zapwriter.Logger("output").Debug("wrote output",
		zap.String("output", path),
		zap.String("size", humanize.Bytes(uint64(len(b)))),
	)
	return nil
}

package main

import (
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/rogpeppe/go-internal/testscript"
	"go.trai.ch/issueboard/internal/core/domain"
)

// cmdGzip compresses each named file to file.gz, leaving the original in place.
func cmdGzip(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("unsupported: ! gzip")
	}
	if len(args) == 0 {
		ts.Fatalf("usage: gzip file...")
	}
	for _, name := range args {
		src := ts.MkAbs(name)
		data, err := os.ReadFile(src) //nolint:gosec // test fixture
		ts.Check(err)

		out, err := os.OpenFile(src+".gz", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, domain.FilePerm)
		ts.Check(err)
		zw := gzip.NewWriter(out)
		_, err = zw.Write(data)
		ts.Check(err)
		ts.Check(zw.Close())
		ts.Check(out.Close())
	}
}

// Copyright ©2024 The MARVEL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// landscape plots the Q-track and read-length distributions of a read
// database, the Go-idiomatic replacement for LAfix's commented-out
// VERBOSE stats printf block (spec.md §9's Stats design note).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/wolf2407/marvel/store"
)

var (
	db  = flag.String("db", "", "read database fasta file (required); the Q track is read from <db>.q")
	out = flag.String("out", "landscape", "output file prefix; writes <out>.q.pdf and <out>.length.pdf")
)

func main() {
	flag.Parse()
	if *db == "" {
		flag.Usage()
		os.Exit(1)
	}

	dbFile, err := os.Open(*db)
	if err != nil {
		log.Fatalf("landscape: open read database: %v", err)
	}
	defer dbFile.Close()

	reads, err := store.NewFileReadStore(dbFile)
	if err != nil {
		log.Fatalf("landscape: load read database: %v", err)
	}

	qFile, err := os.Open(*db + ".q")
	if err != nil {
		log.Fatalf("landscape: open Q track: %v", err)
	}
	defer qFile.Close()

	tracks := store.NewFileTrackStore()
	if err := tracks.LoadQ(qFile, reads.Index()); err != nil {
		log.Fatalf("landscape: load Q track: %v", err)
	}

	var qValues, lengths plotter.Values
	for id := 0; id < reads.NumReads(); id++ {
		lengths = append(lengths, float64(reads.Len(id)))
		for _, q := range tracks.QSegments(id) {
			qValues = append(qValues, float64(q))
		}
	}

	if err := savePlot(*out+".q.pdf", "Q segment distribution", "Q", qValues); err != nil {
		log.Fatalf("landscape: write Q plot: %v", err)
	}
	if err := savePlot(*out+".length.pdf", "read length distribution", "bases", lengths); err != nil {
		log.Fatalf("landscape: write length plot: %v", err)
	}

	fmt.Printf("reads=%d meanLength=%.1f meanQ=%.2f\n",
		reads.NumReads(), stat.Mean(lengths, nil), stat.Mean(qValues, nil))
}

func savePlot(path, title, xLabel string, values plotter.Values) error {
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "count"

	h, err := plotter.NewHist(values, 50)
	if err != nil {
		return err
	}
	p.Add(h)

	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}

// Copyright ©2024 The MARVEL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// fix repairs long erroneous reads by patching weak or gapped regions
// with the best-supporting region of an overlapping read.
//
// Track files are resolved as siblings of the read database path:
// <db>.q holds the Q track, <db>.dust the low-complexity mask, and
// <db>.<name> any trim or convert track named with -t/-c. When -q is
// given, <db>.qv supplies the input quality-value streams Patcher
// splices into the quality output alongside bases.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/wolf2407/marvel/fix"
	"github.com/wolf2407/marvel/store"
)

// trackList collects the repeatable -c flag the way reefer.go's mat
// flag.Value collects its alignment parameters.
type trackList []string

func (t *trackList) String() string { return strings.Join(*t, ",") }
func (t *trackList) Set(s string) error {
	*t = append(*t, s)
	return nil
}

var (
	minLen    = flag.Int("x", 1000, "drop output reads shorter than this many bases after patching")
	lowQ      = flag.Int("Q", 28, "segments with Q >= this are candidates for weak-region patching")
	maxGap    = flag.Int("g", 500, "reject patches whose A- or B-interval length exceeds this; -1 disables")
	trimTrack = flag.String("t", "", "use named track as trim mask")
	qvOut     = flag.String("q", "", "also emit patched quality streams to this path")

	convertTracks trackList
)

func main() {
	flag.Var(&convertTracks, "c", "remap named track through the splice map; may repeat")
	flag.Parse()

	if flag.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "usage: fix [-x MIN] [-Q LOWQ] [-g MAXGAP] [-t TRIMTRACK] [-c TRACK]* [-q QVOUT] <db> <overlaps.las> <patched.fasta>")
		os.Exit(1)
	}
	dbPath, ovlPath, outPath := flag.Arg(0), flag.Arg(1), flag.Arg(2)

	dbFile, err := os.Open(dbPath)
	if err != nil {
		log.Fatalf("fix: open read database: %v", err)
	}
	defer dbFile.Close()

	reads, err := store.NewFileReadStore(dbFile)
	if err != nil {
		log.Fatalf("fix: load read database: %v", err)
	}

	tracks := store.NewFileTrackStore()
	index := reads.Index()

	qFile, err := os.Open(dbPath + ".q")
	if err != nil {
		log.Fatalf("fix: open Q track: %v", err)
	}
	defer qFile.Close()
	if err := tracks.LoadQ(qFile, index); err != nil {
		log.Fatalf("fix: load Q track: %v", err)
	}

	dustFile, err := os.Open(dbPath + ".dust")
	if err != nil {
		log.Fatalf("fix: open dust track: %v", err)
	}
	defer dustFile.Close()
	if err := tracks.LoadDust(dustFile, index); err != nil {
		log.Fatalf("fix: load dust track: %v", err)
	}

	if *trimTrack != "" {
		f, err := os.Open(dbPath + "." + *trimTrack)
		if err != nil {
			log.Fatalf("fix: open trim track %q: %v", *trimTrack, err)
		}
		err = tracks.LoadTrim(f, index)
		f.Close()
		if err != nil {
			log.Fatalf("fix: load trim track %q: %v", *trimTrack, err)
		}
	}

	for _, name := range convertTracks {
		f, err := os.Open(dbPath + "." + name)
		if err != nil {
			log.Fatalf("fix: open convert track %q: %v", name, err)
		}
		err = tracks.LoadConvert(name, f, index)
		f.Close()
		if err != nil {
			log.Fatalf("fix: load convert track %q: %v", name, err)
		}
	}

	ovlFile, err := os.Open(ovlPath)
	if err != nil {
		log.Fatalf("fix: open overlap file: %v", err)
	}
	defer ovlFile.Close()
	ovls := store.NewFileOverlapStream(ovlFile)
	defer ovls.Close()

	outFile, err := os.Create(outPath)
	if err != nil {
		log.Fatalf("fix: create output: %v", err)
	}
	sink := store.NewFastaWriter(outFile)

	var qvSink *store.QualityWriter
	var qvStore *store.FileQualityStore
	if *qvOut != "" {
		qf, err := os.Create(*qvOut)
		if err != nil {
			log.Fatalf("fix: create quality output: %v", err)
		}
		qvSink = store.NewQualityWriter(qf)

		qvFile, err := os.Open(dbPath + ".qv")
		if err != nil {
			log.Fatalf("fix: open QV track: %v", err)
		}
		qvStore = store.NewFileQualityStore()
		err = qvStore.Load(qvFile, index)
		qvFile.Close()
		if err != nil {
			log.Fatalf("fix: load QV track: %v", err)
		}
	}

	cfg := fix.DefaultConfig()
	cfg.MinLen = *minLen
	cfg.LowQ = *lowQ
	cfg.MaxGap = *maxGap
	cfg.ConvertTrack = convertTracks

	var qv fix.QVStore
	if qvStore != nil {
		qv = qvStore
	}
	ctx := fix.NewContext(cfg, reads, tracks, qv)

	for {
		g, ok, err := ovls.Next()
		if err != nil {
			log.Fatalf("fix: read overlaps: %v", err)
		}
		if !ok {
			break
		}

		res := ctx.Run(g)
		if !res.Emit {
			continue
		}

		if err := sink.WriteRecord(res.Header, res.Body); err != nil {
			log.Fatalf("fix: write patched read: %v", err)
		}
		if qvSink != nil && len(res.QVLines) > 0 {
			qvHeader := fmt.Sprintf("@fixed/0_%d source=%d", len(res.Body), g.ARead)
			if err := qvSink.WriteRecord(qvHeader, res.QVLines); err != nil {
				log.Fatalf("fix: write quality streams: %v", err)
			}
		}
	}

	if err := sink.Close(); err != nil {
		log.Fatalf("fix: close output: %v", err)
	}
	if qvSink != nil {
		if err := qvSink.Close(); err != nil {
			log.Fatalf("fix: close quality output: %v", err)
		}
	}

	log.Printf("fix: %d reads emitted, %d dropped, %d flips, %d candidates kept after merge",
		ctx.Stats.ReadsEmitted, ctx.Stats.ReadsDropped, ctx.Stats.NumFlips, ctx.Stats.NumGaps)
}

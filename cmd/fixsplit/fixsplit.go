// Copyright ©2024 The MARVEL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// fixsplit shards an overlap file's distinct A-read groups into a
// number of balanced work units, so fix can be run as a trivially
// sharded worker pool over independent reads (spec.md §5). A group
// (all overlap records of one A-read) is never split across shards.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

var (
	in     = flag.String("in", "", "specifies the input overlap filename")
	bundle = flag.Int("bundle", 100000, "specifies the number of overlap records in a shard")
)

func main() {
	flag.Parse()
	if *in == "" {
		flag.Usage()
		os.Exit(1)
	}

	inFile, err := os.Open(*in)
	if err != nil {
		log.Fatalf("failed to open input: %v", err)
	}
	defer inFile.Close()
	base := filepath.Base(*in)

	sc := bufio.NewScanner(inFile)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var i, size int
	out, err := os.Create(fmt.Sprintf("%s-%d.ovl", base, i))
	if err != nil {
		log.Fatalf("failed to open overlap bundle %d: %v", i, err)
	}

	curARead := ""
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		aread := strings.Fields(line)[0]

		if aread != curARead {
			curARead = aread
			if size != 0 && size >= *bundle {
				if err := out.Close(); err != nil {
					log.Fatalf("failed to close overlap bundle %d: %v", i, err)
				}
				i++
				size = 0
				out, err = os.Create(fmt.Sprintf("%s-%d.ovl", base, i))
				if err != nil {
					log.Fatalf("failed to open overlap bundle %d: %v", i, err)
				}
			}
		}

		if _, err := fmt.Fprintln(out, line); err != nil {
			log.Fatalf("failed to write overlap bundle %d: %v", i, err)
		}
		size++
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
	if err := out.Close(); err != nil {
		log.Fatalf("failed to close overlap bundle %d: %v", i, err)
	}
}

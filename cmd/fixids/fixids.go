// Copyright ©2024 The MARVEL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// fixids outputs a sorted list of distinct source read ids referenced
// by a patched.fasta file on stdin, for diffing which reads a fix run
// touched.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
)

func main() {
	ids := make(map[int]struct{})
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, ">") {
			continue
		}
		for _, field := range strings.Fields(line) {
			n, ok := sourceID(field)
			if !ok {
				continue
			}
			ids[n] = struct{}{}
		}
	}
	if err := sc.Err(); err != nil {
		log.Fatalf("error during fasta header read: %v", err)
	}

	list := make([]int, 0, len(ids))
	for n := range ids {
		list = append(list, n)
	}
	sort.Ints(list)
	for _, n := range list {
		fmt.Println(n)
	}
}

func sourceID(field string) (int, bool) {
	const prefix = "source="
	if !strings.HasPrefix(field, prefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(field, prefix))
	if err != nil {
		return 0, false
	}
	return n, true
}

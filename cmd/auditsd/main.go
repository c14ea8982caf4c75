// Copyright ©2026 The Asgart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// auditsd allows the audit store written by `asgart -audit-store` to
// be inspected after a run completes. It walks every record in
// left-position order and writes it to stdout as a JSON stream.
package main

import (
	"encoding/json"
	"flag"
	"io"
	"log"
	"os"

	"modernc.org/kv"

	"github.com/asgart-go/asgart/internal/store"
)

func main() {
	path := flag.String("db", "", "specify the audit store file to inspect (required)")
	chrom := flag.String("chr", "", "restrict output to records whose left arm is on this sequence")
	flag.Parse()
	if *path == "" {
		flag.Usage()
		os.Exit(2)
	}

	opts := &kv.Options{Compare: store.ByFamilyThenLeft}
	db, err := kv.Open(*path, opts)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	it, err := db.SeekFirst()
	if err != nil {
		if err == io.EOF {
			return
		}
		log.Fatal(err)
	}

	enc := json.NewEncoder(os.Stdout)
	for {
		k, _, err := it.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			log.Fatal(err)
		}
		r := store.UnmarshalSDKey(k)
		if *chrom != "" && r.ChrLeft != *chrom {
			continue
		}
		if err := enc.Encode(r); err != nil {
			log.Fatal(err)
		}
	}
}

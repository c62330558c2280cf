// runfolderinfo reads a runfolder setup XML file (locally or from Google
// Storage), checks it against the setup schema, and prints one tab-delimited
// row per samplefolder.
package main

import (
	"bytes"
	"context"
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/runfolder"
	"github.com/carbocation/runfolder/compileinfo"
	"github.com/carbocation/runfolder/validate"
	"github.com/davecgh/go-spew/spew"
)

func main() {
	compileinfo.Fprint(os.Stderr, "runfolderinfo")

	var filename string
	var noValidate bool
	var debug bool

	flag.StringVar(&filename, "file", "", "Runfolder setup XML file. May be a local path or a gs://bucket/path")
	flag.BoolVar(&noValidate, "novalidate", false, "Skip checking the file against the setup schema?")
	flag.BoolVar(&debug, "debug", false, "Dump the decoded runfolder to stderr?")
	flag.Parse()

	if filename == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Initialize the Google Storage client only if we're pointing to Google
	// Storage paths.
	var client *storage.Client
	if strings.HasPrefix(filename, "gs://") {
		var err error
		client, err = storage.NewClient(context.Background())
		if err != nil {
			log.Fatalln(err)
		}
		defer client.Close()
	}

	var debugW io.Writer
	if debug {
		debugW = os.Stderr
	}

	if err := run(filename, client, !noValidate, debugW, os.Stdout); err != nil {
		log.Fatalln(err)
	}
}

// run writes the samplefolder table to w. If debugW is non-nil, the decoded
// report and samplefolders are dumped to it as well.
func run(filename string, client *storage.Client, checkSchema bool, debugW, w io.Writer) error {
	f, err := runfolder.Open(filename, client)
	if err != nil {
		return err
	}
	defer f.Close()

	// The document is read twice, once to validate and once to decode.
	doc, err := io.ReadAll(f)
	if err != nil {
		return err
	}

	if checkSchema {
		if err := validate.Document(bytes.NewReader(doc)); err != nil {
			return err
		}
	}

	rf, err := runfolder.Decode(bytes.NewReader(doc))
	if err != nil {
		return err
	}

	if debugW != nil {
		report, _ := rf.Report()
		spew.Fdump(debugW, report, rf.Samplefolders().All())
	}

	log.Printf("%s: %d samplefolders\n", filename, rf.Samplefolders().Len())

	return WriteRows(w, Rows(rf))
}

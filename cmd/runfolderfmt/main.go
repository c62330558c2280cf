// runfolderfmt checks a runfolder setup XML file against the setup schema and
// rewrites it in a normalized, indented form.
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
	"github.com/carbocation/pfx"
	"github.com/carbocation/runfolder"
	"github.com/carbocation/runfolder/compileinfo"
	"github.com/carbocation/runfolder/validate"
)

func main() {
	compileinfo.Fprint(os.Stderr, "runfolderfmt")

	var filename, outPath string
	var strict, noValidate bool

	flag.StringVar(&filename, "file", "", "Runfolder setup XML file. May be a local path or a gs://bucket/path")
	flag.StringVar(&outPath, "out", "", "(Optional) Where to write the normalized file. Defaults to stdout")
	flag.BoolVar(&noValidate, "novalidate", false, "Skip checking the file against the setup schema?")
	flag.BoolVar(&strict, "strict", false, "Refuse to write a runfolder without a report? Only matters with -novalidate, since validation already requires one")
	flag.Parse()

	if filename == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	var client *storage.Client
	if strings.HasPrefix(filename, "gs://") {
		var err error
		client, err = storage.NewClient(context.Background())
		if err != nil {
			log.Fatalln(err)
		}
		defer client.Close()
	}

	var w io.Writer = os.Stdout
	if outPath != "" {
		outFile, err := os.Create(outPath)
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		defer outFile.Close()
		w = outFile
	}

	if err := run(filename, client, !noValidate, strict, w); err != nil {
		log.Fatalln(err)
	}
}

func run(filename string, client *storage.Client, checkSchema, strict bool, w io.Writer) error {
	f, err := runfolder.Open(filename, client)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := io.ReadAll(f)
	if err != nil {
		return pfx.Err(err)
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

	// Encode into a buffer first so nothing is written if encoding fails.
	var out bytes.Buffer
	encode := runfolder.Encode
	if strict {
		encode = runfolder.EncodeStrict
	}
	if err := encode(&out, rf); err != nil {
		return err
	}

	_, err = out.WriteTo(w)
	return err
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/nixlet/xenon"
	"github.com/nixlet/xenon/encoding"
)

type cmdopts struct {
	ChunkSize int  `long:"chunk-size" default:"4096" description:"read size in bytes"`
	MaxSpans  int  `long:"max-spans" default:"10" description:"chunk boundaries one construct may cross"`
	Version   bool `long:"version"`
}

func main() {
	os.Exit(_main())
}

func showVersion() {
	fmt.Printf("xenon-dump: using xenon version %s\n", xenon.Version)
}

func showUsage() {
	fmt.Printf(`Usage : xenon-dump [options] XMLfiles ...
	Tokenize the XML files in fixed-size chunks and print each event
	--version : display the version of the library used
`)
}

func _main() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}

	if opts.Version {
		showVersion()
		return 0
	}

	if len(args) == 0 {
		if err := dump(os.Stdin, opts); err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}
		return 0
	}

	for _, f := range args {
		fh, err := os.Open(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}
		err = dump(fh, opts)
		fh.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", f, err)
			return 1
		}
	}
	return 0
}

func dump(in io.Reader, opts cmdopts) error {
	s := xenon.NewStreamReader(
		encoding.NewAutoReader(in),
		xenon.WithChunkSize(opts.ChunkSize),
		xenon.WithMaxSpans(opts.MaxSpans),
	)
	for {
		batch, err := s.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		for _, ev := range batch {
			show(ev)
			if ev.Type == xenon.EventError && ev.Kind.Terminal() {
				return ev.Err()
			}
		}
	}
}

func show(ev xenon.Event) {
	fmt.Printf("%d:%d %s", ev.Line, ev.Column(), ev.Type)
	switch ev.Type {
	case xenon.EventStartElement, xenon.EventProlog:
		fmt.Printf(" %s", ev.Name)
		for _, a := range ev.Attributes {
			fmt.Printf(" %s=%q", a.Name, a.Value)
		}
	case xenon.EventEndElement:
		fmt.Printf(" %s", ev.Name)
	case xenon.EventProcessingInstruction:
		fmt.Printf(" %s %q", ev.Name, ev.Text)
	case xenon.EventError:
		fmt.Printf(" %s", ev.Kind)
	default:
		fmt.Printf(" %q", ev.Text)
	}
	fmt.Println()
}

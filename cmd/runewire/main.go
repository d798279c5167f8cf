package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/runewire/runewire/codec"
	"github.com/runewire/runewire/device"
	"github.com/runewire/runewire/stream"
)

func main() {
	var (
		from        = flag.String("from", "utf8", "Input format (utf8, utf16be, utf16le)")
		to          = flag.String("to", "utf8", "Output format (utf8, utf16be, utf16le)")
		inFile      = flag.String("in", "", "Input file (default stdin)")
		outFile     = flag.String("out", "", "Output file (default stdout)")
		inspect     = flag.String("inspect", "", "Inspect a single codepoint (U+1F600, 0x1F600, 128512)")
		relaxed     = flag.Bool("relaxed", false, "Accept legacy 5/6-byte forms and values above U+10FFFF")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		device.SetLogger(logger)
	}

	if *interactive {
		if err := runInteractive(!*relaxed); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *inspect != "" {
		if err := inspectCodepoint(*inspect, !*relaxed); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*from, *to, *inFile, *outFile, !*relaxed); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(fromStr, toStr, inFile, outFile string, rangeCheck bool) error {
	from, err := stream.ParseFormat(fromStr)
	if err != nil {
		return err
	}
	to, err := stream.ParseFormat(toStr)
	if err != nil {
		return err
	}

	in := io.Reader(os.Stdin)
	if inFile != "" {
		f, err := os.Open(inFile)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	out := io.Writer(os.Stdout)
	if outFile == "" && to != stream.UTF8 && term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Warning: writing UTF-16 binary output to a terminal")
	}
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	r := stream.NewReader(in, from, to, rangeCheck)
	if _, err := io.Copy(out, r); err != nil {
		return fmt.Errorf("transcode: %w", err)
	}
	return nil
}

func inspectCodepoint(arg string, rangeCheck bool) error {
	cp, err := parseCodepoint(arg)
	if err != nil {
		return err
	}

	fmt.Printf("Codepoint:  U+%04X\n", uint32(cp))
	fmt.Printf("Properties: %s\n", cp.Properties())

	b, res := codec.AppendUTF8(nil, cp, rangeCheck)
	if res.Status&codec.Error != 0 {
		fmt.Printf("UTF-8:      unencodable (%s)\n", res.Status)
	} else {
		fmt.Printf("UTF-8:      % X\n", b)
	}

	units, res16 := codec.AppendUTF16(nil, cp)
	if res16.Status&codec.Error != 0 {
		fmt.Printf("UTF-16:     unencodable (%s)\n", res16.Status)
	} else {
		parts := make([]string, len(units))
		for i, u := range units {
			parts[i] = fmt.Sprintf("%04X", u)
		}
		fmt.Printf("UTF-16:     %s\n", strings.Join(parts, " "))
	}
	return nil
}

func parseCodepoint(s string) (codec.Codepoint, error) {
	orig := s
	base := 10
	switch {
	case strings.HasPrefix(s, "U+"), strings.HasPrefix(s, "u+"):
		s, base = s[2:], 16
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s, base = s[2:], 16
	}
	v, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, fmt.Errorf("parse codepoint %q: %w", orig, err)
	}
	return codec.Codepoint(v), nil
}

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/bitpack/layout"
	"github.com/wippyai/bitpack/record"
)

type setFlags []string

func (s *setFlags) String() string { return strings.Join(*s, ",") }

func (s *setFlags) Set(v string) error {
	*s = append(*s, v)
	return nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#98FB98"))
	kindStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB"))
	hexStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700"))
)

func main() {
	var sets setFlags
	var (
		layoutFile  = flag.String("layout", "", "Path to layout file")
		decodeHex   = flag.String("decode", "", "Hex bytes to decode")
		interactive = flag.Bool("i", false, "Interactive inspector")
		verbose     = flag.Bool("v", false, "Debug logging")
		jsonLogs    = flag.Bool("json", false, "JSON log output")
	)
	flag.Var(&sets, "set", "Field assignment name=value (repeatable)")
	flag.Parse()

	if *layoutFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: bitpack -layout <file> [-decode hex] [-set name=value ...]")
		fmt.Fprintln(os.Stderr, "       bitpack -layout <file> -i  (interactive mode)")
		os.Exit(1)
	}

	log, err := newLogger(*verbose, *jsonLogs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	record.SetLogger(log)

	l, buf, err := load(log, *layoutFile, *decodeHex, sets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(*layoutFile, l, buf); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	styled := term.IsTerminal(int(os.Stdout.Fd()))
	printLayout(os.Stdout, l, buf, styled)
}

func newLogger(verbose, jsonLogs bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	if jsonLogs {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		return cfg.Build()
	}
	return zap.NewDevelopment()
}

// load resolves the layout file and builds the working buffer.
func load(log *zap.Logger, path, decodeHex string, sets []string) (*layout.Layout, []byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open layout: %w", err)
	}
	defer f.Close()

	cfg, specs, err := parseLayoutFile(f)
	if err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", path, err)
	}
	l, err := cfg.Resolve(specs)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve: %w", err)
	}
	log.Debug("resolved layout",
		zap.String("file", path),
		zap.Int("size", l.Size),
		zap.Int("fields", len(l.Fields)),
	)

	buf, err := initialBuffer(l, decodeHex)
	if err != nil {
		return nil, nil, err
	}
	for _, s := range sets {
		if err := applySet(l, buf, s); err != nil {
			return nil, nil, fmt.Errorf("set: %w", err)
		}
		log.Debug("applied assignment", zap.String("set", s))
	}
	return l, buf, nil
}

func initialBuffer(l *layout.Layout, decodeHex string) ([]byte, error) {
	if decodeHex == "" {
		return make([]byte, l.Size), nil
	}
	tokens := strings.FieldsFunc(decodeHex, func(r rune) bool {
		return r == ':' || unicode.IsSpace(r)
	})
	for i, tok := range tokens {
		if len(tok) > 1 && tok[0] == '0' && (tok[1] == 'x' || tok[1] == 'X') {
			tokens[i] = tok[2:]
		}
	}
	buf, err := hex.DecodeString(strings.Join(tokens, ""))
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	if err := l.Check(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func printLayout(w io.Writer, l *layout.Layout, buf []byte, styled bool) {
	// Pad before styling; escape codes carry no width.
	style := func(s lipgloss.Style, text string, width int) string {
		if width > 0 {
			text = fmt.Sprintf("%-*s", width, text)
		}
		if styled {
			return s.Render(text)
		}
		return text
	}

	fmt.Fprintf(w, "%s %d bytes, %s, %s\n\n", style(headerStyle, "Layout", 0), l.Size, l.Config.Order, l.Config.BitOrder)
	fmt.Fprint(w, l.Diagram())
	fmt.Fprintln(w)

	fmt.Fprintln(w, style(headerStyle, "Fields", 0))
	for _, f := range l.Fields {
		sp := f.Span()
		fmt.Fprintf(w, "  %s %s bytes %d..%d  S=%d E=%d W=%d  %s\n",
			style(nameStyle, f.Name, 24), style(kindStyle, f.Kind.String(), 5),
			f.StartByte(), f.EndByte(), sp.S, sp.E, sp.W, readField(f, buf))
	}

	fmt.Fprintf(w, "\n%s %s\n", style(headerStyle, "Bytes", 0), style(hexStyle, hex.EncodeToString(buf), 0))
}

package main

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/danmuck/telestamp/internal/config"
	"github.com/danmuck/telestamp/internal/protocol/cp56"
	"github.com/danmuck/telestamp/internal/protocol/hexbytes"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

const usage = `usage: stampctl [-config path] <command> [flags] [args]

commands:
  decode  decode hex bytes (args, -file path, or -file - for stdin)
  encode  encode field values
  parse   parse text with a %-directive format
  diff    milliseconds between two encoded timestamps
  now     encode the current wall clock
`

var errUsage = errors.New("usage")

type app struct {
	fs     afero.Fs
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger zerolog.Logger
	cfg    config.StampctlConfig
	now    func() time.Time
}

func (a *app) run(args []string) int {
	global := flag.NewFlagSet("stampctl", flag.ContinueOnError)
	global.SetOutput(a.stderr)
	cfgPath := global.String("config", "", "path to stampctl.toml")
	global.Usage = func() { fmt.Fprint(a.stderr, usage) }
	if err := global.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.LoadStampctlConfig(*cfgPath)
	if err != nil {
		fmt.Fprintf(a.stderr, "stampctl: %v\n", err)
		return 1
	}
	a.cfg = cfg

	rest := global.Args()
	if len(rest) == 0 {
		fmt.Fprint(a.stderr, usage)
		return 2
	}

	var cmdErr error
	switch rest[0] {
	case "decode":
		cmdErr = a.decode(rest[1:])
	case "encode":
		cmdErr = a.encode(rest[1:])
	case "parse":
		cmdErr = a.parse(rest[1:])
	case "diff":
		cmdErr = a.diff(rest[1:])
	case "now":
		cmdErr = a.nowCmd(rest[1:])
	default:
		fmt.Fprintf(a.stderr, "stampctl: unknown command %q\n", rest[0])
		fmt.Fprint(a.stderr, usage)
		return 2
	}
	switch {
	case cmdErr == nil:
		return 0
	case errors.Is(cmdErr, errUsage), errors.Is(cmdErr, flag.ErrHelp):
		return 2
	default:
		fmt.Fprintf(a.stderr, "stampctl %s: %v\n", rest[0], cmdErr)
		return 1
	}
}

func (a *app) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

func (a *app) decode(args []string) error {
	fs := a.newFlagSet("decode")
	offsetArg := fs.String("offset", strconv.Itoa(a.cfg.Offset), "byte offset of the timestamp in each input line, decimal or 0x hex")
	file := fs.String("file", "", "read hex lines from path, - for stdin")
	verbose := fs.Bool("v", a.cfg.Verbose, "print raw fields")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	offset, err := parseOffset(*offsetArg)
	if err != nil {
		return err
	}

	var lines []string
	switch {
	case *file != "":
		read, err := a.readLines(*file)
		if err != nil {
			return err
		}
		lines = read
	case fs.NArg() > 0:
		lines = []string{strings.Join(fs.Args(), " ")}
	default:
		fmt.Fprintln(a.stderr, "decode: need hex bytes or -file")
		return errUsage
	}

	invalid := 0
	for i, line := range lines {
		buf, err := hexbytes.Bytes(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
		t := cp56.Decode(buf, offset)
		if !cp56.Fits(buf, offset) {
			a.logger.Warn().Int("line", i+1).Int("len", len(buf)).Int("offset", offset).Msg("short buffer")
		}
		if !t.Valid() {
			invalid++
		}
		a.print(t, *verbose)
	}
	a.logger.Debug().Int("decoded", len(lines)).Int("invalid", invalid).Msg("decode done")
	return nil
}

func (a *app) encode(args []string) error {
	fs := a.newFlagSet("encode")
	year := fs.Uint("year", 0, "year offset from 2000, or a full year >= 2000")
	month := fs.Uint("month", 0, "month 1-12 (0 for time of day only)")
	day := fs.Uint("day", 0, "day of month 1-31 (0 for time of day only)")
	hour := fs.Uint("hour", 0, "hour 0-23")
	minute := fs.Uint("minute", 0, "minute 0-59")
	ms := fs.Uint("ms", 0, "milliseconds within the minute 0-59999")
	weekday := fs.Uint("weekday", 0, "day of week 1-7")
	summer := fs.Bool("summer", false, "set the summer time flag")
	verbose := fs.Bool("v", a.cfg.Verbose, "print raw fields")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	y := *year
	if y >= cp56.Epoch {
		y -= cp56.Epoch
	}
	t := cp56.New(uint8(y), uint8(*month), uint8(*day), uint8(*hour), uint8(*minute), uint16(*ms)).
		WithWeekday(uint8(*weekday)).
		WithSummer(*summer)
	a.print(t, *verbose)
	return nil
}

func (a *app) parse(args []string) error {
	fs := a.newFlagSet("parse")
	format := fs.String("format", a.cfg.Format, "%-directive format")
	verbose := fs.Bool("v", a.cfg.Verbose, "print raw fields")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(a.stderr, "parse: need text")
		return errUsage
	}
	text := strings.Join(fs.Args(), " ")
	t, err := cp56.Scan(text, *format)
	a.print(t, *verbose)
	if err != nil {
		a.logger.Debug().Err(err).Str("text", text).Str("format", *format).Msg("parse aborted")
		return err
	}
	return nil
}

func (a *app) diff(args []string) error {
	fs := a.newFlagSet("diff")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(a.stderr, `diff: need two hex arguments, e.g. diff "00 00 01 00 01 01 00" "00 00 00 00 01 01 00"`)
		return errUsage
	}
	var ts [2]cp56.Time
	for i, arg := range fs.Args() {
		buf, err := hexbytes.Bytes(arg)
		if err != nil {
			return err
		}
		ts[i] = cp56.Decode(buf, 0)
		if !ts[i].Valid() {
			a.logger.Warn().Int("arg", i+1).Msg("operand is invalid; delta is not meaningful")
		}
	}
	fmt.Fprintf(a.stdout, "%d\t%s\n", cp56.Difference(ts[0], ts[1]), ts[0].SubDuration(ts[1]))
	return nil
}

func (a *app) nowCmd(args []string) error {
	fs := a.newFlagSet("now")
	summer := fs.Bool("summer", false, "set the summer time flag")
	utc := fs.Bool("utc", false, "use UTC instead of local time")
	verbose := fs.Bool("v", a.cfg.Verbose, "print raw fields")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	clock := time.Now
	if a.now != nil {
		clock = a.now
	}
	wall := clock()
	if *utc {
		wall = wall.UTC()
	}
	t := cp56.FromTime(wall)
	if !t.Valid() {
		return fmt.Errorf("year %d outside 2000-2099", wall.Year())
	}
	a.print(t.WithSummer(*summer), *verbose)
	return nil
}

func (a *app) print(t cp56.Time, verbose bool) {
	enc := cp56.Encode(t)
	fmt.Fprintf(a.stdout, "%s\t%s\n", t, hexbytes.Dump(enc[:]))
	if !verbose {
		return
	}
	raw, _ := hexbytes.ParseHexAll(enc[:])
	fmt.Fprintf(a.stdout, "  valid=%t summer=%t year=%d month=%d day=%d weekday=%d hour=%d minute=%d ms=%d yday=%d epoch_ms=%d raw=0x%014x\n",
		t.Valid(), t.Summer(), t.Year(), t.Month(), t.Day(), t.Weekday(),
		t.Hour(), t.Minute(), t.Milliseconds(), t.YearDay(), t.Millis(), raw)
}

// parseOffset accepts a decimal offset or a 0x prefixed hex one, as offsets
// are often read off a hex dump.
func parseOffset(s string) (int, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := hexbytes.Int(s)
		if err != nil {
			return 0, fmt.Errorf("offset: %w", err)
		}
		return int(v), nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("offset: %w", err)
	}
	return v, nil
}

func (a *app) readLines(path string) ([]string, error) {
	var data []byte
	if path == "-" {
		b, err := io.ReadAll(a.stdin)
		if err != nil {
			return nil, err
		}
		data = b
	} else {
		b, err := afero.ReadFile(a.fs, path)
		if err != nil {
			return nil, err
		}
		data = b
	}
	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, sc.Err()
}

// Builds, inspects and encodes one-or-many containers of lines read from stdin.
//
// Example run:
// $ printf 'x\ny\n' | oneormany inspect
// shape: Many
// len: 2
// is_one: false
// is_many: true
// is_empty: false
// json: {"Many":["x","y"]}
package main

import (
	"context"
	"os"

	"github.com/anacrolix/bargle/v2"
	"github.com/anacrolix/envpprof"
	app "github.com/anacrolix/gostdapp"

	"github.com/anacrolix/oneormany/internal/envx"
	"github.com/anacrolix/oneormany/internal/errorsx"
)

const (
	formatJSON    = "json"
	formatBencode = "bencode"

	fromAppend = "append"
	fromSlice  = "slice"
)

var formats = []string{formatJSON, formatBencode}

type config struct {
	// Encoding of the preview line printed by inspect.
	Format string
	// Lines read from stdin past this are dropped. 0 means no limit.
	MaxItems int
	// Default for --from. Checked when the container is built.
	From     string
	Debug    bool
}

func configFromEnv() config {
	return config{
		Format:   envx.OneOf(formatJSON, formats, "ONEORMANY_FORMAT"),
		MaxItems: envx.Int(0, "ONEORMANY_MAX_ITEMS"),
		From:     envx.String(fromAppend, "ONEORMANY_FROM"),
		Debug:    envx.Boolean(false, "ONEORMANY_DEBUG"),
	}
}

func main() {
	defer envpprof.Stop()
	app.RunContext(mainErr)
}

func mainErr(ctx context.Context) error {
	cfg := configFromEnv()
	slogger := newSlogger(os.Stderr, cfg.Debug)
	parser := bargle.NewParser()
	from := cfg.From
	fromFlag := bargle.Long("from", bargle.BuiltinUnmarshaler(&from))
	buildFromStdin := func() (c container, err error) {
		items, err := readItems(ctx, os.Stdin, cfg.MaxItems)
		if err != nil {
			return
		}
		return build(items, from)
	}
	switch {
	case parser.Parse(bargle.Keyword("inspect")):
		bargle.ParseAll(parser, fromFlag)
		parser.FailIfArgsRemain()
		if !parser.Ok() {
			break
		}
		c, err := buildFromStdin()
		if err != nil {
			return err
		}
		return inspect(os.Stdout, &c, cfg.Format, slogger)
	case parser.Parse(bargle.Keyword("encode")):
		var format string
		bargle.ParseAll(
			parser,
			bargle.Positional("format", bargle.BuiltinUnmarshaler(&format)),
			fromFlag,
		)
		parser.FailIfArgsRemain()
		if !parser.Ok() {
			break
		}
		c, err := buildFromStdin()
		if err != nil {
			return err
		}
		return encode(os.Stdout, &c, format)
	case parser.Parse(bargle.Keyword("decode")):
		var format string
		bargle.ParseAll(parser, bargle.Positional("format", bargle.BuiltinUnmarshaler(&format)))
		parser.FailIfArgsRemain()
		if !parser.Ok() {
			break
		}
		return decode(os.Stdin, os.Stdout, format, slogger)
	case parser.Parse(bargle.Keyword("dump")):
		bargle.ParseAll(parser, fromFlag)
		parser.FailIfArgsRemain()
		if !parser.Ok() {
			break
		}
		c, err := buildFromStdin()
		if err != nil {
			return err
		}
		dump(os.Stdout, &c)
		return nil
	default:
		parser.Fail()
	}
	parser.DoHelpIfHelping()
	return errorsx.Wrap(parser.Err(), "parsing arguments")
}

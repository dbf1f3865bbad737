package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/anacrolix/log"
	"github.com/anacrolix/torrent/bencode"
	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"

	"github.com/anacrolix/oneormany"
	"github.com/anacrolix/oneormany/internal/errorsx"
)

type container = oneormany.T[string]

var logger = log.Default.WithNames("oneormany")

// Reads one item per line.
func readItems(ctx context.Context, r io.Reader, maxItems int) (items []string, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err = ctx.Err(); err != nil {
			return
		}
		if maxItems > 0 && len(items) >= maxItems {
			logger.Levelf(log.Warning, "dropping input past %v items", maxItems)
			break
		}
		items = append(items, scanner.Text())
	}
	if err = scanner.Err(); err != nil {
		return nil, errorsx.Wrap(err, "reading items")
	}
	logger.Levelf(log.Debug, "read %v items", len(items))
	return
}

func build(items []string, from string) (c container, err error) {
	switch from {
	case fromAppend:
		return oneormany.Collect(slices.Values(items)), nil
	case fromSlice:
		return oneormany.FromSlice(items), nil
	default:
		err = errorsx.Errorf("unknown build method %q, expected %q or %q", from, fromAppend, fromSlice)
		return
	}
}

func marshal(c *container, format string) ([]byte, error) {
	switch format {
	case formatJSON:
		return json.Marshal(c)
	case formatBencode:
		return bencode.Marshal(c)
	default:
		return nil, errorsx.Errorf("unknown format %q, expected one of %q", format, formats)
	}
}

func unmarshal(b []byte, c *container, format string) error {
	switch format {
	case formatJSON:
		return json.Unmarshal(b, c)
	case formatBencode:
		return bencode.Unmarshal(b, c)
	default:
		return errorsx.Errorf("unknown format %q, expected one of %q", format, formats)
	}
}

func inspect(w io.Writer, c *container, format string, slogger *slog.Logger) error {
	slogger.Debug("inspecting", "container", *c)
	encoded, err := marshal(c, format)
	if err != nil {
		return errorsx.Wrapf(err, "encoding %v", format)
	}
	_, err = fmt.Fprintf(
		w,
		"shape: %v\nlen: %v\nis_one: %v\nis_many: %v\nis_empty: %v\n%v: %s\n",
		c.Shape(),
		humanize.Comma(int64(c.Len())),
		c.IsOne(),
		c.IsMany(),
		c.IsEmpty(),
		format,
		encoded,
	)
	return err
}

func encode(w io.Writer, c *container, format string) error {
	b, err := marshal(c, format)
	if err != nil {
		return errorsx.Wrapf(err, "encoding %v", format)
	}
	if format == formatJSON {
		b = append(b, '\n')
	}
	_, err = w.Write(b)
	return err
}

// Prints the items of an encoded container, one per line.
func decode(r io.Reader, w io.Writer, format string, slogger *slog.Logger) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return errorsx.Wrap(err, "reading input")
	}
	if format == formatJSON {
		b = bytes.TrimSpace(b)
	}
	var c container
	if err := unmarshal(b, &c, format); err != nil {
		return errorsx.Wrapf(err, "decoding %v", format)
	}
	slogger.Debug("decoded", "container", c)
	for item := range c.Drain() {
		if _, err := fmt.Fprintln(w, item); err != nil {
			return err
		}
	}
	return nil
}

func dump(w io.Writer, c *container) {
	spew.Fdump(w, c.Shape(), *c)
}

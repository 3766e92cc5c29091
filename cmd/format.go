package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/designml/designfmt/internal/conv"
)

// FormatCmd formats a typed model value into its markup attribute form.  The
// value can be supplied as an inline JSON literal via -j/--json, loaded from a
// JSON file via --file, or given as attribute text via -v/--value in which
// case it is parsed first and formatted back (canonicalization).
type FormatCmd struct {
	Type   string `short:"t" long:"type" description:"model type name (see list-types)" required:"yes"`
	Inline string `short:"j" long:"json" description:"inline JSON literal with the value to format"`
	File   string `long:"file" description:"path to JSON file with the value (use - for stdin)"`
	Value  string `short:"v" long:"value" description:"attribute text to canonicalize"`
}

func (c *FormatCmd) Execute(_ []string) error {
	supplied := 0
	for _, present := range []bool{c.Inline != "", c.File != "", c.Value != ""} {
		if present {
			supplied++
		}
	}
	if supplied > 1 {
		return fmt.Errorf("-j/--json, --file and -v/--value are mutually exclusive")
	}

	f, index, err := bootstrap()
	if err != nil {
		return err
	}
	t, err := resolveType(index, c.Type)
	if err != nil {
		return err
	}

	var value any
	switch {
	case c.Inline != "":
		if value, err = conv.DecodeJSON([]byte(c.Inline), t); err != nil {
			return fmt.Errorf("decode inline JSON: %w", err)
		}
	case c.File != "":
		var rdr io.Reader
		if c.File == "-" {
			rdr = os.Stdin
		} else {
			file, err := os.Open(c.File)
			if err != nil {
				return fmt.Errorf("open input file: %w", err)
			}
			defer file.Close()
			rdr = file
		}
		data, err := io.ReadAll(rdr)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		if value, err = conv.DecodeJSON(data, t); err != nil {
			return fmt.Errorf("decode JSON: %w", err)
		}
	default:
		if value, err = f.Parse(c.Value, t); err != nil {
			return fmt.Errorf("parse %q as %s: %w", c.Value, c.Type, err)
		}
		if value == nil {
			return fmt.Errorf("no converter registered for %s", c.Type)
		}
	}

	text, err := f.FormatAs(value, t)
	if err != nil {
		return fmt.Errorf("format %s value: %w", c.Type, err)
	}
	if text == nil {
		return fmt.Errorf("no converter registered for %s", c.Type)
	}
	fmt.Println(*text)
	return nil
}

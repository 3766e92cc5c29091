package cmd

import (
	"encoding/json"
	"fmt"
)

// ParseCmd parses a markup attribute value into its typed model value.
type ParseCmd struct {
	Type  string `short:"t" long:"type" description:"model type name (see list-types)" required:"yes"`
	Value string `short:"v" long:"value" description:"attribute text to parse"`
	JSON  bool   `long:"json" description:"print result as JSON"`
}

func (c *ParseCmd) Execute(args []string) error {
	f, index, err := bootstrap()
	if err != nil {
		return err
	}
	t, err := resolveType(index, c.Type)
	if err != nil {
		return err
	}

	value := c.Value
	if value == "" && len(args) > 0 {
		value = args[0]
	}

	result, err := f.Parse(value, t)
	if err != nil {
		return fmt.Errorf("parse %q as %s: %w", value, c.Type, err)
	}
	if result == nil {
		return fmt.Errorf("no converter registered for %s", c.Type)
	}

	if c.JSON {
		data, _ := json.MarshalIndent(map[string]any{"type": fmt.Sprintf("%T", result), "value": result}, "", "  ")
		fmt.Println(string(data))
		return nil
	}
	fmt.Printf("%v\t(%T)\n", result, result)
	return nil
}

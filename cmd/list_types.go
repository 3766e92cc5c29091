package cmd

import (
	"fmt"

	"github.com/designml/designfmt/internal/matcher"
)

// ListTypesCmd prints every CLI-resolvable model type name together with its
// Go type.  Output is sorted for deterministic scripting.
type ListTypesCmd struct {
	Pattern string `short:"p" long:"pattern" description:"name filter: * for all, otherwise prefix" default:"*"`
}

func (c *ListTypesCmd) Execute(_ []string) error {
	f, index, err := bootstrap()
	if err != nil {
		return err
	}

	for _, name := range typeNames {
		if !matcher.Match(c.Pattern, name) {
			continue
		}
		t, err := resolveType(index, name)
		if err != nil {
			return err
		}
		status := "registered"
		if !f.CanConvert(t) {
			status = "unavailable"
		}
		fmt.Printf("%s\t%s\t%s\n", name, t, status)
	}
	return nil
}

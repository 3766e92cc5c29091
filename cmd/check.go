package cmd

import (
	"fmt"

	"github.com/designml/designfmt/design/converter"
)

// CheckCmd reports how a model type resolves against the conversion registry.
type CheckCmd struct {
	Type   string `short:"t" long:"type" description:"model type name (see list-types)" required:"yes"`
	Strict bool   `long:"strict" description:"require an exact registration (no supertype fallback)"`
}

func (c *CheckCmd) Execute(_ []string) error {
	f, index, err := bootstrap()
	if err != nil {
		return err
	}
	t, err := resolveType(index, c.Type)
	if err != nil {
		return err
	}

	conv, ok := f.FindConverter(t, c.Strict)
	if !ok {
		fmt.Printf("%s\tnot convertible\n", c.Type)
		return nil
	}
	kind := "converter"
	if _, isEnum := conv.(*converter.EnumSet); isEnum {
		kind = "enum"
	}
	fmt.Printf("%s\tconvertible\t%s for %s\n", c.Type, kind, conv.ModelType())
	return nil
}

package cmd

// Options is the root for the CLI.  Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config string `short:"f" long:"config" description:"designfmt configuration YAML path or URL"`

	Parse     *ParseCmd     `command:"parse"      description:"Parse a markup attribute value into a typed model value"`
	Format    *FormatCmd    `command:"format"     description:"Format a typed model value into its markup attribute form"`
	ListTypes *ListTypesCmd `command:"list-types" description:"List the model types the formatter can convert"`
	Check     *CheckCmd     `command:"check"      description:"Show how a model type resolves to a converter"`
}

// Init instantiates the sub-command referenced by the first positional argument
// so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "parse":
		o.Parse = &ParseCmd{}
	case "format":
		o.Format = &FormatCmd{}
	case "list-types":
		o.ListTypes = &ListTypesCmd{}
	case "check":
		o.Check = &CheckCmd{}
	}
}

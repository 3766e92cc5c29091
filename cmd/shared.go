package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/shopspring/decimal"
	"github.com/viant/x"

	"github.com/designml/designfmt/design"
	"github.com/designml/designfmt/design/config"
	"github.com/designml/designfmt/design/converter"
)

// environment carries process-level overrides shared by every sub-command.
type environment struct {
	Config string `env:"DESIGNFMT_CONFIG"`
	Debug  bool   `env:"DESIGNFMT_DEBUG"`
}

var (
	cfgPath string

	bootOnce      sync.Once
	formatterInst *design.Formatter
	typeIndex     *x.Registry
	typeNames     []string
	bootErr       error
)

// setConfigPath remembers the CLI-level -f/--config parameter so that the
// formatter singleton can be created lazily by whichever sub-command is
// executed first.
func setConfigPath(p string) { cfgPath = p }

// bootstrap initialises the formatter and the name/type index only once and
// reuses both across sub-commands within the same CLI invocation.
func bootstrap() (*design.Formatter, *x.Registry, error) {
	bootOnce.Do(func() {
		var envOpts environment
		if err := env.Parse(&envOpts); err != nil {
			bootErr = fmt.Errorf("parse environment: %w", err)
			return
		}
		path := cfgPath
		if path == "" {
			path = envOpts.Config
		}

		var cfg *config.Config
		if path != "" {
			cfg, bootErr = config.Load(context.Background(), path)
			if bootErr != nil {
				return
			}
			if envOpts.Debug {
				_ = json.NewEncoder(os.Stderr).Encode(cfg)
			}
		}

		formatterInst = newFormatter(cfg)
		typeIndex, typeNames, bootErr = newTypeIndex(cfg)
	})
	return formatterInst, typeIndex, bootErr
}

// newFormatter applies configuration overrides on top of the default set.
func newFormatter(cfg *config.Config) *design.Formatter {
	var opts []design.Option
	if cfg != nil {
		if d := cfg.Date; d != nil && (d.Output != "" || len(d.Layouts) > 0) {
			opts = append(opts, design.WithConverters(converter.NewDateWithLayouts(d.Output, d.Layouts...)))
		}
		if r := cfg.Resource; r != nil && len(r.Schemes) > 0 {
			opts = append(opts, design.WithConverters(converter.NewResourceConverter(r.Schemes...)))
		}
	}
	return design.New(opts...)
}

// builtinTypes maps CLI-facing names onto model types.
var builtinTypes = map[string]reflect.Type{
	"string":   reflect.TypeOf(""),
	"int":      reflect.TypeOf(int(0)),
	"int8":     reflect.TypeOf(int8(0)),
	"int16":    reflect.TypeOf(int16(0)),
	"int32":    reflect.TypeOf(int32(0)),
	"int64":    reflect.TypeOf(int64(0)),
	"decimal":  reflect.TypeOf(decimal.Decimal{}),
	"bool":     reflect.TypeOf(true),
	"float32":  reflect.TypeOf(float32(0)),
	"float64":  reflect.TypeOf(float64(0)),
	"char":     reflect.TypeOf(converter.Char(0)),
	"date":     reflect.TypeOf(time.Time{}),
	"timezone": reflect.TypeOf((*time.Location)(nil)),
	"resource": reflect.TypeOf(converter.Resource{}),
	"shortcut": reflect.TypeOf(converter.Shortcut{}),
}

// newTypeIndex builds the name/type registry used to resolve -t/--type
// arguments, including configured aliases.  The returned names are sorted.
func newTypeIndex(cfg *config.Config) (*x.Registry, []string, error) {
	registry := x.NewRegistry()
	names := make([]string, 0, len(builtinTypes))
	for name, t := range builtinTypes {
		registry.Register(x.NewType(t, x.WithName(name)))
		names = append(names, name)
	}
	if cfg != nil {
		for alias, target := range cfg.Aliases {
			t, ok := builtinTypes[target]
			if !ok {
				return nil, nil, fmt.Errorf("alias %q refers to unknown type %q", alias, target)
			}
			registry.Register(x.NewType(t, x.WithName(alias)))
			names = append(names, alias)
		}
	}
	sort.Strings(names)
	return registry, names, nil
}

// resolveType translates a CLI type name into a reflect.Type.
func resolveType(registry *x.Registry, name string) (reflect.Type, error) {
	if entry := registry.Lookup(name); entry != nil {
		return entry.Type, nil
	}
	return nil, fmt.Errorf("unknown type %q (known: %s)", name, strings.Join(typeNames, ", "))
}

package grammar

import (
	"embed"
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed builtin/*.yaml builtin/*.cue
var builtinFS embed.FS

// Load reads a grammar file, choosing the format by extension:
// .yaml and .yml for YAML, .cue for CUE.
func Load(file string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return LoadYAML(file)
	case ".cue":
		return LoadCUE(file)
	default:
		return nil, fmt.Errorf("unsupported grammar file %q: want .yaml, .yml or .cue", file)
	}
}

// Builtin returns one of the grammars shipped with the binary.
func Builtin(name string) (*Table, error) {
	if data, err := builtinFS.ReadFile(path.Join("builtin", name+".yaml")); err == nil {
		spec, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("builtin grammar %q: %w", name, err)
		}
		return NewTable(spec)
	}

	if data, err := builtinFS.ReadFile(path.Join("builtin", name+".cue")); err == nil {
		ctx := cuecontext.New()
		spec, err := CompileCUE(ctx.CompileBytes(data, cue.Filename(name+".cue")))
		if err != nil {
			return nil, fmt.Errorf("builtin grammar %q: %w", name, err)
		}
		return NewTable(spec)
	}

	return nil, fmt.Errorf("unknown builtin grammar %q (available: %s)", name, strings.Join(BuiltinNames(), ", "))
}

// BuiltinNames lists the builtin grammars in alphabetical order.
func BuiltinNames() []string {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(names)
	return names
}

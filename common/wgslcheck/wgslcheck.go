// Package wgslcheck compiles WGSL programs on the host so shaders can be
// checked without a GPU.
package wgslcheck

import (
	"fmt"
	"strings"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"
)

// Stage names as they appear in WGSL attributes.
const (
	StageVertex   = "vertex"
	StageFragment = "fragment"
	StageCompute  = "compute"
)

var stageNames = map[ir.ShaderStage]string{
	ir.StageVertex:   StageVertex,
	ir.StageFragment: StageFragment,
	ir.StageCompute:  StageCompute,
}

// EntryPoints parses and lowers code and returns its entry points as a map
// from function name to stage name.
func EntryPoints(code string) (map[string]string, error) {
	ast, err := naga.Parse(code)
	if err != nil {
		return nil, err
	}
	module, err := naga.LowerWithSource(ast, code)
	if err != nil {
		return nil, fmt.Errorf("lowering: %w", err)
	}
	eps := make(map[string]string, len(module.EntryPoints))
	for _, ep := range module.EntryPoints {
		name, ok := stageNames[ep.Stage]
		if !ok {
			name = fmt.Sprintf("stage(%d)", ep.Stage)
		}
		eps[ep.Name] = name
	}
	return eps, nil
}

// Unsupported reports whether err comes from a WGSL feature the compiler does
// not implement yet, as opposed to a mistake in the program.
func Unsupported(err error) bool {
	s := err.Error()
	return strings.Contains(s, "not yet implemented") || strings.Contains(s, "not supported")
}

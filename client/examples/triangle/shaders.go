package triangle

import _ "embed"

//go:embed triangle.wgsl
var shaderCode string

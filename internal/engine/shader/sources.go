package shader

import _ "embed"

// LineVertexShader transforms position+colour vertices by uMVP.
//
//go:embed line.vert
var LineVertexShader string

// LineFragmentShader outputs the vertex colour with uAlpha.
//
//go:embed line.frag
var LineFragmentShader string

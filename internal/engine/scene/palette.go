package scene

// Color is an RGB triple in [0, 1].
type Color [3]float32

// palette gives each vector index a distinct colour, cycling after 20.
var palette = [...]Color{
	{1, 0.5, 0},     // orange
	{0.2, 0.6, 1},   // blue
	{0.2, 0.8, 0.2}, // green
	{0.8, 0.2, 0.8}, // magenta
	{0.8, 0.8, 0.2}, // yellow
	{0.5, 0.2, 0.8}, // purple
	{0.2, 0.8, 0.7}, // teal
	{0.8, 0.4, 0.2}, // brown
	{0.9, 0.1, 0.1}, // red
	{0.1, 0.1, 0.9}, // deep blue
	{0.1, 0.7, 0.5}, // turquoise
	{0.7, 0.1, 0.5}, // pinkish purple
	{0.6, 0.6, 0.1}, // olive
	{0.1, 0.6, 0.6}, // cyan
	{0.7, 0.3, 0.1}, // burnt orange
	{0.3, 0.7, 0.1}, // lime green
	{0.6, 0.1, 0.3}, // raspberry
	{0.1, 0.3, 0.7}, // steel blue
	{0.7, 0.7, 0.7}, // light gray
	{0.3, 0.3, 0.3}, // dark gray
}

// MatrixRowColor is used for the transform's row vectors.
var MatrixRowColor = Color{0.5, 0, 0.7}

// VectorColor returns the palette colour for vector index i.
func VectorColor(i int) Color {
	if i < 0 {
		i = -i
	}
	return palette[i%len(palette)]
}

// TransformedColor returns the colour used for the image of vector i:
// a darker shade of the vector's own colour.
func TransformedColor(i int) Color {
	return VectorColor(i).Scale(0.7)
}

// Scale multiplies each channel by f.
func (c Color) Scale(f float32) Color {
	return Color{c[0] * f, c[1] * f, c[2] * f}
}

// Lighten blends c toward white; 0 keeps c, 1 gives white.
func (c Color) Lighten(f float32) Color {
	return Color{
		c[0] + (1-c[0])*f,
		c[1] + (1-c[1])*f,
		c[2] + (1-c[2])*f,
	}
}

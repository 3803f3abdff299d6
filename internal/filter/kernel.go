package filter

import (
	"github.com/gogpu/imgfilter/internal/image"
	"github.com/gogpu/imgfilter/internal/parallel"
)

// Kernel transforms the rows of band from src into dst.
// src and dst must have the same dimensions.
type Kernel func(src, dst *image.Buffer, band parallel.Band)

// rows clamps band to the valid rows of b.
func rows(b *image.Buffer, band parallel.Band) parallel.Band {
	return band.Clamp(0, b.Height())
}

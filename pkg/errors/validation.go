package errors

import (
	"math"
	"strings"
	"unicode"
)

// Limits applied to trees arriving from files or the HTTP API. The driver
// recurses once per tree level, so depth is bounded well below the point where
// goroutine stacks become a concern.
const (
	MaxTreeNodes = 100_000
	MaxTreeDepth = 1_000
)

// ValidateTreeLimits checks a decoded tree's size against [MaxTreeNodes] and
// [MaxTreeDepth].
func ValidateTreeLimits(nodes, depth int) error {
	if nodes < 1 {
		return New(ErrCodeInvalidTree, "tree must contain at least one node")
	}
	if nodes > MaxTreeNodes {
		return New(ErrCodeInvalidTree, "tree too large: %d nodes (max %d)", nodes, MaxTreeNodes)
	}
	if depth > MaxTreeDepth {
		return New(ErrCodeInvalidTree, "tree too deep: %d levels (max %d)", depth, MaxTreeDepth)
	}
	return nil
}

// ValidateCanvas checks that canvas dimensions are finite and positive.
func ValidateCanvas(width, height float64) error {
	if !finitePositive(width) || !finitePositive(height) {
		return New(ErrCodeInvalidInput, "canvas size must be positive, got %gx%g", width, height)
	}
	return nil
}

// ValidateSideLen checks the primitive side length used by the layout driver.
func ValidateSideLen(side float64) error {
	if !finitePositive(side) {
		return New(ErrCodeInvalidInput, "side length must be positive, got %g", side)
	}
	return nil
}

// ValidateOffsets checks that layout offsets are finite. Zero and negative
// offsets are allowed; they produce overlapping but well-defined layouts.
func ValidateOffsets(x, y float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return New(ErrCodeInvalidInput, "offsets must be finite, got (%g, %g)", x, y)
	}
	return nil
}

// ValidateOutputPath validates a file path the CLI is about to write.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") {
		return New(ErrCodeInvalidPath, "output path %q is a directory", path)
	}

	return nil
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

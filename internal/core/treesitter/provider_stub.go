//go:build !treesitter || !cgo

package treesitter

import (
	"github.com/ronelsolomon/filesummarize/internal/model"
)

// Extract is unavailable without the treesitter build tag and cgo.
func Extract(src, language string) ([]model.Element, error) {
	return nil, ErrDisabled
}

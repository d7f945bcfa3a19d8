//go:build !cgo

package window

import (
	"errors"

	"wireframe/internal/scene"
)

func Run(_ scene.Scene, _ Options) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}

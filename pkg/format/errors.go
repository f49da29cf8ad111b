package format

import (
	"fmt"

	"github.com/MacAttak/pi-sanitizer/pkg/sanitize"
)

func errWrongSegmentCount(want, got int) error {
	return sanitize.NewError(sanitize.InvalidFormat, fmt.Sprintf("expected %d segment(s), got %d", want, got))
}

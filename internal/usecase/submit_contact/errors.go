package submit_contact

import (
	"fmt"
	"strings"

	"github.com/Darioantonio20/BarberPlatform/internal/domain"
)

// ValidationErrors carries the full ordered list of form violations.
type ValidationErrors struct {
	Fields []domain.ValidationError
}

func (e *ValidationErrors) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

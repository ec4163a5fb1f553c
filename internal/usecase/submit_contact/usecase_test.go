package submit_contact

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Darioantonio20/BarberPlatform/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}

func TestUseCase_Execute(t *testing.T) {
	tests := []struct {
		name       string
		req        *Request
		wantFields []string
	}{
		{
			name: "valid submission",
			req: &Request{
				Name:    "Carlos Pérez",
				Email:   "carlos@example.com",
				Message: "Quisiera información sobre el paquete ejecutivo.",
			},
		},
		{
			name: "valid with phone",
			req: &Request{
				Name:    "Carlos Pérez",
				Email:   "carlos@example.com",
				Phone:   ptr.Ptr("5512345678"),
				Message: "Quisiera información sobre el paquete ejecutivo.",
			},
		},
		{
			name: "missing everything",
			req: &Request{
				Name:    "",
				Email:   "",
				Message: "",
			},
			wantFields: []string{"name", "email", "message"},
		},
		{
			name: "short message and bad phone",
			req: &Request{
				Name:    "Carlos Pérez",
				Email:   "carlos@example.com",
				Phone:   ptr.Ptr("123"),
				Message: "Hola",
			},
			wantFields: []string{"phone", "message"},
		},
		{
			name: "invalid email",
			req: &Request{
				Name:    "Carlos Pérez",
				Email:   "abc",
				Message: "Quisiera información sobre el paquete ejecutivo.",
			},
			wantFields: []string{"email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(nopLogger{})
			resp, err := uc.Execute(context.Background(), tt.req)

			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				assert.True(t, resp.Received)
				return
			}

			var verrs *ValidationErrors
			require.ErrorAs(t, err, &verrs)
			fields := make([]string, len(verrs.Fields))
			for i, f := range verrs.Fields {
				fields[i] = f.Field
			}
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}

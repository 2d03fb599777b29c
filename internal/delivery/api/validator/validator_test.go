package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Email    string `validate:"omitempty,email"`
	Password string `validate:"required,min=6"`
	Quantity int    `validate:"gte=1"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		input   sampleRequest
		wantErr bool
	}{
		{name: "valid", input: sampleRequest{Email: "a@b.tj", Password: "secret", Quantity: 1}},
		{name: "email optional", input: sampleRequest{Password: "secret", Quantity: 2}},
		{name: "bad email", input: sampleRequest{Email: "nope", Password: "secret", Quantity: 1}, wantErr: true},
		{name: "short password", input: sampleRequest{Password: "123", Quantity: 1}, wantErr: true},
		{name: "zero quantity", input: sampleRequest{Password: "secret"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.input)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			assert.NoError(t, err)
		})
	}
}

package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name    string
		isAdmin bool
		isOwner bool
		op      Operation
		allowed bool
	}{
		{"admin can update", true, false, OperationUpdate, true},
		{"owner can update", false, true, OperationUpdate, true},
		{"admin owner can update", true, true, OperationUpdate, true},
		{"stranger cannot update", false, false, OperationUpdate, false},
		{"admin can delete", true, false, OperationDelete, true},
		{"owner cannot delete", false, true, OperationDelete, false},
		{"stranger cannot delete", false, false, OperationDelete, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Authorize(tt.isAdmin, tt.isOwner, tt.op)
			assert.Equal(t, tt.allowed, d.Allowed)
			if !tt.allowed {
				assert.NotEmpty(t, d.Reason)
			}
		})
	}
}

//go:build unit

package operator_test

import (
	"testing"

	"bulk-cleanup/internal/domain/operator"

	"github.com/stretchr/testify/assert"
)

func TestRole(t *testing.T) {
	tests := []struct {
		name      string
		role      string
		wantErr   error
		canManage bool
	}{
		{name: "admin can manage", role: "admin", canManage: true},
		{name: "operator cannot manage", role: "operator"},
		{name: "viewer cannot manage", role: "viewer"},
		{name: "unknown role", role: "administrator", wantErr: operator.ErrInvalidRole},
		{name: "empty role", role: "", wantErr: operator.ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, err := operator.NewRole(tt.role)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.canManage, role.CanManageCleanup())
		})
	}

	assert.True(t, operator.RoleAdmin.AtLeast(operator.RoleViewer))
	assert.False(t, operator.Role("ghost").AtLeast(operator.RoleViewer))
}

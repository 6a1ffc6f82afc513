package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kampusku_backend/internals/constants"
)

func TestHasAnyRole(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		allowed []string
		want    bool
	}{
		{"admin di admin-only", constants.RoleAdmin, constants.AdminOnly, true},
		{"teacher di admin-only", constants.RoleTeacher, constants.AdminOnly, false},
		{"teacher di teacher-and-above", constants.RoleTeacher, constants.TeacherAndAbove, true},
		{"admin di teacher-and-above", constants.RoleAdmin, constants.TeacherAndAbove, true},
		{"student di teacher-and-above", constants.RoleStudent, constants.TeacherAndAbove, false},
		{"role kosong", "", constants.TeacherAndAbove, false},
		{"daftar kosong", constants.RoleAdmin, nil, false},
		{"case sensitive", "Admin", constants.AdminOnly, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasAnyRole(tt.role, tt.allowed...))
		})
	}
}

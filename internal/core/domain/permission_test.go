package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hostvana/property_management_app/internal/core/domain"
)

func TestAccessResolution_IsAdmin(t *testing.T) {
	tests := []struct {
		name       string
		resolution domain.AccessResolution
		want       bool
	}{
		{
			name:       "approved admin",
			resolution: domain.AccessResolution{Role: domain.RoleAdmin, IsAdminApproved: true},
			want:       true,
		},
		{
			name:       "declared admin without approval",
			resolution: domain.AccessResolution{Role: domain.RoleAdmin, IsAdminApproved: false},
			want:       false,
		},
		{
			name:       "approval flag without admin role",
			resolution: domain.AccessResolution{Role: domain.RoleOwner, IsAdminApproved: true},
			want:       false,
		},
		{
			name:       "zero value",
			resolution: domain.AccessResolution{},
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.resolution.IsAdmin())
		})
	}
}

func TestAccessResolution_Can(t *testing.T) {
	resolution := domain.AccessResolution{
		Role: domain.RoleOwner,
		Permissions: []domain.Permission{
			{Role: domain.RoleOwner, Resource: domain.ResourceProperties, Action: domain.ActionRead},
			{Role: domain.RoleOwner, Resource: domain.ResourceProperties, Action: domain.ActionUpdate},
			{Role: domain.RoleOwner, Resource: domain.ResourceLeads, Action: domain.ActionRead},
		},
	}

	tests := []struct {
		name     string
		action   string
		resource string
		want     bool
	}{
		{"granted read", domain.ActionRead, domain.ResourceProperties, true},
		{"granted update", domain.ActionUpdate, domain.ResourceProperties, true},
		{"missing delete on granted resource", domain.ActionDelete, domain.ResourceProperties, false},
		{"granted action on other resource", domain.ActionUpdate, domain.ResourceLeads, false},
		{"ungranted resource", domain.ActionRead, domain.ResourceDashboard, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolution.Can(tt.action, tt.resource))
		})
	}
}

func TestFailClosed(t *testing.T) {
	resolution := domain.FailClosed()

	assert.Equal(t, domain.RoleNone, resolution.Role)
	assert.False(t, resolution.IsAdmin())
	assert.False(t, resolution.IsOwner())
	assert.False(t, resolution.Can(domain.ActionRead, domain.ResourceProperties))
	assert.Empty(t, resolution.Permissions)
}

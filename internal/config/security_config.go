package config

import "equiprent-backend/internal/domain"

// Static role allow-lists for the role-gated route groups. Each protected
// surface declares up front which roles may reach it; the HTTP middleware
// enforces the lists, and the guard package reuses them for page gating.
var (
	// Equipment review pages and operations (request listing, approve,
	// reject, complete).
	EquipmentReviewRoles = []domain.Role{domain.RoleEquipmentInspector, domain.RoleManager}

	// Financial pages (rent order projections).
	FinancialRoles = []domain.Role{domain.RoleFinancialInspector, domain.RoleManager}

	// Administration (member listing, role updates).
	AdminRoles = []domain.Role{domain.RoleManager}
)

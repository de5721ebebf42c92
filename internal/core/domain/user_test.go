package domain

import "testing"

func TestResolveRole(t *testing.T) {
	cases := map[string]string{
		"Admin":   RoleAdmin,
		"admin":   RoleAdmin,
		" ADMIN ": RoleAdmin,
		"User":    RoleUser,
		"":        RoleUser,
		"Manager": RoleUser,
	}
	for in, want := range cases {
		if got := ResolveRole(in); got != want {
			t.Fatalf("ResolveRole(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIdentity_HasRole(t *testing.T) {
	i := &Identity{Roles: []string{RoleUser}}
	if !i.HasRole(RoleUser) {
		t.Fatalf("expected User role")
	}
	if i.HasRole(RoleAdmin) {
		t.Fatalf("unexpected Admin role")
	}
}

package common

import "testing"

func TestRoleSet(t *testing.T) {
	cases := []struct {
		name  string
		roles []LabRole
		want  bool
	}{
		{name: "empty", roles: nil, want: false},
		{name: "unknown only", roles: []LabRole{"janitor"}, want: false},
		{name: "worker", roles: []LabRole{LabWorker}, want: true},
		{name: "manager and pm", roles: []LabRole{LabManager, ProjectManager}, want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewRoleSet(tc.roles...).HasLabRole(); got != tc.want {
				t.Fatalf("HasLabRole(%v) = %v, want %v", tc.roles, got, tc.want)
			}
		})
	}
}

func TestRoleSetListOrder(t *testing.T) {
	s := NewRoleSet(LabWorker, LabManager)
	got := s.List()
	if len(got) != 2 || got[0] != LabManager || got[1] != LabWorker {
		t.Fatalf("List() = %v", got)
	}
}

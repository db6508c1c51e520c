package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidUsername(t *testing.T) {
	valid := []string{"admin", "employee", "user.name", "user_name", "user-1", "A1"}
	invalid := []string{"user name", "user@host", "user!", "héllo", ""}
	for _, username := range valid {
		if !IsValidUsername(username) {
			t.Errorf("IsValidUsername(%q) = false, want true", username)
		}
	}
	for _, username := range invalid {
		if IsValidUsername(username) {
			t.Errorf("IsValidUsername(%q) = true, want false", username)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "username", Message: "username is required"},
		{Field: "password", Message: "password is required"},
	}

	if got := errs.Error(); got != "username: username is required; password: password is required" {
		t.Errorf("Error() = %q", got)
	}

	m := errs.ToMap()
	if len(m) != 2 || m["username"] != "username is required" {
		t.Errorf("ToMap() = %v", m)
	}
}

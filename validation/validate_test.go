package validation

import "testing"

func TestValidate(t *testing.T) {
	type inner struct {
		Phone string `json:"phone" validate:"required"`
	}
	type outer struct {
		Customer *inner `json:"customer" validate:"required"`
	}

	if err := Validate(outer{Customer: &inner{Phone: "11999999999"}}); err != nil {
		t.Errorf("struct completo: %v", err)
	}
	if err := Validate(outer{}); err == nil {
		t.Error("customer ausente deveria falhar")
	}
	if err := Validate(outer{Customer: &inner{}}); err == nil {
		t.Error("phone vazio deveria falhar")
	}
}

func TestValidateCPF(t *testing.T) {
	tests := []struct {
		cpf  string
		want bool
	}{
		{"529.982.247-25", true},
		{"52998224725", true},
		{"52998224724", false},
		{"111.111.111-11", false},
		{"123", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidateCPF(tt.cpf); got != tt.want {
			t.Errorf("ValidateCPF(%q) = %v, want %v", tt.cpf, got, tt.want)
		}
	}
}

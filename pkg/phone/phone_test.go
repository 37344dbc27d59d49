package phone

import "testing"

func TestFormatE164(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		want     string
		reliable bool
		wantErr  bool
	}{
		{name: "ja em E164", raw: "+5511999999999", want: "+5511999999999", reliable: true},
		{name: "E164 com formatacao", raw: "+55 (11) 99999-9999", want: "+55 (11) 99999-9999", reliable: true},
		{name: "codigo do pais celular", raw: "5511999999999", want: "+5511999999999", reliable: true},
		{name: "codigo do pais fixo", raw: "551133334444", want: "+551133334444", reliable: true},
		{name: "ddd e celular", raw: "11999999999", want: "+5511999999999", reliable: true},
		{name: "ddd e fixo", raw: "1133334444", want: "+551133334444", reliable: true},
		{name: "com pontuacao", raw: "(11) 99999-9999", want: "+5511999999999", reliable: true},
		{name: "internacional sem mais", raw: "4915123456789", want: "+4915123456789", reliable: false},
		{name: "curto demais", raw: "99999", wantErr: true},
		{name: "vazio", raw: "", wantErr: true},
		{name: "mais curto demais", raw: "+1234", wantErr: true},
		{name: "so letras", raw: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reliable, err := FormatE164(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("FormatE164(%q) = %q, esperava erro", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("FormatE164(%q): %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("FormatE164(%q) = %q, want %q", tt.raw, got, tt.want)
			}
			if reliable != tt.reliable {
				t.Errorf("FormatE164(%q) reliable = %v, want %v", tt.raw, reliable, tt.reliable)
			}
		})
	}
}

func TestDigits(t *testing.T) {
	if got := Digits("+55 (11) 99999-9999"); got != "5511999999999" {
		t.Errorf("Digits = %q, want 5511999999999", got)
	}
	if got := Digits("sem numeros"); got != "" {
		t.Errorf("Digits = %q, want vazio", got)
	}
}

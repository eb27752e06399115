package types

import (
	"errors"
	"testing"
)

func TestParseDiet(t *testing.T) {
	tests := []struct {
		input   string
		want    Diet
		wantErr error
	}{
		{"fish", DietFish, nil},
		{"Shellfish", DietShellfish, nil},
		{" plants ", DietPlants, nil},
		{"kelp", 0, ErrUnknownDiet},
		{"", 0, ErrUnknownDiet},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDiet(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDietText(t *testing.T) {
	text, err := DietShellfish.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(text) != "shellfish" {
		t.Fatalf("expected shellfish, got %s", text)
	}

	var d Diet
	if err := d.UnmarshalText([]byte("plants")); err != nil {
		t.Fatal(err)
	}
	if d != DietPlants {
		t.Fatalf("expected plants, got %v", d)
	}

	if _, err := Diet(42).MarshalText(); !errors.Is(err, ErrUnknownDiet) {
		t.Fatalf("expected ErrUnknownDiet, got %v", err)
	}
	if got := Diet(42).String(); got != "diet(42)" {
		t.Fatalf("unexpected string %q", got)
	}
}

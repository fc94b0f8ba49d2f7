package models

import (
	"encoding/json"
	"testing"
)

func TestProfileDeriveLocation(t *testing.T) {
	cases := []struct {
		name    string
		profile Profile
		want    string
	}{
		{"all segments", Profile{Village: "X", City: "Y", District: "Z", State: "MH"}, "X, Y, Z, MH"},
		{"no village", Profile{City: "Y", District: "Z", State: "MH"}, "Y, Z, MH"},
		{"state only", Profile{State: "MH"}, "MH"},
		{"empty", Profile{}, ""},
		{"gap in middle", Profile{Village: "X", State: "MH"}, "X, MH"},
	}
	for _, tc := range cases {
		tc.profile.DeriveLocation()
		if tc.profile.Location != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.want, tc.profile.Location)
		}
	}
}

func TestProfileUnmarshalMobileAlias(t *testing.T) {
	var p Profile
	if err := json.Unmarshal([]byte(`{"name":"A","mobile":"9000000001"}`), &p); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if p.MobileNumber != "9000000001" {
		t.Errorf("Expected alias normalized into mobileNumber, got %q", p.MobileNumber)
	}

	// The canonical field wins when both are present.
	p = Profile{}
	if err := json.Unmarshal([]byte(`{"mobileNumber":"1","mobile":"2"}`), &p); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if p.MobileNumber != "1" {
		t.Errorf("Expected canonical field to win, got %q", p.MobileNumber)
	}
}

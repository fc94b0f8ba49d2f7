package models

import (
	"encoding/json"
	"strings"
)

// Profile is the contact/address record for one role slot. Exactly one admin
// profile and one user profile exist in the store at a time.
type Profile struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	MobileNumber     string `json:"mobileNumber"`
	Location         string `json:"location"`
	Village          string `json:"village"`
	City             string `json:"city"`
	District         string `json:"district"`
	State            string `json:"state"`
	PermanentAddress string `json:"permanentAddress"`
	OtherAddress     string `json:"otherAddress"`
	PreferredCrops   string `json:"preferredCrops"`
	ProfilePic       string `json:"profilePic,omitempty"`
}

// UnmarshalJSON accepts the legacy "mobile" alias for the mobileNumber field.
// Older blobs wrote either name; normalization happens here once, never in
// consumers.
func (p *Profile) UnmarshalJSON(data []byte) error {
	type alias Profile
	aux := struct {
		*alias
		Mobile string `json:"mobile"`
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if p.MobileNumber == "" && aux.Mobile != "" {
		p.MobileNumber = aux.Mobile
	}
	return nil
}

// DeriveLocation recomputes the display location as the comma-joined
// non-empty sequence of village, city, district, state.
func (p *Profile) DeriveLocation() {
	parts := make([]string, 0, 4)
	for _, s := range []string{p.Village, p.City, p.District, p.State} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	p.Location = strings.Join(parts, ", ")
}

package models

import "encoding/json"

// Supplier is a vendor that items are purchased from.
type Supplier struct {
	Meta
	Code         string `json:"code" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Address      string `json:"address"`
	AddressExtra string `json:"address_extra"`
	City         string `json:"city"`
	ZipCode      string `json:"zip_code"`
	Province     string `json:"province"`
	Country      string `json:"country"`
	ContactName  string `json:"contact_name"`
	PhoneNumber  string `json:"phone_number"`
	Reference    string `json:"reference"`
}

type supplierPatch struct {
	Code         *string `json:"code"`
	Name         *string `json:"name"`
	Address      *string `json:"address"`
	AddressExtra *string `json:"address_extra"`
	City         *string `json:"city"`
	ZipCode      *string `json:"zip_code"`
	Province     *string `json:"province"`
	Country      *string `json:"country"`
	ContactName  *string `json:"contact_name"`
	PhoneNumber  *string `json:"phone_number"`
	Reference    *string `json:"reference"`
}

// MergePatch applies the recognized supplier fields from a partial payload.
func (s *Supplier) MergePatch(data []byte) error {
	var p supplierPatch
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.Code != nil {
		s.Code = *p.Code
	}
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Address != nil {
		s.Address = *p.Address
	}
	if p.AddressExtra != nil {
		s.AddressExtra = *p.AddressExtra
	}
	if p.City != nil {
		s.City = *p.City
	}
	if p.ZipCode != nil {
		s.ZipCode = *p.ZipCode
	}
	if p.Province != nil {
		s.Province = *p.Province
	}
	if p.Country != nil {
		s.Country = *p.Country
	}
	if p.ContactName != nil {
		s.ContactName = *p.ContactName
	}
	if p.PhoneNumber != nil {
		s.PhoneNumber = *p.PhoneNumber
	}
	if p.Reference != nil {
		s.Reference = *p.Reference
	}
	return nil
}

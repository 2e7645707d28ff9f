package models

import "encoding/json"

// Contact is the reachable person for a warehouse.
type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email" validate:"omitempty,email"`
}

// Warehouse is a physical storage site.
type Warehouse struct {
	Meta
	Code     string  `json:"code" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Address  string  `json:"address"`
	Zip      string  `json:"zip"`
	City     string  `json:"city"`
	Province string  `json:"province"`
	Country  string  `json:"country"`
	Contact  Contact `json:"contact"`
}

type warehousePatch struct {
	Code     *string  `json:"code"`
	Name     *string  `json:"name"`
	Address  *string  `json:"address"`
	Zip      *string  `json:"zip"`
	City     *string  `json:"city"`
	Province *string  `json:"province"`
	Country  *string  `json:"country"`
	Contact  *Contact `json:"contact"`
}

// MergePatch applies the recognized warehouse fields from a partial payload.
// Keys outside the allow-list are dropped.
func (w *Warehouse) MergePatch(data []byte) error {
	var p warehousePatch
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.Code != nil {
		w.Code = *p.Code
	}
	if p.Name != nil {
		w.Name = *p.Name
	}
	if p.Address != nil {
		w.Address = *p.Address
	}
	if p.Zip != nil {
		w.Zip = *p.Zip
	}
	if p.City != nil {
		w.City = *p.City
	}
	if p.Province != nil {
		w.Province = *p.Province
	}
	if p.Country != nil {
		w.Country = *p.Country
	}
	if p.Contact != nil {
		w.Contact = *p.Contact
	}
	return nil
}

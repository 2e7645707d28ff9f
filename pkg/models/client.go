package models

import "encoding/json"

// Client is a customer that orders stock out of the warehouses.
type Client struct {
	Meta
	Name         string `json:"name" validate:"required"`
	Address      string `json:"address"`
	City         string `json:"city"`
	ZipCode      string `json:"zip_code"`
	Province     string `json:"province"`
	Country      string `json:"country"`
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
}

type clientPatch struct {
	Name         *string `json:"name"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	ZipCode      *string `json:"zip_code"`
	Province     *string `json:"province"`
	Country      *string `json:"country"`
	ContactName  *string `json:"contact_name"`
	ContactPhone *string `json:"contact_phone"`
	ContactEmail *string `json:"contact_email"`
}

// MergePatch applies the recognized client fields from a partial payload.
func (c *Client) MergePatch(data []byte) error {
	var p clientPatch
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	if p.City != nil {
		c.City = *p.City
	}
	if p.ZipCode != nil {
		c.ZipCode = *p.ZipCode
	}
	if p.Province != nil {
		c.Province = *p.Province
	}
	if p.Country != nil {
		c.Country = *p.Country
	}
	if p.ContactName != nil {
		c.ContactName = *p.ContactName
	}
	if p.ContactPhone != nil {
		c.ContactPhone = *p.ContactPhone
	}
	if p.ContactEmail != nil {
		c.ContactEmail = *p.ContactEmail
	}
	return nil
}

package models

import "encoding/json"

// Item is a sellable product tracked across inventories.
type Item struct {
	Meta
	Code               string `json:"code" validate:"required"`
	Description        string `json:"description"`
	ShortDescription   string `json:"short_description"`
	UpcCode            string `json:"upc_code"`
	ModelNumber        string `json:"model_number"`
	CommodityCode      string `json:"commodity_code"`
	ItemLine           string `json:"item_line"`
	ItemGroup          string `json:"item_group"`
	ItemType           string `json:"item_type"`
	UnitPurchaseQty    int    `json:"unit_purchase_quantity"`
	UnitOrderQty       int    `json:"unit_order_quantity"`
	PackOrderQty       int    `json:"pack_order_quantity"`
	SupplierID         string `json:"supplier_id"`
	SupplierCode       string `json:"supplier_code"`
	SupplierPartNumber string `json:"supplier_part_number"`
}

type itemPatch struct {
	Code               *string `json:"code"`
	Description        *string `json:"description"`
	ShortDescription   *string `json:"short_description"`
	UpcCode            *string `json:"upc_code"`
	ModelNumber        *string `json:"model_number"`
	CommodityCode      *string `json:"commodity_code"`
	ItemLine           *string `json:"item_line"`
	ItemGroup          *string `json:"item_group"`
	ItemType           *string `json:"item_type"`
	UnitPurchaseQty    *int    `json:"unit_purchase_quantity"`
	UnitOrderQty       *int    `json:"unit_order_quantity"`
	PackOrderQty       *int    `json:"pack_order_quantity"`
	SupplierID         *string `json:"supplier_id"`
	SupplierCode       *string `json:"supplier_code"`
	SupplierPartNumber *string `json:"supplier_part_number"`
}

// MergePatch applies the recognized item fields from a partial payload.
func (i *Item) MergePatch(data []byte) error {
	var p itemPatch
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.Code != nil {
		i.Code = *p.Code
	}
	if p.Description != nil {
		i.Description = *p.Description
	}
	if p.ShortDescription != nil {
		i.ShortDescription = *p.ShortDescription
	}
	if p.UpcCode != nil {
		i.UpcCode = *p.UpcCode
	}
	if p.ModelNumber != nil {
		i.ModelNumber = *p.ModelNumber
	}
	if p.CommodityCode != nil {
		i.CommodityCode = *p.CommodityCode
	}
	if p.ItemLine != nil {
		i.ItemLine = *p.ItemLine
	}
	if p.ItemGroup != nil {
		i.ItemGroup = *p.ItemGroup
	}
	if p.ItemType != nil {
		i.ItemType = *p.ItemType
	}
	if p.UnitPurchaseQty != nil {
		i.UnitPurchaseQty = *p.UnitPurchaseQty
	}
	if p.UnitOrderQty != nil {
		i.UnitOrderQty = *p.UnitOrderQty
	}
	if p.PackOrderQty != nil {
		i.PackOrderQty = *p.PackOrderQty
	}
	if p.SupplierID != nil {
		i.SupplierID = *p.SupplierID
	}
	if p.SupplierCode != nil {
		i.SupplierCode = *p.SupplierCode
	}
	if p.SupplierPartNumber != nil {
		i.SupplierPartNumber = *p.SupplierPartNumber
	}
	return nil
}

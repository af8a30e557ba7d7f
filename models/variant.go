package models

import "encoding/json"

type VariantKind string

const (
	// VariantKindPrice options carry an absolute price override.
	VariantKindPrice VariantKind = "price"
	// VariantKindColor options swap the gallery image set.
	VariantKindColor VariantKind = "color"
)

// VariantImage is one gallery image attached to a color option.
type VariantImage struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

// VariantOption is a single purchasable choice inside a group. Which fields
// are meaningful is decided by the owning group's kind: price-kind options
// carry Price, color-kind options carry Images.
type VariantOption struct {
	Value  string         `json:"value"`
	Price  *float64       `json:"price,omitempty"`
	Images []VariantImage `json:"images,omitempty"`
}

// VariantGroup is a named, typed set of purchasable options. The kind is
// group-level: every option in Types must satisfy the shape the kind
// demands, and malformed payloads are rejected at deserialization time
// rather than surfacing later on the storefront.
type VariantGroup struct {
	Name  string          `json:"name"`
	Type  VariantKind     `json:"type"`
	Types []VariantOption `json:"types"`
}

func (g *VariantGroup) UnmarshalJSON(data []byte) error {
	type rawGroup VariantGroup
	var raw rawGroup
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Name == "" {
		return NewValidationError("variant group requires a name")
	}
	switch raw.Type {
	case VariantKindPrice:
		for _, opt := range raw.Types {
			if opt.Price == nil {
				return NewValidationError("variant group %q: option %q requires a price", raw.Name, opt.Value)
			}
			if len(opt.Images) > 0 {
				return NewValidationError("variant group %q: option %q must not carry images", raw.Name, opt.Value)
			}
		}
	case VariantKindColor:
		for _, opt := range raw.Types {
			if opt.Price != nil {
				return NewValidationError("variant group %q: option %q must not carry a price", raw.Name, opt.Value)
			}
		}
	default:
		return NewValidationError("variant group %q: unknown type %q", raw.Name, string(raw.Type))
	}
	*g = VariantGroup(raw)
	return nil
}

func (g VariantGroup) option(value string) (VariantOption, bool) {
	for _, opt := range g.Types {
		if opt.Value == value {
			return opt, true
		}
	}
	return VariantOption{}, false
}

// ResolveDisplayPrice returns the effective price of a product for a set of
// variant selections (group name -> selected value). The first-declared
// price-kind group with a matching selection wins; declaration order is
// semantically significant. Without a match the base price applies.
func ResolveDisplayPrice(p *Product, selections map[string]string) float64 {
	for _, group := range p.Variants {
		if group.Type != VariantKindPrice {
			continue
		}
		selected, ok := selections[group.Name]
		if !ok {
			continue
		}
		if opt, ok := group.option(selected); ok {
			return *opt.Price
		}
	}
	return p.Price
}

// ResolveGalleryImages returns the image set to display for a set of variant
// selections. A matched color option with a non-empty image list replaces
// the product's base gallery; otherwise the base gallery is returned.
func ResolveGalleryImages(p *Product, selections map[string]string) []string {
	for _, group := range p.Variants {
		if group.Type != VariantKindColor {
			continue
		}
		selected, ok := selections[group.Name]
		if !ok {
			continue
		}
		opt, ok := group.option(selected)
		if !ok || len(opt.Images) == 0 {
			continue
		}
		urls := make([]string, len(opt.Images))
		for i, img := range opt.Images {
			urls[i] = img.URL
		}
		return urls
	}
	return p.Images
}

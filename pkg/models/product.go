package models

import (
	"encoding/json"
	"fmt"
)

// ProductRef is one entry of an agent's configured product list. The wire
// form is heterogeneous: either a bare string (just a product name) or a
// structured object. Exactly one of Name / Spec is set after decoding.
type ProductRef struct {
	Name string
	Spec *ProductSpec
}

// ProductSpec is the structured form of a product entry.
type ProductSpec struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price,omitempty"`
	Currency    string   `json:"currency,omitempty"`
	Features    []string `json:"features,omitempty"`
}

// DisplayName returns the product name regardless of variant.
func (r ProductRef) DisplayName() string {
	if r.Spec != nil {
		return r.Spec.Name
	}
	return r.Name
}

// MarshalJSON emits a bare string for the plain variant and an object for
// the structured variant, mirroring the accepted input forms.
func (r ProductRef) MarshalJSON() ([]byte, error) {
	if r.Spec != nil {
		return json.Marshal(r.Spec)
	}
	return json.Marshal(r.Name)
}

// UnmarshalJSON accepts either a JSON string or a product object.
func (r *ProductRef) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		r.Name = name
		r.Spec = nil
		return nil
	}
	var spec ProductSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return fmt.Errorf("product entry must be a string or an object: %w", err)
	}
	if spec.Name == "" {
		return fmt.Errorf("structured product entry requires a name")
	}
	r.Name = ""
	r.Spec = &spec
	return nil
}

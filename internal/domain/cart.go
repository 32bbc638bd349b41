package domain

import (
	"encoding/json"
	"strings"
)

// ItemID identifies a cart line item. Product triggers in the storefront
// markup carry ids as either strings or numbers; both decode to the same
// string form, so "7" and 7 address the same line item.
type ItemID string

func (id *ItemID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ItemID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ItemID(n.String())
	return nil
}

// CartItem is one product id with an aggregated quantity. The JSON tags
// match the shape the original widget persisted, so a file store primed
// from a browser export loads cleanly.
type CartItem struct {
	ID       ItemID  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"img"`
	Quantity int     `json:"qty"`
}

// DefaultItemName is used when an add-to-cart trigger carries no name.
const DefaultItemName = "Producto"

// AddToCartRequest is the typed form of the data attributes read off an
// add-to-cart trigger.
type AddToCartRequest struct {
	ID    ItemID  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"img"`
}

// Normalize applies the boundary rules before the request enters the cart:
// the id is trimmed and required, the price is coerced to a non-negative
// number and the name falls back to a default. It reports false when the
// request carries no id.
func (r AddToCartRequest) Normalize() (CartItem, bool) {
	id := ItemID(strings.TrimSpace(string(r.ID)))
	if id == "" {
		return CartItem{}, false
	}
	name := strings.TrimSpace(r.Name)
	if name == "" {
		name = DefaultItemName
	}
	price := r.Price
	if price < 0 {
		price = 0
	}
	return CartItem{ID: id, Name: name, Price: price, Image: r.Image, Quantity: 1}, true
}

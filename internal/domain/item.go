package domain

// DefaultTax is the tax applied to a snapshot 2 item when the body omits it.
const DefaultTax = 10.5

// Product is implemented by every item shape.
type Product interface {
	ItemName() string
	// FullPrice returns price + tax and true when the item carries a non-zero tax.
	FullPrice() (float64, bool)
}

// Item is the item body accepted by the first snapshot. Name is a pointer so
// that only an absent name fails "required"; an empty one is accepted.
type Item struct {
	Name    *string  `json:"name" validate:"required"`
	Price   *float64 `json:"price" validate:"required"`
	Tax     *float64 `json:"tax"`
	IsOffer *bool    `json:"is_offer"`
}

func (i Item) ItemName() string { return deref(i.Name) }

func (i Item) FullPrice() (float64, bool) {
	return fullPrice(i.Price, i.Tax)
}

// DescribedItem is the snapshot 2 item: it adds a description and tags and
// defaults tax to DefaultTax instead of null.
type DescribedItem struct {
	Name        *string  `json:"name" validate:"required"`
	Description *string  `json:"description" validate:"omitempty,max=300"`
	Price       *float64 `json:"price" validate:"required"`
	Tax         *float64 `json:"tax" validate:"required"`
	IsOffer     *bool    `json:"is_offer"`
	Tags        []string `json:"tags"`
}

// NewDescribedItem returns a DescribedItem carrying its field defaults, ready
// to be decoded into.
func NewDescribedItem() DescribedItem {
	tax := DefaultTax
	return DescribedItem{Tax: &tax, Tags: []string{}}
}

func (i DescribedItem) ItemName() string { return deref(i.Name) }

func (i DescribedItem) FullPrice() (float64, bool) {
	return fullPrice(i.Price, i.Tax)
}

// NestedItem is the snapshot 3 item, which may carry a list of images.
type NestedItem struct {
	Name        *string  `json:"name" validate:"required"`
	Description *string  `json:"description" validate:"omitempty,max=300"`
	Price       *float64 `json:"price" validate:"required"`
	Tax         *float64 `json:"tax"`
	IsOffer     *bool    `json:"is_offer"`
	Tags        []string `json:"tags"`
	Images      []Image  `json:"images" validate:"omitempty,dive"`
}

// NewNestedItem returns a NestedItem carrying its field defaults.
func NewNestedItem() NestedItem {
	return NestedItem{Tags: []string{}}
}

func (i NestedItem) ItemName() string { return deref(i.Name) }

func (i NestedItem) FullPrice() (float64, bool) {
	return fullPrice(i.Price, i.Tax)
}

// Image is a named picture reachable over HTTP(S).
type Image struct {
	URL  string  `json:"url" validate:"required,http_url"`
	Name *string `json:"name" validate:"required"`
}

// Offer bundles several items under one price.
type Offer struct {
	Name        *string      `json:"name" validate:"required"`
	Description *string      `json:"description"`
	Price       *float64     `json:"price" validate:"required"`
	Items       []NestedItem `json:"items" validate:"required,dive"`
}

// fullPrice treats a nil or zero tax as "no tax".
func fullPrice(price, tax *float64) (float64, bool) {
	if price == nil || tax == nil || *tax == 0 {
		return 0, false
	}
	return *price + *tax, true
}

// WithDefaults turns a tags list that was absent or explicitly null into [].
func (i DescribedItem) WithDefaults() DescribedItem {
	if i.Tags == nil {
		i.Tags = []string{}
	}
	return i
}

// WithDefaults turns a tags list that was absent or explicitly null into [].
func (i NestedItem) WithDefaults() NestedItem {
	if i.Tags == nil {
		i.Tags = []string{}
	}
	return i
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

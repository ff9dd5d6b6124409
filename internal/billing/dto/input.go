package dto

type CheckoutLine struct {
	LotID    string `json:"crateId" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

type CheckoutInput struct {
	Lines         []CheckoutLine `json:"lines" validate:"required,min=1,dive"`
	PaymentMethod string         `json:"paymentMethod" validate:"required,oneof=cash card upi"`
}

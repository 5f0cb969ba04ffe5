package model

// Fixed enumerations served by the reference-data endpoint. The catalog is a
// clothing showroom; these sets are deliberately closed.
var (
	Categories     = []string{"Shirt", "Pant", "Saree", "T-Shirt", "Jacket"}
	Sizes          = []string{"S", "M", "L", "XL", "XXL", "Free Size"}
	Colors         = []string{"Red", "Blue", "Green", "Black", "White", "Yellow", "Pink"}
	PaymentMethods = []string{PaymentCash, PaymentBkash, PaymentCard, PaymentDue}
	LoyaltyTiers   = []string{TierBronze, TierSilver, TierGold}
)

package checkout

type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "credit-card"
	PaymentDebitCard  PaymentMethod = "debit-card"
	PaymentGPay       PaymentMethod = "gpay"
	PaymentCOD        PaymentMethod = "cod"
)

var PaymentMethods = []PaymentMethod{PaymentCreditCard, PaymentDebitCard, PaymentGPay, PaymentCOD}

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCreditCard, PaymentDebitCard, PaymentGPay, PaymentCOD:
		return true
	}
	return false
}

// Label is the text stored on the order.
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentCreditCard:
		return "Credit Card ending in 4532"
	case PaymentDebitCard:
		return "Debit Card ending in 7890"
	case PaymentGPay:
		return "Google Pay"
	case PaymentCOD:
		return "Cash on Delivery"
	default:
		return "Unknown Payment Method"
	}
}

package domain

// Time format constants
const (
	DateTimeFormat = "2006-01-02 15:04" // YYYY-MM-DD HH:MM
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
)

// Business validation constants
const (
	MaxVehicleNumberLength = 32
	MaxSpotNumberLength    = 16
	MinFloor               = -10
	MaxFloor               = 100
)

// ValidSpotTypes список допустимых типов парковочных мест
var ValidSpotTypes = []SpotType{
	SpotTypeStandard,
	SpotTypeVIP,
	SpotTypeHandicap,
	SpotTypeElectric,
}

// ValidBookingStatuses список допустимых статусов бронирования
var ValidBookingStatuses = []BookingStatus{
	StatusActive,
	StatusCompleted,
	StatusCancelled,
}

// ValidPaymentMethods список допустимых способов оплаты
var ValidPaymentMethods = []PaymentMethod{
	MethodCash,
	MethodCard,
	MethodPayPal,
	MethodBankTransfer,
}

// IsValid returns true if the spot type is one of the known categories
func (t SpotType) IsValid() bool {
	for _, valid := range ValidSpotTypes {
		if t == valid {
			return true
		}
	}
	return false
}

// IsValid returns true if the status is one of the known booking statuses
func (s BookingStatus) IsValid() bool {
	for _, valid := range ValidBookingStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// IsValid returns true if the method is one of the known payment methods
func (m PaymentMethod) IsValid() bool {
	for _, valid := range ValidPaymentMethods {
		if m == valid {
			return true
		}
	}
	return false
}

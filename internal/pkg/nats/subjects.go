package nats

// Domain event subjects
const (
	SubjectRentCreated      = "rent.created"
	SubjectBidAccepted      = "bid.accepted"
	SubjectPaymentSucceeded = "payment.succeeded"
)

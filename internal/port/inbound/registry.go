package inbound

// InboundPorts holds all inbound port implementations.
// Inbound ports define how external actors interact with the application.
type InboundPorts struct {
	PaymentHTTP PaymentHttpPort
}

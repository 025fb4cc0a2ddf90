package outbound

// OutboundPorts holds all outbound port implementations.
// Outbound ports define how the application interacts with external systems.
type OutboundPorts struct {
	PaymentDB     PaymentDatabasePort
	OrderNotifier OrderNotifierPort
	Tokens        TokenValidatorPort
}

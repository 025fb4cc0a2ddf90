// Package main Payments API
//
//	@title						Payments API
//	@version					1.0
//	@description				Registers payments for orders and drives them through confirmation.
//
//	@contact.name				Payments Team
//
//	@license.name				Proprietary
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"
//
//	@tag.name					Payment
//	@tag.description			Payment records and their confirmation lifecycle
package main

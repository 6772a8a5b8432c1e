// Package registrar implements offline-signed registration tickets.
//
// A ticket binds a label, its initial owner and its chain identifier. The
// registrar operator signs tickets out of band; anyone may later submit a
// signed ticket to an Authority, which verifies the signature against its
// issuer-key allow-list and performs the registration.
package registrar

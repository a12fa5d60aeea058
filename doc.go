// Package web3conv provides strict conversion between the value encodings
// used by Ethereum style tooling: arbitrary width integers, hex strings,
// byte sequences, text and denominated unit amounts.
//
// The work is split by value family:
//
//	validator  predicates that gate every converter
//	integer    sign-magnitude arbitrary precision integers
//	decimal    exact fixed point base 10 numbers
//	convert    bytes, hex, number and text primitives
//	unit       wei denominated amounts
//	checksum   mixed case address checksums
//	dispatch   conversion to a requested representation
//
// Every conversion is a pure function. Inputs are loosely typed (any) and
// are checked against a closed set of accepted shapes; anything outside of
// that set fails with a *ValidationError whose message has the form:
//
//	Invalid value given "<value>". Error: <cause>.
//
// The kind of a failure is one of the error classes declared in this
// package (InvalidBytesError, InvalidIntegerError, ...).
package web3conv

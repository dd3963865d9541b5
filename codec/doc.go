// Package codec implements the binary encodings shared with the ledger:
// big-endian signed 64 bit integers, length-implicit UTF-8 strings and
// namespaced record keys of the form "<path>:<type>:<name>".
package codec

// Package transfer applies and removes Content-transfer-encoding. Only
// quoted-printable and base64 change the bytes; 7bit, 8bit, binary, and a
// missing header all pass the bytes through as-is.
//
// "Decoded" means the bytes are in their charset encoding, ready to be read.
// "Encoded" means they are in the named transfer encoding, ready to be sent.
package transfer

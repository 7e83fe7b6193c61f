// Package protocol implements the engine.io wire format: the single
// packet framing, the handshake payload carried by an OPEN packet, and
// the two payload formats that multiplex several packets into one
// transport write (the string-safe length-prefixed format and the
// byte-oriented XHR2 format).
//
// All codecs are stateless stream transformers; the transport that
// feeds them owns ordering, retries and reconnects.
package protocol

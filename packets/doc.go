// Package packets implements the OASIS MQTT v3.1.1 control-packet wire
// format: encoding in-memory packet values to bytes and decoding bytes back
// into packet values. The codec is pure and stateless — it consumes and
// produces byte buffers only, performs no I/O, and holds no process-wide
// state. Callers that need a transport, session state, or broker routing
// build those on top of Encode and Decode; this package does not provide
// them.
package packets

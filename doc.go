// Package edrmeta converts HDR metadata descriptors into the fixed-size SEI payloads
// used to signal extended dynamic range rendering intent to a presentation layer.
//
// Three encoders produce the mastering display colour volume (24 bytes), content light
// level (4 bytes) and ambient viewing environment (8 bytes) payloads. SelectMetadata picks
// the variant to attach to a composited surface. All functions are pure and safe for
// concurrent use.
package edrmeta

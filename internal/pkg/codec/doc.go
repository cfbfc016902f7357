// Package codec converts between text, raw bytes, base64 and hex, and renders byte slices in the
// supported output formats. All functions are pure.
package codec

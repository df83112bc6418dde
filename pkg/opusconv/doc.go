// Package opusconv converts raw Opus audio into a WAV container.
//
// Input is a minimal binary format: concatenated length-prefixed frames
// ([uint16 LE length][opus bytes]). No headers, no metadata. Each frame is
// decoded with libopus and the resulting 16-bit PCM is written into a WAV
// container at the configured sample rate and channel count.
package opusconv

// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes 16-bit PCM WAV files.
//
// # Reading
//
// ReadPCM16 walks the RIFF chunk list, validating "RIFF", "WAVE" and "fmt "
// in order. Extra fmt bytes beyond the standard 16 are skipped, and so is
// every chunk before "data". Multi-channel files keep only their first
// channel. The result is a go-audio IntBuffer; Decode turns it into an
// audio.Buffer with samples divided by 32768.
//
//	f, _ := os.Open("audio.wav")
//	defer f.Close()
//	buf, err := wav.Decode(f)
//
// Any bit depth other than 16 fails with ErrOnlyPCM16bitSupported, which
// wraps audio.ErrUnsupportedFormat. Structural problems wrap
// audio.ErrMalformedFile.
//
// # Writing
//
// WritePCM16 and Encode always produce mono 16-bit PCM with the canonical
// 44-byte header. Encode clamps each sample to [-1, 1] and scales it by 32767.
// The destination must be an io.WriteSeeker: after the samples are written the
// RIFF and data sizes are patched in place from the bytes actually written.
//
//	f, _ := os.Create("output.wav")
//	defer f.Close()
//	err := wav.Encode(f, src)
//
// # File Format
//
//	RIFF header (12 bytes)
//	fmt chunk   (24 bytes): format, channels, rate, byte rate, align, bits
//	data chunk  (8 bytes + samples)
package wav

// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF/WAVE streams.
//
// It uses github.com/go-audio/wav to parse the fmt chunk and to encode new
// files, and serves sample data straight from the data chunk.
//
// # Supported Formats
//
// Reading:
//   - PCM 8-bit (unsigned), 16, 24 and 32-bit
//   - IEEE float 32 and 64-bit
//   - WAVE_FORMAT_EXTENSIBLE wrapping any of the above
//
// Writing:
//   - PCM 16, 24 and 32-bit
//   - IEEE float 32-bit
//
// # Decoding
//
//	r, err := wav.Codec{}.Decode(file, audio.Info{})
//	buf := make([]float64, 4096)
//	n, err := r.ReadFrames(buf)
//
// Frames are interleaved float64 values in [-1.0, 1.0). The reader is
// seekable with SeekFrame.
//
// # Encoding
//
//	w, err := wav.Codec{}.Encode(file, info)
//	w.SetString(audio.StringTitle, "Take 3")
//	n, err := w.WriteFrames(frames)
//	err = w.Close()
//
// Close patches the RIFF and data sizes and appends a LIST/INFO chunk for
// any strings that were set, so the target must be an io.WriteSeeker.
//
// # Metadata
//
// LIST/INFO fields map to string kinds as follows: INAM title, IART artist,
// ICMT comment, ICOP copyright, ISFT software, ICRD date, IPRD album, IGNR
// genre and ITRK track number.
//
// # Error Handling
//
// Every error wraps one of the audio sentinels:
//
//	r, err := wav.Codec{}.Decode(file, audio.Info{})
//	if errors.Is(err, audio.ErrUnrecognizedFormat) {
//	    fmt.Println("Not a WAV file")
//	}
package wav

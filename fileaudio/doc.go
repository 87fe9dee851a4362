// SPDX-License-Identifier: EPL-2.0

// Package fileaudio loads and stores materialized sources by file extension.
//
// A Codecs table maps extensions to codecs; DefaultCodecs registers the WAV
// and text codecs:
//
//	buf, err := fileaudio.Open("voice.wav")
//	if err != nil {
//	    // errors.Is(err, audio.ErrUnsupportedFormat), audio.ErrIO, ...
//	}
//	err = fileaudio.Save("voice.txt", buf)
//
// Creator plugs the table into an audio.Registry as the FILE command.
package fileaudio

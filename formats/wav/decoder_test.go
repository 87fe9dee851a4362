// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/ik5/audgraph/audio"
)

// wavFile describes a file for createWAVFile. Zero fields get canonical values.
type wavFile struct {
	sampleRate    int
	channels      int
	bitsPerSample int
	fmtExtra      []byte
	// chunks are written between "fmt " and "data"
	chunks  map[string][]byte
	noData  bool
	samples []int16
}

// createWAVFile builds a WAV stream by hand.
func createWAVFile(f wavFile) []byte {
	if f.channels == 0 {
		f.channels = 1
	}
	if f.bitsPerSample == 0 {
		f.bitsPerSample = 16
	}

	body := new(bytes.Buffer)
	body.WriteString("WAVE")

	numChannels := uint16(f.channels)
	bits := uint16(f.bitsPerSample)
	byteRate := uint32(f.sampleRate) * uint32(numChannels) * uint32(bits/8)
	blockAlign := numChannels * (bits / 8)

	body.WriteString("fmt ")
	binary.Write(body, binary.LittleEndian, uint32(16+len(f.fmtExtra)))
	binary.Write(body, binary.LittleEndian, uint16(1)) // PCM format
	binary.Write(body, binary.LittleEndian, numChannels)
	binary.Write(body, binary.LittleEndian, uint32(f.sampleRate))
	binary.Write(body, binary.LittleEndian, byteRate)
	binary.Write(body, binary.LittleEndian, blockAlign)
	binary.Write(body, binary.LittleEndian, bits)
	body.Write(f.fmtExtra)

	for id, payload := range f.chunks {
		body.WriteString(id)
		binary.Write(body, binary.LittleEndian, uint32(len(payload)))
		body.Write(payload)
		if len(payload)%2 == 1 {
			body.WriteByte(0)
		}
	}

	if !f.noData {
		body.WriteString("data")
		binary.Write(body, binary.LittleEndian, uint32(len(f.samples)*2))
		for _, s := range f.samples {
			binary.Write(body, binary.LittleEndian, s)
		}
	}

	out := new(bytes.Buffer)
	out.WriteString("RIFF")
	binary.Write(out, binary.LittleEndian, uint32(body.Len()))
	out.Write(body.Bytes())
	return out.Bytes()
}

func TestReadPCM16_ValidFile(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 100, 200, -100, -200, 0}
	data := createWAVFile(wavFile{sampleRate: 8000, samples: samples})

	buf, err := ReadPCM16(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadPCM16() error = %v, want nil", err)
	}

	if buf.Format.SampleRate != 8000 {
		t.Errorf("SampleRate = %d, want 8000", buf.Format.SampleRate)
	}
	if buf.Format.NumChannels != 1 {
		t.Errorf("NumChannels = %d, want 1", buf.Format.NumChannels)
	}
	if buf.SourceBitDepth != 16 {
		t.Errorf("SourceBitDepth = %d, want 16", buf.SourceBitDepth)
	}
	if len(buf.Data) != len(samples) {
		t.Fatalf("len(Data) = %d, want %d", len(buf.Data), len(samples))
	}
	for i, want := range samples {
		if buf.Data[i] != int(want) {
			t.Errorf("Data[%d] = %d, want %d", i, buf.Data[i], want)
		}
	}
}

func TestReadPCM16_StereoKeepsFirstChannel(t *testing.T) {
	t.Parallel()

	// Interleaved L/R frames
	samples := []int16{100, -1, 200, -2, 300, -3}
	data := createWAVFile(wavFile{sampleRate: 44100, channels: 2, samples: samples})

	buf, err := ReadPCM16(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadPCM16() error = %v, want nil", err)
	}

	want := []int{100, 200, 300}
	if len(buf.Data) != len(want) {
		t.Fatalf("len(Data) = %d, want %d", len(buf.Data), len(want))
	}
	for i := range want {
		if buf.Data[i] != want[i] {
			t.Errorf("Data[%d] = %d, want %d", i, buf.Data[i], want[i])
		}
	}
}

func TestReadPCM16_SkipsUnknownChunks(t *testing.T) {
	t.Parallel()

	data := createWAVFile(wavFile{
		sampleRate: 16000,
		chunks: map[string][]byte{
			"LIST": []byte("INFOISFT\x05\x00\x00\x00odd!!"),
		},
		samples: []int16{1, 2, 3},
	})

	buf, err := ReadPCM16(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadPCM16() error = %v, want nil", err)
	}
	if len(buf.Data) != 3 || buf.Data[2] != 3 {
		t.Errorf("Data = %v, want [1 2 3]", buf.Data)
	}
}

func TestReadPCM16_SkipsExtraFmtBytes(t *testing.T) {
	t.Parallel()

	data := createWAVFile(wavFile{
		sampleRate: 22050,
		fmtExtra:   []byte{0, 0},
		samples:    []int16{-5, 5},
	})

	buf, err := ReadPCM16(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadPCM16() error = %v, want nil", err)
	}
	if len(buf.Data) != 2 || buf.Data[0] != -5 || buf.Data[1] != 5 {
		t.Errorf("Data = %v, want [-5 5]", buf.Data)
	}
}

func TestReadPCM16_Errors(t *testing.T) {
	t.Parallel()

	valid := createWAVFile(wavFile{sampleRate: 8000, samples: []int16{1, 2, 3, 4}})

	notRIFF := bytes.Clone(valid)
	copy(notRIFF[0:4], "RIFX")

	notWAVE := bytes.Clone(valid)
	copy(notWAVE[8:12], "AVI ")

	noFmt := bytes.Clone(valid)
	copy(noFmt[12:16], "junk")

	// Declares far more data than the file holds.
	hugeData := bytes.Clone(valid)
	binary.LittleEndian.PutUint32(hugeData[40:44], 0xFFFFFFFE)

	tests := []struct {
		name    string
		data    []byte
		wantErr error
		is      error
	}{
		{"empty", nil, ErrTruncated, audio.ErrMalformedFile},
		{"short header", valid[:20], ErrTruncated, audio.ErrMalformedFile},
		{"not RIFF", notRIFF, ErrNotWavFile, audio.ErrMalformedFile},
		{"not WAVE", notWAVE, ErrNotWavFile, audio.ErrMalformedFile},
		{"fmt missing", noFmt, ErrMissingFmtChunk, audio.ErrMalformedFile},
		{
			"no data chunk",
			createWAVFile(wavFile{sampleRate: 8000, noData: true}),
			ErrMissingDataChunk, audio.ErrMalformedFile,
		},
		{"truncated samples", valid[:len(valid)-3], ErrTruncated, audio.ErrMalformedFile},
		{"oversized data chunk", hugeData, ErrTruncated, audio.ErrMalformedFile},
		{
			"8-bit",
			createWAVFile(wavFile{sampleRate: 8000, bitsPerSample: 8, samples: []int16{1}}),
			ErrOnlyPCM16bitSupported, audio.ErrUnsupportedFormat,
		},
		{
			"24-bit",
			createWAVFile(wavFile{sampleRate: 8000, bitsPerSample: 24, samples: []int16{1}}),
			ErrOnlyPCM16bitSupported, audio.ErrUnsupportedFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ReadPCM16(bytes.NewReader(tt.data))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ReadPCM16() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, tt.is) {
				t.Errorf("ReadPCM16() error = %v, want it to wrap %v", err, tt.is)
			}
		})
	}
}

func TestDecode_Normalizes(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 16384, -16384, math.MinInt16, math.MaxInt16}
	data := createWAVFile(wavFile{sampleRate: 10, samples: samples})

	buf, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if buf.SampleRate() != 10 {
		t.Errorf("SampleRate() = %v, want 10", buf.SampleRate())
	}
	if buf.SampleSize() != 5 {
		t.Errorf("SampleSize() = %d, want 5", buf.SampleSize())
	}
	if buf.Duration() != 0.5 {
		t.Errorf("Duration() = %v, want 0.5", buf.Duration())
	}

	want := []float64{0, 0.5, -0.5, -1, 32767.0 / 32768.0}
	for i := range want {
		if got := buf.At(i); got != want[i] {
			t.Errorf("At(%d) = %v, want %v", i, got, want[i])
		}
	}
}

func TestDecode_EmptyData(t *testing.T) {
	t.Parallel()

	data := createWAVFile(wavFile{sampleRate: 8000})

	_, err := Decode(bytes.NewReader(data))
	if !errors.Is(err, audio.ErrInvalidParameter) {
		t.Errorf("Decode() error = %v, want %v", err, audio.ErrInvalidParameter)
	}
}

func BenchmarkDecode(b *testing.B) {
	samples := make([]int16, 8000)
	for i := range samples {
		samples[i] = int16(math.Sin(float64(i)*0.1) * 20000)
	}
	data := createWAVFile(wavFile{sampleRate: 8000, samples: samples})

	b.ReportAllocs()

	for b.Loop() {
		if _, err := Decode(bytes.NewReader(data)); err != nil {
			b.Fatal(err)
		}
	}
}

package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// ambience plays a looping WAV whose amplitude envelope eases toward a
// target level. Comet respawns push the target up briefly; it relaxes back
// to the floor on its own.
type ambience struct {
	stream *ambienceStream
	player *audio.Player
}

// newAmbience decodes the loop at path and starts playback.
func newAmbience(ctx *audio.Context, path string) (*ambience, error) {
	samples, err := loadLoopSamples(audioSampleRate, path)
	if err != nil {
		return nil, err
	}
	stream := newAmbienceStream(samples)
	player, err := ctx.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("creating ambience player: %w", err)
	}
	player.SetBufferSize(audioPlayerLatency)
	player.Play()
	return &ambience{stream: stream, player: player}, nil
}

// surge raises the envelope target; it decays back to the floor on its own.
func (a *ambience) surge(level float32) {
	a.stream.surge(level)
}

// setQuiet caps the envelope in quiet mode.
func (a *ambience) setQuiet(quiet bool) {
	a.stream.setQuiet(quiet)
}

// ambienceStream implements io.Reader for ebiten's audio player, producing
// 16-bit stereo frames from the mono loop scaled by the envelope. The
// stream is read on the audio goroutine, so its state is mutex-guarded.
type ambienceStream struct {
	mu      sync.Mutex
	samples []float32
	pos     int
	level   float32
	target  float32
	ceiling float32
}

func newAmbienceStream(samples []float32) *ambienceStream {
	return &ambienceStream{
		samples: samples,
		level:   0,
		target:  audioFloorLevel,
		ceiling: 1,
	}
}

func (s *ambienceStream) surge(level float32) {
	s.mu.Lock()
	if level > s.ceiling {
		level = s.ceiling
	}
	if level > s.target {
		s.target = level
	}
	s.mu.Unlock()
}

func (s *ambienceStream) setQuiet(quiet bool) {
	s.mu.Lock()
	if quiet {
		s.ceiling = quietAudioCeiling
		if s.target > s.ceiling {
			s.target = s.ceiling
		}
	} else {
		s.ceiling = 1
	}
	s.mu.Unlock()
}

func (s *ambienceStream) Read(p []byte) (int, error) {
	// Whole stereo frames only (4 bytes per frame).
	frameBytes := len(p) - len(p)%4
	if frameBytes == 0 {
		return 0, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	floor := float32(audioFloorLevel)
	if floor > s.ceiling {
		floor = s.ceiling
	}
	for i := 0; i < frameBytes; i += 4 {
		if s.level < s.target {
			s.level += (s.target - s.level) * audioAttack
		} else {
			s.level += (s.target - s.level) * audioRelease
		}
		s.target += (floor - s.target) * audioRelease

		sample := s.samples[s.pos] * s.level
		s.pos++
		if s.pos >= len(s.samples) {
			s.pos = 0
		}
		v := int16(sample * 32767)
		p[i] = byte(v)
		p[i+1] = byte(v >> 8)
		p[i+2] = p[i]
		p[i+3] = p[i+1]
	}
	return frameBytes, nil
}

func (s *ambienceStream) Close() error { return nil }

// loadLoopSamples decodes the WAV at path and returns stereo-averaged
// samples at sampleRate.
func loadLoopSamples(sampleRate int, path string) ([]float32, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("reading decoded %q: %w", path, err)
	}
	samples := decodeStereoI16ToFloat(decoded)
	if len(samples) == 0 {
		return nil, fmt.Errorf("wav %q has no usable samples", path)
	}
	return samples, nil
}

func decodeStereoI16ToFloat(pcm []byte) []float32 {
	frameCount := len(pcm) / 4
	if frameCount == 0 {
		return nil
	}
	samples := make([]float32, frameCount)
	for i := 0; i < frameCount; i++ {
		offset := i * 4
		left := int16(binary.LittleEndian.Uint16(pcm[offset : offset+2]))
		right := int16(binary.LittleEndian.Uint16(pcm[offset+2 : offset+4]))
		samples[i] = (float32(left) + float32(right)) * (0.5 / 32768.0)
	}
	return samples
}

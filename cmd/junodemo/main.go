// Command junodemo plays a sustained detuned pad through the chorus so
// the three modes can be auditioned without a host application.
//
// Usage:
//
//	junodemo [-mode I+II] [-mix 0.5] [-brightness 1] [-seconds 8]
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/cwbudde/junologue/dsp/chorus"
	"github.com/cwbudde/junologue/host"
)

const sampleRate = int(chorus.DefaultSampleRate)

// padSource synthesizes two slightly detuned saw oscillators, runs them
// through a chorus instance, and serializes signed 16-bit LE stereo for
// the audio backend.
type padSource struct {
	inst   *host.Instance
	phase1 float64
	phase2 float64
	block  []int16
}

func (s *padSource) Read(p []byte) (int, error) {
	frames := len(p) / 4
	if frames == 0 {
		return 0, nil
	}
	if cap(s.block) < 2*frames {
		s.block = make([]int16, 2*frames)
	}
	s.block = s.block[:2*frames]

	const (
		freq1 = 110.0
		freq2 = 110.55
	)
	inc1 := freq1 / float64(sampleRate)
	inc2 := freq2 / float64(sampleRate)
	for i := 0; i < frames; i++ {
		s.phase1 += inc1
		if s.phase1 >= 1 {
			s.phase1 -= 1
		}
		s.phase2 += inc2
		if s.phase2 >= 1 {
			s.phase2 -= 1
		}
		// Saw pair at -12 dB, summed to both channels.
		v := 0.25 * ((2*s.phase1 - 1) + (2*s.phase2 - 1))
		sample := int16(v * 32767)
		s.block[2*i] = sample
		s.block[2*i+1] = sample
	}

	s.inst.ProcessBlock(s.block, frames)

	for i, v := range s.block {
		binary.LittleEndian.PutUint16(p[2*i:], uint16(v))
	}
	return frames * 4, nil
}

var _ io.Reader = (*padSource)(nil)

func main() {
	var (
		mode       = flag.String("mode", "I+II", "chorus mode: I, I+II, II, or a numeric index")
		mix        = flag.String("mix", "0.5", "dry/wet balance in [0, 1]")
		brightness = flag.String("brightness", "1", "filter brightness in [0, 1]")
		seconds    = flag.Float64("seconds", 8, "playback duration")
	)
	flag.Parse()

	if err := run(*mode, *mix, *brightness, *seconds); err != nil {
		fmt.Fprintf(os.Stderr, "junodemo: %v\n", err)
		os.Exit(1)
	}
}

func run(mode, mix, brightness string, seconds float64) error {
	inst := host.New().CreateInstance("")
	if inst == nil {
		return fmt.Errorf("could not create chorus instance")
	}
	defer inst.Destroy()

	inst.SetParam(host.ParamMode, mode)
	inst.SetParam(host.ParamMix, mix)
	inst.SetParam(host.ParamBrightness, brightness)

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return fmt.Errorf("audio context: %w", err)
	}
	<-ready

	player := ctx.NewPlayer(&padSource{inst: inst})
	player.Play()
	defer player.Close()

	name, _ := inst.GetParam(host.ParamMode)
	fmt.Printf("playing mode %s for %.1fs\n", name, seconds)
	if seconds > 0 {
		time.Sleep(time.Duration(seconds * float64(time.Second)))
	}

	return nil
}

// Command junochorus applies the Juno-60 chorus emulation to a 16-bit
// PCM WAV file.
//
// Usage:
//
//	junochorus -in dry.wav -out wet.wav [flags]
//
// Mono input is summed into both chorus channels; the output is always
// stereo, which is the point of the effect.
//
// Examples:
//
//	junochorus -in guitar.wav -out guitar-chorus.wav
//	junochorus -in pad.wav -out pad-ii.wav -mode II -mix 0.7
//	junochorus -in keys.wav -out keys-dark.wav -brightness 0.4
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/junologue/dsp/core"
	"github.com/cwbudde/junologue/host"
)

type stderrLogger struct{}

func (stderrLogger) Log(msg string) {
	fmt.Fprintln(os.Stderr, msg)
}

func main() {
	var (
		inPath     = flag.String("in", "", "input WAV file (16-bit PCM, mono or stereo)")
		outPath    = flag.String("out", "", "output WAV file (16-bit PCM stereo)")
		mode       = flag.String("mode", "I+II", "chorus mode: I, I+II, II, or a numeric index")
		mix        = flag.String("mix", "0.5", "dry/wet balance in [0, 1]")
		brightness = flag.String("brightness", "1", "filter brightness in [0, 1]")
		blockSize  = flag.Int("block", 128, "processing block size in frames")
		verbose    = flag.Bool("v", false, "log instance lifecycle to stderr")
	)
	flag.Parse()

	if *inPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "junochorus: -in and -out are required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*inPath, *outPath, *mode, *mix, *brightness, *blockSize, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "junochorus: %v\n", err)
		os.Exit(1)
	}
}

func run(inPath, outPath, mode, mix, brightness string, blockSize int, verbose bool) error {
	frames, sampleRate, err := readStereo16(inPath)
	if err != nil {
		return err
	}

	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(float64(sampleRate)),
		core.WithBlockSize(blockSize),
	)

	opts := []host.Option{host.WithSampleRate(cfg.SampleRate)}
	if verbose {
		opts = append(opts, host.WithLogger(stderrLogger{}))
	}

	inst := host.New(opts...).CreateInstance("")
	if inst == nil {
		return fmt.Errorf("could not create chorus instance")
	}
	defer inst.Destroy()

	inst.SetParam(host.ParamMode, mode)
	inst.SetParam(host.ParamMix, mix)
	inst.SetParam(host.ParamBrightness, brightness)

	step := 2 * cfg.BlockSize
	for off := 0; off < len(frames); off += step {
		end := off + step
		if end > len(frames) {
			end = len(frames)
		}
		block := frames[off:end]
		inst.ProcessBlock(block, len(block)/2)
	}

	return writeStereo16(outPath, frames, sampleRate)
}

// readStereo16 decodes a 16-bit PCM WAV file into interleaved stereo
// frames, duplicating mono input into both channels.
func readStereo16(path string) ([]int16, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("decode %s: %w", path, err)
	}
	if dec.BitDepth != 16 {
		return nil, 0, fmt.Errorf("decode %s: unsupported bit depth %d, need 16", path, dec.BitDepth)
	}

	switch buf.Format.NumChannels {
	case 1:
		out := make([]int16, 2*len(buf.Data))
		for i, s := range buf.Data {
			out[2*i] = int16(s)
			out[2*i+1] = int16(s)
		}
		return out, buf.Format.SampleRate, nil
	case 2:
		out := make([]int16, len(buf.Data))
		for i, s := range buf.Data {
			out[i] = int16(s)
		}
		return out, buf.Format.SampleRate, nil
	default:
		return nil, 0, fmt.Errorf("decode %s: unsupported channel count %d", path, buf.Format.NumChannels)
	}
}

func writeStereo16(path string, frames []int16, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: sampleRate},
		SourceBitDepth: 16,
		Data:           make([]int, len(frames)),
	}
	for i, s := range frames {
		buf.Data[i] = int(s)
	}

	enc := wav.NewEncoder(f, sampleRate, 16, 2, 1)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return enc.Close()
}

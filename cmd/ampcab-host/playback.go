package main

import (
	"encoding/binary"

	"github.com/ebitengine/oto/v3"

	"github.com/tonefold/ampcab/pkg/framework/debug"
	"github.com/tonefold/ampcab/pkg/fx"
)

// blockStreamer feeds the effect one 128-frame block at a time and serves
// the result to oto as little-endian stereo int16 bytes. oto's own goroutine
// calls Read; that goroutine is this host's audio context.
type blockStreamer struct {
	inst   *fx.Instance
	meter  *debug.Meter
	source []float32 // mono input, looped
	pos    int

	block   []int16 // fx.BlockCapacity frames, interleaved stereo
	pending []byte  // unread bytes of the last rendered block
	byteBuf []byte
}

func newBlockStreamer(inst *fx.Instance, source []float32, meter *debug.Meter) *blockStreamer {
	return &blockStreamer{
		inst:    inst,
		meter:   meter,
		source:  source,
		block:   make([]int16, fx.BlockCapacity*2),
		byteBuf: make([]byte, fx.BlockCapacity*4),
	}
}

func (s *blockStreamer) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(s.pending) == 0 {
			s.renderBlock()
		}
		copied := copy(p[n:], s.pending)
		s.pending = s.pending[copied:]
		n += copied
	}
	return n, nil
}

func (s *blockStreamer) renderBlock() {
	// Fill the block with the looped source, duplicated to both channels.
	for i := 0; i < fx.BlockCapacity; i++ {
		v := sampleToInt16(s.source[s.pos])
		s.block[i*2] = v
		s.block[i*2+1] = v
		s.pos++
		if s.pos >= len(s.source) {
			s.pos = 0
		}
	}

	s.meter.Time(func() {
		s.inst.ProcessBlock(s.block, fx.BlockCapacity)
	})

	for i, v := range s.block {
		binary.LittleEndian.PutUint16(s.byteBuf[i*2:], uint16(v))
	}
	s.pending = s.byteBuf
}

func sampleToInt16(s float32) int16 {
	if s > 1 {
		s = 1
	} else if s < -1 {
		s = -1
	}
	return int16(s * 32767)
}

// startPlayback opens the audio device and starts pulling blocks.
func startPlayback(inst *fx.Instance, source []float32, meter *debug.Meter) (*oto.Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   fx.SampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready

	player := ctx.NewPlayer(newBlockStreamer(inst, source, meter))
	player.Play()
	return player, nil
}

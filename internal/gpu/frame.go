//go:build !nogpu

package gpu

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/oge/render"
	"github.com/gogpu/wgpu/hal"
)

// submitTimeout bounds the wait for a frame's commands to complete.
const submitTimeout = 5 * time.Second

// Frame errors.
var (
	// ErrFrameDone is returned by Draw and Present after Present.
	ErrFrameDone = errors.New("gpu: frame already presented")

	// ErrSubmitTimeout is returned by Present when the frame's commands
	// do not complete within submitTimeout.
	ErrSubmitTimeout = errors.New("gpu: frame submission timed out")
)

// frame records one render pass. Draws are encoded as they arrive;
// Present ends the pass, submits it and presents the surface.
type frame struct {
	dev     *Device
	encoder hal.CommandEncoder
	pass    hal.RenderPassEncoder
	draws   int
	done    bool
}

func beginFrame(d *Device, attachment hal.RenderPassColorAttachment) (*frame, error) {
	encoder, err := d.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "sprite_frame_encoder",
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("sprite_frame"); err != nil {
		return nil, fmt.Errorf("gpu: begin encoding: %w", err)
	}
	pass := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label:            "sprite_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{attachment},
	})
	pass.SetPipeline(d.pipeline.pipeline)
	return &frame{dev: d, encoder: encoder, pass: pass}, nil
}

// Draw records one indexed draw.
func (f *frame) Draw(call render.DrawCall) error {
	if f.done {
		return ErrFrameDone
	}
	vb, ok1 := call.Vertices.(*buffer)
	ib, ok2 := call.Indices.(*buffer)
	bg, ok3 := call.BindGroup.(*bindGroup)
	if !ok1 || !ok2 || !ok3 {
		return fmt.Errorf("%w: draw %q", ErrForeignResource, call.Label)
	}
	if call.IndexCount == 0 {
		return nil
	}
	f.pass.SetBindGroup(0, bg.group, nil)
	f.pass.SetVertexBuffer(0, vb.buf, 0)
	f.pass.SetIndexBuffer(ib.buf, gputypes.IndexFormatUint16, 0)
	f.pass.DrawIndexed(call.IndexCount, 1, 0, 0, 0)
	f.draws++
	return nil
}

// Present submits the recorded pass, waits for it to complete and
// presents the surface.
func (f *frame) Present() error {
	if f.done {
		return ErrFrameDone
	}
	f.done = true
	f.dev.frame = nil

	f.pass.End()
	cmdBuf, err := f.encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("gpu: end encoding: %w", err)
	}
	defer f.dev.device.FreeCommandBuffer(cmdBuf)

	index, err := f.dev.queue.Submit([]hal.CommandBuffer{cmdBuf})
	if err != nil {
		return fmt.Errorf("gpu: submit: %w", err)
	}
	if err := waitSubmission(f.dev.queue, index, submitTimeout); err != nil {
		return err
	}
	if err := f.dev.target.Present(); err != nil {
		return fmt.Errorf("gpu: present: %w", err)
	}
	slogger().Debug("gpu: frame presented", "draws", f.draws, "submission", index)
	return nil
}

// completionPoll is the interval between queue completion checks.
const completionPoll = time.Millisecond

// waitSubmission blocks until queue reports submission index as completed
// or timeout elapses.
func waitSubmission(queue hal.Queue, index uint64, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for queue.PollCompleted() < index {
		if time.Now().After(deadline) {
			return fmt.Errorf("%w: submission %d after %v", ErrSubmitTimeout, index, timeout)
		}
		time.Sleep(completionPoll)
	}
	return nil
}

// discard abandons a frame that will not be presented.
func (f *frame) discard() {
	if f.done {
		return
	}
	f.done = true
	f.dev.frame = nil
	f.pass.End()
	f.encoder.DiscardEncoding()
}

// Package codec wraps the gRPC connection to the emulator process and
// exposes it as an emu.FrameSource.
package codec

//go:generate protoc --go_out=../.. --go_opt=module=github.com/jwhitfield/pixelpilot --go-grpc_out=../.. --go-grpc_opt=module=github.com/jwhitfield/pixelpilot ../../proto/emulator.proto

import (
	"context"
	"fmt"

	pb "github.com/jwhitfield/pixelpilot/gen/emupb"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/jwhitfield/pixelpilot/internal/emu"
	"github.com/jwhitfield/pixelpilot/internal/frame"
)

// #region client-struct

// Client wraps the gRPC connection to the emulator service.
type Client struct {
	conn   *grpc.ClientConn
	client pb.EmulatorClient
}

var _ emu.FrameSource = (*Client)(nil)

// #endregion client-struct

// #region constructor

// NewClient connects to the emulator gRPC server.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewEmulatorClient(conn),
	}, nil
}

// NewClientWithService creates a Client with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.EmulatorClient) *Client {
	return &Client{client: svc}
}

// #endregion constructor

// #region close

// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// #endregion close

// #region step

// Step applies one input and returns the frames rendered while it settled.
func (c *Client) Step(ctx context.Context, in emu.Input) ([]*frame.Frame, bool, error) {
	resp, err := c.client.Step(ctx, &pb.StepRequest{Input: int32(in)})
	if err != nil {
		return nil, false, fmt.Errorf("step rpc: %w", err)
	}
	frames := make([]*frame.Frame, 0, len(resp.Frames))
	for i, f := range resp.Frames {
		decoded, err := decodeFrame(f)
		if err != nil {
			return nil, false, fmt.Errorf("step frame %d: %w", i, err)
		}
		frames = append(frames, decoded)
	}
	return frames, resp.Terminated, nil
}

// #endregion step

// #region current-frame

// CurrentFrame returns the most recently rendered frame without advancing
// emulation.
func (c *Client) CurrentFrame(ctx context.Context) (*frame.Frame, error) {
	resp, err := c.client.CurrentFrame(ctx, &pb.CurrentFrameRequest{})
	if err != nil {
		return nil, fmt.Errorf("current frame rpc: %w", err)
	}
	decoded, err := decodeFrame(resp.Frame)
	if err != nil {
		return nil, fmt.Errorf("current frame: %w", err)
	}
	return decoded, nil
}

// #endregion current-frame

// #region lifecycle

// Reset restarts the emulated game from its initial state.
func (c *Client) Reset(ctx context.Context) error {
	if _, err := c.client.Reset(ctx, &pb.ResetRequest{}); err != nil {
		return fmt.Errorf("reset rpc: %w", err)
	}
	return nil
}

// SaveState snapshots the emulator into a named slot.
func (c *Client) SaveState(ctx context.Context, slot string) error {
	if _, err := c.client.SaveState(ctx, &pb.SaveStateRequest{Slot: slot}); err != nil {
		return fmt.Errorf("save state rpc: %w", err)
	}
	return nil
}

// LoadState restores the emulator from a named slot.
func (c *Client) LoadState(ctx context.Context, slot string) error {
	if _, err := c.client.LoadState(ctx, &pb.LoadStateRequest{Slot: slot}); err != nil {
		return fmt.Errorf("load state rpc: %w", err)
	}
	return nil
}

// #endregion lifecycle

// #region decode

func decodeFrame(f *pb.Frame) (*frame.Frame, error) {
	if f == nil {
		return nil, fmt.Errorf("empty frame message")
	}
	pix := make([]uint8, len(f.Pixels))
	copy(pix, f.Pixels)
	decoded, err := frame.FromPixels(int(f.Width), int(f.Height), pix)
	if err != nil {
		return nil, err
	}
	return decoded, nil
}

// #endregion decode

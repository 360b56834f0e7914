package client

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	chardetv1 "github.com/matheus3301/chardetect/internal/wire/chardetv1"
)

// DaemonBinary is the name of the daemon executable.
const DaemonBinary = "chardetd"

// Client wraps gRPC connections to the daemon.
type Client struct {
	conn     *grpc.ClientConn
	Detector chardetv1.DetectorClient
	History  chardetv1.HistoryClient
}

// New dials the daemon's Unix domain socket and returns typed service clients.
func New(socketPath string) (*Client, error) {
	conn, err := grpc.NewClient(
		"unix://"+socketPath,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("dial daemon: %w", err)
	}

	return &Client{
		conn:     conn,
		Detector: chardetv1.NewDetectorClient(conn),
		History:  chardetv1.NewHistoryClient(conn),
	}, nil
}

// Close closes the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Probe checks if a daemon is running and responsive on the socket.
func Probe(socketPath string) bool {
	c, err := New(socketPath)
	if err != nil {
		return false
	}
	defer func() { _ = c.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err = c.Detector.GetStatus(ctx, &chardetv1.GetStatusRequest{})
	return err == nil
}

// StartDaemon launches the daemon for home in the background. The binary
// next to the running executable is preferred over the one on PATH.
func StartDaemon(home string) error {
	executable, err := os.Executable()
	if err != nil {
		return err
	}
	bin := filepath.Join(filepath.Dir(executable), DaemonBinary)
	if _, err := os.Stat(bin); err != nil {
		bin = DaemonBinary
	}

	cmd := exec.Command(bin, "--home", home)
	// Inherit stderr so daemon startup errors are visible.
	cmd.Stderr = os.Stderr
	return cmd.Start()
}

// WaitForDaemon polls the daemon with a real gRPC health check (not just socket connect).
func WaitForDaemon(socketPath string, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if Probe(socketPath) {
			return true
		}
		time.Sleep(300 * time.Millisecond)
	}
	return false
}

// Ensure returns a client for a responsive daemon, starting one for home
// when none is running.
func Ensure(home, socketPath string, timeout time.Duration) (*Client, error) {
	if !Probe(socketPath) {
		if err := StartDaemon(home); err != nil {
			return nil, fmt.Errorf("start daemon: %w", err)
		}
		if !WaitForDaemon(socketPath, timeout) {
			return nil, fmt.Errorf("daemon did not become ready within %s", timeout)
		}
	}
	return New(socketPath)
}

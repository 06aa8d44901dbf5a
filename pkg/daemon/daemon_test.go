package daemon

import (
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"
)

func TestListenRefusesLiveSocket(t *testing.T) {
	sock := filepath.Join(t.TempDir(), "d.sock")
	running, err := net.Listen("unix", sock)
	if err != nil {
		t.Fatal(err)
	}
	defer running.Close()

	if _, err := listen("unix://"+sock, false); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("listen() error = %v, want ErrAlreadyRunning", err)
	}

	// The first daemon must still be reachable.
	conn, err := net.Dial("unix", sock)
	if err != nil {
		t.Fatalf("running socket was removed: %v", err)
	}
	_ = conn.Close()
}

func TestListenReplacesStaleSocket(t *testing.T) {
	sock := filepath.Join(t.TempDir(), "d.sock")
	old, err := net.Listen("unix", sock)
	if err != nil {
		t.Fatal(err)
	}
	old.(*net.UnixListener).SetUnlinkOnClose(false)
	_ = old.Close()
	if _, err := os.Stat(sock); err != nil {
		t.Fatalf("stale socket missing before listen: %v", err)
	}

	l, err := listen(sock, false)
	if err != nil {
		t.Fatalf("listen() error = %v", err)
	}
	defer l.Close()

	conn, err := net.Dial("unix", sock)
	if err != nil {
		t.Fatalf("failed to dial new socket: %v", err)
	}
	_ = conn.Close()
}

func TestListenFreshSocketAndChmod(t *testing.T) {
	sock := filepath.Join(t.TempDir(), "d.sock")

	l, err := listen("unix://"+sock, true)
	if err != nil {
		t.Fatalf("listen() error = %v", err)
	}
	defer l.Close()

	fi, err := os.Stat(sock)
	if err != nil {
		t.Fatal(err)
	}
	if perm := fi.Mode().Perm(); perm != 0777 {
		t.Errorf("socket permissions = %o, want 777", perm)
	}
}
